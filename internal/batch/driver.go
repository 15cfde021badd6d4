package batch

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/knguyenphu-toffee/base-image-editor/internal/chat"
	"github.com/knguyenphu-toffee/base-image-editor/internal/filehandler"
	"github.com/knguyenphu-toffee/base-image-editor/internal/metrics"
	"github.com/knguyenphu-toffee/base-image-editor/internal/s3util"
	"github.com/knguyenphu-toffee/base-image-editor/internal/variation"
)

// DefaultDelay is the pacing delay between successive API calls, matching the
// free-tier rate limits of the image model.
const DefaultDelay = 3 * time.Second

// Driver runs variation batches against one input/output directory pair.
type Driver struct {
	Client   *genai.Client
	Model    string
	Composer *variation.Composer

	InputDir  string
	OutputDir string

	// Delay paces successive generation calls. Zero disables pacing.
	Delay time.Duration

	// S3Bucket enables mirroring of every written output when non-empty.
	S3Bucket string
	S3       *s3.Client
}

// Summary reports the outcome of one batch.
type Summary struct {
	BatchID   string
	Kind      Kind
	Requested int
	Succeeded int
	Failed    int
	Duration  time.Duration
}

// Run executes one batch of the given kind sequentially: each variation is
// fully composed, generated, and written before the next one starts.
//
// A failed variation (API error or a response without an image payload) is
// logged and counted but does not stop the batch; there are no retries.
// Fatal preconditions (missing input directory, no base image) abort the
// whole run with an error.
func (d *Driver) Run(ctx context.Context, kind Kind) (*Summary, error) {
	start := time.Now()
	batchID := uuid.NewString()

	log.Info().
		Str("batch_id", batchID).
		Str("kind", kind.String()).
		Str("model", d.Model).
		Msg("Starting variation batch")

	base, err := filehandler.FindBaseImage(d.InputDir)
	if err != nil {
		return nil, err
	}

	imageData, err := base.Read()
	if err != nil {
		return nil, err
	}

	prefix := variation.Prefix(base.Stem)

	// Stale outputs of the same category must be gone before the batch
	// writes anything, so an aborted run never leaves mixed generations.
	if _, err := filehandler.PurgeOutputs(d.OutputDir, kind.purgeCategory(), prefix); err != nil {
		return nil, err
	}

	plan := BuildPlan(kind, d.Composer)
	if kind == KindSnapchatSameOutfit && len(plan) > 0 {
		log.Info().Str("outfit", plan[0].FixedOutfit).Msg("Using same outfit for all variations")
	}

	limiter := rate.NewLimiter(rate.Every(d.Delay), 1)

	summary := &Summary{
		BatchID:   batchID,
		Kind:      kind,
		Requested: len(plan),
	}

	for _, req := range plan {
		if err := limiter.Wait(ctx); err != nil {
			return summary, fmt.Errorf("batch interrupted: %w", err)
		}

		log.Info().
			Int("variation", req.Sequence).
			Int("of", len(plan)).
			Str("category", req.Category.Display()).
			Msg("Generating variation")

		prompt := d.Composer.Compose(req.Category, req.FixedOutfit)

		result, err := chat.GenerateVariation(ctx, d.Client, d.Model, imageData, base.MIMEType, prompt)
		if err != nil {
			log.Warn().
				Err(err).
				Int("variation", req.Sequence).
				Str("category", req.Category.String()).
				Msg("Variation failed, continuing batch")
			summary.Failed++
			continue
		}

		ext := filehandler.ExtensionForMIME(result.ImageMIMEType)
		filename := variation.DeriveFilename(base.Stem, req.Category, req.Sequence, ext)

		if _, err := filehandler.WriteOutput(d.OutputDir, filename, result.ImageData); err != nil {
			log.Warn().
				Err(err).
				Str("file", filename).
				Msg("Failed to write output, continuing batch")
			summary.Failed++
			continue
		}

		d.mirrorToS3(ctx, batchID, filename, result)

		summary.Succeeded++
	}

	summary.Duration = time.Since(start)
	d.emitMetrics(summary)

	log.Info().
		Str("batch_id", batchID).
		Int("succeeded", summary.Succeeded).
		Int("requested", summary.Requested).
		Dur("duration", summary.Duration).
		Msg("Batch complete")

	return summary, nil
}

// mirrorToS3 uploads one output to the configured bucket. Mirroring is
// best-effort: a failed upload never fails the variation, which is already
// safely on disk.
func (d *Driver) mirrorToS3(ctx context.Context, batchID, filename string, result *chat.VariationResult) {
	if d.S3Bucket == "" || d.S3 == nil {
		return
	}

	contentType := result.ImageMIMEType
	if contentType == "" {
		contentType = "image/png"
	}

	if _, err := s3util.UploadOutput(ctx, d.S3, d.S3Bucket, batchID, filename, contentType, result.ImageData); err != nil {
		log.Warn().Err(err).Str("file", filename).Msg("Failed to mirror output to S3")
	}
}

// emitMetrics records the batch outcome in EMF format.
func (d *Driver) emitMetrics(s *Summary) {
	metrics.New("BaseImageEditor").
		Dimension("Kind", s.Kind.String()).
		Metric("VariationsSucceeded", float64(s.Succeeded), metrics.UnitCount).
		Metric("VariationsFailed", float64(s.Failed), metrics.UnitCount).
		Metric("BatchDurationMs", float64(s.Duration.Milliseconds()), metrics.UnitMilliseconds).
		Property("batchId", s.BatchID).
		Flush()
}
