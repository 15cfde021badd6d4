package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// VariationResult holds the result of one image variation call.
type VariationResult struct {
	// ImageData is the raw bytes of the generated image.
	ImageData []byte
	// ImageMIMEType is the MIME type of the output image.
	ImageMIMEType string
	// Text is any commentary the model returned alongside the image.
	Text string
}

// GenerateVariation sends the base image plus a composed instruction to the
// image model and returns the first inline image payload in the response.
//
// The response may interleave text and image parts; the first image wins and
// text is collected for debug logging. A response without any image payload
// is an error; the caller treats it as a per-variation failure, not a fatal
// one.
func GenerateVariation(ctx context.Context, client *genai.Client, model string, imageData []byte, imageMIMEType, prompt string) (*VariationResult, error) {
	startTime := time.Now()
	log.Info().
		Str("model", model).
		Int("image_bytes", len(imageData)).
		Str("image_mime", imageMIMEType).
		Msg("Requesting image variation from Gemini")

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			{InlineData: &genai.Blob{MIMEType: imageMIMEType, Data: imageData}},
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText("Generate the variation now."),
		}, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	}

	resp, err := client.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("failed to generate variation: %w", err)
	}

	result := &VariationResult{}
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 && result.ImageData == nil {
				result.ImageData = part.InlineData.Data
				result.ImageMIMEType = part.InlineData.MIMEType
			}
			if part.Text != "" {
				result.Text += part.Text
			}
		}
	}

	if result.Text != "" {
		log.Debug().Str("text", result.Text).Msg("Model returned text alongside the variation")
	}

	if result.ImageData == nil {
		return nil, fmt.Errorf("no image payload in response (text: %s)", truncateString(result.Text, 200))
	}

	log.Info().
		Int("output_bytes", len(result.ImageData)).
		Str("output_mime", result.ImageMIMEType).
		Dur("duration", time.Since(startTime)).
		Msg("Image variation complete")

	return result, nil
}

// truncateString shortens s to max runes for log/error output.
func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
