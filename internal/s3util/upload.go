// Package s3util mirrors generated outputs to S3 when a bucket is configured.
package s3util

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// NewClient builds an S3 client from the default AWS credential chain.
func NewClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

// UploadOutput uploads one generated image to s3://bucket/<batchID>/<filename>.
// Returns the object key.
func UploadOutput(ctx context.Context, client *s3.Client, bucket, batchID, filename, contentType string, data []byte) (string, error) {
	key := fmt.Sprintf("%s/%s", batchID, filename)

	log.Debug().
		Str("bucket", bucket).
		Str("key", key).
		Int("size_bytes", len(data)).
		Msg("Uploading output to S3")

	_, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(data),
		ContentType: &contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload output to S3: %w", err)
	}

	log.Info().
		Str("bucket", bucket).
		Str("key", key).
		Msg("Output mirrored to S3")

	return key, nil
}
