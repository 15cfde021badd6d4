// Package chat wraps the Gemini API client for image variation generation.
package chat

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// NewGeminiClient creates a Gemini API client authenticated with the given key.
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return client, nil
}
