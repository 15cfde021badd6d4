package filehandler

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knguyenphu-toffee/base-image-editor/internal/variation"
	"github.com/rs/zerolog/log"
)

// outputExtensions maps a model response MIME type to the extension used for
// the written file. Unknown MIME types fall back to .png.
var outputExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
}

// ExtensionForMIME returns the file extension for the model's output MIME
// type, defaulting to .png when the type is missing or unrecognized.
func ExtensionForMIME(mimeType string) string {
	if ext, ok := outputExtensions[mimeType]; ok {
		return ext
	}
	return ".png"
}

// PurgeOutputs deletes prior outputs of the given category from the output
// directory so a new batch never leaves stale sequence numbers behind.
// A missing output directory is fine; there is nothing to purge.
// Returns the number of files removed.
func PurgeOutputs(dirPath string, cat variation.Category, prefix string) (int, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read output directory: %w", err)
	}

	var existing []string
	for _, entry := range entries {
		if !entry.IsDir() {
			existing = append(existing, entry.Name())
		}
	}

	targets := variation.PurgeTargets(existing, cat, prefix)
	for _, name := range targets {
		path := filepath.Join(dirPath, name)
		if err := os.Remove(path); err != nil {
			return 0, fmt.Errorf("failed to remove stale output %s: %w", name, err)
		}
		log.Debug().Str("file", name).Msg("Removed stale output from prior batch")
	}

	if len(targets) > 0 {
		log.Info().
			Int("removed", len(targets)).
			Str("category", cat.String()).
			Msg("Purged prior batch outputs")
	}

	return len(targets), nil
}

// WriteOutput writes one generated image to the output directory, creating
// the directory if needed. Output files are written once and never updated
// in place. Returns the full path written.
func WriteOutput(dirPath, filename string, data []byte) (string, error) {
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dirPath, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write output file: %w", err)
	}

	log.Info().
		Str("path", path).
		Int("size_bytes", len(data)).
		Msg("Output file saved")

	return path, nil
}
