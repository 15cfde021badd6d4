// Package filehandler handles the input base image and the generated output
// files: discovery of the base selfie, MIME mapping, purging of prior batch
// outputs, and writing new ones.
package filehandler

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// SupportedImageExtensions defines the file extensions recognized when
// scanning for the base image, mapped to the MIME type sent to the model.
var SupportedImageExtensions = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
	".bmp":  "image/bmp",
}

// IsImage reports whether the extension is a recognized image extension.
func IsImage(ext string) bool {
	_, ok := SupportedImageExtensions[strings.ToLower(ext)]
	return ok
}

// GetMIMEType returns the MIME type for a given file extension.
func GetMIMEType(ext string) (string, error) {
	if mimeType, ok := SupportedImageExtensions[strings.ToLower(ext)]; ok {
		return mimeType, nil
	}
	return "", fmt.Errorf("unsupported file extension: %s", ext)
}

// BaseImage describes the single input selfie all variations derive from.
type BaseImage struct {
	Path     string
	Stem     string // filename without extension
	Ext      string // extension including the dot, lowercased
	MIMEType string
	Size     int64
}

// FindBaseImage scans the input directory (non-recursive) for the base image.
// Directory entries come back sorted, and the first recognized image wins;
// a warning names the chosen file when more than one candidate exists.
//
// A missing directory or a directory without any recognized image is an
// error: both are fatal preconditions for a batch.
func FindBaseImage(dirPath string) (*BaseImage, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("starting image directory not found: %s", dirPath)
		}
		return nil, fmt.Errorf("failed to read starting image directory: %w", err)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsImage(filepath.Ext(entry.Name())) {
			candidates = append(candidates, entry.Name())
		}
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("no image files found in %s", dirPath)
	}

	if len(candidates) > 1 {
		log.Warn().
			Int("count", len(candidates)).
			Str("using", candidates[0]).
			Msg("Multiple images found in starting image directory")
	}

	name := candidates[0]
	path := filepath.Join(dirPath, name)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat base image: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(name))
	mimeType, err := GetMIMEType(ext)
	if err != nil {
		return nil, err
	}

	base := &BaseImage{
		Path:     path,
		Stem:     strings.TrimSuffix(name, filepath.Ext(name)),
		Ext:      ext,
		MIMEType: mimeType,
		Size:     info.Size(),
	}

	log.Info().
		Str("path", base.Path).
		Str("mime_type", base.MIMEType).
		Int64("size_bytes", base.Size).
		Msg("Base image resolved")

	logBaseImageMetadata(path)

	return base, nil
}

// Read loads the base image bytes from disk.
func (b *BaseImage) Read() ([]byte, error) {
	data, err := os.ReadFile(b.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read base image: %w", err)
	}
	return data, nil
}
