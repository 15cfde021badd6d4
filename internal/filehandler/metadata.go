package filehandler

import (
	"os"
	"strings"

	"github.com/evanoberholster/imagemeta"
	"github.com/rs/zerolog/log"
)

// logBaseImageMetadata extracts EXIF metadata from the base image and logs it
// for traceability. Extraction is best-effort: many PNG/WebP selfies carry no
// EXIF block at all, so failures are logged at debug level and never abort
// the run.
func logBaseImageMetadata(path string) {
	file, err := os.Open(path)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("Failed to open base image for metadata")
		return
	}
	defer file.Close()

	exifData, err := imagemeta.Decode(file)
	if err != nil {
		log.Debug().Err(err).Str("path", path).Msg("No EXIF metadata in base image")
		return
	}

	event := log.Debug().Str("path", path)

	if cameraMake := strings.TrimSpace(exifData.Make); cameraMake != "" {
		event = event.Str("camera_make", cameraMake)
	}
	if model := strings.TrimSpace(exifData.Model); model != "" {
		event = event.Str("camera_model", model)
	}
	if dt := exifData.DateTimeOriginal(); !dt.IsZero() {
		event = event.Time("date_taken", dt)
	}
	gps := exifData.GPS
	if gps.Latitude() != 0 || gps.Longitude() != 0 {
		event = event.Float64("latitude", gps.Latitude()).Float64("longitude", gps.Longitude())
	}

	event.Msg("Base image EXIF metadata")
}
