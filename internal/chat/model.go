package chat

import "os"

// Gemini Model IDs
//
// | Model Name               | API Model ID                   | Use Case                   |
// |--------------------------|--------------------------------|----------------------------|
// | Gemini 2.5 Flash Image   | gemini-2.5-flash-image-preview | Image generation/editing   |
// | Gemini 3 Pro Image       | gemini-3-pro-image-preview     | Advanced image generation  |
// | Gemini 2.5 Flash-Lite    | gemini-2.5-flash-lite          | Cheap text calls           |
const (
	// ModelGemini25FlashImage generates and edits images; the default for variations.
	ModelGemini25FlashImage = "gemini-2.5-flash-image-preview"

	// ModelGemini3ProImage is for advanced image generation/edit.
	ModelGemini3ProImage = "gemini-3-pro-image-preview"

	// ModelGemini25FlashLite is for high-throughput, lowest cost text calls.
	ModelGemini25FlashLite = "gemini-2.5-flash-lite"
)

// DefaultModelName is the default Gemini model used for image variations.
// Can be overridden via the GEMINI_MODEL environment variable or --model flag.
const DefaultModelName = ModelGemini25FlashImage

// GetModelName returns the Gemini image model to use, resolved from:
// 1. GEMINI_MODEL environment variable (if set)
// 2. Default: gemini-2.5-flash-image-preview
func GetModelName() string {
	if env := os.Getenv("GEMINI_MODEL"); env != "" {
		return env
	}
	return DefaultModelName
}
