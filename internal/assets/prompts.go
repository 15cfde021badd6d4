// Package assets provides embedded static assets for the application.
//
// Prompt templates are stored as text files under prompts/ and embedded at
// compile time, keeping the long instruction text out of Go source.
package assets

import (
	"bytes"
	_ "embed"
	"text/template"
)

//go:embed prompts/variation-random-outfit.txt
var randomOutfitTemplate string

//go:embed prompts/variation-fixed-outfit.txt
var fixedOutfitTemplate string

// Pre-parsed templates for efficiency. template.Must panics on malformed
// templates, catching errors at program startup rather than at call time.
var (
	randomOutfitTmpl = template.Must(template.New("random-outfit").Parse(randomOutfitTemplate))
	fixedOutfitTmpl  = template.Must(template.New("fixed-outfit").Parse(fixedOutfitTemplate))
)

// PromptData holds the dynamic clauses injected into the variation templates.
type PromptData struct {
	// Outfit is the sampled outfit description. Unused by the fixed-outfit template.
	Outfit string
	// Background is the sampled camera/perspective-shift description.
	Background string
	// Expression is the numbered EXPRESSION section, or empty for
	// unrecognized categories. It carries its own leading newline.
	Expression string
}

// RenderRandomOutfitPrompt renders the variation prompt that dresses the
// subject in a freshly sampled outfit.
func RenderRandomOutfitPrompt(outfit, background, expression string) string {
	return renderTemplate(randomOutfitTmpl, PromptData{
		Outfit:     outfit,
		Background: background,
		Expression: expression,
	})
}

// RenderFixedOutfitPrompt renders the variation prompt that keeps the outfit
// exactly the same across the batch.
func RenderFixedOutfitPrompt(background, expression string) string {
	return renderTemplate(fixedOutfitTmpl, PromptData{
		Background: background,
		Expression: expression,
	})
}

// renderTemplate executes a pre-parsed template with the given data.
func renderTemplate(tmpl *template.Template, data PromptData) string {
	var buf bytes.Buffer
	// Template execution errors are not expected with our simple templates,
	// but we handle them gracefully by returning whatever was rendered.
	_ = tmpl.Execute(&buf, data)
	return buf.String()
}
