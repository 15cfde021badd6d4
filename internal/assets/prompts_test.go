package assets

import (
	"strings"
	"testing"
)

func TestRenderRandomOutfitPrompt(t *testing.T) {
	prompt := RenderRandomOutfitPrompt(
		"neutral colored hoodie and jeans",
		"Shift camera angle slightly left",
		"\n4. EXPRESSION: Change expression to a smile.",
	)

	if !strings.Contains(prompt, "1. CLOTHING: Change the person's outfit to: neutral colored hoodie and jeans.") {
		t.Error("rendered prompt missing the outfit clause")
	}
	if !strings.Contains(prompt, "2. BACKGROUND: Shift camera angle slightly left.") {
		t.Error("rendered prompt missing the background clause")
	}
	if !strings.Contains(prompt, "4. EXPRESSION: Change expression to a smile.") {
		t.Error("rendered prompt missing the expression clause")
	}
	if !strings.Contains(prompt, "3. REQUIREMENTS:") {
		t.Error("rendered prompt missing the requirements section")
	}
}

func TestRenderFixedOutfitPrompt(t *testing.T) {
	prompt := RenderFixedOutfitPrompt(
		"Zoom in slightly",
		"\n4. EXPRESSION: Change expression to tongue out.",
	)

	if !strings.Contains(prompt, "1. CLOTHING: Keep outfit exactly the same.") {
		t.Error("rendered prompt missing the keep-outfit clause")
	}
	if strings.Contains(prompt, "Change the person's outfit") {
		t.Error("fixed-outfit prompt should never ask for an outfit change")
	}
	if !strings.Contains(prompt, "2. BACKGROUND: Zoom in slightly.") {
		t.Error("rendered prompt missing the background clause")
	}
	if !strings.Contains(prompt, "4. EXPRESSION: Change expression to tongue out.") {
		t.Error("rendered prompt missing the expression clause")
	}
}

func TestRenderEmptyExpression(t *testing.T) {
	prompt := RenderRandomOutfitPrompt("hoodie", "Pan right", "")

	if strings.Contains(prompt, "4. EXPRESSION") {
		t.Error("empty expression should leave no EXPRESSION section behind")
	}
	// The requirements list still ends cleanly at the camera position line.
	if !strings.Contains(prompt, "No change in camera position\n") {
		t.Error("requirements section should end at the camera position line")
	}
}
