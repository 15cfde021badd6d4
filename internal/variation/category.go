// Package variation implements the core naming and prompt-composition logic
// for selfie variations: which expression to request, how the prompt is
// assembled, and how output files are named and purged between batches.
package variation

import "fmt"

// Family identifies the broad kind of expression variation being requested.
//
// The snapchat and snapchat-same-outfit families are distinct variants rather
// than overlapping string prefixes, so no ordered substring matching is needed
// anywhere downstream.
type Family int

const (
	// FamilyNeutral requests a different neutral expression with a head-tilt change.
	FamilyNeutral Family = iota
	// FamilySobbing requests a sobbing expression.
	FamilySobbing
	// FamilySnapchat requests one of the snapchat-style expressions with a fresh outfit.
	FamilySnapchat
	// FamilySnapchatSame requests a snapchat-style expression keeping one shared outfit.
	FamilySnapchatSame
	// FamilyOther covers unrecognized category strings.
	FamilyOther
)

// Emotion is the snapchat-style expression sub-type.
type Emotion string

const (
	EmotionGoofy    Emotion = "goofy"
	EmotionTongue   Emotion = "tongue"
	EmotionConfused Emotion = "confused"
	EmotionShocked  Emotion = "shocked"
	EmotionCrying   Emotion = "crying"
)

// SnapchatEmotions lists the snapchat sub-types in batch order.
var SnapchatEmotions = []Emotion{
	EmotionGoofy,
	EmotionTongue,
	EmotionConfused,
	EmotionShocked,
	EmotionCrying,
}

// Category is a tagged expression category. Emotion is set only for the two
// snapchat families; Raw is set only for FamilyOther.
type Category struct {
	Family  Family
	Emotion Emotion
	Raw     string
}

// Neutral returns the neutral-expression category.
func Neutral() Category { return Category{Family: FamilyNeutral} }

// Sobbing returns the sobbing-expression category.
func Sobbing() Category { return Category{Family: FamilySobbing} }

// Snapchat returns the snapchat category for the given emotion.
func Snapchat(e Emotion) Category { return Category{Family: FamilySnapchat, Emotion: e} }

// SnapchatSame returns the same-outfit snapchat category for the given emotion.
func SnapchatSame(e Emotion) Category { return Category{Family: FamilySnapchatSame, Emotion: e} }

// Other wraps an unrecognized category string.
func Other(raw string) Category { return Category{Family: FamilyOther, Raw: raw} }

// String renders the category in the flat form used in logs and the fallback
// filename branch, e.g. "neutral", "snapchat_goofy", "snapchat_same_crying".
func (c Category) String() string {
	switch c.Family {
	case FamilyNeutral:
		return "neutral"
	case FamilySobbing:
		return "sobbing"
	case FamilySnapchat:
		return "snapchat_" + string(c.Emotion)
	case FamilySnapchatSame:
		return "snapchat_same_" + string(c.Emotion)
	default:
		return c.Raw
	}
}

// Display renders a human-readable label for progress messages,
// e.g. "Snapchat Goofy" for snapchat_goofy.
func (c Category) Display() string {
	s := c.String()
	out := make([]byte, len(s))
	upper := true
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '_' {
			out[i] = ' '
			upper = true
			continue
		}
		if upper && ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		upper = false
		out[i] = ch
	}
	return string(out)
}

// ParseCategory maps a flat category string back to a tagged Category.
// Unrecognized strings become FamilyOther, never an error.
func ParseCategory(s string) Category {
	switch s {
	case "neutral":
		return Neutral()
	case "sobbing":
		return Sobbing()
	}
	for _, e := range SnapchatEmotions {
		switch s {
		case fmt.Sprintf("snapchat_same_%s", e):
			return SnapchatSame(e)
		case fmt.Sprintf("snapchat_%s", e):
			return Snapchat(e)
		}
	}
	return Other(s)
}
