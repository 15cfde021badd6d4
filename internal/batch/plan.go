// Package batch drives one variation batch end to end: resolve the base
// image, purge prior outputs of the same category, and generate each
// requested variation sequentially with a pacing delay between API calls.
package batch

import (
	"fmt"

	"github.com/knguyenphu-toffee/base-image-editor/internal/variation"
)

// Kind selects which batch the user asked for.
type Kind int

const (
	// KindNeutral produces 5 numbered neutral-expression variations.
	KindNeutral Kind = iota
	// KindSobbing produces 5 numbered sobbing-expression variations.
	KindSobbing
	// KindSnapchat produces one variation per snapchat expression type.
	KindSnapchat
	// KindSnapchatSameOutfit produces the snapchat set wearing one shared outfit.
	KindSnapchatSameOutfit
)

// String returns the flat name used in logs and metrics dimensions.
func (k Kind) String() string {
	switch k {
	case KindNeutral:
		return "neutral"
	case KindSobbing:
		return "sobbing"
	case KindSnapchat:
		return "snapchat"
	case KindSnapchatSameOutfit:
		return "snapchat_same_outfit"
	default:
		return "unknown"
	}
}

// ParseKind maps a flat batch name to its Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "neutral":
		return KindNeutral, nil
	case "sobbing":
		return KindSobbing, nil
	case "snapchat":
		return KindSnapchat, nil
	case "snapchat_same_outfit":
		return KindSnapchatSameOutfit, nil
	default:
		return KindNeutral, fmt.Errorf("unknown batch kind %q (valid: neutral, sobbing, snapchat, snapchat_same_outfit)", s)
	}
}

// numberedBatchSize is how many variations a neutral or sobbing batch produces.
const numberedBatchSize = 5

// Request is one planned variation within a batch. Sequence numbers are
// 1-based and unique within the plan.
type Request struct {
	Category    variation.Category
	Sequence    int
	FixedOutfit string
}

// BuildPlan expands a batch kind into its ordered variation requests.
//
// For the same-outfit batch one outfit is sampled up front and shared by
// every request, so the whole set shows the same clothes.
func BuildPlan(kind Kind, composer *variation.Composer) []Request {
	switch kind {
	case KindSobbing:
		return numberedPlan(variation.Sobbing())
	case KindSnapchat:
		plan := make([]Request, 0, len(variation.SnapchatEmotions))
		for i, emotion := range variation.SnapchatEmotions {
			plan = append(plan, Request{
				Category: variation.Snapchat(emotion),
				Sequence: i + 1,
			})
		}
		return plan
	case KindSnapchatSameOutfit:
		outfit := composer.RandomOutfit()
		plan := make([]Request, 0, len(variation.SnapchatEmotions))
		for i, emotion := range variation.SnapchatEmotions {
			plan = append(plan, Request{
				Category:    variation.SnapchatSame(emotion),
				Sequence:    i + 1,
				FixedOutfit: outfit,
			})
		}
		return plan
	default:
		return numberedPlan(variation.Neutral())
	}
}

// numberedPlan builds a plan of numberedBatchSize requests of one category.
func numberedPlan(cat variation.Category) []Request {
	plan := make([]Request, 0, numberedBatchSize)
	for i := 1; i <= numberedBatchSize; i++ {
		plan = append(plan, Request{Category: cat, Sequence: i})
	}
	return plan
}

// purgeCategory returns a category carrying the family whose prior outputs
// the batch must purge before writing.
func (k Kind) purgeCategory() variation.Category {
	switch k {
	case KindSobbing:
		return variation.Sobbing()
	case KindSnapchat:
		return variation.Snapchat(variation.EmotionGoofy)
	case KindSnapchatSameOutfit:
		return variation.SnapchatSame(variation.EmotionGoofy)
	default:
		return variation.Neutral()
	}
}
