package variation

import (
	"math/rand"
	"strings"
	"time"

	"github.com/knguyenphu-toffee/base-image-editor/internal/assets"
)

// tops and bottoms intentionally repeat a few common items so they come up
// more often under uniform sampling.
var tops = []string{
	"plain t-shirt", "hoodie", "sweater", "cardigan", "blouse", "tank top",
	"long-sleeve shirt", "polo shirt", "button-up shirt", "crop top",
	"plain t-shirt", "graphic tee", "hoodie", "crewneck sweater", "zip-up hoodie",
	"cardigan", "blouse", "tank top", "long-sleeve shirt", "crop top",
	"off-shoulder top", "button-up shirt", "polo shirt", "tube top", "knit top",
	"halter top", "peplum top", "wrap top", "mock neck top", "camisole",
}

var bottoms = []string{
	"jeans", "leggings", "sweatpants", "shorts", "joggers", "chinos",
	"casual pants", "denim shorts", "yoga pants", "wide-leg trousers",
	"jeans", "denim shorts", "leggings", "joggers", "sweatpants",
	"cargo pants", "bike shorts", "mini skirt", "midi skirt",
	"culottes", "overalls", "capri pants", "khaki shorts", "skort",
	"paperbag waist shorts", "pleated skirt", "track pants", "flare jeans",
	"athletic shorts",
}

// accessories includes two empty entries so roughly 40% of outfits carry none.
var accessories = []string{
	"", "with a simple necklace", "with small earrings", "with a bracelet", "",
}

var backgrounds = []string{
	"slightly shift the camera angle to show more of the left side of the bedroom",
	"adjust the view to reveal more of the right side of the room",
	"shift the perspective to show a bit more of the background wall",
	"move the viewpoint to include more of the bedroom decor in the background",
	"adjust the angle to show a different section of the room's furniture",
	"shift the frame to reveal more of the bedroom's ambient lighting",
	"change the perspective to show a different corner of the bedroom",
	"modify the view to include more of the bedroom's wall decorations",
	"adjust the framing to show a slightly different portion of the room",
	"shift the camera position to reveal different bedroom elements in the background",
}

// Source supplies random indices for vocabulary sampling. *rand.Rand
// satisfies it; tests inject deterministic or recording implementations.
type Source interface {
	Intn(n int) int
}

// Composer builds the natural-language instruction string sent to the image
// model for one variation request. It is total: every Category, including
// unrecognized ones, yields a usable prompt.
type Composer struct {
	src Source
}

// NewComposer creates a Composer drawing randomness from src.
// A nil src falls back to a time-seeded generator.
func NewComposer(src Source) *Composer {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Composer{src: src}
}

// RandomOutfit samples one top, one bottom, and one optional accessory and
// joins them into a casual outfit description.
func (c *Composer) RandomOutfit() string {
	top := tops[c.src.Intn(len(tops))]
	bottom := bottoms[c.src.Intn(len(bottoms))]
	accessory := accessories[c.src.Intn(len(accessories))]

	return strings.TrimSpace("neutral colored " + top + " and " + bottom + " " + accessory)
}

// Compose builds the full variation prompt for the given category.
//
// When fixedOutfit is non-empty the clothing section instructs the model to
// keep the outfit exactly the same and no outfit sampling occurs; otherwise
// a fresh outfit is sampled. The background shift is always sampled. The
// returned string is never mutated afterwards.
func (c *Composer) Compose(cat Category, fixedOutfit string) string {
	var outfit string
	if fixedOutfit == "" {
		outfit = c.RandomOutfit()
	}

	background := backgrounds[c.src.Intn(len(backgrounds))]
	expression := expressionClause(cat)

	if fixedOutfit != "" {
		return assets.RenderFixedOutfitPrompt(background, expression)
	}
	return assets.RenderRandomOutfitPrompt(outfit, background, expression)
}

// expressionClause returns the numbered EXPRESSION section for the category,
// or an empty string for unrecognized categories.
func expressionClause(cat Category) string {
	switch cat.Family {
	case FamilyNeutral:
		return "\n4. EXPRESSION: alter her expression to a different neutral expression with a change in head tilt."
	case FamilySobbing:
		return "\n4. EXPRESSION: Change her expression and make it look like she is sobbing."
	case FamilySnapchat, FamilySnapchatSame:
		switch cat.Emotion {
		case EmotionGoofy:
			return "\n4. EXPRESSION: have a silly face with side eye. bring camera closer to face."
		case EmotionTongue:
			return "\n4. EXPRESSION: have a goofy face with silly tongue out. bring camera closer to face."
		case EmotionConfused:
			return "\n4. EXPRESSION: have a shocked face. bring camera closer to face."
		case EmotionShocked:
			return "\n4. EXPRESSION: have a silly confused face. bring camera closer to face."
		case EmotionCrying:
			return "\n4. EXPRESSION: Change her expression and make it look like she is sobbing. Bring camera closer to face"
		}
	}
	return ""
}
