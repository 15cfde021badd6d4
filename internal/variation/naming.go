package variation

import (
	"fmt"
	"path/filepath"
	"strings"
)

// purgeExtensions are the output extensions considered when purging a prior
// batch. The model only ever returns PNG or JPEG payloads.
var purgeExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// Prefix returns the stable naming root shared by every output derived from
// one base image: the stem up to and including its first '-', or the whole
// stem plus a trailing '-' when it contains none.
func Prefix(baseStem string) string {
	if i := strings.Index(baseStem, "-"); i >= 0 {
		return baseStem[:i+1]
	}
	return baseStem + "-"
}

// DeriveFilename derives the output filename for one variation.
//
// The sequence number appears in the name only for the numbered families
// (neutral, sobbing, and the fallback); snapchat outputs are keyed by emotion
// since each batch produces exactly one image per emotion.
func DeriveFilename(baseStem string, cat Category, seq int, ext string) string {
	prefix := Prefix(baseStem)

	switch cat.Family {
	case FamilyNeutral:
		return fmt.Sprintf("%sbaseimage%d%s", prefix, seq, ext)
	case FamilySobbing:
		return fmt.Sprintf("%scryingbaseimage%d%s", prefix, seq, ext)
	case FamilySnapchatSame:
		return fmt.Sprintf("%ssnapchatsame%s%s", prefix, cat.Emotion, ext)
	case FamilySnapchat:
		return fmt.Sprintf("%ssnapchat%s%s", prefix, cat.Emotion, ext)
	default:
		return fmt.Sprintf("%s%s_variation_%02d%s", prefix, cat.String(), seq, ext)
	}
}

// PurgeTargets selects which of the existing filenames belong to a prior
// batch of the same category and must be deleted before new outputs are
// written. Only .png/.jpg/.jpeg files are candidates.
//
// The snapchat and snapchat-same-outfit sets are disjoint: the generic
// snapchat family never claims a "snapchatsame" file.
func PurgeTargets(existing []string, cat Category, prefix string) []string {
	var targets []string
	for _, name := range existing {
		if !purgeExtensions[strings.ToLower(filepath.Ext(name))] {
			continue
		}

		match := false
		switch cat.Family {
		case FamilyNeutral:
			match = strings.HasPrefix(name, prefix+"baseimage") &&
				!strings.HasPrefix(name, prefix+"cryingbaseimage")
		case FamilySobbing:
			match = strings.HasPrefix(name, prefix+"cryingbaseimage")
		case FamilySnapchat:
			match = strings.HasPrefix(name, prefix+"snapchat") &&
				!strings.HasPrefix(name, prefix+"snapchatsame")
		case FamilySnapchatSame:
			match = strings.HasPrefix(name, prefix+"snapchatsame")
		}

		if match {
			targets = append(targets, name)
		}
	}
	return targets
}
