package seamark

import (
	"unicode"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"
)

// Label is the text drawn next to a mark. Script and Direction let a shaping
// renderer lay out names in any writing system.
type Label struct {
	Position  Point
	Text      string
	Script    language.Script
	Direction di.Direction
}

// NewLabel creates a label for text anchored at pos.
func NewLabel(pos Point, text string) Label {
	return Label{
		Position:  pos,
		Text:      text,
		Script:    labelScript(text),
		Direction: labelDirection(text),
	}
}

// labelScript returns the script of the first character that belongs to a
// specific script, skipping spaces, digits and punctuation.
func labelScript(text string) language.Script {
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		if s := language.LookupScript(r); s != language.Common && s != language.Inherited {
			return s
		}
	}
	return language.Latin
}

// labelDirection returns the direction of the first strongly directional
// character. Digits and punctuation are weak and skipped.
func labelDirection(text string) di.Direction {
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.R, bidi.AL:
			return di.DirectionRTL
		case bidi.L:
			return di.DirectionLTR
		}
	}
	return di.DirectionLTR
}
