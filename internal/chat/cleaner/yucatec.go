package cleaner

import (
	"regexp"
	"strings"
)

// yucatecHyphenRe matches a hyphen wrongly used instead of the tag
// separator after a suffix tag: "stem:SFX-sfx" → "stem:SFX|sfx".
var yucatecHyphenRe = regexp.MustCompile(`(:[A-Z0-9]+)-`)

// Yucatec adapts the base chain to the Pfeiler Yucatec scheme, whose
// morphology tier mixes up its hyphen, colon and pipe separators.
type Yucatec struct {
	Base
}

func (Yucatec) cleanMorphWord(word string) string {
	word = yucatecHyphenRe.ReplaceAllString(word, "$1|")
	word = strings.TrimSuffix(word, ":-")
	word = strings.Trim(word, ":")
	return strings.TrimSuffix(word, "-")
}

func (c Yucatec) CleanSegWord(word string) string   { return c.cleanMorphWord(word) }
func (c Yucatec) CleanGlossWord(word string) string { return c.cleanMorphWord(word) }
func (c Yucatec) CleanPosWord(word string) string   { return c.cleanMorphWord(word) }
