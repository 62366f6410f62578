package cleaner

import (
	"regexp"
	"strings"
)

var (
	nungonDigitSlashRe = regexp.MustCompile(`(\d+)/(\d+)`)
	nungonNullTiers    = map[string]bool{"xxx": true, "xxxx": true, "<xxx>": true, "?": true}
)

// Nungon adapts the base chain to the Sarvasy Nungon scheme: a combined
// POS^gloss coding tier with its own untranscribed markers, ambiguous
// multi-variant codings, and slash/plus-joined composite glosses.
type Nungon struct {
	Base
}

func (c Nungon) cleanMorphTier(tier string) string {
	if nungonNullTiers[CollapseWhitespace(tier)] {
		return ""
	}
	tier = RemoveEvents(tier)
	tier = RemoveTerminator(tier)
	return RemoveScopedSymbols(tier)
}

func (c Nungon) CleanSegTier(tier string) string   { return c.cleanMorphTier(tier) }
func (c Nungon) CleanGlossTier(tier string) string { return c.cleanMorphTier(tier) }
func (c Nungon) CleanPosTier(tier string) string   { return c.cleanMorphTier(tier) }

func (c Nungon) cleanMorphWord(word string) string {
	if word == "?" || word == "xxx" {
		return Untranscribed
	}
	word = strings.TrimPrefix(word, "?")
	word = nullAmbiguousCoding(word)
	word = nungonDigitSlashRe.ReplaceAllString(word, "$1.$2")
	return strings.ReplaceAll(word, "+", ".")
}

func (c Nungon) CleanSegWord(word string) string   { return c.cleanMorphWord(word) }
func (c Nungon) CleanGlossWord(word string) string { return c.cleanMorphWord(word) }
func (c Nungon) CleanPosWord(word string) string   { return c.cleanMorphWord(word) }

// nullAmbiguousCoding handles #-joined coding variants. A word offering
// several readings ("N^mor-mor#V^mor") keeps only the shape of its first
// variant with every slot unknown; a plain trailing # is dropped.
func nullAmbiguousCoding(word string) string {
	variant, rest, found := strings.Cut(word, "#")
	if !found {
		return word
	}
	if rest == "" {
		return variant
	}

	morphemes := strings.Split(variant, "-")
	for i, m := range morphemes {
		if strings.Contains(m, "^") {
			morphemes[i] = Untranscribed + "^" + Untranscribed
		} else {
			morphemes[i] = Untranscribed
		}
	}
	return strings.Join(morphemes, "-")
}
