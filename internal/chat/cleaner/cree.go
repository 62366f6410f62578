package cleaner

import (
	"regexp"
	"strings"
)

var (
	creeAngleQuoteRe = regexp.MustCompile(`[‹›]`)
	creeCompositeRe  = regexp.MustCompile(`([0-9A-Za-z]+)/([0-9A-Za-z]+)`)
)

// Cree adapts the base chain to the Chisasibi Cree scheme: guillemet
// quoting on the main line, * placeholders for unanalyzed morphemes, and
// gloss-tier English spans that have to be pulled from the main line.
type Cree struct {
	Base
}

func (c Cree) CleanUtterance(utt string) string {
	utt = creeAngleQuoteRe.ReplaceAllString(utt, "")
	return c.Base.CleanUtterance(utt)
}

func (Cree) cleanMorphWord(word string) string {
	if word == "*" {
		return ""
	}
	return word
}

func (c Cree) CleanSegWord(word string) string   { return c.cleanMorphWord(word) }
func (c Cree) CleanGlossWord(word string) string { return c.cleanMorphWord(word) }
func (c Cree) CleanPosWord(word string) string   { return c.cleanMorphWord(word) }

// CleanGloss folds slash-joined composite glosses into dot notation.
func (Cree) CleanGloss(m string) string {
	return creeCompositeRe.ReplaceAllString(m, "$1.$2")
}

func (Cree) CleanPos(m string) string {
	return creeCompositeRe.ReplaceAllString(m, "$1.$2")
}

// CrossClean substitutes foreign-span gloss placeholders: a gloss word
// marked "Eng" stands for the English word spoken on the main line, so
// the orthographic word at the same index replaces it. Applied only when
// the two tiers have equal word counts; otherwise the index mapping is
// unreliable and the placeholder stays.
func (Cree) CrossClean(t Tiers) Tiers {
	words := splitWords(t.Utterance)
	glosses := splitWords(t.Gloss)
	if len(words) != len(glosses) {
		return t
	}

	changed := false
	for i, g := range glosses {
		if g == "Eng" {
			glosses[i] = words[i]
			changed = true
		}
	}
	if changed {
		t.Gloss = strings.Join(glosses, " ")
	}
	return t
}
