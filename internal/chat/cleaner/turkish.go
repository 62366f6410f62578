package cleaner

import (
	"regexp"
	"strings"
)

// turkishComplexRe matches a dual-POS morphology token: an outer POS tag
// wrapping an inner-tagged complex, "N|N|kadın_terzi...".
var turkishComplexRe = regexp.MustCompile(`^([A-Z:a-z]+)\|([A-Z:a-z]+)\|(\S+)$`)

// Turkish adapts the base chain to the Aksu-Koç scheme. Its single
// morphology tier packs compounds into one token while the main line
// may write them as one joined word or as two words; CrossClean brings
// the two tiers back into one-token-per-word alignment.
type Turkish struct {
	Base
}

func (Turkish) cleanMorphWord(word string) string {
	if word == "&" {
		return Untranscribed
	}
	return word
}

func (c Turkish) CleanSegWord(word string) string   { return c.cleanMorphWord(word) }
func (c Turkish) CleanGlossWord(word string) string { return c.cleanMorphWord(word) }
func (c Turkish) CleanPosWord(word string) string   { return c.cleanMorphWord(word) }

// CrossClean re-splits morphological complexes.
//
// A dual-POS token "P|P|stem1_stem2" (or "+"-joined) is replaced by one
// inner-tagged token per stem, and the orthographic word at the same
// index is split on the same separator when it splits into as many
// parts. Conversely, a single morphological word whose stem joins two
// stems with "_" while the main line writes two words makes the two
// orthographic words merge. Anything that does not match cleanly is left
// for the alignment check downstream.
func (c Turkish) CrossClean(t Tiers) Tiers {
	words := splitWords(t.Utterance)
	morphs := splitWords(t.Seg)

	outWords := make([]string, 0, len(words))
	outMorphs := make([]string, 0, len(morphs))

	wi := 0
	for _, m := range morphs {
		word := ""
		if wi < len(words) {
			word = words[wi]
		}

		if sm := turkishComplexRe.FindStringSubmatch(m); sm != nil {
			if sep := complexSeparator(sm[3]); sep != "" {
				stems := strings.Split(sm[3], sep)
				for _, s := range stems {
					outMorphs = append(outMorphs, sm[2]+"|"+s)
				}
				if parts := strings.Split(word, sep); len(parts) == len(stems) {
					outWords = append(outWords, parts...)
				} else if word != "" {
					outWords = append(outWords, word)
				}
				wi++
				continue
			}
		}

		if stem1, stem2, ok := strings.Cut(morphStem(m), "_"); ok &&
			word != "" && !strings.Contains(word, "_") &&
			wi+1 < len(words) &&
			stemMatchesWord(stem1, word) && stemMatchesWord(stem2, words[wi+1]) {
			outWords = append(outWords, word+"_"+words[wi+1])
			outMorphs = append(outMorphs, m)
			wi += 2
			continue
		}

		outMorphs = append(outMorphs, m)
		if word != "" {
			outWords = append(outWords, word)
		}
		wi++
	}
	if wi < len(words) {
		outWords = append(outWords, words[wi:]...)
	}

	t.Utterance = strings.Join(outWords, " ")
	seg := strings.Join(outMorphs, " ")
	if t.Gloss == t.Seg {
		t.Gloss = seg
	}
	if t.Pos == t.Seg {
		t.Pos = seg
	}
	t.Seg = seg
	return t
}

func complexSeparator(stem string) string {
	switch {
	case strings.Contains(stem, "_"):
		return "_"
	case strings.Contains(stem, "+"):
		return "+"
	}
	return ""
}

// morphStem extracts the stem of a morphology token: the part after the
// last POS separator, before any suffix chain.
func morphStem(m string) string {
	if i := strings.LastIndex(m, "|"); i >= 0 {
		m = m[i+1:]
	}
	if i := strings.Index(m, "-"); i >= 0 {
		m = m[:i]
	}
	return m
}

// stemMatchesWord is the prefix heuristic for pairing a morphological
// stem with an orthographic word despite suffixation differences.
func stemMatchesWord(stem, word string) bool {
	s := []rune(strings.ToLower(stem))
	w := []rune(strings.ToLower(word))
	if len(s) < 2 || len(w) < 2 {
		return len(s) > 0 && len(w) > 0 && s[0] == w[0]
	}
	return s[0] == w[0] && s[1] == w[1]
}
