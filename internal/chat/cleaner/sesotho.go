package cleaner

import (
	"regexp"
	"strings"
)

var (
	sesothoParenWordRe  = regexp.MustCompile(`^\(\S+\)$`)
	sesothoTimestampRe  = regexp.MustCompile(`\d+_\d+`)
	nounClassSpaceRe    = regexp.MustCompile(`\(([0-9a-z/]+) , ([0-9a-z/]+)\)`)
	nounClassSlashRe    = regexp.MustCompile(`\((\d+[a-z]?),(\d+[a-z]?)/(\d+[a-z]?)\)`)
	properNameGlossRe   = regexp.MustCompile(`n\^(Name|Place|Game|Song)`)
	nounMarkerRe        = regexp.MustCompile(`n\^(\d)`)
	verbMarkerRe        = regexp.MustCompile(`_v\^`)
	nominalConcordRe    = regexp.MustCompile(`^(d|lr|obr|or|pn|ps)(\d+)$`)
	parenCharReplacer   = strings.NewReplacer("(", "", ")", "")
)

// Sesotho adapts the base chain to the Demuth Sesotho annotation scheme:
// fully parenthesized words are post-hoc contraction glosses and vanish
// from every tier, the coding tier mixes gloss and POS material that
// needs repair before it can be split.
type Sesotho struct {
	Base
}

func (c Sesotho) CleanUtterance(utt string) string {
	utt = removeParenthesizedWords(utt)
	utt = parenCharReplacer.Replace(utt)
	return c.Base.CleanUtterance(utt)
}

// ActualForm is the identity: the scheme has no shortening or
// replacement annotation, and parentheses mean contraction, not
// omission. Same for TargetForm.
func (Sesotho) ActualForm(utt string) string { return utt }

func (Sesotho) TargetForm(utt string) string { return utt }

func (Sesotho) CleanSegTier(tier string) string {
	return RemoveTerminator(tier)
}

func (c Sesotho) CleanGlossTier(tier string) string {
	tier = nounClassSpaceRe.ReplaceAllString(tier, "($1,$2)")
	tier = nounClassSlashRe.ReplaceAllString(tier, "($1,$2|$3)")
	return RemoveTerminator(tier)
}

func (c Sesotho) CleanPosTier(tier string) string {
	return c.CleanGlossTier(tier)
}

func (Sesotho) CleanSegWord(word string) string {
	return parenCharReplacer.Replace(word)
}

func (c Sesotho) CleanGlossWord(word string) string {
	word = CleanProperNameGloss(word)
	word = RemoveNounMarkers(word)
	word = RemoveVerbMarkers(word)
	word = ReplaceConcatenators(word)
	word = RemoveNominalConcordMarkers(word)
	return UnifyUntranscribedGloss(word)
}

func (c Sesotho) CleanPosWord(word string) string {
	return c.CleanGlossWord(word)
}

func (Sesotho) CleanTranslation(translation string) string {
	return CollapseWhitespace(sesothoTimestampRe.ReplaceAllString(translation, ""))
}

// CrossClean removes contractions: a segment word fully in parentheses
// is deleted together with the gloss and POS words at the same index.
// The segment tier drives; gloss/POS tokens beyond its length survive.
func (Sesotho) CrossClean(t Tiers) Tiers {
	segs := splitWords(t.Seg)
	glosses := splitWords(t.Gloss)
	poses := splitWords(t.Pos)

	keptSegs := make([]string, 0, len(segs))
	keptGlosses := make([]string, 0, len(glosses))
	keptPoses := make([]string, 0, len(poses))

	for i, seg := range segs {
		if sesothoParenWordRe.MatchString(seg) {
			continue
		}
		keptSegs = append(keptSegs, seg)
		if i < len(glosses) {
			keptGlosses = append(keptGlosses, glosses[i])
		}
		if i < len(poses) {
			keptPoses = append(keptPoses, poses[i])
		}
	}
	if len(glosses) > len(segs) {
		keptGlosses = append(keptGlosses, glosses[len(segs):]...)
	}
	if len(poses) > len(segs) {
		keptPoses = append(keptPoses, poses[len(segs):]...)
	}

	t.Seg = strings.Join(keptSegs, " ")
	t.Gloss = strings.Join(keptGlosses, " ")
	t.Pos = strings.Join(keptPoses, " ")
	return t
}

// removeParenthesizedWords drops words whose every character sits in
// parentheses.
func removeParenthesizedWords(utt string) string {
	tokens := strings.Fields(utt)
	kept := tokens[:0]
	for _, tok := range tokens {
		if sesothoParenWordRe.MatchString(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	return strings.Join(kept, " ")
}

// CleanProperNameGloss rewrites anonymized proper-name glosses:
// "n^Name" → "a_name".
func CleanProperNameGloss(gloss string) string {
	return properNameGlossRe.ReplaceAllStringFunc(gloss, func(m string) string {
		return "a_" + strings.ToLower(strings.TrimPrefix(m, "n^"))
	})
}

// RemoveNounMarkers strips the noun marker before a noun-class number:
// "n^6-field" → "6-field".
func RemoveNounMarkers(gloss string) string {
	return nounMarkerRe.ReplaceAllString(gloss, "$1")
}

// RemoveVerbMarkers strips the verb marker after a concatenator:
// "sm2s-t^p_v^do-m^in" → "sm2s-t^p_do-m^in".
func RemoveVerbMarkers(gloss string) string {
	return verbMarkerRe.ReplaceAllString(gloss, "_")
}

// ReplaceConcatenators turns the underscore between a grammatical gloss
// and a following plain gloss into a dot, morpheme by morpheme.
// Underscores joining the parts of a multi-word stem stay.
func ReplaceConcatenators(glossWord string) string {
	morphemes := strings.Split(glossWord, "-")
	for i, m := range morphemes {
		idx := strings.Index(m, "_")
		if idx < 0 {
			continue
		}
		if !strings.Contains(m[idx+1:], "^") {
			morphemes[i] = m[:idx] + "." + m[idx+1:]
		}
	}
	return strings.Join(morphemes, "-")
}

// RemoveNominalConcordMarkers reduces a nominal concord gloss to its
// noun-class number: "obr17" → "17".
func RemoveNominalConcordMarkers(gloss string) string {
	return nominalConcordRe.ReplaceAllString(gloss, "$2")
}

// UnifyUntranscribedGloss folds the scheme's unknown-gloss fillers into
// the canonical marker.
func UnifyUntranscribedGloss(gloss string) string {
	if gloss == "word" || gloss == "xxx" {
		return Untranscribed
	}
	return gloss
}
