// Package cleaner normalizes transcript tiers. The base rule chain
// implements the shared transcription conventions; per-corpus variants
// layer corpus-specific repairs on top and reconcile tiers against each
// other where the annotation schemes drifted apart.
package cleaner

import (
	"strings"

	"github.com/heartmarshall/acqcorpus/internal/domain"
)

// Tiers bundles the parallel annotation layers of one utterance for
// cross-tier reconciliation. Utterance is the cleaned orthographic line;
// Seg, Gloss and Pos are the cleaned morphology tiers.
type Tiers struct {
	Utterance string
	Seg       string
	Gloss     string
	Pos       string
}

// Cleaner normalizes the tiers of one utterance record.
//
// Order matters throughout: CleanUtterance applies an ordered rule chain,
// and CrossClean expects tiers that have already been individually
// cleaned.
type Cleaner interface {
	CleanUtterance(utterance string) string
	ActualForm(utterance string) string
	TargetForm(utterance string) string
	SentenceType(utterance string) (domain.SentenceType, bool)

	CleanWord(word string) string

	CleanSegTier(tier string) string
	CleanGlossTier(tier string) string
	CleanPosTier(tier string) string

	CleanSegWord(word string) string
	CleanGlossWord(word string) string
	CleanPosWord(word string) string

	CleanSegment(morpheme string) string
	CleanGloss(morpheme string) string
	CleanPos(morpheme string) string

	CleanTranslation(translation string) string

	CrossClean(t Tiers) Tiers
}

// Rule is one named utterance rewrite step.
type Rule struct {
	Name  string
	Apply func(string) string
}

// baseUtteranceRules is the ordered base chain. The order is a
// correctness requirement: repetitions expand before scoped symbols are
// stripped (the marker is itself a scoped symbol), terminators go before
// scoped symbols so a postcode survives to this point, omissions go after
// events so 0-tokens inside annotations are still bracketed.
var baseUtteranceRules = []Rule{
	{"null-events", NullEvents},
	{"unify-untranscribed", UnifyUntranscribed},
	{"repetitions", HandleRepetitions},
	{"terminator", RemoveTerminator},
	{"events", RemoveEvents},
	{"omissions", RemoveOmissions},
	{"linkers", RemoveLinkers},
	{"separators", RemoveSeparators},
	{"ca-marks", RemoveCAMarks},
	{"pauses", RemovePausesBetweenWords},
	{"scoped-symbols", RemoveScopedSymbols},
	{"null-remaining", NullRemaining},
}

// Base implements the shared conventions. Variants embed it and override
// what their corpus annotates differently.
type Base struct{}

func (Base) CleanUtterance(utt string) string {
	for _, r := range baseUtteranceRules {
		utt = r.Apply(utt)
	}
	return CollapseWhitespace(utt)
}

// ActualForm resolves shortenings, fillers, fragments and replacements to
// what the speaker actually said. Runs on the raw utterance, before
// CleanUtterance.
func (Base) ActualForm(utt string) string {
	utt = ShorteningActual(utt)
	utt = RemoveFillerMarkers(utt)
	utt = FragmentActual(utt)
	return ReplacementActual(utt)
}

// TargetForm resolves the same markers to the intended adult form.
func (Base) TargetForm(utt string) string {
	utt = ShorteningTarget(utt)
	utt = RemoveFillerMarkers(utt)
	utt = FragmentTarget(utt)
	return ReplacementTarget(utt)
}

// SentenceType reads the terminator off the raw utterance. The second
// return value is false when no terminator of the inventory is present.
func (Base) SentenceType(utt string) (domain.SentenceType, bool) {
	term := Terminator(utt)
	if term == "" {
		return "", false
	}
	return domain.SentenceTypeForTerminator(term)
}

func (Base) CleanWord(word string) string {
	word = RemoveFormMarkers(word)
	word = RemoveDrawls(word)
	word = RemoveWordPauses(word)
	word = RemoveBlocking(word)
	return RemoveFillerWord(word)
}

// Morphology-tier cleaning defaults to terminator removal plus whitespace
// normalization; corpora with richer coding tiers override.

func (Base) CleanSegTier(tier string) string   { return RemoveTerminator(tier) }
func (Base) CleanGlossTier(tier string) string { return RemoveTerminator(tier) }
func (Base) CleanPosTier(tier string) string   { return RemoveTerminator(tier) }

func (Base) CleanSegWord(word string) string   { return word }
func (Base) CleanGlossWord(word string) string { return word }
func (Base) CleanPosWord(word string) string   { return word }

func (Base) CleanSegment(m string) string { return m }
func (Base) CleanGloss(m string) string   { return m }
func (Base) CleanPos(m string) string     { return m }

func (Base) CleanTranslation(translation string) string {
	return CollapseWhitespace(translation)
}

// CrossClean is the identity for corpora whose tiers need no
// reconciliation.
func (Base) CrossClean(t Tiers) Tiers { return t }

// splitWords splits a cleaned tier into word tokens.
func splitWords(tier string) []string {
	return strings.Fields(tier)
}
