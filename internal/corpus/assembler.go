package corpus

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/acqcorpus/internal/chat/cleaner"
	"github.com/heartmarshall/acqcorpus/internal/domain"
)

// Record is a raw utterance record as delivered by a session reader.
// Both transcript formats satisfy it.
type Record interface {
	SpeakerLabel() string
	Utterance() string
	StartTime() string
	EndTime() string
	Translation() string
	Comment() string
	Addressee() string
	Tier(name string) (string, bool)
}

// Assembler turns raw records into utterance records using one corpus
// profile.
type Assembler struct {
	profile Profile
}

func NewAssembler(p Profile) *Assembler {
	return &Assembler{profile: p}
}

// Assemble cleans the tiers of one record, reconciles them, splits words
// and extracts morphemes. ok is false when nothing survives cleaning;
// such records carry no analyzable content and are skipped. A line whose
// whole content is untranscribed material is not skipped: it is kept as
// a single canonical marker with the Untranscribed flag set.
//
// A word count mismatch between the utterance and a morphology tier is
// not fatal: the utterance keeps its words, the morphemes are dropped and
// a warning is recorded.
func (a *Assembler) Assemble(rec Record, sourceID string) (domain.UtteranceRecord, bool) {
	c := a.profile.Cleaner
	raw := rec.Utterance()

	actual := c.CleanUtterance(c.ActualForm(raw))
	target := c.CleanUtterance(c.TargetForm(raw))
	if actual == "" && rawUntranscribed(c, raw) {
		actual = cleaner.Untranscribed
	}

	tiers := c.CrossClean(cleaner.Tiers{
		Utterance: actual,
		Seg:       a.cleanTier(rec, a.profile.Tiers.Seg, c.CleanSegTier),
		Gloss:     a.cleanTier(rec, a.profile.Tiers.Gloss, c.CleanGlossTier),
		Pos:       a.cleanTier(rec, a.profile.Tiers.Pos, c.CleanPosTier),
	})
	actual = tiers.Utterance

	if actual == "" && tiers.Seg == "" && tiers.Gloss == "" {
		return domain.UtteranceRecord{}, false
	}

	out := domain.UtteranceRecord{
		SourceID:      sourceID,
		SpeakerLabel:  rec.SpeakerLabel(),
		Actual:        actual,
		Target:        target,
		StartTime:     rec.StartTime(),
		EndTime:       rec.EndTime(),
		Translation:   c.CleanTranslation(rec.Translation()),
		Comment:       rec.Comment(),
		Addressee:     rec.Addressee(),
		Untranscribed: isUntranscribed(actual),
	}
	if st, ok := c.SentenceType(raw); ok {
		out.SentenceType = st
	}

	words := strings.Fields(actual)
	targets := strings.Fields(target)
	out.Words = make([]domain.WordRecord, len(words))
	for i, w := range words {
		wr := domain.WordRecord{
			Actual:   w,
			Word:     c.CleanWord(w),
			Language: a.profile.Language,
		}
		if len(targets) == len(words) {
			wr.Target = c.CleanWord(targets[i])
		}
		out.Words[i] = wr
	}

	a.attachMorphemes(&out, tiers, words)
	return out, true
}

// attachMorphemes aligns the morphology tiers word by word against the
// utterance and runs the extractor per word.
func (a *Assembler) attachMorphemes(out *domain.UtteranceRecord, tiers cleaner.Tiers, words []string) {
	segWords := strings.Fields(tiers.Seg)
	glossWords := strings.Fields(tiers.Gloss)
	posWords := strings.Fields(tiers.Pos)
	if len(segWords) == 0 && len(glossWords) == 0 && len(posWords) == 0 {
		return
	}

	for _, tier := range [][]string{segWords, glossWords, posWords} {
		if len(tier) != 0 && len(tier) != len(words) {
			out.Warnings = append(out.Warnings, fmt.Sprintf(
				"word count mismatch between utterance and morphology (words=%d seg=%d gloss=%d pos=%d), morphemes dropped",
				len(words), len(segWords), len(glossWords), len(posWords)))
			return
		}
	}

	c := a.profile.Cleaner
	for i := range words {
		var seg, gloss, pos string
		if i < len(segWords) {
			seg = c.CleanSegWord(segWords[i])
		}
		if i < len(glossWords) {
			gloss = c.CleanGlossWord(glossWords[i])
		}
		if i < len(posWords) {
			pos = c.CleanPosWord(posWords[i])
		}

		morphemes, warnings := a.profile.Extractor.Extract(seg, gloss, pos)
		out.Warnings = append(out.Warnings, warnings...)
		for j := range morphemes {
			morphemes[j].Segment = c.CleanSegment(morphemes[j].Segment)
			morphemes[j].Gloss = c.CleanGloss(morphemes[j].Gloss)
			morphemes[j].POS = c.CleanPos(morphemes[j].POS)
			if morphemes[j].Language == "" {
				morphemes[j].Language = a.profile.Language
			}
		}
		out.Words[i].Morphemes = morphemes
	}
}

// cleanTier looks a dependent tier up on the record and runs the
// corpus's tier-level cleaning on it.
func (a *Assembler) cleanTier(rec Record, name string, clean func(string) string) string {
	if name == "" {
		return ""
	}
	raw, ok := rec.Tier(name)
	if !ok {
		return ""
	}
	return clean(raw)
}

// rawUntranscribed reports whether a line that cleaned to nothing held
// only untranscribed material. The final cleaning rule nulls a lone
// marker, so the line is re-cleaned with its first marker doubled:
// purely untranscribed input then survives as markers, anything else
// still cleans away.
func rawUntranscribed(c cleaner.Cleaner, raw string) bool {
	unified := cleaner.UnifyUntranscribed(raw)
	if !strings.Contains(unified, cleaner.Untranscribed) {
		return false
	}
	doubled := strings.Replace(unified, cleaner.Untranscribed,
		cleaner.Untranscribed+" "+cleaner.Untranscribed, 1)
	return isUntranscribed(c.CleanUtterance(doubled))
}

// isUntranscribed reports whether a cleaned utterance consists solely of
// untranscribed markers.
func isUntranscribed(actual string) bool {
	words := strings.Fields(actual)
	if len(words) == 0 {
		return false
	}
	for _, w := range words {
		if w != cleaner.Untranscribed {
			return false
		}
	}
	return true
}
