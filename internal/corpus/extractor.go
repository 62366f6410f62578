// Package corpus joins cleaned tiers into persistence-ready utterance
// records: per-corpus morpheme extraction, alignment checking and record
// assembly.
package corpus

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/heartmarshall/acqcorpus/internal/domain"
)

// Extractor splits one word's aligned tier strings into morphemes.
// The returned warnings describe lossy repairs (truncation, unparsable
// codings); they never abort extraction.
type Extractor interface {
	Extract(segWord, glossWord, posWord string) ([]domain.MorphemeRecord, []string)
}

// splitParts splits a tier word on sep; an empty word has no parts.
func splitParts(word, sep string) []string {
	if word == "" {
		return nil
	}
	return strings.Split(word, sep)
}

// ZipExtractor aligns three independently coded tier words position by
// position after splitting each on Sep. On a count mismatch the shortest
// non-empty tier wins and the rest is truncated, with a warning: silent
// mis-joins are worse than documented loss.
type ZipExtractor struct {
	Sep string
}

func (e ZipExtractor) Extract(segWord, glossWord, posWord string) ([]domain.MorphemeRecord, []string) {
	segs := splitParts(segWord, e.Sep)
	glosses := splitParts(glossWord, e.Sep)
	poses := splitParts(posWord, e.Sep)

	n := 0
	mismatch := false
	for _, parts := range [][]string{segs, glosses, poses} {
		if parts == nil {
			continue
		}
		if n == 0 || len(parts) < n {
			if n != 0 {
				mismatch = true
			}
			n = len(parts)
		} else if len(parts) > n {
			mismatch = true
		}
	}
	if n == 0 {
		return nil, nil
	}

	var warnings []string
	if mismatch {
		warnings = append(warnings, fmt.Sprintf(
			"morpheme count mismatch (seg=%d gloss=%d pos=%d), truncated to %d",
			len(segs), len(glosses), len(poses), n))
	}

	morphemes := make([]domain.MorphemeRecord, n)
	for i := 0; i < n; i++ {
		m := domain.MorphemeRecord{Type: domain.MorphemeUnknown}
		if i < len(segs) {
			m.Segment = segs[i]
		}
		if i < len(glosses) {
			m.Gloss = glosses[i]
		}
		if i < len(poses) {
			m.POS = poses[i]
		}
		morphemes[i] = m
	}
	return morphemes, warnings
}

// inuktitutMorphemeRe splits one "POS|segment^gloss" coding.
var inuktitutMorphemeRe = regexp.MustCompile(`^(.*)\|(.*?)\^(.*)$`)

// InuktitutExtractor reads the combined morphology tier, where the
// morphemes of a word are joined by "+" and each carries POS, segment
// and gloss in one coding.
type InuktitutExtractor struct{}

func (InuktitutExtractor) Extract(segWord, _, _ string) ([]domain.MorphemeRecord, []string) {
	parts := splitParts(segWord, "+")
	if parts == nil {
		return nil, nil
	}

	var warnings []string
	morphemes := make([]domain.MorphemeRecord, 0, len(parts))
	for _, p := range parts {
		m := inuktitutMorphemeRe.FindStringSubmatch(p)
		if m == nil {
			warnings = append(warnings, fmt.Sprintf("unparsable morpheme coding %q", p))
			morphemes = append(morphemes, domain.MorphemeRecord{
				Segment: p,
				Type:    domain.MorphemeUnknown,
			})
			continue
		}
		morphemes = append(morphemes, domain.MorphemeRecord{
			POS:     m[1],
			Segment: m[2],
			Gloss:   m[3],
			Type:    domain.MorphemeUnknown,
		})
	}
	return morphemes, warnings
}

var sesothoNounClassRe = regexp.MustCompile(`\(\d`)

// SesothoExtractor zips the segment tier with the coding tier and infers
// POS and morpheme type from the gloss shape: grammatical codings before
// the stem are prefixes, after it suffixes.
type SesothoExtractor struct{}

func (SesothoExtractor) Extract(segWord, glossWord, _ string) ([]domain.MorphemeRecord, []string) {
	segs := splitParts(segWord, "-")
	glosses := splitParts(glossWord, "-")
	if segs == nil && glosses == nil {
		return nil, nil
	}

	n := len(glosses)
	var warnings []string
	if segs != nil && len(segs) != len(glosses) {
		if len(segs) < n {
			n = len(segs)
		}
		warnings = append(warnings, fmt.Sprintf(
			"morpheme count mismatch (seg=%d gloss=%d), truncated to %d",
			len(segs), len(glosses), n))
	}

	morphemes := make([]domain.MorphemeRecord, 0, n)
	passedStem := false
	for i := 0; i < n; i++ {
		g := glosses[i]
		m := domain.MorphemeRecord{Gloss: g}
		if i < len(segs) {
			m.Segment = segs[i]
		}

		if pos, gloss, ok := sesothoStem(g); ok {
			passedStem = true
			m.POS = pos
			m.Gloss = gloss
			m.Type = domain.MorphemeStem
		} else if passedStem {
			m.POS = "sfx"
			m.Type = domain.MorphemeSuffix
		} else {
			m.POS = "pfx"
			m.Type = domain.MorphemePrefix
		}
		morphemes = append(morphemes, m)
	}
	return morphemes, warnings
}

// sesothoStem reports whether a gloss codes a stem, and if so its POS
// and the gloss without the stem marker.
func sesothoStem(gloss string) (pos, cleaned string, ok bool) {
	switch {
	case strings.HasPrefix(gloss, "v^"):
		return "v", gloss[2:], true
	case strings.HasPrefix(gloss, "id^"):
		return "id", gloss[3:], true
	case strings.HasPrefix(gloss, "n^"):
		return "n", gloss[2:], true
	case sesothoNounClassRe.MatchString(gloss):
		return "n", gloss, true
	case gloss == "aj" || gloss == "nm":
		return gloss, gloss, true
	}
	return "", "", false
}

// NungonExtractor zips the segment tier with the combined POS^gloss
// coding tier.
type NungonExtractor struct{}

func (NungonExtractor) Extract(segWord, glossWord, _ string) ([]domain.MorphemeRecord, []string) {
	segs := splitParts(segWord, "-")
	glosses := splitParts(glossWord, "-")
	if segs == nil && glosses == nil {
		return nil, nil
	}

	n := len(glosses)
	var warnings []string
	if segs != nil && len(segs) != len(glosses) {
		if len(segs) < n {
			n = len(segs)
		}
		warnings = append(warnings, fmt.Sprintf(
			"morpheme count mismatch (seg=%d gloss=%d), truncated to %d",
			len(segs), len(glosses), n))
	}

	morphemes := make([]domain.MorphemeRecord, 0, n)
	passedStem := false
	for i := 0; i < n; i++ {
		g := glosses[i]
		m := domain.MorphemeRecord{Gloss: g, Type: domain.MorphemeUnknown}
		if i < len(segs) {
			m.Segment = segs[i]
		}

		if pos, gloss, found := strings.Cut(g, "^"); found {
			m.POS = pos
			m.Gloss = gloss
			m.Type = domain.MorphemeStem
			passedStem = true
		} else if passedStem {
			m.POS = "sfx"
			m.Type = domain.MorphemeSuffix
		} else {
			m.POS = "pfx"
			m.Type = domain.MorphemePrefix
		}
		morphemes = append(morphemes, m)
	}
	return morphemes, warnings
}

// TaggedExtractor reads single-tier "POS|stem-SFX-SFX" codings, with
// "~"-joined clitic groups and "&"-fused stem glosses.
type TaggedExtractor struct{}

func (e TaggedExtractor) Extract(segWord, _, _ string) ([]domain.MorphemeRecord, []string) {
	groups := splitParts(segWord, "~")
	if groups == nil {
		return nil, nil
	}

	var morphemes []domain.MorphemeRecord
	for _, group := range groups {
		morphemes = append(morphemes, e.extractGroup(group)...)
	}
	return morphemes, nil
}

func (TaggedExtractor) extractGroup(group string) []domain.MorphemeRecord {
	parts := strings.Split(group, "-")

	morphemes := make([]domain.MorphemeRecord, 0, len(parts))
	for i, p := range parts {
		if i > 0 {
			morphemes = append(morphemes, domain.MorphemeRecord{
				Gloss: p,
				POS:   "sfx",
				Type:  domain.MorphemeSuffix,
			})
			continue
		}

		pos, rest, found := strings.Cut(p, "|")
		if !found {
			morphemes = append(morphemes, domain.MorphemeRecord{
				Segment: p,
				Type:    domain.MorphemeUnknown,
			})
			continue
		}
		stem, fused, _ := strings.Cut(rest, "&")
		morphemes = append(morphemes, domain.MorphemeRecord{
			POS:     pos,
			Segment: stem,
			Gloss:   fused,
			Type:    domain.MorphemeStem,
		})
	}
	return morphemes
}

// YucatecExtractor reads "TAG|form" codings joined by ":".
type YucatecExtractor struct{}

func (YucatecExtractor) Extract(segWord, _, _ string) ([]domain.MorphemeRecord, []string) {
	parts := splitParts(segWord, ":")
	if parts == nil {
		return nil, nil
	}

	morphemes := make([]domain.MorphemeRecord, 0, len(parts))
	for i, p := range parts {
		m := domain.MorphemeRecord{Type: domain.MorphemeUnknown}
		if i == 0 {
			m.Type = domain.MorphemeStem
		} else {
			m.Type = domain.MorphemeSuffix
		}
		if pos, form, found := strings.Cut(p, "|"); found {
			m.POS = pos
			m.Segment = form
		} else {
			m.Segment = p
		}
		morphemes = append(morphemes, m)
	}
	return morphemes, nil
}
