package chat

import (
	"regexp"
	"strings"
)

var timeCodeRe = regexp.MustCompile(`\x15?(\d+)_(\d+)\x15?\s*$`)

// Record is one speaker turn of a CHAT session: the main line plus its
// dependent tiers, with intra-tier line breaks already removed.
type Record struct {
	speaker  string
	mainLine string
	tiers    map[string]string
}

// SpeakerLabel returns the three-letter speaker code of the main line.
func (r Record) SpeakerLabel() string { return r.speaker }

// Utterance returns the raw main-line content without the speaker label
// and without the trailing time code.
func (r Record) Utterance() string {
	return strings.TrimSpace(timeCodeRe.ReplaceAllString(r.mainLine, ""))
}

// StartTime returns the start of the time code in milliseconds, or "".
func (r Record) StartTime() string {
	m := timeCodeRe.FindStringSubmatch(r.mainLine)
	if m == nil {
		return ""
	}
	return m[1]
}

// EndTime returns the end of the time code in milliseconds, or "".
func (r Record) EndTime() string {
	m := timeCodeRe.FindStringSubmatch(r.mainLine)
	if m == nil {
		return ""
	}
	return m[2]
}

// Tier returns the named dependent tier ("xmor", "eng", ...).
func (r Record) Tier(name string) (string, bool) {
	v, ok := r.tiers[name]
	return v, ok
}

// tierOrEmpty is Tier without the presence flag, for optional tiers.
func (r Record) tierOrEmpty(name string) string {
	return r.tiers[name]
}

// Translation returns the free translation tier, if any.
func (r Record) Translation() string { return r.tierOrEmpty("eng") }

// Comment returns the comment tier, if any.
func (r Record) Comment() string { return r.tierOrEmpty("com") }

// Addressee returns the addressee tier, if any.
func (r Record) Addressee() string { return r.tierOrEmpty("add") }
