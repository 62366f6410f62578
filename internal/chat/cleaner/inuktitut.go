package cleaner

import "regexp"

// [=? ...] marks an alternative hearing of the preceding material.
var (
	alternativeScopedRe = regexp.MustCompile(`<([^<>]*)> \[=\? ([^\]]*)\]`)
	alternativeWordRe   = regexp.MustCompile(`(\S+) \[=\? ([^\]]*)\]`)
)

// Inuktitut adapts the base chain to the Allen Inuktitut scheme, where
// alternative-hearing annotations feed the actual/target distinction.
type Inuktitut struct {
	Base
}

// ActualForm keeps the transcribed hearing and drops the alternative.
func (c Inuktitut) ActualForm(utt string) string {
	utt = alternativeScopedRe.ReplaceAllString(utt, "$1")
	utt = alternativeWordRe.ReplaceAllString(utt, "$1")
	return c.Base.ActualForm(utt)
}

// TargetForm substitutes the alternative hearing.
func (c Inuktitut) TargetForm(utt string) string {
	utt = alternativeScopedRe.ReplaceAllString(utt, "$2")
	utt = alternativeWordRe.ReplaceAllString(utt, "$2")
	return c.Base.TargetForm(utt)
}
