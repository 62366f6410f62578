package cleaner

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Untranscribed is the canonical marker for untranscribed material.
// The source markers xxx (unintelligible), yyy (phonological coding only)
// and www (untranscribed by choice) are all folded into it.
const Untranscribed = "???"

var (
	multiSpaceRe    = regexp.MustCompile(`\s+`)
	untranscribedRe = regexp.MustCompile(`xxx|yyy|www`)
	terminatorRe    = regexp.MustCompile(`([+/.!?"]*[!?.])( \[\+[^\]]*\])?\s*$`)
	eventRe         = regexp.MustCompile(`&=\S+`)
	linkerRe        = regexp.MustCompile(`^\+["^,+<]`)
	separatorRe     = regexp.MustCompile(` [,:;] `)
	caMarkRe        = regexp.MustCompile(`[↓↑‡„“”]`)
	pauseRe         = regexp.MustCompile(`\(\.{1,3}\)`)
	squareGroupRe   = regexp.MustCompile(`\[[^\[\]]*\]`)
	angleBracketRe  = regexp.MustCompile(`[<>]`)
	nullEventRe     = regexp.MustCompile(`(^| )0([. ]|$)`)

	// The repeated material is either an angle-bracket group or a single
	// word with an optional trailing annotation ([x ...] itself excluded).
	repetitionRe = regexp.MustCompile(`(?:<([^<>]*)>|(\S+?(?: \[[^x][^\]]*\])?)) ?\[x (\d+)\]`)

	shorteningRe        = regexp.MustCompile(`\(([^).\s][^)\s]*)\)`)
	fillerRe            = regexp.MustCompile(`&-(\S+)`)
	fragmentRe          = regexp.MustCompile(`&([^=\s&-]\S*)`)
	replacementScopedRe = regexp.MustCompile(`<([^<>]*)> \[: ([^\]]*)\]`)
	replacementWordRe   = regexp.MustCompile(`(\S+) \[: ([^\]]*)\]`)

	wordPauseRe = regexp.MustCompile(`(\S)\^`)
)

// CollapseWhitespace folds whitespace runs into single spaces and trims.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(multiSpaceRe.ReplaceAllString(s, " "))
}

// NullEvents removes standalone 0-tokens marking utterances that consist
// of an action only.
func NullEvents(utt string) string {
	return CollapseWhitespace(nullEventRe.ReplaceAllString(utt, "$1$2"))
}

// UnifyUntranscribed folds all untranscribed markers into Untranscribed.
func UnifyUntranscribed(utt string) string {
	return untranscribedRe.ReplaceAllString(utt, Untranscribed)
}

// HandleRepetitions expands repetition markers: "Hey [x 2]" → "Hey Hey".
// The marked material may be a single word, an angle-bracket group or a
// word with a trailing annotation. Malformed markers are left alone.
func HandleRepetitions(utt string) string {
	matches := repetitionRe.FindAllStringSubmatchIndex(utt, -1)
	if matches == nil {
		return utt
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(utt[last:m[0]])
		last = m[1]

		content := ""
		if m[2] >= 0 {
			content = utt[m[2]:m[3]]
		} else {
			content = utt[m[4]:m[5]]
		}
		n, err := strconv.Atoi(utt[m[6]:m[7]])
		if err != nil || n < 1 {
			b.WriteString(utt[m[0]:m[1]])
			continue
		}
		for i := 0; i < n; i++ {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(content)
		}
	}
	b.WriteString(utt[last:])
	return b.String()
}

// RemoveTerminator strips the utterance terminator, keeping a trailing
// postcode ([+ ...]) if one follows it.
func RemoveTerminator(utt string) string {
	m := terminatorRe.FindStringSubmatchIndex(utt)
	if m == nil {
		return utt
	}
	out := utt[:m[2]]
	if m[4] >= 0 {
		out += utt[m[4]:m[5]]
	}
	return CollapseWhitespace(out)
}

// Terminator returns the raw terminator coding of an utterance, or "".
func Terminator(utt string) string {
	m := terminatorRe.FindStringSubmatch(utt)
	if m == nil {
		return ""
	}
	return m[1]
}

// RemoveEvents strips event markers (&=laughs).
func RemoveEvents(utt string) string {
	return CollapseWhitespace(eventRe.ReplaceAllString(utt, ""))
}

// RemoveOmissions strips omitted-word tokens (0word). Occurrences inside
// square-bracket annotations are part of the annotation and stay; a
// leading angle bracket does not protect a token.
func RemoveOmissions(utt string) string {
	tokens := strings.Split(utt, " ")
	kept := make([]string, 0, len(tokens))
	depth := 0

	for _, tok := range tokens {
		if depth == 0 && isOmission(tok) {
			if pre := leadingAngles(tok); pre != "" {
				kept = append(kept, pre)
			}
		} else {
			kept = append(kept, tok)
		}
		depth += strings.Count(tok, "[") - strings.Count(tok, "]")
		if depth < 0 {
			depth = 0
		}
	}
	return CollapseWhitespace(strings.Join(kept, " "))
}

func isOmission(tok string) bool {
	t := strings.TrimLeft(tok, "<")
	if len(t) < 2 || t[0] != '0' {
		return false
	}
	r := []rune(t[1:])
	return unicode.IsLetter(r[0])
}

func leadingAngles(tok string) string {
	return tok[:len(tok)-len(strings.TrimLeft(tok, "<"))]
}

// RemoveLinkers strips an utterance-initial linker (+", +^, +,, ++, +<).
func RemoveLinkers(utt string) string {
	return CollapseWhitespace(linkerRe.ReplaceAllString(utt, ""))
}

// RemoveSeparators strips free-standing separator punctuation.
func RemoveSeparators(utt string) string {
	return CollapseWhitespace(separatorRe.ReplaceAllString(utt, " "))
}

// RemoveCAMarks strips conversation-analysis symbols.
func RemoveCAMarks(utt string) string {
	return CollapseWhitespace(caMarkRe.ReplaceAllString(utt, ""))
}

// RemovePausesBetweenWords strips pause marks ((.), (..), (...)).
func RemovePausesBetweenWords(utt string) string {
	return CollapseWhitespace(pauseRe.ReplaceAllString(utt, ""))
}

// RemoveScopedSymbols strips square-bracket annotations (innermost first,
// so nesting of any depth unwinds) and all angle-bracket group marks.
func RemoveScopedSymbols(utt string) string {
	for {
		out := squareGroupRe.ReplaceAllString(utt, "")
		if out == utt {
			break
		}
		utt = out
	}
	return CollapseWhitespace(angleBracketRe.ReplaceAllString(utt, ""))
}

// NullRemaining empties an utterance reduced to a lone null-event or
// untranscribed marker by the preceding rules.
func NullRemaining(utt string) string {
	if utt == "0" || utt == Untranscribed {
		return ""
	}
	return utt
}

// ShorteningActual drops parenthesized omitted material: "(i)s" → "s".
func ShorteningActual(utt string) string {
	return shorteningRe.ReplaceAllString(utt, "")
}

// ShorteningTarget keeps parenthesized omitted material: "(i)s" → "is".
func ShorteningTarget(utt string) string {
	return shorteningRe.ReplaceAllString(utt, "$1")
}

// RemoveFillerMarkers strips filler prefixes: "&-um" → "um".
func RemoveFillerMarkers(utt string) string {
	return fillerRe.ReplaceAllString(utt, "$1")
}

// FragmentActual keeps fragment material without its marker: "&at" → "at".
// Event markers (&=) are untouched.
func FragmentActual(utt string) string {
	return fragmentRe.ReplaceAllString(utt, "$1")
}

// FragmentTarget replaces fragments with the untranscribed source marker:
// the intended word is unknown.
func FragmentTarget(utt string) string {
	return fragmentRe.ReplaceAllString(utt, "xxx")
}

// ReplacementActual keeps the spoken form and drops the replacement
// annotation: "gonna [: going to]" → "gonna".
func ReplacementActual(utt string) string {
	utt = replacementScopedRe.ReplaceAllString(utt, "$1")
	return replacementWordRe.ReplaceAllString(utt, "$1")
}

// ReplacementTarget substitutes the annotated target form:
// "gonna [: going to]" → "going to".
func ReplacementTarget(utt string) string {
	utt = replacementScopedRe.ReplaceAllString(utt, "$2")
	return replacementWordRe.ReplaceAllString(utt, "$2")
}

// RemoveFormMarkers cuts the @-suffix of special-form words: "hi@p" → "hi".
func RemoveFormMarkers(word string) string {
	if i := strings.Index(word, "@"); i >= 0 {
		return word[:i]
	}
	return word
}

// RemoveDrawls drops vowel-lengthening colons: "ba:nanas" → "bananas".
func RemoveDrawls(word string) string {
	return strings.ReplaceAll(word, ":", "")
}

// RemoveWordPauses joins word-internal pause marks: "m^a^t" → "mat".
// A word-initial caret is blocking, not a pause, and stays.
func RemoveWordPauses(word string) string {
	return wordPauseRe.ReplaceAllString(word, "$1")
}

// RemoveBlocking strips a word-initial blocking mark.
func RemoveBlocking(word string) string {
	word = strings.TrimPrefix(word, "^")
	return strings.TrimPrefix(word, "≠")
}

// RemoveFillerWord strips the filler prefix of a single word. Events
// ("&=laughs") are left alone.
func RemoveFillerWord(word string) string {
	switch {
	case strings.HasPrefix(word, "&="):
		return word
	case strings.HasPrefix(word, "&-"):
		return word[2:]
	case strings.HasPrefix(word, "&"):
		return word[1:]
	}
	return word
}
