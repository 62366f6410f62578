package cleaner

import (
	"strings"
	"testing"

	"github.com/heartmarshall/acqcorpus/internal/domain"
)

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct{ in, want string }{
		{" h ", "h"},
		{"a  b", "a b"},
		{"a\t b\n", "a b"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CollapseWhitespace(tt.in); got != tt.want {
			t.Errorf("CollapseWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNullEvents(t *testing.T) {
	tests := []struct{ in, want string }{
		{"0", ""},
		{"0 true", "true"},
		{"0[=! applauses]", "0[=! applauses]"},
		{"10 sheep", "10 sheep"},
	}
	for _, tt := range tests {
		if got := NullEvents(tt.in); got != tt.want {
			t.Errorf("NullEvents(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnifyUntranscribed(t *testing.T) {
	got := UnifyUntranscribed("www xxx truck yyy ?")
	if got != "??? ??? truck ??? ?" {
		t.Errorf("UnifyUntranscribed = %q", got)
	}
}

func TestHandleRepetitions(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"single word", "Hey [x 2] there", "Hey Hey there"},
		{"two markers", "Hey [x 2] there [x 3]", "Hey Hey there there there"},
		{"no whitespace", "hello[x 2]", "hello hello"},
		{"angle group", "<ho ho> [x 2]", "ho ho ho ho"},
		{"angle group after overlap mark", "ha [<] <ho ho> [x 2]", "ha [<] ho ho ho ho"},
		{"apostrophe word", "it's [x 4]", "it's it's it's it's"},
		{"two digits", "a [x 10]", "a a a a a a a a a a"},
		{"word with annotation", "hey@i [=! screams] [x 2] .", "hey@i [=! screams] hey@i [=! screams] ."},
		{"malformed", "test [x]", "test [x]"},
		{"no marker", "just words", "just words"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HandleRepetitions(tt.in); got != tt.want {
				t.Errorf("HandleRepetitions(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRemoveTerminator(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"declarative", "I got cold .", "I got cold"},
		{"question attached", "where is my truck?", "where is my truck"},
		{"trail off with postcode", "doa to: (.) mado to: +... [+ bch]", "doa to: (.) mado to: [+ bch]"},
		{"period with postcode", "what did you. [+ neg]", "what did you [+ neg]"},
		{"interruption", "that's mine +/.", "that's mine"},
		{"quotation follows", `and then he said +"/.`, "and then he said"},
		{"no terminator", "mm", "mm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveTerminator(tt.in); got != tt.want {
				t.Errorf("RemoveTerminator(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSentenceType(t *testing.T) {
	tests := []struct {
		in     string
		want   domain.SentenceType
		wantOK bool
	}{
		{"I got cold .", domain.SentenceDeclarative, true},
		{"where is it ?", domain.SentenceQuestion, true},
		{"wow !", domain.SentenceExclamation, true},
		{"really +!?", domain.SentenceQuestionExclamation, true},
		{"so I +...", domain.SentenceTrailOff, true},
		{"wait +/.", domain.SentenceInterruption, true},
		{"maybe +//?", domain.SentenceSelfInterruptedQuestion, true},
		{`he said +"/.`, domain.SentenceQuotationFollows, true},
		{"mm", "", false},
	}
	var c Base
	for _, tt := range tests {
		got, ok := c.SentenceType(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("SentenceType(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRemoveEvents(t *testing.T) {
	got := RemoveEvents("breakfast &=yawns .")
	if got != "breakfast ." {
		t.Errorf("RemoveEvents = %q", got)
	}
}

func TestRemoveOmissions(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"single", "where 0is my truck?", "where my truck?"},
		{"multiple", "0but where 0is my 0truck ?", "where my ?"},
		{"inside annotation", "This [* 0is] what ?", "This [* 0is] what ?"},
		{"null plus annotation", "0[=! applauses]", "0[=! applauses]"},
		{"behind angle bracket", "<0you pig> said", "< pig> said"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveOmissions(tt.in); got != tt.want {
				t.Errorf("RemoveOmissions(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRemoveLinkers(t *testing.T) {
	tests := []struct{ in, want string }{
		{`+" that's mine`, "that's mine"},
		{"+^ where is my truck?", "where is my truck?"},
		{"+, and then", "and then"},
		{"++ he would", "he would"},
		{"+< they had it", "they had it"},
		{"no linker here", "no linker here"},
	}
	for _, tt := range tests {
		if got := RemoveLinkers(tt.in); got != tt.want {
			t.Errorf("RemoveLinkers(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRemoveSeparators(t *testing.T) {
	got := RemoveSeparators("Hey there , what ; up : no")
	if got != "Hey there what up no" {
		t.Errorf("RemoveSeparators = %q", got)
	}
}

func TestRemoveCAMarks(t *testing.T) {
	tests := []struct{ in, want string }{
		{"up ↑", "up"},
		{"down ↓ now", "down now"},
		{"hey ‡ there", "hey there"},
		{"„ hi", "hi"},
	}
	for _, tt := range tests {
		if got := RemoveCAMarks(tt.in); got != tt.want {
			t.Errorf("RemoveCAMarks(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRemovePausesBetweenWords(t *testing.T) {
	got := RemovePausesBetweenWords("I (.) need (..) it (...) now")
	if got != "I need it now" {
		t.Errorf("RemovePausesBetweenWords = %q", got)
	}
}

func TestRemoveScopedSymbols(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"flat", "it [!] is", "it is"},
		{"postcode", "ok [+ neg]", "ok"},
		{"nested two levels", "<that's mine <she said [=! cries]>> [=! slaps leg]", "that's mine she said"},
		{"lone null event", "0[=! applauses]", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveScopedSymbols(tt.in); got != tt.want {
				t.Errorf("RemoveScopedSymbols(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanUtterance(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{
			"everything at once",
			`+^ that's [x 2] xxx (..) mine ↓ &=vocalizes ; <0you pig <she said   [=! cries]>> [=! slaps leg] +/.`,
			"that's that's ??? mine pig she said",
		},
		{"event only", "0[=! applauses]", ""},
		{"null event", "0", ""},
		{"untranscribed only", "xxx .", ""},
		{"plain", "Hey there .", "Hey there"},
	}
	var c Base
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.CleanUtterance(tt.in); got != tt.want {
				t.Errorf("CleanUtterance(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestActualTargetForms(t *testing.T) {
	var c Base

	tests := []struct {
		name, in, actual, target string
	}{
		{"shortening", "(i)s it coming", "s it coming", "is it coming"},
		{"fragment", "&at it", "at it", "xxx it"},
		{"filler", "&-um hi", "um hi", "um hi"},
		{"event untouched", "&=laughs hi", "&=laughs hi", "&=laughs hi"},
		{"replacement word", "gonna [: going to] go", "gonna go", "going to go"},
		{"replacement group", "<wanna go> [: want to go] now", "wanna go now", "want to go now"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.ActualForm(tt.in); got != tt.actual {
				t.Errorf("ActualForm(%q) = %q, want %q", tt.in, got, tt.actual)
			}
			if got := c.TargetForm(tt.in); got != tt.target {
				t.Errorf("TargetForm(%q) = %q, want %q", tt.in, got, tt.target)
			}
		})
	}
}

func TestCleanWord(t *testing.T) {
	tests := []struct{ in, want string }{
		{"^ka:l^e@e", "kale"},
		{"hi@p", "hi"},
		{"ba:na:nas", "bananas"},
		{"m^a^t", "mat"},
		{"≠hey", "hey"},
		{"&-um", "um"},
		{"&um", "um"},
		{"truck", "truck"},
	}
	var c Base
	for _, tt := range tests {
		if got := c.CleanWord(tt.in); got != tt.want {
			t.Errorf("CleanWord(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// All base rules except repetition expansion are idempotent: re-running
// a rule on its own output is a no-op.
func TestRules_Idempotent(t *testing.T) {
	inputs := []string{
		`+^ that's [x 2] xxx (..) mine ↓ &=vocalizes ; <0you pig <she said [=! cries]>> [=! slaps leg] +/.`,
		"where 0is my truck?",
		"doa to: (.) mado to: +... [+ bch]",
		"Hey there , what ; up : no",
		"0[=! applauses]",
		"0 true",
		"",
	}
	for _, r := range baseUtteranceRules {
		if r.Name == "repetitions" {
			continue
		}
		for _, in := range inputs {
			once := r.Apply(in)
			twice := r.Apply(once)
			if once != twice {
				t.Errorf("rule %s not idempotent on %q: %q != %q", r.Name, in, once, twice)
			}
		}
	}
}

// No rule output contains consecutive spaces.
func TestRules_NoDoubleSpaces(t *testing.T) {
	inputs := []string{
		`+^ that's [x 2] xxx (..) mine ↓ &=vocalizes ; <0you pig <she said [=! cries]>> [=! slaps leg] +/.`,
		"a  b   c .",
		"what did you. [+ neg]",
	}
	for _, in := range inputs {
		out := in
		for _, r := range baseUtteranceRules {
			out = r.Apply(out)
			if strings.Contains(out, "  ") {
				t.Errorf("rule %s left double spaces on %q: %q", r.Name, in, out)
			}
		}
	}
}
