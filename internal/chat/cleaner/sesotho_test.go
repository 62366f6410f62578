package cleaner

import "testing"

func TestSesotho_CleanUtterance(t *testing.T) {
	var c Sesotho

	got := c.CleanUtterance("(ho)dula tsamaya  (ho)dula (uye) ausi (uye) .")
	if got != "hodula tsamaya hodula ausi" {
		t.Errorf("CleanUtterance = %q", got)
	}
}

func TestSesotho_ActualEqualsTarget(t *testing.T) {
	var c Sesotho

	raw := "(ho)dula tsamaya ."
	if c.ActualForm(raw) != raw || c.TargetForm(raw) != raw {
		t.Error("actual/target forms should leave the raw utterance alone")
	}
}

func TestSesotho_CleanSegTier(t *testing.T) {
	var c Sesotho

	if got := c.CleanSegTier("m-ph-e ntho ."); got != "m-ph-e ntho" {
		t.Errorf("CleanSegTier = %q", got)
	}
}

func TestSesotho_CleanGlossTier(t *testing.T) {
	var c Sesotho

	tests := []struct{ in, want string }{
		{"n^10-bucket(9 , 10/6) ?", "n^10-bucket(9,10|6)"},
		{"id^lo tsamay-a sister(1a , 2a)", "id^lo tsamay-a sister(1a,2a)"},
	}
	for _, tt := range tests {
		if got := c.CleanGlossTier(tt.in); got != tt.want {
			t.Errorf("CleanGlossTier(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSesotho_CleanSegWord(t *testing.T) {
	var c Sesotho

	if got := c.CleanSegWord("(ho)nad(a)"); got != "honada" {
		t.Errorf("CleanSegWord = %q", got)
	}
}

func TestSesotho_GlossWordFunctions(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"proper name", CleanProperNameGloss, "n^Name", "a_name"},
		{"proper place", CleanProperNameGloss, "n^Place", "a_place"},
		{"noun marker", RemoveNounMarkers, "n^6-field(9 , 6)", "6-field(9 , 6)"},
		{"verb marker", RemoveVerbMarkers, "sm2s-t^p_v^do-m^in", "sm2s-t^p_do-m^in"},
		{"concatenator", ReplaceConcatenators, "sm2s-t^p_om1s-v^touch-m^in", "sm2s-t^p.om1s-v^touch-m^in"},
		{"concatenator keeps multiword stems", ReplaceConcatenators, "sm1-t^p-v^say-m^in_v^go_out", "sm1-t^p-v^say-m^in_v^go_out"},
		{"nominal concord", RemoveNominalConcordMarkers, "obr17", "17"},
		{"nominal concord untouched", RemoveNominalConcordMarkers, "t^p", "t^p"},
		{"unify word", UnifyUntranscribedGloss, "word", "???"},
		{"unify xxx", UnifyUntranscribedGloss, "xxx", "???"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("%s(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
			}
		})
	}
}

func TestSesotho_CrossClean_RemovesContractions(t *testing.T) {
	var c Sesotho

	in := Tiers{
		Seg:   "e tsamay-a (u-y-e) (ho-)dul-a tsamay-a",
		Gloss: "ij v^leave-m^in v^go-m^in v^sit-m^in v^leave-m^in",
		Pos:   "ij v v v v",
	}
	got := c.CrossClean(in)

	if got.Seg != "e tsamay-a (ho-)dul-a tsamay-a" {
		t.Errorf("seg = %q", got.Seg)
	}
	if got.Gloss != "ij v^leave-m^in v^sit-m^in v^leave-m^in" {
		t.Errorf("gloss = %q", got.Gloss)
	}
	if got.Pos != "ij v v v" {
		t.Errorf("pos = %q", got.Pos)
	}
}

func TestSesotho_CrossClean_ShorterGlossTier(t *testing.T) {
	var c Sesotho

	in := Tiers{
		Seg:   "(u-y-e) ntho",
		Gloss: "v^go-m^in",
		Pos:   "v",
	}
	got := c.CrossClean(in)

	if got.Seg != "ntho" {
		t.Errorf("seg = %q", got.Seg)
	}
	if got.Gloss != "" {
		t.Errorf("gloss = %q, contraction gloss should go with its segment", got.Gloss)
	}
}

func TestSesotho_CrossClean_ExtraTrailingGlosses(t *testing.T) {
	var c Sesotho

	in := Tiers{
		Seg:   "ntho",
		Gloss: "thing(9,10) extra",
		Pos:   "n n",
	}
	got := c.CrossClean(in)

	if got.Gloss != "thing(9,10) extra" {
		t.Errorf("gloss = %q, trailing glosses must survive", got.Gloss)
	}
}

func TestSesotho_CleanTranslation(t *testing.T) {
	var c Sesotho

	got := c.CleanTranslation("I went home . 55677_58662")
	if got != "I went home ." {
		t.Errorf("CleanTranslation = %q", got)
	}
}
