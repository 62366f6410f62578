package cleaner

import "testing"

func TestTurkish_CleanMorphWord(t *testing.T) {
	var c Turkish

	if got := c.CleanSegWord("&"); got != Untranscribed {
		t.Errorf("untranscribed morphology = %q, want %q", got, Untranscribed)
	}
	if got := c.CleanSegWord("N|ev"); got != "N|ev" {
		t.Errorf("CleanSegWord = %q", got)
	}
}

func TestTurkish_CrossClean_DualPOSSplit(t *testing.T) {
	var c Turkish

	in := Tiers{
		Utterance: "kadın_terzi geldi",
		Seg:       "N|N|kadın_terzi V|gel-PAST",
	}
	got := c.CrossClean(in)

	if got.Seg != "N|kadın N|terzi V|gel-PAST" {
		t.Errorf("seg = %q", got.Seg)
	}
	if got.Utterance != "kadın terzi geldi" {
		t.Errorf("utterance = %q", got.Utterance)
	}
}

func TestTurkish_CrossClean_PlusJoined(t *testing.T) {
	var c Turkish

	in := Tiers{
		Utterance: "bir+iki üç",
		Seg:       "NUM|NUM|bir+iki NUM|üç",
	}
	got := c.CrossClean(in)

	if got.Seg != "NUM|bir NUM|iki NUM|üç" {
		t.Errorf("seg = %q", got.Seg)
	}
	if got.Utterance != "bir iki üç" {
		t.Errorf("utterance = %q", got.Utterance)
	}
}

func TestTurkish_CrossClean_SingleMorphWordJoins(t *testing.T) {
	var c Turkish

	in := Tiers{
		Utterance: "tavşan kaçtı işte",
		Seg:       "N|tavşan_kaç V|işte-PAST",
	}
	got := c.CrossClean(in)

	if got.Utterance != "tavşan_kaçtı işte" {
		t.Errorf("utterance = %q", got.Utterance)
	}
	if got.Seg != "N|tavşan_kaç V|işte-PAST" {
		t.Errorf("seg = %q, morphology tier should be unchanged", got.Seg)
	}
}

func TestTurkish_CrossClean_NoComplexesIsIdentity(t *testing.T) {
	var c Turkish

	in := Tiers{
		Utterance: "anne geldi",
		Seg:       "N|anne V|gel-PAST",
	}
	got := c.CrossClean(in)

	if got.Utterance != in.Utterance || got.Seg != in.Seg {
		t.Errorf("identity expected, got %+v", got)
	}
}

func TestTurkish_CrossClean_MismatchedSplitLeavesWord(t *testing.T) {
	var c Turkish

	// The orthographic word does not split into as many parts as the
	// complex has stems; it must survive unsplit.
	in := Tiers{
		Utterance: "kadınterzi",
		Seg:       "N|N|kadın_terzi",
	}
	got := c.CrossClean(in)

	if got.Utterance != "kadınterzi" {
		t.Errorf("utterance = %q", got.Utterance)
	}
	if got.Seg != "N|kadın N|terzi" {
		t.Errorf("seg = %q", got.Seg)
	}
}
