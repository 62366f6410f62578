package corpus

import (
	"fmt"
	"sort"

	"github.com/heartmarshall/acqcorpus/internal/chat/cleaner"
	"github.com/heartmarshall/acqcorpus/internal/domain"
)

// TierNames maps the abstract segment/gloss/POS tiers onto the dependent
// tier names a corpus actually uses. Corpora with one combined morphology
// tier repeat its name.
type TierNames struct {
	Seg   string
	Gloss string
	Pos   string
}

// Profile bundles everything corpus-specific needed to turn a raw record
// into an utterance record.
type Profile struct {
	Language  string
	Cleaner   cleaner.Cleaner
	Extractor Extractor
	Tiers     TierNames
}

var profiles = map[string]Profile{
	"Cree": {
		Language:  "cree",
		Cleaner:   cleaner.Cree{},
		Extractor: ZipExtractor{Sep: "~"},
		Tiers:     TierNames{Seg: "xactmor", Gloss: "xmormea", Pos: "xmortyp"},
	},
	"English_Manchester1": {
		Language:  "english",
		Cleaner:   cleaner.EnglishManchester{},
		Extractor: TaggedExtractor{},
		Tiers:     TierNames{Seg: "mor", Gloss: "mor", Pos: "mor"},
	},
	"Inuktitut": {
		Language:  "inuktitut",
		Cleaner:   cleaner.Inuktitut{},
		Extractor: InuktitutExtractor{},
		Tiers:     TierNames{Seg: "xmor", Gloss: "xmor", Pos: "xmor"},
	},
	"Japanese_MiiPro": {
		Language:  "japanese",
		Cleaner:   cleaner.JapaneseMiiPro{},
		Extractor: TaggedExtractor{},
		Tiers:     TierNames{Seg: "trn", Gloss: "trn", Pos: "trn"},
	},
	"Nungon": {
		Language:  "nungon",
		Cleaner:   cleaner.Nungon{},
		Extractor: NungonExtractor{},
		Tiers:     TierNames{Seg: "gls", Gloss: "cod", Pos: "cod"},
	},
	"Sesotho": {
		Language:  "sesotho",
		Cleaner:   cleaner.Sesotho{},
		Extractor: SesothoExtractor{},
		Tiers:     TierNames{Seg: "gls", Gloss: "xcod", Pos: "xcod"},
	},
	"Turkish": {
		Language:  "turkish",
		Cleaner:   cleaner.Turkish{},
		Extractor: TaggedExtractor{},
		Tiers:     TierNames{Seg: "xmor", Gloss: "xmor", Pos: "xmor"},
	},
	"Yucatec": {
		Language:  "yucatec",
		Cleaner:   cleaner.Yucatec{},
		Extractor: YucatecExtractor{},
		Tiers:     TierNames{Seg: "mor", Gloss: "mor", Pos: "mor"},
	},
	"Russian": {
		Language:  "russian",
		Cleaner:   cleaner.Base{},
		Extractor: ZipExtractor{Sep: "-"},
		Tiers:     TierNames{Seg: "mb", Gloss: "ge", Pos: "ps"},
	},
}

// ForCorpus returns the processing profile for a corpus name.
func ForCorpus(name string) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("corpus %q: %w", name, domain.ErrUnknownCorpus)
	}
	return p, nil
}

// Corpora lists all registered corpus names in sorted order.
func Corpora() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
