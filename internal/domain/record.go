package domain

// UtteranceRecord is the assembled, persistence-ready form of one
// utterance: cleaned tiers joined into words and morphemes with stable
// zero-based indices. It carries no database identity; the loader assigns
// row IDs when it flattens records into Utterance/Word/Morpheme rows.
type UtteranceRecord struct {
	SourceID      string
	SpeakerLabel  string
	Actual        string
	Target        string
	SentenceType  SentenceType
	StartTime     string
	EndTime       string
	Translation   string
	Comment       string
	Addressee     string
	Untranscribed bool
	Warnings      []string
	Words         []WordRecord
}

// WordRecord is one word of an assembled utterance.
type WordRecord struct {
	Word      string
	Actual    string
	Target    string
	Language  string
	Morphemes []MorphemeRecord
}

// MorphemeRecord is one morpheme of an assembled word.
type MorphemeRecord struct {
	Segment  string
	Gloss    string
	POS      string
	Language string
	Type     MorphemeType
}
