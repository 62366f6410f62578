package domain

import "github.com/google/uuid"

// Session is one recording session of one corpus: a single transcript file.
type Session struct {
	ID     uuid.UUID
	Corpus string
	Path   string
	Date   string
}

// Speaker is a session participant as declared in the session metadata.
type Speaker struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Label     string
	Name      string
	Role      string
	Age       string
	Gender    string
	Language  string
}

// Utterance is one cleaned speaker turn. Actual holds what was said,
// Target the normalized adult form. Position is the zero-based index of
// the utterance within its session.
type Utterance struct {
	ID            uuid.UUID
	SessionID     uuid.UUID
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
	Position      int
}

// Word is one orthographic word of an utterance.
type Word struct {
	ID          uuid.UUID
	UtteranceID uuid.UUID
	Word        string
	Actual      string
	Target      string
	Language    string
	Position    int
}

// MorphemeType classifies a morpheme by its position within the word.
type MorphemeType string

const (
	MorphemePrefix  MorphemeType = "prefix"
	MorphemeStem    MorphemeType = "stem"
	MorphemeSuffix  MorphemeType = "suffix"
	MorphemeUnknown MorphemeType = "unknown"
)

// Morpheme is one segmented morpheme of a word, aligned across the
// segment, gloss and part-of-speech tiers.
type Morpheme struct {
	ID       uuid.UUID
	WordID   uuid.UUID
	Segment  string
	Gloss    string
	POS      string
	Language string
	Type     MorphemeType
	Position int
}
