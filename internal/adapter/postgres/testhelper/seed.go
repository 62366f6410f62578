package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/acqcorpus/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedSession creates a session row for the given corpus with a unique
// path. Returns a filled domain.Session.
func SeedSession(t *testing.T, pool *pgxpool.Pool, corpus string) domain.Session {
	t.Helper()
	ctx := context.Background()

	session := domain.Session{
		ID:     uuid.New(),
		Corpus: corpus,
		Path:   "testdata/" + corpus + "/" + uniqueSuffix() + ".cha",
		Date:   "25-AUG-1998",
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO sessions (id, corpus, path, date) VALUES ($1, $2, $3, $4)`,
		session.ID, session.Corpus, session.Path, session.Date,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSession insert: %v", err)
	}
	return session
}

// SeedSpeaker creates a speaker row attached to a session.
func SeedSpeaker(t *testing.T, pool *pgxpool.Pool, sessionID uuid.UUID, label string) domain.Speaker {
	t.Helper()
	ctx := context.Background()

	speaker := domain.Speaker{
		ID:        uuid.New(),
		SessionID: sessionID,
		Label:     label,
		Role:      "Target_Child",
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO speakers (id, session_id, label, role) VALUES ($1, $2, $3, $4)`,
		speaker.ID, speaker.SessionID, speaker.Label, speaker.Role,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSpeaker insert: %v", err)
	}
	return speaker
}

// SeedUtterance creates an utterance row with one word carrying one
// morpheme, the minimal full tree. Returns the filled domain.Utterance.
func SeedUtterance(t *testing.T, pool *pgxpool.Pool, sessionID uuid.UUID, position int) domain.Utterance {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	utt := domain.Utterance{
		ID:           uuid.New(),
		SessionID:    sessionID,
		SourceID:     "u" + suffix,
		SpeakerLabel: "CHI",
		Actual:       "word-" + suffix,
		SentenceType: domain.SentenceDeclarative,
		Position:     position,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO utterances (id, session_id, source_id, speaker_label, actual, sentence_type, position)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		utt.ID, utt.SessionID, utt.SourceID, utt.SpeakerLabel, utt.Actual, string(utt.SentenceType), utt.Position,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUtterance insert utterance: %v", err)
	}

	wordID := uuid.New()
	_, err = pool.Exec(ctx,
		`INSERT INTO words (id, utterance_id, word, position) VALUES ($1, $2, $3, $4)`,
		wordID, utt.ID, utt.Actual, 0,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUtterance insert word: %v", err)
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO morphemes (id, word_id, segment, gloss, type, position)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New(), wordID, utt.Actual, "gloss-"+suffix, string(domain.MorphemeStem), 0,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUtterance insert morpheme: %v", err)
	}

	return utt
}
