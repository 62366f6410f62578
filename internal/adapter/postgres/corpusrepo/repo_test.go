package corpusrepo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/acqcorpus/internal/adapter/postgres"
	"github.com/heartmarshall/acqcorpus/internal/adapter/postgres/corpusrepo"
	"github.com/heartmarshall/acqcorpus/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/acqcorpus/internal/domain"
)

func newRepo(t *testing.T) (*corpusrepo.Repo, func(query string, args ...any) int) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	repo := corpusrepo.New(pool, postgres.NewTxManager(pool))

	count := func(query string, args ...any) int {
		t.Helper()
		var n int
		if err := pool.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
			t.Fatalf("count query: %v", err)
		}
		return n
	}
	return repo, count
}

func testSession(corpus string) domain.Session {
	id := uuid.New()
	return domain.Session{
		ID:     id,
		Corpus: corpus,
		Path:   "testdata/" + corpus + "/" + id.String() + ".cha",
		Date:   "02-FEB-1992",
	}
}

func TestInsertSession(t *testing.T) {
	repo, count := newRepo(t)
	ctx := context.Background()

	session := testSession("Inuktitut")

	inserted, err := repo.InsertSession(ctx, session)
	if err != nil {
		t.Fatalf("InsertSession: %v", err)
	}
	if !inserted {
		t.Fatal("expected first InsertSession to report inserted")
	}

	if got := count(`SELECT count(*) FROM sessions WHERE id = $1`, session.ID); got != 1 {
		t.Fatalf("expected 1 session row, got %d", got)
	}
}

func TestInsertSession_DuplicatePathSkipped(t *testing.T) {
	repo, count := newRepo(t)
	ctx := context.Background()

	session := testSession("Turkish")
	if _, err := repo.InsertSession(ctx, session); err != nil {
		t.Fatalf("InsertSession: %v", err)
	}

	// Same corpus and path under a fresh ID simulates a reload of the
	// same transcript file.
	reload := session
	reload.ID = uuid.New()

	inserted, err := repo.InsertSession(ctx, reload)
	if err != nil {
		t.Fatalf("InsertSession reload: %v", err)
	}
	if inserted {
		t.Fatal("expected duplicate corpus+path to be skipped")
	}

	if got := count(`SELECT count(*) FROM sessions WHERE corpus = $1 AND path = $2`, session.Corpus, session.Path); got != 1 {
		t.Fatalf("expected 1 session row for path, got %d", got)
	}
}

func TestBulkInsert_FullSessionTree(t *testing.T) {
	repo, count := newRepo(t)
	ctx := context.Background()

	session := testSession("Sesotho")

	utt := domain.Utterance{
		ID:           uuid.New(),
		SessionID:    session.ID,
		SourceID:     "u0",
		SpeakerLabel: "CHI",
		Actual:       "otlathusa",
		Target:       "o-tla-thus-a",
		SentenceType: domain.SentenceDeclarative,
		Translation:  "he will help",
		Warnings:     []string{"morpheme count mismatch (seg=4 gloss=3 pos=3), truncated to 3"},
		Position:     0,
	}
	word := domain.Word{
		ID:          uuid.New(),
		UtteranceID: utt.ID,
		Word:        "otlathusa",
		Language:    "sesotho",
		Position:    0,
	}
	morphemes := []domain.Morpheme{
		{ID: uuid.New(), WordID: word.ID, Segment: "o", Gloss: "sm2s", POS: "pfx", Language: "sesotho", Type: domain.MorphemePrefix, Position: 0},
		{ID: uuid.New(), WordID: word.ID, Segment: "tla", Gloss: "t^f", POS: "pfx", Language: "sesotho", Type: domain.MorphemePrefix, Position: 1},
		{ID: uuid.New(), WordID: word.ID, Segment: "thus", Gloss: "help", POS: "v", Language: "sesotho", Type: domain.MorphemeStem, Position: 2},
	}

	err := repo.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := repo.InsertSession(ctx, session); err != nil {
			return err
		}
		if _, err := repo.BulkInsertSpeakers(ctx, []domain.Speaker{
			{ID: uuid.New(), SessionID: session.ID, Label: "CHI", Role: "Target_Child"},
			{ID: uuid.New(), SessionID: session.ID, Label: "MOT", Role: "Mother"},
		}); err != nil {
			return err
		}
		if _, err := repo.BulkInsertUtterances(ctx, []domain.Utterance{utt}); err != nil {
			return err
		}
		if _, err := repo.BulkInsertWords(ctx, []domain.Word{word}); err != nil {
			return err
		}
		_, err := repo.BulkInsertMorphemes(ctx, morphemes)
		return err
	})
	if err != nil {
		t.Fatalf("RunInTx: %v", err)
	}

	if got := count(`SELECT count(*) FROM speakers WHERE session_id = $1`, session.ID); got != 2 {
		t.Fatalf("expected 2 speakers, got %d", got)
	}
	if got := count(`SELECT count(*) FROM utterances WHERE session_id = $1`, session.ID); got != 1 {
		t.Fatalf("expected 1 utterance, got %d", got)
	}
	if got := count(`SELECT count(*) FROM words WHERE utterance_id = $1`, utt.ID); got != 1 {
		t.Fatalf("expected 1 word, got %d", got)
	}
	if got := count(`SELECT count(*) FROM morphemes WHERE word_id = $1`, word.ID); got != 3 {
		t.Fatalf("expected 3 morphemes, got %d", got)
	}

	// Empty optional columns land as NULL, not empty strings.
	if got := count(`SELECT count(*) FROM utterances WHERE id = $1 AND comment IS NULL AND addressee IS NULL`, utt.ID); got != 1 {
		t.Fatal("expected empty comment and addressee to be stored as NULL")
	}
}

func TestBulkInsert_Idempotent(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	session := testSession("Cree")
	if _, err := repo.InsertSession(ctx, session); err != nil {
		t.Fatalf("InsertSession: %v", err)
	}

	utterances := []domain.Utterance{
		{ID: uuid.New(), SessionID: session.ID, SourceID: "u0", SpeakerLabel: "CHI", Actual: "niwapamaw", Position: 0},
		{ID: uuid.New(), SessionID: session.ID, SourceID: "u1", SpeakerLabel: "CHI", Actual: "awas", Position: 1},
	}

	inserted, err := repo.BulkInsertUtterances(ctx, utterances)
	if err != nil {
		t.Fatalf("BulkInsertUtterances: %v", err)
	}
	if inserted != 2 {
		t.Fatalf("expected 2 inserted, got %d", inserted)
	}

	// A second pass with fresh IDs but the same source ids must insert nothing.
	for i := range utterances {
		utterances[i].ID = uuid.New()
	}
	inserted, err = repo.BulkInsertUtterances(ctx, utterances)
	if err != nil {
		t.Fatalf("BulkInsertUtterances repeat: %v", err)
	}
	if inserted != 0 {
		t.Fatalf("expected 0 inserted on repeat, got %d", inserted)
	}
}

func TestBulkInsert_EmptySlices(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	if n, err := repo.BulkInsertSpeakers(ctx, nil); err != nil || n != 0 {
		t.Fatalf("BulkInsertSpeakers(nil) = %d, %v", n, err)
	}
	if n, err := repo.BulkInsertUtterances(ctx, nil); err != nil || n != 0 {
		t.Fatalf("BulkInsertUtterances(nil) = %d, %v", n, err)
	}
	if n, err := repo.BulkInsertWords(ctx, nil); err != nil || n != 0 {
		t.Fatalf("BulkInsertWords(nil) = %d, %v", n, err)
	}
	if n, err := repo.BulkInsertMorphemes(ctx, nil); err != nil || n != 0 {
		t.Fatalf("BulkInsertMorphemes(nil) = %d, %v", n, err)
	}
}
