// Package corpusrepo implements corpus persistence using PostgreSQL.
// It manages the sessions/speakers/utterances/words/morphemes tables as
// write-mostly bulk storage: the loader inserts, analysis tools read.
package corpusrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/acqcorpus/internal/adapter/postgres"
	"github.com/heartmarshall/acqcorpus/internal/domain"
)

// Repo provides corpus persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	txm  *postgres.TxManager
}

// New creates a new corpus repository.
func New(pool *pgxpool.Pool, txm *postgres.TxManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

// RunInTx exposes transactional scoping to the loader so one session's
// rows land atomically.
func (r *Repo) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.txm.RunInTx(ctx, fn)
}

// InsertSession inserts one session row. A session already loaded from
// the same corpus and path is skipped via ON CONFLICT DO NOTHING;
// the boolean reports whether the row was actually inserted.
func (r *Repo) InsertSession(ctx context.Context, s domain.Session) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx,
		`INSERT INTO sessions (id, corpus, path, date)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (corpus, path) DO NOTHING`,
		s.ID, s.Corpus, s.Path, nilIfEmpty(s.Date),
	)
	if err != nil {
		return false, mapError(err, "session", s.ID)
	}
	return tag.RowsAffected() > 0, nil
}

// BulkInsertSpeakers inserts speakers using pgx.Batch. Existing speakers
// (by session + label) are skipped via ON CONFLICT DO NOTHING.
// Returns the number of actually inserted rows.
func (r *Repo) BulkInsertSpeakers(ctx context.Context, speakers []domain.Speaker) (int, error) {
	if len(speakers) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, s := range speakers {
		batch.Queue(
			`INSERT INTO speakers (id, session_id, label, name, role, age, gender, language)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (session_id, label) DO NOTHING`,
			s.ID, s.SessionID, s.Label,
			nilIfEmpty(s.Name), nilIfEmpty(s.Role), nilIfEmpty(s.Age),
			nilIfEmpty(s.Gender), nilIfEmpty(s.Language),
		)
	}

	return r.sendBatchExec(ctx, batch, "speaker")
}

// BulkInsertUtterances inserts utterances using pgx.Batch.
// Existing utterances (by session + source id) are skipped via
// ON CONFLICT DO NOTHING.
func (r *Repo) BulkInsertUtterances(ctx context.Context, utterances []domain.Utterance) (int, error) {
	if len(utterances) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, u := range utterances {
		batch.Queue(
			`INSERT INTO utterances (id, session_id, source_id, speaker_label, actual, target,
			                         sentence_type, start_time, end_time, translation, comment,
			                         addressee, untranscribed, warnings, position)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			 ON CONFLICT (session_id, source_id) DO NOTHING`,
			u.ID, u.SessionID, u.SourceID, u.SpeakerLabel, u.Actual, nilIfEmpty(u.Target),
			nilIfEmpty(string(u.SentenceType)), nilIfEmpty(u.StartTime), nilIfEmpty(u.EndTime),
			nilIfEmpty(u.Translation), nilIfEmpty(u.Comment), nilIfEmpty(u.Addressee),
			u.Untranscribed, u.Warnings, u.Position,
		)
	}

	return r.sendBatchExec(ctx, batch, "utterance")
}

// BulkInsertWords inserts words using pgx.Batch.
// Existing words (by utterance + position) are skipped via
// ON CONFLICT DO NOTHING.
func (r *Repo) BulkInsertWords(ctx context.Context, words []domain.Word) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, w := range words {
		batch.Queue(
			`INSERT INTO words (id, utterance_id, word, actual, target, language, position)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (utterance_id, position) DO NOTHING`,
			w.ID, w.UtteranceID, w.Word, nilIfEmpty(w.Actual), nilIfEmpty(w.Target),
			nilIfEmpty(w.Language), w.Position,
		)
	}

	return r.sendBatchExec(ctx, batch, "word")
}

// BulkInsertMorphemes inserts morphemes using pgx.Batch.
// Existing morphemes (by word + position) are skipped via
// ON CONFLICT DO NOTHING.
func (r *Repo) BulkInsertMorphemes(ctx context.Context, morphemes []domain.Morpheme) (int, error) {
	if len(morphemes) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, m := range morphemes {
		batch.Queue(
			`INSERT INTO morphemes (id, word_id, segment, gloss, pos, language, type, position)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 ON CONFLICT (word_id, position) DO NOTHING`,
			m.ID, m.WordID, nilIfEmpty(m.Segment), nilIfEmpty(m.Gloss), nilIfEmpty(m.POS),
			nilIfEmpty(m.Language), string(m.Type), m.Position,
		)
	}

	return r.sendBatchExec(ctx, batch, "morpheme")
}

// sendBatchExec sends a pgx.Batch and counts affected rows from Exec results.
func (r *Repo) sendBatchExec(ctx context.Context, batch *pgx.Batch, entity string) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	results := q.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int
	for range batch.Len() {
		tag, err := results.Exec()
		if err != nil {
			return inserted, mapError(err, entity, uuid.Nil)
		}
		inserted += int(tag.RowsAffected())
	}

	return inserted, nil
}

// nilIfEmpty returns nil if s is empty, otherwise a pointer to s.
// Used for nullable TEXT columns where empty string means NULL.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
