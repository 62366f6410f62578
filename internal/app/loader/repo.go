// Package loader orchestrates corpus ingestion: it walks configured
// corpus directories, parses each session file, runs cleaning and
// morpheme extraction, and bulk-loads the result into PostgreSQL.
package loader

import (
	"context"

	"github.com/heartmarshall/acqcorpus/internal/domain"
)

// CorpusBulkRepo defines the batch repository contract consumed by the
// loader pipeline. All methods use only domain types — no adapter
// imports. Implemented by corpusrepo.Repo.
type CorpusBulkRepo interface {
	// Transactional scope: one session's rows land atomically.
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error

	// InsertSession reports false when the session was already loaded.
	InsertSession(ctx context.Context, s domain.Session) (bool, error)

	// Batch inserts — ON CONFLICT DO NOTHING.
	BulkInsertSpeakers(ctx context.Context, speakers []domain.Speaker) (int, error)
	BulkInsertUtterances(ctx context.Context, utterances []domain.Utterance) (int, error)
	BulkInsertWords(ctx context.Context, words []domain.Word) (int, error)
	BulkInsertMorphemes(ctx context.Context, morphemes []domain.Morpheme) (int, error)
}
