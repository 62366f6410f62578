package loader

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/acqcorpus/internal/chat"
	"github.com/heartmarshall/acqcorpus/internal/config"
	"github.com/heartmarshall/acqcorpus/internal/corpus"
	"github.com/heartmarshall/acqcorpus/internal/domain"
	"github.com/heartmarshall/acqcorpus/internal/toolbox"
)

// Config holds loader pipeline settings.
type Config struct {
	BatchSize int
	DryRun    bool
}

// SessionResult holds the outcome of loading a single session file.
type SessionResult struct {
	Corpus     string
	Path       string
	Utterances int
	Words      int
	Morphemes  int
	Skipped    int
	Warnings   int
	Duration   time.Duration
	Err        error
}

// sessionRecord pairs a raw record with its stable source identifier.
type sessionRecord struct {
	rec      corpus.Record
	sourceID string
}

// Pipeline orchestrates the ingestion of configured corpora.
type Pipeline struct {
	log     *slog.Logger
	repo    CorpusBulkRepo
	cfg     Config
	results []SessionResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo CorpusBulkRepo, cfg Config) *Pipeline {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 500
	}
	return &Pipeline{log: log, repo: repo, cfg: cfg}
}

// Results returns per-session results after Run completes.
func (p *Pipeline) Results() []SessionResult {
	return p.results
}

// HasErrors reports whether any session failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run ingests the configured corpora in order. If names is non-empty,
// only the listed corpora run. Every corpus is resolved against the
// registry up front, so an unknown name fails before any file is
// touched, not mid-batch.
func (p *Pipeline) Run(ctx context.Context, corpora []config.CorpusConfig, names []string) error {
	toRun, err := filterCorpora(corpora, names)
	if err != nil {
		return err
	}

	profiles := make(map[string]corpus.Profile, len(toRun))
	for _, cc := range toRun {
		profile, err := corpus.ForCorpus(cc.Name)
		if err != nil {
			return err
		}
		profiles[cc.Name] = profile
	}

	for _, cc := range toRun {
		profile := profiles[cc.Name]

		files, err := listSessionFiles(cc)
		if err != nil {
			return fmt.Errorf("list sessions of %s: %w", cc.Name, err)
		}
		p.log.Info("starting corpus",
			slog.String("corpus", cc.Name),
			slog.Int("sessions", len(files)),
		)

		for _, path := range files {
			if err := ctx.Err(); err != nil {
				return err
			}

			start := time.Now()
			result := p.loadSession(ctx, cc, profile, path)
			result.Duration = time.Since(start)
			p.results = append(p.results, result)

			if result.Err != nil {
				p.log.Warn("session failed",
					slog.String("corpus", cc.Name),
					slog.String("path", path),
					slog.String("error", result.Err.Error()),
				)
				continue
			}
			p.log.Info("session loaded",
				slog.String("corpus", cc.Name),
				slog.String("path", path),
				slog.Int("utterances", result.Utterances),
				slog.Int("words", result.Words),
				slog.Int("morphemes", result.Morphemes),
				slog.Int("skipped", result.Skipped),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("sessions", len(p.results)))
	return nil
}

// loadSession parses, assembles and persists one session file.
func (p *Pipeline) loadSession(ctx context.Context, cc config.CorpusConfig, profile corpus.Profile, path string) SessionResult {
	result := SessionResult{Corpus: cc.Name, Path: path}

	records, speakers, date, err := readSession(cc.Format, path)
	if err != nil {
		result.Err = err
		return result
	}

	session := domain.Session{
		ID:     uuid.New(),
		Corpus: cc.Name,
		Path:   path,
		Date:   date,
	}
	if len(speakers) == 0 {
		speakers = speakersFromRecords(records)
	}
	for i := range speakers {
		speakers[i].ID = uuid.New()
		speakers[i].SessionID = session.ID
	}

	assembler := corpus.NewAssembler(profile)

	var (
		utterances []domain.Utterance
		words      []domain.Word
		morphemes  []domain.Morpheme
	)
	for _, sr := range records {
		assembled, ok := assembler.Assemble(sr.rec, sr.sourceID)
		if !ok {
			result.Skipped++
			continue
		}
		result.Warnings += len(assembled.Warnings)

		utt := domain.Utterance{
			ID:            uuid.New(),
			SessionID:     session.ID,
			SourceID:      assembled.SourceID,
			SpeakerLabel:  assembled.SpeakerLabel,
			Actual:        assembled.Actual,
			Target:        assembled.Target,
			SentenceType:  assembled.SentenceType,
			StartTime:     assembled.StartTime,
			EndTime:       assembled.EndTime,
			Translation:   assembled.Translation,
			Comment:       assembled.Comment,
			Addressee:     assembled.Addressee,
			Untranscribed: assembled.Untranscribed,
			Warnings:      assembled.Warnings,
			Position:      len(utterances),
		}
		utterances = append(utterances, utt)

		for wi, wr := range assembled.Words {
			word := domain.Word{
				ID:          uuid.New(),
				UtteranceID: utt.ID,
				Word:        wr.Word,
				Actual:      wr.Actual,
				Target:      wr.Target,
				Language:    wr.Language,
				Position:    wi,
			}
			words = append(words, word)

			for mi, mr := range wr.Morphemes {
				morphemes = append(morphemes, domain.Morpheme{
					ID:       uuid.New(),
					WordID:   word.ID,
					Segment:  mr.Segment,
					Gloss:    mr.Gloss,
					POS:      mr.POS,
					Language: mr.Language,
					Type:     mr.Type,
					Position: mi,
				})
			}
		}
	}

	result.Utterances = len(utterances)
	result.Words = len(words)
	result.Morphemes = len(morphemes)

	if p.cfg.DryRun {
		return result
	}

	err = p.repo.RunInTx(ctx, func(txCtx context.Context) error {
		inserted, err := p.repo.InsertSession(txCtx, session)
		if err != nil {
			return err
		}
		if !inserted {
			p.log.Info("session already loaded, skipping",
				slog.String("corpus", cc.Name),
				slog.String("path", path),
			)
			result = SessionResult{Corpus: cc.Name, Path: path, Skipped: len(records)}
			return nil
		}

		if _, err := batchProcess(speakers, p.cfg.BatchSize, func(batch []domain.Speaker) (int, error) {
			return p.repo.BulkInsertSpeakers(txCtx, batch)
		}); err != nil {
			return fmt.Errorf("insert speakers: %w", err)
		}
		if _, err := batchProcess(utterances, p.cfg.BatchSize, func(batch []domain.Utterance) (int, error) {
			return p.repo.BulkInsertUtterances(txCtx, batch)
		}); err != nil {
			return fmt.Errorf("insert utterances: %w", err)
		}
		if _, err := batchProcess(words, p.cfg.BatchSize, func(batch []domain.Word) (int, error) {
			return p.repo.BulkInsertWords(txCtx, batch)
		}); err != nil {
			return fmt.Errorf("insert words: %w", err)
		}
		if _, err := batchProcess(morphemes, p.cfg.BatchSize, func(batch []domain.Morpheme) (int, error) {
			return p.repo.BulkInsertMorphemes(txCtx, batch)
		}); err != nil {
			return fmt.Errorf("insert morphemes: %w", err)
		}
		return nil
	})
	if err != nil {
		result.Err = err
	}
	return result
}

// readSession parses one session file into records plus whatever session
// metadata the format carries.
func readSession(format, path string) ([]sessionRecord, []domain.Speaker, string, error) {
	switch format {
	case config.FormatCHAT:
		sess, err := chat.ParseFile(path)
		if err != nil {
			return nil, nil, "", err
		}
		if len(sess.Records) == 0 {
			return nil, nil, "", fmt.Errorf("no records in %s: %w", path, domain.ErrMalformedRecord)
		}
		records := make([]sessionRecord, len(sess.Records))
		for i, rec := range sess.Records {
			records[i] = sessionRecord{rec: rec, sourceID: fmt.Sprintf("u%d", i)}
		}
		speakers := make([]domain.Speaker, len(sess.Metadata.Participants))
		for i, pt := range sess.Metadata.Participants {
			speakers[i] = domain.Speaker{
				Label:    pt.Label,
				Name:     pt.Name,
				Role:     pt.Role,
				Age:      pt.Age,
				Gender:   pt.Gender,
				Language: pt.Language,
			}
		}
		return records, speakers, sess.Metadata.Date, nil

	case config.FormatToolbox:
		sess, err := toolbox.ParseFile(path)
		if err != nil {
			return nil, nil, "", err
		}
		if len(sess.Records) == 0 {
			return nil, nil, "", fmt.Errorf("no records in %s: %w", path, domain.ErrMalformedRecord)
		}
		records := make([]sessionRecord, len(sess.Records))
		for i, rec := range sess.Records {
			sourceID := rec.Ref()
			if sourceID == "" {
				sourceID = fmt.Sprintf("u%d", i)
			}
			records[i] = sessionRecord{rec: rec, sourceID: sourceID}
		}
		return records, nil, "", nil
	}
	return nil, nil, "", fmt.Errorf("unsupported session format %q", format)
}

// speakersFromRecords derives the speaker roster from the records when
// the format declares none, in order of first appearance.
func speakersFromRecords(records []sessionRecord) []domain.Speaker {
	seen := make(map[string]bool)
	var speakers []domain.Speaker
	for _, sr := range records {
		label := sr.rec.SpeakerLabel()
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		speakers = append(speakers, domain.Speaker{Label: label})
	}
	return speakers
}

// sessionExtensions maps a session format to the file extension its
// transcripts use.
var sessionExtensions = map[string]string{
	config.FormatCHAT:    ".cha",
	config.FormatToolbox: ".txt",
}

// listSessionFiles walks a corpus directory and returns its session
// files in sorted order.
func listSessionFiles(cc config.CorpusConfig) ([]string, error) {
	ext, ok := sessionExtensions[cc.Format]
	if !ok {
		return nil, fmt.Errorf("unsupported session format %q", cc.Format)
	}

	var files []string
	err := filepath.WalkDir(cc.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ext {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// filterCorpora keeps configured corpora matching the requested names,
// preserving configuration order. Requesting a corpus that is not
// configured is an error.
func filterCorpora(corpora []config.CorpusConfig, names []string) ([]config.CorpusConfig, error) {
	if len(names) == 0 {
		return corpora, nil
	}

	byName := make(map[string]bool, len(corpora))
	for _, cc := range corpora {
		byName[cc.Name] = true
	}
	filter := make(map[string]bool, len(names))
	for _, name := range names {
		if !byName[name] {
			return nil, fmt.Errorf("corpus %q is not configured", name)
		}
		filter[name] = true
	}

	var filtered []config.CorpusConfig
	for _, cc := range corpora {
		if filter[cc.Name] {
			filtered = append(filtered, cc)
		}
	}
	return filtered, nil
}

// batchProcess splits items into batches and processes each via fn.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
