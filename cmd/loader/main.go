// Command loader ingests child-language transcript corpora into
// PostgreSQL. It is intended to be run offline, not as a server.
//
// Flags:
//
//	--corpus   comma-separated list of corpora to load (default: all configured)
//	--dry-run  parse and clean sessions without writing to DB
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/acqcorpus/internal/adapter/postgres"
	"github.com/heartmarshall/acqcorpus/internal/adapter/postgres/corpusrepo"
	"github.com/heartmarshall/acqcorpus/internal/app"
	"github.com/heartmarshall/acqcorpus/internal/app/loader"
	"github.com/heartmarshall/acqcorpus/internal/config"
)

// Compile-time interface assertion.
var _ loader.CorpusBulkRepo = (*corpusrepo.Repo)(nil)

func main() {
	corpusFlag := flag.String("corpus", "", "comma-separated corpora to load (default: all configured)")
	dryRunFlag := flag.Bool("dry-run", false, "parse and clean sessions without writing to DB")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting loader",
		slog.String("version", app.BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	var corpora []string
	if *corpusFlag != "" {
		corpora = strings.Split(*corpusFlag, ",")
		for i := range corpora {
			corpora[i] = strings.TrimSpace(corpora[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
	defer cancel()

	// A dry run never touches the repo, so it works without a database.
	var repo loader.CorpusBulkRepo
	if !*dryRunFlag {
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			logger.Error("connect to database", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()

		repo = corpusrepo.New(pool, postgres.NewTxManager(pool))
	}

	pipeline := loader.NewPipeline(logger, repo, loader.Config{
		BatchSize: cfg.Loader.BatchSize,
		DryRun:    *dryRunFlag,
	})
	if err := pipeline.Run(ctx, cfg.Loader.Corpora, corpora); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with session errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
