package config

import "time"

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Loader   LoaderConfig   `yaml:"loader"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// LoaderConfig holds ingestion settings. Corpora come from YAML only;
// there is no sensible env encoding for a list of corpus blocks.
type LoaderConfig struct {
	BatchSize int            `yaml:"batch_size" env:"LOADER_BATCH_SIZE" env-default:"500"`
	Corpora   []CorpusConfig `yaml:"corpora"`
}

// CorpusConfig describes one corpus to ingest: which cleaner variant to
// dispatch on (Name), the transcript format, and where the session files
// live.
type CorpusConfig struct {
	Name   string `yaml:"name"`
	Format string `yaml:"format"`
	Dir    string `yaml:"dir"`
}

// Transcript formats accepted in CorpusConfig.Format.
const (
	FormatCHAT    = "cha"
	FormatToolbox = "toolbox"
)
