package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Loader.BatchSize <= 0 {
		return fmt.Errorf("loader.batch_size must be > 0 (got %d)", c.Loader.BatchSize)
	}

	seen := make(map[string]bool, len(c.Loader.Corpora))
	for i, corpus := range c.Loader.Corpora {
		if err := corpus.validate(); err != nil {
			return fmt.Errorf("loader.corpora[%d]: %w", i, err)
		}
		if seen[corpus.Name] {
			return fmt.Errorf("loader.corpora[%d]: duplicate corpus %q", i, corpus.Name)
		}
		seen[corpus.Name] = true
	}

	return nil
}

func (c CorpusConfig) validate() error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.Format != FormatCHAT && c.Format != FormatToolbox {
		return fmt.Errorf("format must be %q or %q (got %q)", FormatCHAT, FormatToolbox, c.Format)
	}
	if c.Dir == "" {
		return fmt.Errorf("dir is required")
	}
	return nil
}
