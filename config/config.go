// Package config loads the build-time and search-time settings used by
// cmd/buildlexicon and the combo search engine, following the same
// YAML-plus-ENV layering as the rest of the corpus (spec 10.3).
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root configuration for lexicon building and combo search.
type Config struct {
	Sources SourcesConfig `yaml:"sources"`
	Lexicon LexiconConfig `yaml:"lexicon"`
	Search  SearchConfig  `yaml:"search"`
	Log     LogConfig     `yaml:"log"`
}

// SourcesConfig points at the on-disk dictionary dumps by source tag
// (spec 4.B).
type SourcesConfig struct {
	STDDir    string `yaml:"std_dir"    env:"COMBOLEX_STD_DIR"`
	URIMALDir string `yaml:"urimal_dir" env:"COMBOLEX_URIMAL_DIR"`
	BasicDir  string `yaml:"basic_dir"  env:"COMBOLEX_BASIC_DIR"`
}

// LexiconConfig controls how the merged lexicon is built and persisted
// (spec 4.B, 4.C, 4.E).
type LexiconConfig struct {
	JSONLPath     string `yaml:"jsonl_path"     env:"COMBOLEX_JSONL_PATH"     env-default:"./data/lexicon.jsonl.gz"`
	TriePath      string `yaml:"trie_path"      env:"COMBOLEX_TRIE_PATH"      env-default:"./data/lexicon.trie"`
	Concurrency   int    `yaml:"concurrency"    env:"COMBOLEX_CONCURRENCY"    env-default:"4"`
}

// SearchConfig carries the combo search engine's tunables (spec 4.F, 6).
type SearchConfig struct {
	BeamWidth     int  `yaml:"beam_width"     env:"COMBOLEX_BEAM_WIDTH"     env-default:"64"`
	MaxCandidates int  `yaml:"max_candidates" env:"COMBOLEX_MAX_CANDIDATES" env-default:"20"`
	KeepOrder     bool `yaml:"keep_order"     env:"COMBOLEX_KEEP_ORDER"     env-default:"true"`
}

// LogConfig holds logging settings (spec 10.1).
type LogConfig struct {
	Level  string `yaml:"level"  env:"COMBOLEX_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"COMBOLEX_LOG_FORMAT" env-default:"text"`
}

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags). The YAML path
// comes from CONFIG_PATH, falling back to ./combolex.yaml; if no file
// exists and CONFIG_PATH was not set explicitly, configuration comes from
// ENV plus defaults only.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./combolex.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// Validate checks the tunables the search engine rejects at the boundary
// (spec 7, InvalidArgument) before they ever reach combo.Search.
func (c *Config) Validate() error {
	if c.Search.BeamWidth < 1 {
		return fmt.Errorf("search.beam_width must be >= 1, got %d", c.Search.BeamWidth)
	}
	if c.Search.MaxCandidates < 1 {
		return fmt.Errorf("search.max_candidates must be >= 1, got %d", c.Search.MaxCandidates)
	}
	if c.Lexicon.Concurrency < 1 {
		return fmt.Errorf("lexicon.concurrency must be >= 1, got %d", c.Lexicon.Concurrency)
	}
	return nil
}
