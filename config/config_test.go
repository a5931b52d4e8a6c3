package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "combolex.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
sources:
  std_dir: "./dumps/std"
  urimal_dir: "./dumps/urimal"
  basic_dir: "./dumps/basic"

lexicon:
  jsonl_path: "./out/lexicon.jsonl.gz"
  trie_path: "./out/lexicon.trie"
  concurrency: 8

search:
  beam_width: 128
  max_candidates: 50
  keep_order: false

log:
  level: "debug"
  format: "json"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Sources.STDDir != "./dumps/std" {
		t.Errorf("sources.std_dir = %q, want %q", cfg.Sources.STDDir, "./dumps/std")
	}
	if cfg.Lexicon.Concurrency != 8 {
		t.Errorf("lexicon.concurrency = %d, want 8", cfg.Lexicon.Concurrency)
	}
	if cfg.Search.BeamWidth != 128 {
		t.Errorf("search.beam_width = %d, want 128", cfg.Search.BeamWidth)
	}
	if cfg.Search.MaxCandidates != 50 {
		t.Errorf("search.max_candidates = %d, want 50", cfg.Search.MaxCandidates)
	}
	if cfg.Search.KeepOrder {
		t.Error("search.keep_order should be false")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "json")
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("COMBOLEX_BEAM_WIDTH", "256")
	t.Setenv("COMBOLEX_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Search.BeamWidth != 256 {
		t.Errorf("search.beam_width = %d, want 256 (ENV override)", cfg.Search.BeamWidth)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Search.BeamWidth != 64 {
		t.Errorf("search.beam_width = %d, want 64 (default)", cfg.Search.BeamWidth)
	}
	if cfg.Search.MaxCandidates != 20 {
		t.Errorf("search.max_candidates = %d, want 20 (default)", cfg.Search.MaxCandidates)
	}
	if cfg.Lexicon.Concurrency != 4 {
		t.Errorf("lexicon.concurrency = %d, want 4 (default)", cfg.Lexicon.Concurrency)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/combolex.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoad_RejectsInvalidBoundaries(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `
search:
  beam_width: 0
  max_candidates: 20
`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for search.beam_width = 0")
	}
}

func validConfig() Config {
	return Config{
		Lexicon: LexiconConfig{Concurrency: 4},
		Search:  SearchConfig{BeamWidth: 64, MaxCandidates: 20, KeepOrder: true},
	}
}

func TestValidate_BeamWidthZero(t *testing.T) {
	cfg := validConfig()
	cfg.Search.BeamWidth = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for BeamWidth = 0")
	}
}

func TestValidate_BeamWidthNegative(t *testing.T) {
	cfg := validConfig()
	cfg.Search.BeamWidth = -1

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative BeamWidth")
	}
}

func TestValidate_MaxCandidatesZero(t *testing.T) {
	cfg := validConfig()
	cfg.Search.MaxCandidates = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for MaxCandidates = 0")
	}
}

func TestValidate_ConcurrencyZero(t *testing.T) {
	cfg := validConfig()
	cfg.Lexicon.Concurrency = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for Concurrency = 0")
	}
}

func TestValidate_ConcurrencyNegative(t *testing.T) {
	cfg := validConfig()
	cfg.Lexicon.Concurrency = -3

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative Concurrency")
	}
}

func TestValidate_BoundaryValuesAccepted(t *testing.T) {
	cfg := validConfig()
	cfg.Search.BeamWidth = 1
	cfg.Search.MaxCandidates = 1
	cfg.Lexicon.Concurrency = 1

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error for boundary values: %v", err)
	}
}
