package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"libris/internal/config"
)

func clearLibrisEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"LIBRIS_SEED_FILE", "LIBRIS_LOG_LEVEL", "LIBRIS_LOG_FORMAT"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	clearLibrisEnv(t)
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if want := filepath.Join(tempHome, ".config", "libris", "config.toml"); resolved != want {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, want)
	}
	if want := filepath.Join(tempHome, ".local", "share", "libris", "logs"); cfg.Paths.LogDir != want {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, want)
	}
	if want := filepath.Join(tempHome, ".local", "share", "libris", "logs", "libris.log"); cfg.LogFile() != want {
		t.Fatalf("unexpected log file: got %q want %q", cfg.LogFile(), want)
	}
	if cfg.Paths.SeedFile != "" {
		t.Fatalf("expected no default seed file, got %q", cfg.Paths.SeedFile)
	}
	if cfg.Matching.MaxDistance != 2 {
		t.Fatalf("expected default max distance 2, got %d", cfg.Matching.MaxDistance)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadCustomPath(t *testing.T) {
	clearLibrisEnv(t)
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "libris.toml")

	type payload struct {
		Paths struct {
			SeedFile string `toml:"seed_file"`
		} `toml:"paths"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
		Matching struct {
			MaxDistance int `toml:"max_distance"`
		} `toml:"matching"`
	}
	custom := payload{}
	custom.Paths.SeedFile = filepath.Join(tempDir, "seed.toml")
	custom.Logging.Format = "JSON"
	custom.Logging.Level = " Debug "
	custom.Matching.MaxDistance = 1
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.SeedFile != custom.Paths.SeedFile {
		t.Fatalf("expected seed file from config, got %q", cfg.Paths.SeedFile)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging values, got %+v", cfg.Logging)
	}
	if cfg.Matching.MaxDistance != 1 {
		t.Fatalf("expected max distance 1, got %d", cfg.Matching.MaxDistance)
	}
}

func TestLoadFindsProjectConfig(t *testing.T) {
	clearLibrisEnv(t)
	t.Setenv("HOME", t.TempDir())
	workDir := t.TempDir()
	t.Chdir(workDir)

	if err := os.WriteFile("libris.toml", []byte("[matching]\nmax_distance = 3\n"), 0o644); err != nil {
		t.Fatalf("write project config: %v", err)
	}
	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || filepath.Base(resolved) != "libris.toml" {
		t.Fatalf("expected project config, got %q exists=%t", resolved, exists)
	}
	if cfg.Matching.MaxDistance != 3 {
		t.Fatalf("expected max distance 3, got %d", cfg.Matching.MaxDistance)
	}
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "libris.toml")
	contents := "[paths]\nseed_file = \"file-seed.toml\"\n[logging]\nlevel = \"warn\"\nformat = \"console\"\n"
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	envSeed := filepath.Join(tempDir, "env-seed.toml")
	t.Setenv("LIBRIS_SEED_FILE", envSeed)
	t.Setenv("LIBRIS_LOG_LEVEL", "debug")
	t.Setenv("LIBRIS_LOG_FORMAT", "json")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.SeedFile != envSeed {
		t.Errorf("expected seed file from env, got %q", cfg.Paths.SeedFile)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected level from env, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected format from env, got %q", cfg.Logging.Format)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	clearLibrisEnv(t)
	configPath := filepath.Join(t.TempDir(), "libris.toml")
	if err := os.WriteFile(configPath, []byte("[matching\nmax_distance = "), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	clearLibrisEnv(t)
	configPath := filepath.Join(t.TempDir(), "libris.toml")
	if err := os.WriteFile(configPath, []byte("[matching]\nmax_distanse = 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, _, _, err := config.Load(configPath)
	if err == nil || !strings.Contains(err.Error(), "max_distanse") {
		t.Fatalf("expected unknown key error naming max_distanse, got %v", err)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Matching.MaxDistance != 2 {
		t.Fatalf("expected sample max distance 2, got %d", cfg.Matching.MaxDistance)
	}
	if !strings.Contains(cfg.Paths.LogDir, "libris") {
		t.Fatalf("expected log dir to contain libris, got %q", cfg.Paths.LogDir)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"negative distance", func(c *config.Config) { c.Matching.MaxDistance = -1 }},
		{"distance too large", func(c *config.Config) { c.Matching.MaxDistance = 6 }},
		{"unknown format", func(c *config.Config) { c.Logging.Format = "xml" }},
		{"unknown level", func(c *config.Config) { c.Logging.Level = "verbose" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate, got %v", err)
	}
}

func TestEnsureDirectoriesAndEncode(t *testing.T) {
	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Paths.HistoryFile = filepath.Join(base, "state", "history")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.LogDir, filepath.Dir(cfg.Paths.HistoryFile)} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Fatalf("expected directory %s: %v", dir, err)
		}
	}

	var buf bytes.Buffer
	if err := cfg.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	var decoded config.Config
	if err := toml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode encoded config: %v", err)
	}
	if decoded != cfg {
		t.Fatalf("round trip mismatch: got %+v want %+v", decoded, cfg)
	}
}
