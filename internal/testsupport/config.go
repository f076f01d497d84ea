package testsupport

import (
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"libris/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a unique temp directory per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Paths.HistoryFile = filepath.Join(base, "state", "history")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithSeed writes contents to seed.toml under the test directory and points
// the config at it.
func WithSeed(contents string) ConfigOption {
	return func(b *configBuilder) {
		path := filepath.Join(b.baseDir, "seed.toml")
		WriteFile(b.t, path, contents)
		b.cfg.Paths.SeedFile = path
	}
}

// WithMaxDistance overrides the matching threshold.
func WithMaxDistance(d int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Matching.MaxDistance = d
	}
}

// WithLexicon writes a lexicon override file and points the config at it.
func WithLexicon(contents string) ConfigOption {
	return func(b *configBuilder) {
		path := filepath.Join(b.baseDir, "lexicon.toml")
		WriteFile(b.t, path, contents)
		b.cfg.Sentiment.LexiconFile = path
	}
}

// WriteConfig encodes cfg to config.toml next to its log directory and
// returns the path.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(BaseDir(cfg), "config.toml")
	WriteFile(t, path, string(data))
	return path
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.LogDir)
}
