package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"libris/internal/catalog"
	"libris/internal/config"
	"libris/internal/desk"
	"libris/internal/logging"
	"libris/internal/sentiment"
)

type commandContext struct {
	configFlag *string
	seedFlag   *string
	jsonFlag   *bool
	invocation string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	loggerOnce sync.Once
	sessionID  string
	logger     *slog.Logger
	loggerErr  error

	catalogOnce sync.Once
	catalog     *catalog.Catalog
	catalogErr  error
}

func newCommandContext(configFlag, seedFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		seedFlag:   seedFlag,
		jsonFlag:   jsonFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.sessionID = uuid.NewString()
		logger, err := logging.NewFromConfig(cfg, logging.Run{SessionID: c.sessionID, Command: c.invocation})
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// ensureCatalog builds the catalog once per process: scorer with lexicon
// overrides, matching threshold, then the seed file if one is configured.
func (c *commandContext) ensureCatalog() (*catalog.Catalog, error) {
	c.catalogOnce.Do(func() {
		c.catalog, c.catalogErr = c.buildCatalog()
	})
	return c.catalog, c.catalogErr
}

func (c *commandContext) buildCatalog() (*catalog.Catalog, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	scorer := sentiment.Default()
	if cfg.Sentiment.LexiconFile != "" {
		scorer = sentiment.NewVader()
		if err := scorer.LoadOverrides(cfg.Sentiment.LexiconFile); err != nil {
			return nil, err
		}
	}

	cat := catalog.New(
		catalog.WithLogger(logger),
		catalog.WithMaxDistance(cfg.Matching.MaxDistance),
		catalog.WithScorer(scorer),
	)

	seedPath, err := c.seedPath(cfg)
	if err != nil {
		return nil, err
	}
	if seedPath != "" {
		seed, err := catalog.LoadSeed(seedPath)
		if err != nil {
			return nil, err
		}
		if err := seed.Apply(cat); err != nil {
			return nil, fmt.Errorf("load seed %s: %w", seedPath, err)
		}
	}

	stats := cat.Stats()
	logger.Info("catalog ready",
		logging.String("seed", seedPath),
		logging.Int("books", stats.Books),
		logging.Int("borrowers", stats.Borrowers),
		logging.Int("max_distance", cat.MaxDistance()),
	)
	return cat, nil
}

func (c *commandContext) seedPath(cfg *config.Config) (string, error) {
	if c.seedFlag != nil {
		if flag := strings.TrimSpace(*c.seedFlag); flag != "" {
			expanded, err := config.ExpandPath(flag)
			if err != nil {
				return "", fmt.Errorf("resolve seed path: %w", err)
			}
			return expanded, nil
		}
	}
	return cfg.Paths.SeedFile, nil
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// tableFormat draws rounded tables for terminals and ASCII otherwise.
func tableFormat(w io.Writer) desk.Format {
	if isTerminal(w) {
		return desk.Styled
	}
	return desk.Plain
}

func isTerminal(stream any) bool {
	file, ok := stream.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
