package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.applyEnv()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeSentiment(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

// applyEnv lets LIBRIS_* variables override file values. Blank variables are
// ignored.
func (c *Config) applyEnv() {
	if value, ok := lookupEnv(envSeedFile); ok {
		c.Paths.SeedFile = value
	}
	if value, ok := lookupEnv(envLogLevel); ok {
		c.Logging.Level = value
	}
	if value, ok := lookupEnv(envLogFormat); ok {
		c.Logging.Format = value
	}
}

func lookupEnv(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	return value, value != ""
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.SeedFile, err = expandPath(strings.TrimSpace(c.Paths.SeedFile)); err != nil {
		return fmt.Errorf("paths.seed_file: %w", err)
	}
	if c.Paths.HistoryFile, err = expandPath(strings.TrimSpace(c.Paths.HistoryFile)); err != nil {
		return fmt.Errorf("paths.history_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeSentiment() error {
	var err error
	if c.Sentiment.LexiconFile, err = expandPath(strings.TrimSpace(c.Sentiment.LexiconFile)); err != nil {
		return fmt.Errorf("sentiment.lexicon_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
