package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.Input, err = expandPath(strings.TrimSpace(c.Paths.Input)); err != nil {
		return fmt.Errorf("paths.input: %w", err)
	}
	if c.Paths.Output, err = expandPath(strings.TrimSpace(c.Paths.Output)); err != nil {
		return fmt.Errorf("paths.output: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if value, ok := os.LookupEnv(historyDBPathEnvVar); ok && strings.TrimSpace(value) != "" {
		c.Paths.HistoryDB = value
	}
	if strings.TrimSpace(c.Paths.HistoryDB) == "" {
		c.Paths.HistoryDB = defaultHistoryDB
	}
	if c.Paths.HistoryDB, err = expandPath(strings.TrimSpace(c.Paths.HistoryDB)); err != nil {
		return fmt.Errorf("paths.history_db: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	if value, ok := os.LookupEnv(logFormatEnvVar); ok && strings.TrimSpace(value) != "" {
		c.Logging.Format = value
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	if value, ok := os.LookupEnv(logLevelEnvVar); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
