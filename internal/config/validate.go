package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.Input != "" && c.Paths.Input == c.Paths.Output {
		return errors.New("paths.output must differ from paths.input")
	}
	if c.History.Enabled && strings.TrimSpace(c.Paths.HistoryDB) == "" {
		return errors.New("paths.history_db must be set when history.enabled is true")
	}
	return nil
}

// Warnings lists settings that are valid but probably unintended.
func (c *Config) Warnings() []string {
	var warnings []string
	f := c.Filter
	if !f.AcceptPronouns && !f.AcceptInterjections && !f.AcceptNumerals &&
		!f.AcceptSubstantives && !f.AcceptAdjectives && !f.AcceptVerbs {
		warnings = append(warnings, "filter: no word class is accepted, the word list will be empty")
	}
	return warnings
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q (use debug, info, warn or error)", c.Logging.Level)
	}
}
