package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"sanalista/internal/wordcheck"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains input, output and state locations.
type Paths struct {
	Input     string `toml:"input"`
	Output    string `toml:"output"`
	LogDir    string `toml:"log_dir"`
	HistoryDB string `toml:"history_db"`
}

// Filter selects which lexicon entries end up in the word list.
type Filter struct {
	AcceptPronouns      bool `toml:"accept_pronouns"`
	AcceptInterjections bool `toml:"accept_interjections"`
	AcceptNumerals      bool `toml:"accept_numerals"`
	AcceptSubstantives  bool `toml:"accept_substantives"`
	AcceptAdjectives    bool `toml:"accept_adjectives"`
	AcceptVerbs         bool `toml:"accept_verbs"`
	AcceptCompoundWords bool `toml:"accept_compound_words"`
	// StrictHomonymGroups applies the spelling and tile checks to homonym
	// groups as well. Off by default.
	StrictHomonymGroups bool `toml:"strict_homonym_groups"`
}

// Reader contains lexicon parsing switches.
type Reader struct {
	NormalizeUnicode bool `toml:"normalize_unicode"`
}

// Output contains word list writing switches.
type Output struct {
	Lock bool `toml:"lock"`
}

// History controls the run history database.
type History struct {
	Enabled bool `toml:"enabled"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for sanalista.
//
// Configuration sections by subsystem:
//   - Paths: lexicon input, word list output, log and history locations
//   - Filter: accepted word classes
//   - Reader: Unicode normalization of lexicon fields
//   - Output: advisory lock on the word list
//   - History: SQLite record of completed runs
//   - Logging: log format and level
type Config struct {
	Paths   Paths   `toml:"paths"`
	Filter  Filter  `toml:"filter"`
	Reader  Reader  `toml:"reader"`
	Output  Output  `toml:"output"`
	History History `toml:"history"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// ResolvePath reports which configuration file Load would read for path and
// whether it exists.
func ResolvePath(path string) (string, bool, error) {
	return resolveConfigPath(strings.TrimSpace(path))
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath(defaultConfigPath)
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs(projectConfigName)
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the log directory and the history database
// directory when history is enabled.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.LogDir}
	if c.History.Enabled {
		dirs = append(dirs, filepath.Dir(c.Paths.HistoryDB))
	}
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// Policy returns the word-class policy described by the filter section.
func (c Config) Policy() wordcheck.Policy {
	return wordcheck.Policy{
		AcceptPronouns:      c.Filter.AcceptPronouns,
		AcceptInterjections: c.Filter.AcceptInterjections,
		AcceptNumerals:      c.Filter.AcceptNumerals,
		AcceptSubstantives:  c.Filter.AcceptSubstantives,
		AcceptAdjectives:    c.Filter.AcceptAdjectives,
		AcceptVerbs:         c.Filter.AcceptVerbs,
		AcceptCompoundWords: c.Filter.AcceptCompoundWords,
	}
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
