package config

const (
	defaultConfigPath   = "~/.config/sanalista/config.toml"
	projectConfigName   = "sanalista.toml"
	defaultLogDir       = "~/.local/share/sanalista/logs"
	defaultHistoryDB    = "~/.local/share/sanalista/history.db"
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
	logLevelEnvVar      = "SANALISTA_LOG_LEVEL"
	logFormatEnvVar     = "SANALISTA_LOG_FORMAT"
	historyDBPathEnvVar = "SANALISTA_HISTORY_DB"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:    defaultLogDir,
			HistoryDB: defaultHistoryDB,
		},
		Filter: Filter{
			AcceptPronouns:      false,
			AcceptInterjections: false,
			AcceptNumerals:      true,
			AcceptSubstantives:  true,
			AcceptAdjectives:    true,
			AcceptVerbs:         true,
			AcceptCompoundWords: true,
		},
		Reader: Reader{
			NormalizeUnicode: true,
		},
		Output: Output{
			Lock: true,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
