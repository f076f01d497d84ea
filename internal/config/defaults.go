package config

const (
	defaultConfigPath  = "~/.config/libris/config.toml"
	projectConfigName  = "libris.toml"
	defaultLogDir      = "~/.local/share/libris/logs"
	defaultHistoryFile = "~/.local/share/libris/history"
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
	defaultMaxDistance = 2
	maxMaxDistance     = 5
	logFileName        = "libris.log"
)

const (
	envSeedFile  = "LIBRIS_SEED_FILE"
	envLogLevel  = "LIBRIS_LOG_LEVEL"
	envLogFormat = "LIBRIS_LOG_FORMAT"
)

// Default returns a Config populated with libris defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir:      defaultLogDir,
			HistoryFile: defaultHistoryFile,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Matching: Matching{
			MaxDistance: defaultMaxDistance,
		},
	}
}
