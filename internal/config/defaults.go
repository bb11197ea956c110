package config

import "github.com/bnema/tabshell/internal/domain/entity"

// Default configuration constants
const (
	defaultHomeURL   = "https://www.google.com/"
	defaultSearchURL = "https://www.google.com/search"

	defaultScreenshotScale = 0.5
	defaultArchiveAfter    = entity.ArchiveAfterNever

	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// DefaultConfig returns the configuration used when no file exists.
// Paths are left empty and resolved against XDG directories on Load.
func DefaultConfig() *Config {
	return &Config{
		HomeURL:   defaultHomeURL,
		SearchURL: defaultSearchURL,
		Screenshots: ScreenshotsConfig{
			Scale: defaultScreenshotScale,
		},
		Tabs: TabsConfig{
			ArchiveAfter: defaultArchiveAfter,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
