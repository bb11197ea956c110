package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/bnema/tabshell/internal/domain/entity"
	"github.com/bnema/tabshell/internal/logging"
)

const configDirPerm = 0o755

// Config represents the complete configuration for tabshell.
type Config struct {
	// HomeURL is the canonical home page; tabs showing it display a placeholder.
	HomeURL string `mapstructure:"home_url" toml:"home_url" yaml:"home_url"`
	// SearchURL is the canonical search prefix; a q parameter on it is shown as the query.
	SearchURL   string            `mapstructure:"search_url" toml:"search_url" yaml:"search_url"`
	Database    DatabaseConfig    `mapstructure:"database" toml:"database" yaml:"database"`
	Screenshots ScreenshotsConfig `mapstructure:"screenshots" toml:"screenshots" yaml:"screenshots"`
	Favicons    FaviconsConfig    `mapstructure:"favicons" toml:"favicons" yaml:"favicons"`
	Tabs        TabsConfig        `mapstructure:"tabs" toml:"tabs" yaml:"tabs"`
	Logging     LoggingConfig     `mapstructure:"logging" toml:"logging" yaml:"logging"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" yaml:"path"`
}

// ScreenshotsConfig controls tab thumbnail capture.
type ScreenshotsConfig struct {
	Dir   string  `mapstructure:"dir" toml:"dir" yaml:"dir"`
	Scale float64 `mapstructure:"scale" toml:"scale" yaml:"scale"`
}

// FaviconsConfig controls the favicon disk cache.
type FaviconsConfig struct {
	Dir string `mapstructure:"dir" toml:"dir" yaml:"dir"`
}

// TabsConfig holds tab lifecycle behaviour.
type TabsConfig struct {
	ArchiveAfter entity.ArchiveAfter `mapstructure:"archive_after" toml:"archive_after" yaml:"archive_after"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" yaml:"level"`
	Format string `mapstructure:"format" toml:"format" yaml:"format"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	configDir string
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager rooted at the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w", err)
	}
	return NewManagerWithDir(configDir)
}

// NewManagerWithDir creates a configuration manager reading config.toml from dir.
func NewManagerWithDir(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	v.SetEnvPrefix("TABSHELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "TABSHELL_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind TABSHELL_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "TABSHELL_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind TABSHELL_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is not an error: defaults are used.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadLocked()
}

func (m *Manager) loadLocked() error {
	m.setDefaults()

	if err := m.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}

	if err := resolvePaths(config); err != nil {
		return err
	}

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

// Get returns the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config == nil {
		return DefaultConfig()
	}
	return m.config
}

// ConfigFile returns the path of the config file in use (or expected).
func (m *Manager) ConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(m.configDir, "config.toml")
}

// OnConfigChange registers a callback fired after every successful reload.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

// Watch starts watching the config file for changes and reloads automatically.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	if err := os.MkdirAll(m.configDir, configDirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log := logging.NewFromEnv()
		log.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config change detected")

		m.mu.Lock()
		if err := m.loadLocked(); err != nil {
			m.mu.Unlock()
			log.Warn().Err(err).Msg("failed to reload config")
			return
		}
		config := m.config
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.Unlock()

		for _, cb := range callbacks {
			cb(config)
		}
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

func (m *Manager) setDefaults() {
	d := DefaultConfig()
	m.viper.SetDefault("home_url", d.HomeURL)
	m.viper.SetDefault("search_url", d.SearchURL)
	m.viper.SetDefault("database.path", "")
	m.viper.SetDefault("screenshots.dir", "")
	m.viper.SetDefault("screenshots.scale", d.Screenshots.Scale)
	m.viper.SetDefault("favicons.dir", "")
	m.viper.SetDefault("tabs.archive_after", string(d.Tabs.ArchiveAfter))
	m.viper.SetDefault("logging.level", d.Logging.Level)
	m.viper.SetDefault("logging.format", d.Logging.Format)
}

// resolvePaths fills empty storage paths from XDG directories.
func resolvePaths(config *Config) error {
	if config.Database.Path != "" && config.Screenshots.Dir != "" && config.Favicons.Dir != "" {
		return nil
	}
	dirs, err := GetXDGDirs()
	if err != nil {
		return fmt.Errorf("failed to resolve XDG directories: %w", err)
	}
	if config.Database.Path == "" {
		config.Database.Path = filepath.Join(dirs.DataHome, databaseName)
	}
	if config.Screenshots.Dir == "" {
		config.Screenshots.Dir = filepath.Join(dirs.CacheHome, "tab_screenshots")
	}
	if config.Favicons.Dir == "" {
		config.Favicons.Dir = filepath.Join(dirs.CacheHome, "favicons")
	}
	return nil
}
