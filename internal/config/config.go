package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete flashdeck configuration
type Config struct {
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	TUI     TUIConfig     `mapstructure:"tui" yaml:"tui"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// StorageConfig controls where decks are persisted
type StorageConfig struct {
	// DecksFile is the JSON document holding every deck (default: "flashcard_decks.json").
	// Relative paths resolve against the working directory. Supports ~ expansion.
	DecksFile string `mapstructure:"decks_file" yaml:"decks_file"`
	// Watch warns in the menu when the decks file is modified by another program (default: true)
	Watch bool `mapstructure:"watch" yaml:"watch"`
}

// TUIConfig controls the terminal UI behavior
type TUIConfig struct {
	// Theme is the color theme (default: "default")
	// Options: "default", "monokai", "dracula", "nord"
	Theme string `mapstructure:"theme" yaml:"theme"`
	// Interactive selects the study screen: "auto" uses the full-screen view when
	// attached to a terminal, "always" forces it, "never" uses line prompts.
	Interactive string `mapstructure:"interactive" yaml:"interactive"`
	// ClearScreen clears the terminal between menu screens (default: true)
	ClearScreen bool `mapstructure:"clear_screen" yaml:"clear_screen"`
	// AltScreen runs the study screen in the terminal's alternate screen (default: true)
	AltScreen bool `mapstructure:"alt_screen" yaml:"alt_screen"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: false)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is the directory holding flashdeck.log (default: the config directory)
	Dir string `mapstructure:"dir" yaml:"dir"`
	// MaxSizeMB is the maximum log file size in megabytes before rotation (default: 5)
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	// MaxBackups is the number of backup log files to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
	// MaxAgeDays removes rotated logs older than this (default: 28, 0 = keep forever)
	MaxAgeDays int `mapstructure:"max_age_days" yaml:"max_age_days"`
	// Compress gzips rotated logs (default: false)
	Compress bool `mapstructure:"compress" yaml:"compress"`
}

// Interactive modes for the study screen
const (
	InteractiveAuto   = "auto"
	InteractiveAlways = "always"
	InteractiveNever  = "never"
)

// ResolveDecksFile returns the absolute path of the decks file.
// A leading ~ expands to the user's home directory and relative paths are
// resolved against baseDir.
func (s *StorageConfig) ResolveDecksFile(baseDir string) string {
	path := s.DecksFile
	if path == "" {
		path = Default().Storage.DecksFile
	}

	path = expandHome(path)
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	return path
}

// ResolveDir returns the directory logs are written to.
func (l *LoggingConfig) ResolveDir() string {
	if l.Dir == "" {
		return ConfigDir()
	}
	return expandHome(l.Dir)
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
	}
	return path
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			DecksFile: "flashcard_decks.json",
			Watch:     true,
		},
		TUI: TUIConfig{
			Theme:       "default",
			Interactive: InteractiveAuto,
			ClearScreen: true,
			AltScreen:   true,
		},
		Logging: LoggingConfig{
			Enabled:    false,
			Level:      "info",
			Dir:        "", // Empty means use ConfigDir()
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   false,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	// Storage defaults
	viper.SetDefault("storage.decks_file", defaults.Storage.DecksFile)
	viper.SetDefault("storage.watch", defaults.Storage.Watch)

	// TUI defaults
	viper.SetDefault("tui.theme", defaults.TUI.Theme)
	viper.SetDefault("tui.interactive", defaults.TUI.Interactive)
	viper.SetDefault("tui.clear_screen", defaults.TUI.ClearScreen)
	viper.SetDefault("tui.alt_screen", defaults.TUI.AltScreen)

	// Logging defaults
	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration (convenience function)
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		// Fall back to defaults if unmarshaling fails
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "flashdeck")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".flashdeck"
	}
	return filepath.Join(home, ".config", "flashdeck")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ValidThemes returns the built-in theme names accepted by tui.theme
func ValidThemes() []string {
	return []string{"default", "monokai", "dracula", "nord"}
}

// ValidInteractiveModes returns the accepted values of tui.interactive
func ValidInteractiveModes() []string {
	return []string{InteractiveAuto, InteractiveAlways, InteractiveNever}
}
