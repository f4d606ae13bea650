package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Display  DisplayConfig  `toml:"display"`
	Theme    ThemeConfig    `toml:"theme"`
	Log      LogConfig      `toml:"log"`
}

// DatabaseConfig contains database connection settings for the profile library.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// DisplayConfig controls widget layout.
type DisplayConfig struct {
	Gap            int  `toml:"gap"`             // columns between the profile and margin tables
	MaxNameWidth   int  `toml:"max_name_width"`  // candidate names wider than this are truncated
	DefaultMargins bool `toml:"default_margins"` // compute margins when the arguments carry none
	ShowHelp       bool `toml:"show_help"`
}

// ThemeConfig holds the highlight colors (hex or ANSI color numbers).
type ThemeConfig struct {
	PinnedPrimary   string `toml:"pinned_primary"`
	PinnedSecondary string `toml:"pinned_secondary"`
	Hover           string `toml:"hover"`
	Foreground      string `toml:"foreground"`
	HeaderRule      string `toml:"header_rule"`
	Title           string `toml:"title"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level   string `toml:"level"`
	TUIFile string `toml:"tui_file"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Fields absent from the file keep the embedded defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s: %w", path, ErrAlreadyExists)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate reports settings that cannot be rendered or opened.
func (c *Config) Validate() error {
	if c.Display.Gap < 0 {
		return fmt.Errorf("%w: display.gap must be >= 0, got %d", ErrInvalidConfig, c.Display.Gap)
	}
	if c.Display.MaxNameWidth < 0 {
		return fmt.Errorf("%w: display.max_name_width must be >= 0, got %d", ErrInvalidConfig, c.Display.MaxNameWidth)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("%w: database.path is empty", ErrInvalidConfig)
	}
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}
