// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/smileynet/tria/internal/contact"
)

// Config holds all tria configuration.
type Config struct {
	UI   UI   `yaml:"ui"`
	Seed Seed `yaml:"seed"`
	Log  Log  `yaml:"log"`
}

// UI holds contact manager presentation settings.
type UI struct {
	Title     string `yaml:"title"`
	Sort      string `yaml:"sort"`       // "asc" | "desc"
	AltScreen bool   `yaml:"alt_screen"` // Run the TUI in the alternate screen buffer
}

// Seed holds the initial contact list source.
type Seed struct {
	File string `yaml:"file"` // Empty uses .tria/contacts.yaml or the embedded default
}

// Log holds logging settings. Logging is disabled when File is empty.
type Log struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UI{
			Title:     "Tria Contact List",
			Sort:      "asc",
			AltScreen: true,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.UI.Title == "" {
		return errors.New("config: ui.title cannot be empty")
	}
	if _, err := contact.ParseDirection(c.UI.Sort); err != nil {
		return fmt.Errorf("config: ui.sort must be \"asc\" or \"desc\", got %q", c.UI.Sort)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level %q: %w", c.Log.Level, err)
	}
	return nil
}

// Direction returns the configured initial sort direction.
// Call Validate first; an invalid value falls back to ascending.
func (c *Config) Direction() contact.Direction {
	d, _ := contact.ParseDirection(c.UI.Sort)
	return d
}

// LoadDotenv loads KEY=VALUE pairs from a .env file into the process
// environment without overriding variables that are already set.
// A missing file is not an error.
func LoadDotenv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: loading %s: %w", path, err)
	}
	return nil
}

// envOverrides lists the supported environment variables.
// Empty values leave the config untouched.
type envOverrides struct {
	Title     string `env:"TRIA_TITLE"`
	Sort      string `env:"TRIA_SORT"`
	AltScreen string `env:"TRIA_ALT_SCREEN"`
	SeedFile  string `env:"TRIA_SEED_FILE"`
	LogFile   string `env:"TRIA_LOG_FILE"`
	LogLevel  string `env:"TRIA_LOG_LEVEL"`
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: TRIA_TITLE, TRIA_SORT, TRIA_ALT_SCREEN,
// TRIA_SEED_FILE, TRIA_LOG_FILE, TRIA_LOG_LEVEL.
func (c *Config) ApplyEnv() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("config: parsing environment: %w", err)
	}
	if o.Title != "" {
		c.UI.Title = o.Title
	}
	if o.Sort != "" {
		c.UI.Sort = o.Sort
	}
	if o.AltScreen != "" {
		v, err := strconv.ParseBool(o.AltScreen)
		if err != nil {
			return fmt.Errorf("config: invalid TRIA_ALT_SCREEN %q: %w", o.AltScreen, err)
		}
		c.UI.AltScreen = v
	}
	if o.SeedFile != "" {
		c.Seed.File = o.SeedFile
	}
	if o.LogFile != "" {
		c.Log.File = o.LogFile
	}
	if o.LogLevel != "" {
		c.Log.Level = o.LogLevel
	}
	return nil
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	UI   *rawUI   `yaml:"ui"`
	Seed *rawSeed `yaml:"seed"`
	Log  *rawLog  `yaml:"log"`
}

type rawUI struct {
	Title     *string `yaml:"title"`
	Sort      *string `yaml:"sort"`
	AltScreen *bool   `yaml:"alt_screen"`
}

type rawSeed struct {
	File *string `yaml:"file"`
}

type rawLog struct {
	File  *string `yaml:"file"`
	Level *string `yaml:"level"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.UI != nil {
		if layer.UI.Title != nil {
			c.UI.Title = *layer.UI.Title
		}
		if layer.UI.Sort != nil {
			c.UI.Sort = *layer.UI.Sort
		}
		if layer.UI.AltScreen != nil {
			c.UI.AltScreen = *layer.UI.AltScreen
		}
	}
	if layer.Seed != nil && layer.Seed.File != nil {
		c.Seed.File = *layer.Seed.File
	}
	if layer.Log != nil {
		if layer.Log.File != nil {
			c.Log.File = *layer.Log.File
		}
		if layer.Log.Level != nil {
			c.Log.Level = *layer.Log.Level
		}
	}
}
