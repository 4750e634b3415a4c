package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/vango-dev/markup/internal/errors"
	"github.com/vango-dev/markup/pkg/attribute"
	"github.com/vango-dev/markup/pkg/state"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "markup.json"

	// DefaultFormat is the default document format.
	DefaultFormat = "yaml"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"
)

// Config represents the complete markup.json configuration.
type Config struct {
	// Format is the document format used when a file extension does not
	// name one (json or yaml).
	Format string `json:"format,omitempty" env:"MARKUP_FORMAT"`

	// LogLevel is the minimum level logged (debug, info, warn, error).
	LogLevel string `json:"logLevel,omitempty" env:"MARKUP_LOG_LEVEL"`

	// Attributes maps attribute names to constructor kinds.
	Attributes map[string]string `json:"attributes,omitempty" env:"MARKUP_ATTRIBUTES"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Format:   DefaultFormat,
		LogLevel: DefaultLogLevel,
		Attributes: map[string]string{
			"class": "tokens",
			"rel":   "lowercase",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for markup.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadOptional is like Load but returns the defaults when the directory
// has no markup.json.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if errors.HasCode(err, errors.CodeConfigNotFound) {
		return New(), nil
	}
	return cfg, err
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodeConfigNotFound).
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path)).
				WithSuggestion("Run 'markup init' to create one")
		}
		return nil, errors.New(errors.CodeConfigInvalid).Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New(errors.CodeConfigInvalid).
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// LoadEnv applies MARKUP_* variables from the process environment.
func (c *Config) LoadEnv() error {
	return c.ApplyEnv(env.ToMap(os.Environ()))
}

// ApplyEnv applies MARKUP_* variables from environ. Variables that are not
// set leave the current values alone.
func (c *Config) ApplyEnv(environ map[string]string) error {
	if err := env.ParseWithOptions(c, env.Options{Environment: environ}); err != nil {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("Failed to parse environment").
			Wrap(err)
	}
	c.applyDefaults()
	return nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New(errors.CodeConfigInvalid).Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New(errors.CodeConfigInvalid).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Attributes == nil {
		c.Attributes = map[string]string{}
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := state.ParseFormat(c.Format); err != nil {
		return errors.New(errors.CodeConfigInvalid).
			WithDetailf("format %q must be json or yaml", c.Format)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return errors.New(errors.CodeConfigInvalid).
			WithDetailf("logLevel %q must be debug, info, warn or error", c.LogLevel)
	}
	for _, name := range c.attributeNames() {
		if name != attribute.Wildcard {
			if err := attribute.ValidateName(name); err != nil {
				return errors.New(errors.CodeConfigInvalid).
					WithDetailf("attributes: %q is not a valid attribute name", name)
			}
		}
		if _, err := attribute.Kind(c.Attributes[name]); err != nil {
			return errors.New(errors.CodeConfigInvalid).
				WithDetailf("attributes: %q has unknown kind %q", name, c.Attributes[name]).
				Wrap(err)
		}
	}
	return nil
}

// StateFormat returns the configured document format.
func (c *Config) StateFormat() state.Format {
	f, err := state.ParseFormat(c.Format)
	if err != nil {
		return state.YAML
	}
	return f
}

// Level returns the configured log level, or info if it is invalid.
func (c *Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// Apply registers the configured attribute constructors in reg, in name
// order. It stops at the first unknown kind.
func (c *Config) Apply(reg *attribute.Registry) error {
	for _, name := range c.attributeNames() {
		ctor, err := attribute.Kind(c.Attributes[name])
		if err != nil {
			return err
		}
		if err := reg.Register(name, ctor); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) attributeNames() []string {
	names := make([]string, 0, len(c.Attributes))
	for name := range c.Attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.TrimSpace(s)))
	return level, err
}
