// Package config loads member-template settings from a YAML file.
//
//	version: "1"
//	source: go              # go | file
//	packages: [./model]     # package patterns for the go source
//	dir: .                  # directory packages are loaded from
//	type_file: types.yaml   # description file for the file source
//	variant: enclosed_bean_fields
//	template: "${name}: ${getter}"
//	separator: ", "
//	force_newline: false    # only read by enclosing_bean_fields
//	line_separator: platform  # platform | lf | crlf
//	log_level: info
//
// Command-line flags override file values.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"member-template/internal/expand"
)

// Sources of type information.
const (
	SourceGo   = "go"
	SourceFile = "file"
)

// Line separator settings.
const (
	LineSeparatorPlatform = "platform"
	LineSeparatorLF       = "lf"
	LineSeparatorCRLF     = "crlf"
)

// Config holds member-template settings.
type Config struct {
	Version       string   `yaml:"version"`
	Source        string   `yaml:"source"`
	Packages      []string `yaml:"packages,omitempty"`
	Dir           string   `yaml:"dir,omitempty"`
	TypeFile      string   `yaml:"type_file,omitempty"`
	Variant       string   `yaml:"variant"`
	Template      string   `yaml:"template,omitempty"`
	Separator     string   `yaml:"separator,omitempty"`
	ForceNewline  bool     `yaml:"force_newline,omitempty"`
	LineSeparator string   `yaml:"line_separator"`
	LogLevel      string   `yaml:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)

	return c
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Parse parses YAML data into a Config and validates it.
func Parse(data []byte) (*Config, error) {
	var c Config

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Version == "" {
		c.Version = "1"
	}

	if c.Source == "" {
		c.Source = SourceGo
	}

	if c.Variant == "" {
		c.Variant = "enclosed_bean_fields"
	}

	if c.LineSeparator == "" {
		c.LineSeparator = LineSeparatorPlatform
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	var errs []error

	switch c.Source {
	case SourceGo, SourceFile:
	default:
		errs = append(errs, fmt.Errorf("source: unknown value %q", c.Source))
	}

	if _, err := c.LineSep(); err != nil {
		errs = append(errs, err)
	}

	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// LineSep returns the text used for line breaks.
func (c *Config) LineSep() (string, error) {
	switch strings.ToLower(c.LineSeparator) {
	case LineSeparatorPlatform, "":
		return expand.PlatformLineSeparator(), nil
	case LineSeparatorLF:
		return "\n", nil
	case LineSeparatorCRLF:
		return "\r\n", nil
	default:
		return "", fmt.Errorf("line_separator: unknown value %q", c.LineSeparator)
	}
}

// Level returns the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}

	return level, nil
}
