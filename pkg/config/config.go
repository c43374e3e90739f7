// Package config loads and saves the uv-platform settings file. It holds platform
// overrides that replace host detection, together with the log level and the
// output format used by the CLI.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/WindSoilder/uv/pkg/errutils"
	"github.com/WindSoilder/uv/pkg/fsutil"
	"github.com/WindSoilder/uv/pkg/platform"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// PlatformConfig holds overrides for the detected host platform.
type PlatformConfig struct {
	// OS overrides the host operating system (e.g., "linux", "macos", "windows").
	// If empty, the system will auto-detect the current OS
	OS string `yaml:"os,omitempty"`

	// Arch overrides the host architecture (e.g., "x86_64", "aarch64", "x86_64_v3").
	// If empty, the system will auto-detect the current architecture
	Arch string `yaml:"arch,omitempty"`

	// Libc overrides the host libc (e.g., "gnu", "musl", "none").
	// UV_LIBC takes precedence when set.
	Libc string `yaml:"libc,omitempty"`
}

// Settings represents general application settings.
type Settings struct {
	Platform PlatformConfig `yaml:"platform,omitempty"`

	// Output settings
	OutputFormat string `yaml:"output_format"` // text, json, yaml
	LogLevel     string `yaml:"log_level"`     // debug, info, warn, error
	LogFormat    string `yaml:"log_format"`    // text, json
}

// Default configuration values.
const (
	DefaultOutputFormat = "text"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"

	// YAMLIndent is the number of spaces to use for YAML indentation.
	YAMLIndent = 2
)

var (
	validOutputFormats = map[string]bool{"text": true, "json": true, "yaml": true}
	validLogLevels     = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validLogFormats    = map[string]bool{"text": true, "json": true}
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			OutputFormat: DefaultOutputFormat,
			LogLevel:     DefaultLogLevel,
			LogFormat:    DefaultLogFormat,
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errutils.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errutils.Wrap(errutils.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errutils.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errutils.Wrap(err, "failed to read config data")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errutils.Wrap(errutils.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errutils.ErrConfigValidation, err)
	}

	return &config, nil
}

// SaveConfig atomically writes the configuration to path.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errutils.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errutils.Wrap(errutils.ErrInvalidConfigPath, err.Error())
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(YAMLIndent)
	if err := encoder.Encode(c); err != nil {
		return errutils.Wrap(errutils.ErrConfigEncode, err.Error())
	}
	if err := encoder.Close(); err != nil {
		return errutils.Wrap(errutils.ErrConfigEncode, err.Error())
	}

	if err := fsutil.WriteFileAtomic(absPath, buf.Bytes(), fsutil.FileModeDefault); err != nil {
		return errutils.Wrap(errutils.ErrConfigFileCreate, err.Error())
	}
	return nil
}

// ToYAML converts the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errutils.Wrap(errutils.ErrConfigMarshal, err.Error())
	}
	return data, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errutils.ErrConfigValidation
	}
	if err := validatePlatform(c.Settings.Platform); err != nil {
		return err
	}
	return validateSettings(c.Settings)
}

func validatePlatform(p PlatformConfig) error {
	if p.OS != "" {
		if _, err := platform.ParseOs(p.OS); err != nil {
			return err
		}
	}
	if p.Arch != "" {
		if _, err := platform.ParseArch(p.Arch); err != nil {
			return err
		}
	}
	if p.Libc != "" {
		if _, err := platform.ParseLibc(p.Libc); err != nil {
			return err
		}
	}
	return nil
}

func validateSettings(s Settings) error {
	if !validOutputFormats[s.OutputFormat] {
		return errutils.ErrInvalidOutputFormatWithDetails(s.OutputFormat)
	}
	if !validLogLevels[strings.ToLower(s.LogLevel)] {
		return errutils.ErrInvalidLogLevelWithDetails(s.LogLevel)
	}
	if !validLogFormats[s.LogFormat] {
		return errutils.ErrInvalidLogFormatWithDetails(s.LogFormat)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Settings.OutputFormat == "" {
		c.Settings.OutputFormat = DefaultOutputFormat
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = DefaultLogLevel
	}
	if c.Settings.LogFormat == "" {
		c.Settings.LogFormat = DefaultLogFormat
	}
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "uv-platform", "config.yaml"), nil
}
