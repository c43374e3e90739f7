package config

import (
	"strings"

	"github.com/WindSoilder/uv/pkg/errutils"
	"github.com/WindSoilder/uv/pkg/platform"
)

// Configuration keys accepted by GetValue and SetValue.
const (
	KeyLogLevel     = "log_level"
	KeyLogFormat    = "log_format"
	KeyOutputFormat = "output_format"
	KeyPlatformOS   = "platform.os"
	KeyPlatformArch = "platform.arch"
	KeyPlatformLibc = "platform.libc"
)

// Keys returns every supported configuration key in display order.
func Keys() []string {
	return []string{KeyLogLevel, KeyLogFormat, KeyOutputFormat, KeyPlatformOS, KeyPlatformArch, KeyPlatformLibc}
}

// SetValue sets a configuration value by key. Values are validated the same way
// LoadConfig validates them; an empty value clears a platform override.
func (c *Config) SetValue(key, value string) error {
	switch key {
	case KeyLogLevel:
		if !validLogLevels[strings.ToLower(value)] {
			return errutils.ErrInvalidLogLevelWithDetails(value)
		}
		c.Settings.LogLevel = value
	case KeyLogFormat:
		if !validLogFormats[value] {
			return errutils.ErrInvalidLogFormatWithDetails(value)
		}
		c.Settings.LogFormat = value
	case KeyOutputFormat:
		if !validOutputFormats[value] {
			return errutils.ErrInvalidOutputFormatWithDetails(value)
		}
		c.Settings.OutputFormat = value
	case KeyPlatformOS:
		if value != "" {
			if _, err := platform.ParseOs(value); err != nil {
				return err
			}
		}
		c.Settings.Platform.OS = value
	case KeyPlatformArch:
		if value != "" {
			if _, err := platform.ParseArch(value); err != nil {
				return err
			}
		}
		c.Settings.Platform.Arch = value
	case KeyPlatformLibc:
		if value != "" {
			if _, err := platform.ParseLibc(value); err != nil {
				return err
			}
		}
		c.Settings.Platform.Libc = value
	default:
		return errutils.ErrUnknownConfigKeyWithName(key)
	}
	return nil
}

// GetValue returns the value stored under key.
func (c *Config) GetValue(key string) (string, error) {
	switch key {
	case KeyLogLevel:
		return c.Settings.LogLevel, nil
	case KeyLogFormat:
		return c.Settings.LogFormat, nil
	case KeyOutputFormat:
		return c.Settings.OutputFormat, nil
	case KeyPlatformOS:
		return c.Settings.Platform.OS, nil
	case KeyPlatformArch:
		return c.Settings.Platform.Arch, nil
	case KeyPlatformLibc:
		return c.Settings.Platform.Libc, nil
	default:
		return "", errutils.ErrUnknownConfigKeyWithName(key)
	}
}

// ToMap returns every key with its current value.
// This is useful for displaying the configuration.
func (c *Config) ToMap() map[string]string {
	result := make(map[string]string, len(Keys()))
	for _, key := range Keys() {
		// Keys only lists supported keys, so GetValue cannot fail here.
		value, _ := c.GetValue(key)
		result[key] = value
	}
	return result
}
