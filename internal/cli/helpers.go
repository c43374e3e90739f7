package cli

import (
	"fmt"

	"github.com/WindSoilder/uv/internal/logger"
	"github.com/WindSoilder/uv/pkg/config"
	"github.com/WindSoilder/uv/pkg/libc"
	"github.com/WindSoilder/uv/pkg/platform"
)

// These variables will be set by the main package
var (
	ConfigPath   *string
	Verbose      *bool
	NoColor      *bool
	OutputFormat *string
)

// Host probes used by the commands. Tests replace them with fakes.
var (
	newLibcDetector = platform.NewLibcDetector
	detectLibc      = libc.Detect
	machineArch     = platform.MachineArch
)

// loadConfig loads the configuration and applies the global flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if OutputFormat != nil && *OutputFormat != "" {
		if err := cfg.SetValue(config.KeyOutputFormat, *OutputFormat); err != nil {
			return nil, err
		}
	}
	if Verbose != nil && *Verbose {
		cfg.Settings.LogLevel = "debug"
	}

	return cfg, nil
}

func getConfigPath() string {
	if ConfigPath != nil && *ConfigPath != "" {
		return *ConfigPath
	}

	defaultPath, err := config.GetDefaultConfigPath()
	if err != nil {
		// An empty path makes LoadConfig and SaveConfig fail with ErrEmptyConfigPath.
		logger.Warn("Failed to get default config path, using empty path", logger.Fields{"error": err})
		return ""
	}
	return defaultPath
}
