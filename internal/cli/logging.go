package cli

import (
	"os"

	"github.com/WindSoilder/uv/internal/logger"
	"github.com/WindSoilder/uv/pkg/config"
	"golang.org/x/term"
)

// InitLogging configures the global logger from the config file and the global flags.
// A config file that fails to load leaves the defaults in place; the command itself
// reports the error.
func InitLogging() {
	level, logFormat := config.DefaultLogLevel, config.DefaultLogFormat
	if cfg, err := loadConfig(); err == nil {
		level, logFormat = cfg.Settings.LogLevel, cfg.Settings.LogFormat
	}

	format := logger.FormatText
	switch {
	case logFormat == string(logger.FormatJSON):
		format = logger.FormatJSON
	case (NoColor == nil || !*NoColor) && term.IsTerminal(int(os.Stderr.Fd())):
		format = logger.FormatColor
	}

	logger.InitLogger(level, format)
}
