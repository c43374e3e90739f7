package config

import (
	"github.com/WindSoilder/uv/internal/logger"
	"github.com/WindSoilder/uv/pkg/platform"
)

// ResolvePlatform returns the host platform with the configured overrides applied.
//
// The OS and Arch overrides replace the detector's host before libc detection runs,
// so an overridden non-Linux OS resolves to no libc. A libc override is used as is
// unless UV_LIBC is set, which the detector always honors first on Linux.
func (c *Config) ResolvePlatform(detector *platform.LibcDetector) (platform.Platform, error) {
	p := c.Settings.Platform
	d := *detector

	if p.OS != "" {
		o, err := platform.ParseOs(p.OS)
		if err != nil {
			return platform.Platform{}, err
		}
		d.Host.OS = o
	}
	if p.Arch != "" {
		a, err := platform.ParseArch(p.Arch)
		if err != nil {
			return platform.Platform{}, err
		}
		d.Host.Arch = a
	}

	result := platform.Platform{OS: d.Host.OS, Arch: d.Host.Arch}

	if p.Libc != "" && d.Getenv(platform.EnvLibc) == "" {
		l, err := platform.ParseLibc(p.Libc)
		if err != nil {
			return platform.Platform{}, err
		}
		logger.Debug("Using configured libc", logger.Fields{"libc": l.String()})
		result.Libc = l
		return result, nil
	}

	l, err := d.Detect()
	if err != nil {
		return platform.Platform{}, err
	}
	result.Libc = l
	return result, nil
}
