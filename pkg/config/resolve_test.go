package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/WindSoilder/uv/pkg/libc"
	"github.com/WindSoilder/uv/pkg/platform"
	"github.com/WindSoilder/uv/pkg/platform/mocks"
)

func testDetector(ctrl *gomock.Controller, host platform.Host, env string) (*platform.LibcDetector, *mocks.MockLibcProbe) {
	probe := mocks.NewMockLibcProbe(ctrl)
	return &platform.LibcDetector{
		Host: host,
		Getenv: func(key string) string {
			if key == platform.EnvLibc {
				return env
			}
			return ""
		},
		Libc:  probe,
		Float: mocks.NewMockFloatProbe(ctrl),
	}, probe
}

var linuxX8664 = platform.Host{OS: platform.OsLinux, Arch: platform.ArchOf(platform.FamilyX8664)}

func TestResolvePlatformWithoutOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	detector, probe := testDetector(ctrl, linuxX8664, "")
	probe.EXPECT().DetectLibc().Return(libc.NewVersion(libc.Musllinux, 1, 2), nil)

	got, err := DefaultConfig().ResolvePlatform(detector)
	require.NoError(t, err)
	assert.Equal(t, "linux-x86_64-musl", got.String())
}

func TestResolvePlatformOverrides(t *testing.T) {
	tests := []struct {
		name     string
		platform PlatformConfig
		env      string
		expected string
	}{
		{
			name:     "non linux os skips libc probe",
			platform: PlatformConfig{OS: "macos", Arch: "aarch64"},
			expected: "macos-aarch64-none",
		},
		{
			name:     "configured libc",
			platform: PlatformConfig{Arch: "x86_64_v3", Libc: "gnu"},
			expected: "linux-x86_64_v3-gnu",
		},
		{
			name:     "environment wins over configured libc",
			platform: PlatformConfig{Libc: "gnu"},
			env:      "musl",
			expected: "linux-x86_64-musl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			detector, _ := testDetector(ctrl, linuxX8664, tt.env)

			cfg := DefaultConfig()
			cfg.Settings.Platform = tt.platform

			got, err := cfg.ResolvePlatform(detector)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got.String())
			assert.Equal(t, linuxX8664, detector.Host, "detector must not be modified")
		})
	}
}

func TestResolvePlatformInvalidOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	detector, _ := testDetector(ctrl, linuxX8664, "")

	cfg := DefaultConfig()
	cfg.Settings.Platform.Arch = "amd64"

	_, err := cfg.ResolvePlatform(detector)
	assert.EqualError(t, err, "unknown architecture: amd64")
}
