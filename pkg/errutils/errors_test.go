package errutils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		msg      string
		expected string
	}{
		{
			name:     "wrap nil error",
			err:      nil,
			msg:      "additional context",
			expected: "",
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			msg:      "additional context",
			expected: "additional context: original error",
		},
		{
			name:     "wrap with empty message",
			err:      errors.New("original error"),
			msg:      "",
			expected: ": original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Wrap(tt.err, tt.msg)
			if tt.err == nil {
				assert.NoError(t, result)
				return
			}
			assert.EqualError(t, result, tt.expected)
			assert.ErrorIs(t, result, tt.err)
		})
	}
}

func TestWrapf(t *testing.T) {
	err := Wrapf(ErrConfigParse, "reading %s at line %d", "config.yaml", 3)
	assert.EqualError(t, err, "reading config.yaml at line 3: failed to parse config")
	assert.ErrorIs(t, err, ErrConfigParse)

	assert.NoError(t, Wrapf(nil, "ignored %d", 1))
}

func TestValueHelpers(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		expected string
	}{
		{
			name:     "os",
			err:      ErrUnknownOsWithValue("beos"),
			sentinel: ErrUnknownOs,
			expected: "unknown operating system: beos",
		},
		{
			name:     "arch",
			err:      ErrUnknownArchWithValue("amd64"),
			sentinel: ErrUnknownArch,
			expected: "unknown architecture: amd64",
		},
		{
			name:     "libc",
			err:      ErrUnknownLibcWithValue("glibc"),
			sentinel: ErrUnknownLibc,
			expected: "unknown libc environment: glibc",
		},
		{
			name:     "variant",
			err:      ErrUnknownVariantWithValue("v5"),
			sentinel: ErrUnknownVariant,
			expected: "unknown architecture variant: v5",
		},
		{
			name:     "unsupported variant",
			err:      ErrUnsupportedVariantWithDetails("v3", "aarch64"),
			sentinel: ErrUnsupportedVariant,
			expected: "unsupported variant `v3` for architecture `aarch64`",
		},
		{
			name:     "platform",
			err:      ErrUnknownPlatformWithValue("linux-x86_64"),
			sentinel: ErrUnknownPlatform,
			expected: `invalid platform key: "linux-x86_64" (expected <os>-<arch>-<libc>)`,
		},
		{
			name:     "tag",
			err:      ErrUnknownTagWithValue("sparcv9"),
			sentinel: ErrUnknownTag,
			expected: "unknown platform tag: sparcv9",
		},
		{
			name:     "config key",
			err:      ErrUnknownConfigKeyWithName("cache_dir"),
			sentinel: ErrUnknownConfigKey,
			expected: "unknown configuration key: cache_dir",
		},
		{
			name:     "output format",
			err:      ErrInvalidOutputFormatWithDetails("table"),
			sentinel: ErrInvalidOutputFormat,
			expected: "invalid output format: 'table', must be one of: text, json, yaml",
		},
		{
			name:     "log level",
			err:      ErrInvalidLogLevelWithDetails("trace"),
			sentinel: ErrInvalidLogLevel,
			expected: "invalid log level: 'trace', must be one of: debug, info, warn, error",
		},
		{
			name:     "log format",
			err:      ErrInvalidLogFormatWithDetails("logfmt"),
			sentinel: ErrInvalidLogFormat,
			expected: "invalid log format: 'logfmt', must be one of: text, json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.expected)
			assert.ErrorIs(t, tt.err, tt.sentinel)
		})
	}
}

func TestErrLibcDetectionWithCause(t *testing.T) {
	cause := errors.New("no dynamic linker found")
	err := ErrLibcDetectionWithCause(cause)

	assert.EqualError(t, err, "failed to detect libc: no dynamic linker found")
	assert.ErrorIs(t, err, ErrLibcDetection)
	assert.ErrorIs(t, err, cause)
}
