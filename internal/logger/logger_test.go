package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T, level string, format OutputFormat, fn func()) string {
	t.Helper()
	buf := &bytes.Buffer{}
	SetTestOutput(buf)
	defer UnsetTestOutput()

	InitLogger(level, format)
	fn()
	return buf.String()
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		logFn    func()
		contains []string
		excludes []string
	}{
		{
			name:     "info log",
			level:    "info",
			logFn:    func() { Info("detected host") },
			contains: []string{"detected host", "level=INFO"},
		},
		{
			name:     "debug log with debug level",
			level:    "debug",
			logFn:    func() { Debug("using libc override", Fields{"value": "musl"}) },
			contains: []string{"using libc override", "level=DEBUG", "value=musl"},
		},
		{
			name:     "debug log with info level",
			level:    "info",
			logFn:    func() { Debug("hidden message") },
			excludes: []string{"hidden message"},
		},
		{
			name:     "warn log with fields",
			level:    "warn",
			logFn:    func() { Warn("emulated architecture", Fields{"machine": "x86_64", "count": 2}) },
			contains: []string{"emulated architecture", "level=WARN", "machine=x86_64", "count=2"},
		},
		{
			name:     "error log",
			level:    "error",
			logFn:    func() { Error("detection failed") },
			contains: []string{"detection failed", "level=ERROR"},
		},
		{
			name:     "success log",
			level:    "info",
			logFn:    func() { Success("configuration updated") },
			contains: []string{"configuration updated", "status=success"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureOutput(t, tt.level, FormatText, tt.logFn)
			for _, want := range tt.contains {
				assert.Contains(t, output, want)
			}
			for _, notWant := range tt.excludes {
				assert.NotContains(t, output, notWant)
			}
		})
	}
}

func TestJSONFormat(t *testing.T) {
	output := captureOutput(t, "info", FormatJSON, func() {
		Info("detected host", Fields{"os": "linux", "bits": 64, "musl": true})
	})

	assert.Contains(t, output, `"msg":"detected host"`)
	assert.Contains(t, output, `"level":"INFO"`)
	assert.Contains(t, output, `"os":"linux"`)
	assert.Contains(t, output, `"bits":64`)
	assert.Contains(t, output, `"musl":true`)
}

func TestColorFormat(t *testing.T) {
	output := captureOutput(t, "debug", FormatColor, func() {
		Debug("probing libc", Fields{"candidate": "/bin/sh"})
	})

	assert.Contains(t, output, "DBG")
	assert.Contains(t, output, "probing libc")
	assert.Contains(t, output, "/bin/sh")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestGetLogger_InitializesIfNil(t *testing.T) {
	loggerMu.Lock()
	logger = nil
	loggerMu.Unlock()

	assert.NotPanics(t, func() {
		assert.NotNil(t, GetLogger())
	})
}

func TestMergeFields(t *testing.T) {
	attrs := mergeFields(Fields{"key1": "value1"}, Fields{"key1": "new value", "key2": 123})
	result := make(map[string]any)
	for i := 0; i < len(attrs); i += 2 {
		result[attrs[i].(string)] = attrs[i+1]
	}
	assert.Equal(t, map[string]any{"key1": "new value", "key2": 123}, result)
}
