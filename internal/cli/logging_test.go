package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WindSoilder/uv/internal/logger"
	"github.com/WindSoilder/uv/pkg/config"
)

func TestInitLoggingHonorsVerbose(t *testing.T) {
	setupCLI(t, "")
	verbose := true
	Verbose = &verbose

	buf := &bytes.Buffer{}
	logger.SetTestOutput(buf)
	defer logger.UnsetTestOutput()

	InitLogging()
	logger.Debug("probing libc")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "probing libc")
}

func TestInitLoggingDefaultsToInfo(t *testing.T) {
	setupCLI(t, "")

	buf := &bytes.Buffer{}
	logger.SetTestOutput(buf)
	defer logger.UnsetTestOutput()

	InitLogging()
	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestInitLoggingJSONFormat(t *testing.T) {
	path := setupCLI(t, "")
	cfg := config.DefaultConfig()
	require.NoError(t, cfg.SetValue(config.KeyLogFormat, "json"))
	require.NoError(t, cfg.SaveConfig(path))

	buf := &bytes.Buffer{}
	logger.SetTestOutput(buf)
	defer logger.UnsetTestOutput()

	InitLogging()
	logger.Info("detected host", logger.Fields{"os": "linux"})

	assert.Contains(t, buf.String(), `"msg":"detected host"`)
	assert.Contains(t, buf.String(), `"os":"linux"`)
}
