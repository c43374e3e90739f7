package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WindSoilder/uv/pkg/config"
	"github.com/WindSoilder/uv/pkg/errutils"
)

func TestConfigInit(t *testing.T) {
	path := setupCLI(t, "")

	mustExecute(t, "config", "init")

	_, err := os.Stat(path)
	require.NoError(t, err)

	_, err = execute(t, "config", "init")
	assert.ErrorIs(t, err, errutils.ErrConfigFileExists)

	mustExecute(t, "config", "init", "--force")
}

func TestConfigSetAndGet(t *testing.T) {
	path := setupCLI(t, "")

	mustExecute(t, "config", "set", "platform.arch", "x86_64_v3")
	mustExecute(t, "config", "set", "log_level", "debug")

	assert.Equal(t, "x86_64_v3\n", mustExecute(t, "config", "get", "platform.arch"))
	assert.Equal(t, "debug\n", mustExecute(t, "config", "get", "log_level"))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "x86_64_v3", cfg.Settings.Platform.Arch)
}

func TestConfigSetDoesNotPersistOutputFlag(t *testing.T) {
	path := setupCLI(t, "json")

	mustExecute(t, "config", "set", "platform.os", "linux")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultOutputFormat, cfg.Settings.OutputFormat)
}

func TestConfigSetRejectsInvalid(t *testing.T) {
	path := setupCLI(t, "")

	_, err := execute(t, "config", "set", "platform.libc", "glibc")
	assert.ErrorIs(t, err, errutils.ErrUnknownLibc)

	_, err = execute(t, "config", "set", "cache_dir", "/tmp")
	assert.ErrorIs(t, err, errutils.ErrUnknownConfigKey)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "nothing should be written on error")
}

func TestConfigGetUnknownKey(t *testing.T) {
	setupCLI(t, "")

	_, err := execute(t, "config", "get", "platform")
	assert.ErrorIs(t, err, errutils.ErrUnknownConfigKey)
}

func TestConfigShow(t *testing.T) {
	setupCLI(t, "")
	mustExecute(t, "config", "set", "platform.os", "macos")

	out := mustExecute(t, "config", "show")
	assert.Contains(t, out, "SETTING")
	assert.Regexp(t, `platform\.os\s+macos`, out)
	assert.Regexp(t, `output_format\s+text`, out)
}

func TestConfigShowJSON(t *testing.T) {
	setupCLI(t, "json")

	out := mustExecute(t, "config", "show")
	assert.JSONEq(t, `{
		"log_level": "info",
		"log_format": "text",
		"output_format": "json",
		"platform.os": "",
		"platform.arch": "",
		"platform.libc": ""
	}`, out)
}

func TestConfigLoadFailure(t *testing.T) {
	path := setupCLI(t, "")
	require.NoError(t, os.WriteFile(path, []byte("settings:\n  platform:\n    os: beos\n"), 0o644))

	_, err := execute(t, "config", "show")
	assert.ErrorIs(t, err, errutils.ErrConfigValidation)
	assert.ErrorIs(t, err, errutils.ErrUnknownOs)
}
