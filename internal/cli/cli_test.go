package cli

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// setupCLI points the global flags at a fresh config file and resets them after the test.
func setupCLI(t *testing.T, format string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	verbose := false
	noColor := true
	ConfigPath = &path
	OutputFormat = &format
	Verbose = &verbose
	NoColor = &noColor

	t.Cleanup(func() {
		ConfigPath = nil
		OutputFormat = nil
		Verbose = nil
		NoColor = nil
	})
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := &cobra.Command{Use: "uv-platform", SilenceUsage: true, SilenceErrors: true}
	AddCommands(root)

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, args...)
	require.NoError(t, err)
	return out
}
