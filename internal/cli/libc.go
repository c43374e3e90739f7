package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type libcResult struct {
	Kind    string `json:"kind" yaml:"kind"`
	Version string `json:"version" yaml:"version"`
	Tag     string `json:"tag" yaml:"tag"`
}

// NewLibcCmd creates the libc command.
func NewLibcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "libc",
		Short: "Show the host C library version",
		Long: `Probe the dynamic linker of this machine and print the glibc or musl
version it reports. Only supported on Linux.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLibc(cmd.OutOrStdout())
		},
	}

	return cmd
}

func runLibc(w io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	v, err := detectLibc()
	if err != nil {
		return fmt.Errorf("failed to detect libc: %w", err)
	}

	result := libcResult{
		Kind:    v.Kind.String(),
		Version: fmt.Sprintf("%d.%d", v.Major(), v.Minor()),
		Tag:     v.Tag(),
	}

	return writeOutput(w, cfg.Settings.OutputFormat, result, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "%s (%s)\n", v, result.Tag)
		return err
	})
}
