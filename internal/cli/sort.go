package cli

import (
	"fmt"
	"io"

	"github.com/WindSoilder/uv/pkg/platform"
	"github.com/spf13/cobra"
)

type sortResult struct {
	Host  string   `json:"host" yaml:"host"`
	Archs []string `json:"archs" yaml:"archs"`
}

// NewSortCmd creates the sort command.
func NewSortCmd() *cobra.Command {
	var hostOS, hostArch string

	cmd := &cobra.Command{
		Use:   "sort ARCH...",
		Short: "Rank architectures by preference",
		Long: `Sort architectures from most to least preferred for a host.

The host defaults to this machine. Use --host-os and --host-arch to rank for
another host, for example --host-os windows --host-arch aarch64.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(cmd.OutOrStdout(), hostOS, hostArch, args)
		},
	}

	cmd.Flags().StringVar(&hostOS, "host-os", "", "Host operating system (default: this machine)")
	cmd.Flags().StringVar(&hostArch, "host-arch", "", "Host architecture (default: this machine)")

	return cmd
}

func runSort(w io.Writer, hostOS, hostArch string, tokens []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	host, err := hostFromFlags(hostOS, hostArch)
	if err != nil {
		return err
	}

	archs := make([]platform.Arch, 0, len(tokens))
	for _, token := range tokens {
		a, err := platform.ParseArch(token)
		if err != nil {
			return err
		}
		archs = append(archs, a)
	}

	platform.SortArchs(host, archs)

	result := sortResult{Host: host.String(), Archs: make([]string, len(archs))}
	for i, a := range archs {
		result.Archs[i] = a.String()
	}

	return writeOutput(w, cfg.Settings.OutputFormat, result, func(w io.Writer) error {
		for _, a := range result.Archs {
			if _, err := fmt.Fprintln(w, a); err != nil {
				return err
			}
		}
		return nil
	})
}

// hostFromFlags returns the live host with any non-empty flag value substituted.
func hostFromFlags(hostOS, hostArch string) (platform.Host, error) {
	host := platform.CurrentHost()
	if hostOS != "" {
		o, err := platform.ParseOs(hostOS)
		if err != nil {
			return platform.Host{}, err
		}
		host.OS = o
	}
	if hostArch != "" {
		a, err := platform.ParseArch(hostArch)
		if err != nil {
			return platform.Host{}, err
		}
		host.Arch = a
	}
	return host, nil
}
