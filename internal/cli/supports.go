package cli

import (
	"fmt"
	"io"

	"github.com/WindSoilder/uv/pkg/platform"
	"github.com/spf13/cobra"
)

type supportsResult struct {
	HostOS    string `json:"host_os" yaml:"host_os"`
	Native    string `json:"native" yaml:"native"`
	Target    string `json:"target" yaml:"target"`
	Supported bool   `json:"supported" yaml:"supported"`
}

// Number of arguments expected by the supports command.
const supportsCommandArgs = 2

// NewSupportsCmd creates the supports command.
func NewSupportsCmd() *cobra.Command {
	var hostOS string

	cmd := &cobra.Command{
		Use:   "supports NATIVE TARGET",
		Short: "Check whether a native architecture can run a target architecture",
		Long: `Report whether a host with the NATIVE architecture can run binaries built
for TARGET, either natively or through transparent emulation.`,
		Args: cobra.ExactArgs(supportsCommandArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSupports(cmd.OutOrStdout(), hostOS, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&hostOS, "host-os", "", "Host operating system (default: this machine)")

	return cmd
}

func runSupports(w io.Writer, hostOS, nativeToken, targetToken string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	host, err := hostFromFlags(hostOS, "")
	if err != nil {
		return err
	}
	native, err := platform.ParseArch(nativeToken)
	if err != nil {
		return err
	}
	target, err := platform.ParseArch(targetToken)
	if err != nil {
		return err
	}

	result := supportsResult{
		HostOS:    host.OS.String(),
		Native:    native.String(),
		Target:    target.String(),
		Supported: platform.SupportsOn(host.OS, native, target),
	}

	return writeOutput(w, cfg.Settings.OutputFormat, result, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, result.Supported)
		return err
	})
}
