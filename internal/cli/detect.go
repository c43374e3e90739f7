package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/WindSoilder/uv/internal/logger"
	"github.com/WindSoilder/uv/pkg/config"
	"github.com/WindSoilder/uv/pkg/platform"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type detectResult struct {
	Platform string `json:"platform" yaml:"platform"`
	OS       string `json:"os" yaml:"os"`
	Arch     string `json:"arch" yaml:"arch"`
	Libc     string `json:"libc" yaml:"libc"`
	Machine  string `json:"machine,omitempty" yaml:"machine,omitempty"`
	Emulated bool   `json:"emulated" yaml:"emulated"`
}

// NewDetectCmd creates the detect command.
func NewDetectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect the host platform",
		Long: `Detect the operating system, architecture and libc of this machine.

Platform overrides from the configuration file replace the detected values.
UV_LIBC overrides the libc on Linux.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDetect(cmd.Context(), cmd.OutOrStdout())
		},
	}

	return cmd
}

func runDetect(ctx context.Context, w io.Writer) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	result, err := detect(ctx, cfg)
	if err != nil {
		return err
	}

	return writeOutput(w, cfg.Settings.OutputFormat, result, func(w io.Writer) error {
		rows := [][]string{
			{"platform", result.Platform},
			{"os", result.OS},
			{"arch", result.Arch},
			{"libc", result.Libc},
		}
		if result.Machine != "" {
			rows = append(rows, []string{"machine", result.Machine})
		}
		if result.Emulated {
			rows = append(rows, []string{"emulated", "true"})
		}
		return writeTable(w, []string{"FIELD", "VALUE"}, rows)
	})
}

// detect resolves the configured platform and the kernel machine name concurrently.
func detect(ctx context.Context, cfg *config.Config) (*detectResult, error) {
	var (
		resolved platform.Platform
		machine  string
	)

	group, _ := errgroup.WithContext(ctx)
	group.Go(func() error {
		p, err := cfg.ResolvePlatform(newLibcDetector())
		if err != nil {
			return fmt.Errorf("failed to detect platform: %w", err)
		}
		resolved = p
		return nil
	})
	group.Go(func() error {
		m, err := machineArch()
		if err != nil {
			logger.Debug("Failed to read machine architecture", logger.Fields{"error": err.Error()})
			return nil
		}
		machine = m
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	result := &detectResult{
		Platform: resolved.String(),
		OS:       resolved.OS.String(),
		Arch:     resolved.Arch.String(),
		Libc:     resolved.Libc.String(),
		Machine:  machine,
	}

	if native, ok := parseMachine(machine); ok && native.Family() != platform.CurrentArch().Family() {
		logger.Debug("Running under emulation", logger.Fields{"machine": machine, "binary": platform.CurrentArch().String()})
		result.Emulated = true
	}

	return result, nil
}

// parseMachine accepts uname machine names ("armv7l", "x86_64") and canonical tokens.
func parseMachine(machine string) (platform.Arch, bool) {
	if machine == "" {
		return platform.Arch{}, false
	}
	if a, err := platform.ArchFromTag(machine); err == nil {
		return a, true
	}
	if a, err := platform.ParseArch(machine); err == nil {
		return a, true
	}
	return platform.Arch{}, false
}
