// Package cpuinfo probes CPU capabilities that the Go toolchain does not expose as build settings.
package cpuinfo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"

	"github.com/WindSoilder/uv/pkg/errutils"
)

// ProcCPUInfo is the Linux file listing per-processor features.
const ProcCPUInfo = "/proc/cpuinfo"

// Probe reports hardware floating point support.
type Probe struct {
	// Path is the cpuinfo file to read. Defaults to ProcCPUInfo.
	Path string
	// GOARCH selects the x/sys/cpu fast path when it is "arm".
	GOARCH string
}

// NewProbe returns a Probe for the live host.
func NewProbe() *Probe {
	return &Probe{Path: ProcCPUInfo, GOARCH: runtime.GOARCH}
}

// DetectHardwareFloat reports whether the live CPU executes VFP instructions.
func DetectHardwareFloat() (bool, error) {
	return NewProbe().HardwareFloat()
}

// HardwareFloat reports whether the CPU executes hardware floating point instructions.
//
// On 32-bit ARM builds the kernel HWCAP bits read by x/sys/cpu answer directly.
// Otherwise the Features line of the cpuinfo file is checked for a vfp flag.
func (p *Probe) HardwareFloat() (bool, error) {
	if p.GOARCH == "arm" && (cpu.ARM.HasVFP || cpu.ARM.HasVFPv3 || cpu.ARM.HasVFPv4) {
		return true, nil
	}

	path := p.Path
	if path == "" {
		path = ProcCPUInfo
	}
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("%w: %w", errutils.ErrHardwareFloatDetection, err)
	}
	defer func() { _ = f.Close() }()

	return ParseHardwareFloat(f)
}

// ParseHardwareFloat scans cpuinfo content for a Features line and reports whether
// it lists a vfp flag (vfp, vfpv3, vfpv4, vfpd32 ...).
func ParseHardwareFloat(r io.Reader) (bool, error) {
	scanner := bufio.NewScanner(r)
	found := false
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok || strings.TrimSpace(key) != "Features" {
			continue
		}
		found = true
		for _, flag := range strings.Fields(value) {
			if strings.HasPrefix(flag, "vfp") {
				return true, nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("%w: %w", errutils.ErrHardwareFloatDetection, err)
	}
	if !found {
		return false, fmt.Errorf("%w: no Features line in cpuinfo", errutils.ErrHardwareFloatDetection)
	}
	return false, nil
}
