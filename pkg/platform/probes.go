//go:generate mockgen -destination=./mocks/probes.go . LibcProbe,FloatProbe
package platform

import "github.com/WindSoilder/uv/pkg/libc"

// LibcProbe identifies the C library of a Linux host.
type LibcProbe interface {
	DetectLibc() (libc.Version, error)
}

// FloatProbe reports whether the CPU executes hardware floating point instructions.
type FloatProbe interface {
	HardwareFloat() (bool, error)
}
