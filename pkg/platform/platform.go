package platform

import (
	"strings"

	"github.com/WindSoilder/uv/pkg/errutils"
)

// Platform is the full identity of a machine: operating system, architecture and libc.
type Platform struct {
	OS   Os   `yaml:"os" json:"os"`
	Arch Arch `yaml:"arch" json:"arch"`
	Libc Libc `yaml:"libc" json:"libc"`
}

// CurrentPlatform returns the platform of the live host.
func CurrentPlatform() (Platform, error) {
	host := CurrentHost()
	l, err := LibcFromEnv()
	if err != nil {
		return Platform{}, err
	}
	return Platform{OS: host.OS, Arch: host.Arch, Libc: l}, nil
}

// ParsePlatform parses a key of the form "<os>-<arch>-<libc>", such as "linux-x86_64-gnu".
func ParsePlatform(s string) (Platform, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Platform{}, errutils.ErrUnknownPlatformWithValue(s)
	}

	o, err := ParseOs(parts[0])
	if err != nil {
		return Platform{}, err
	}
	a, err := ParseArch(parts[1])
	if err != nil {
		return Platform{}, err
	}
	l, err := ParseLibc(parts[2])
	if err != nil {
		return Platform{}, err
	}
	return Platform{OS: o, Arch: a, Libc: l}, nil
}

// String returns the "<os>-<arch>-<libc>" key.
func (p Platform) String() string {
	return p.OS.String() + "-" + p.Arch.String() + "-" + p.Libc.String()
}

// Host returns the operating system and architecture of p.
func (p Platform) Host() Host {
	return Host{OS: p.OS, Arch: p.Arch}
}

// Supports reports whether a machine described by p can run binaries built for other.
// The operating system and libc must match exactly; the architecture follows SupportsOn.
func (p Platform) Supports(other Platform) bool {
	return p.OS == other.OS &&
		p.Libc == other.Libc &&
		SupportsOn(p.OS, p.Arch, other.Arch)
}
