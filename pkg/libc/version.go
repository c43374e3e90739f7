// Package libc detects the C library of a Linux host and its version.
package libc

import (
	"fmt"

	"github.com/hashicorp/go-version"
)

// Kind distinguishes glibc-based hosts from musl-based ones.
type Kind int

const (
	// Manylinux is a glibc-based host.
	Manylinux Kind = iota + 1
	// Musllinux is a musl-based host.
	Musllinux
)

// String returns the tag prefix for the kind.
func (k Kind) String() string {
	switch k {
	case Manylinux:
		return "manylinux"
	case Musllinux:
		return "musllinux"
	default:
		return "unknown"
	}
}

// Version is the detected C library of a Linux host.
type Version struct {
	Kind    Kind
	Version *version.Version
}

// NewVersion builds a Version from a major and minor number.
func NewVersion(kind Kind, major, minor int) Version {
	return Version{Kind: kind, Version: version.Must(version.NewVersion(fmt.Sprintf("%d.%d", major, minor)))}
}

// Major returns the major version number.
func (v Version) Major() int {
	return v.segment(0)
}

// Minor returns the minor version number.
func (v Version) Minor() int {
	return v.segment(1)
}

func (v Version) segment(i int) int {
	if v.Version == nil {
		return 0
	}
	segments := v.Version.Segments()
	if i >= len(segments) {
		return 0
	}
	return segments[i]
}

// AtLeast reports whether v is at least major.minor.
func (v Version) AtLeast(major, minor int) bool {
	if v.Version == nil {
		return false
	}
	want := version.Must(version.NewVersion(fmt.Sprintf("%d.%d", major, minor)))
	return v.Version.GreaterThanOrEqual(want)
}

// Tag returns the platform tag, for example "manylinux_2_35" or "musllinux_1_2".
func (v Version) Tag() string {
	return fmt.Sprintf("%s_%d_%d", v.Kind, v.Major(), v.Minor())
}

// String returns a human readable form such as "glibc 2.35".
func (v Version) String() string {
	name := "glibc"
	if v.Kind == Musllinux {
		name = "musl"
	}
	return fmt.Sprintf("%s %d.%d", name, v.Major(), v.Minor())
}
