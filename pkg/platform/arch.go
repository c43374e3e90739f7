package platform

import (
	"strings"
	"sync"

	"github.com/WindSoilder/uv/pkg/errutils"
)

// Arch is a CPU family plus an optional instruction-set variant.
// Only FamilyX8664 carries a variant; ParseArch and WithVariant enforce this.
type Arch struct {
	family  Family
	variant ArchVariant
}

// ArchOf returns the architecture for a family with no variant.
func ArchOf(family Family) Arch {
	return Arch{family: family}
}

// WithVariant returns a copy of a with the given variant.
func (a Arch) WithVariant(v ArchVariant) (Arch, error) {
	if a.family != FamilyX8664 {
		return Arch{}, errutils.ErrUnsupportedVariantWithDetails(v.String(), a.family.String())
	}
	a.variant = v
	return a, nil
}

// ParseArch parses an architecture token such as "aarch64", "x86" or "x86_64_v3".
// "arm64" is accepted as an alias of aarch64.
//
// A trailing _v2, _v3 or _v4 is only treated as a variant when the remaining prefix is
// itself a valid family; otherwise the whole string is parsed as a family.
func ParseArch(s string) (Arch, error) {
	if i := strings.LastIndex(s, variantSeparator); i >= 0 {
		family, famErr := parseFamily(s[:i])
		variant, ok := ParseArchVariant(s[i+len(variantSeparator):])
		if famErr == nil && ok {
			if family != FamilyX8664 {
				return Arch{}, errutils.ErrUnsupportedVariantWithDetails(variant.String(), family.String())
			}
			return Arch{family: family, variant: variant}, nil
		}
	}

	family, err := parseFamily(s)
	if err != nil {
		return Arch{}, err
	}
	return Arch{family: family}, nil
}

func parseFamily(s string) (Family, error) {
	switch s {
	// Only one 32-bit x86 flavor has distributions, so "x86" means i686.
	case tokenX86:
		return FamilyI686, nil
	case tokenArm64:
		return FamilyAarch64, nil
	}
	f, ok := ParseFamily(s)
	if !ok {
		return 0, errutils.ErrUnknownArchWithValue(s)
	}
	return f, nil
}

// MustParseArch is like ParseArch but panics on error. Intended for tests and
// package-level tables of literal tokens.
func MustParseArch(s string) Arch {
	a, err := ParseArch(s)
	if err != nil {
		panic(err)
	}
	return a
}

// String formats a as its canonical token. i686 formats as "x86".
func (a Arch) String() string {
	var b strings.Builder
	if a.family == FamilyI686 {
		b.WriteString(tokenX86)
	} else {
		b.WriteString(a.family.String())
	}
	if a.variant != 0 {
		b.WriteString(variantSeparator)
		b.WriteString(a.variant.String())
	}
	return b.String()
}

// Family returns the CPU family.
func (a Arch) Family() Family {
	return a.family
}

// Variant returns the variant and whether one is set.
func (a Arch) Variant() (ArchVariant, bool) {
	return a.variant, a.variant != 0
}

// IsArm reports whether a is a 32-bit ARM architecture.
func (a Arch) IsArm() bool {
	return a.family.IsArm()
}

// Compare ranks a against b for execution on the live host. A negative result means a
// is preferred. See ComparePreferred for the ordering.
func (a Arch) Compare(b Arch) int {
	return ComparePreferred(livePreferredFamily(), a, b)
}

// livePreferredFamily is PreferredFamily of the live host, which cannot change while
// the process runs.
var livePreferredFamily = sync.OnceValue(func() Family {
	return PreferredFamily(CurrentHost())
})

// Supports reports whether a host whose native architecture is a can run binaries
// built for other, assuming the live host operating system.
func (a Arch) Supports(other Arch) bool {
	return SupportsOn(CurrentOS(), a, other)
}

// SupportsOn reports whether a host running hostOS with native architecture self can
// run binaries built for other.
//
// Windows and macOS on ARM64 run x86_64 binaries through transparent emulation
// (built in on Windows, Rosetta on macOS). Rosetta is assumed to be installed.
// Variant compatibility within a family is not modeled: x86_64_v3 does not run
// x86_64_v2 binaries by this predicate.
func SupportsOn(hostOS Os, self, other Arch) bool {
	if self == other {
		return true
	}

	if (hostOS.IsWindows() || hostOS.IsMacOS()) && self.family.IsAarch64() {
		return other.family == FamilyX8664
	}

	return false
}

// MarshalText implements encoding.TextMarshaler.
func (a Arch) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseArch.
func (a *Arch) UnmarshalText(text []byte) error {
	parsed, err := ParseArch(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
