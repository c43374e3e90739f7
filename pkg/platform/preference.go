package platform

import (
	"cmp"
	"slices"
)

// PreferredFamily returns the architecture family that ranks first on host.
//
// Normally that is the host's own family. Windows on aarch64 prefers x86_64 instead,
// since aarch64 Windows builds are rare. This only affects ranking; an explicitly
// requested aarch64 build is still accepted by SupportsOn.
func PreferredFamily(host Host) Family {
	if host.OS.IsWindows() && host.Arch.family == FamilyAarch64 {
		return FamilyX8664
	}
	return host.Arch.family
}

// ComparePreferred orders a and b from most to least preferred given the preferred family.
//
// Architectures of the same family compare by variant, with no variant lowest. Otherwise
// the one matching preferred comes first, and two non-preferred families fall back to
// their canonical names.
func ComparePreferred(preferred Family, a, b Arch) int {
	if a.family == b.family {
		return cmp.Compare(a.variant, b.variant)
	}

	switch aPreferred, bPreferred := a.family == preferred, b.family == preferred; {
	case aPreferred && bPreferred:
		panic("platform: distinct families both match the preferred family")
	case aPreferred:
		return -1
	case bPreferred:
		return 1
	default:
		return cmp.Compare(a.family.String(), b.family.String())
	}
}

// SortArchs sorts archs in place from most to least preferred for host.
func SortArchs(host Host, archs []Arch) {
	preferred := PreferredFamily(host)
	slices.SortStableFunc(archs, func(a, b Arch) int {
		return ComparePreferred(preferred, a, b)
	})
}
