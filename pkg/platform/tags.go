package platform

import "github.com/WindSoilder/uv/pkg/errutils"

// Architecture names used in wheel platform tags.
var tagArchs = map[string]Family{
	"aarch64":     FamilyAarch64,
	"armv5tel":    FamilyArmv5te,
	"armv6l":      FamilyArmv6,
	"armv7l":      FamilyArmv7,
	"s390x":       FamilyS390x,
	"ppc":         FamilyPowerpc,
	"ppc64":       FamilyPowerpc64,
	"ppc64le":     FamilyPowerpc64le,
	"x86":         FamilyI686,
	"i686":        FamilyI686,
	"x86_64":      FamilyX8664,
	"loongarch64": FamilyLoongarch64,
	"riscv64":     FamilyRiscv64,
	"wasm32":      FamilyWasm32,
}

// ArchFromTag converts a platform tag architecture such as "armv7l" to an Arch.
func ArchFromTag(tag string) (Arch, error) {
	f, ok := tagArchs[tag]
	if !ok {
		return Arch{}, errutils.ErrUnknownTagWithValue(tag)
	}
	return ArchOf(f), nil
}

// Operating system kinds used in platform tags.
var tagOs = map[string]Os{
	"manylinux": OsLinux,
	"musllinux": OsLinux,
	"android":   OsLinux,
	"macos":     OsDarwin,
	"windows":   OsWindows,
	"freebsd":   OsFreeBSD,
	"netbsd":    OsNetBSD,
	"openbsd":   OsOpenBSD,
	"dragonfly": OsDragonfly,
	"illumos":   OsIllumos,
	"haiku":     OsHaiku,
	"pyodide":   OsEmscripten,
}

// OsFromTag converts a platform tag OS kind such as "manylinux" to an Os.
func OsFromTag(kind string) (Os, error) {
	o, ok := tagOs[kind]
	if !ok {
		return Os{}, errutils.ErrUnknownTagWithValue(kind)
	}
	return o, nil
}

// LibcFromTag converts a platform tag OS kind to a Libc. manylinux is gnu, musllinux is
// musl, and every other known kind has no libc.
func LibcFromTag(kind string) (Libc, error) {
	if _, ok := tagOs[kind]; !ok {
		return Libc{}, errutils.ErrUnknownTagWithValue(kind)
	}
	switch kind {
	case "manylinux":
		return LibcOf(LibcGnu), nil
	case "musllinux":
		return LibcOf(LibcMusl), nil
	default:
		return LibcNone, nil
	}
}
