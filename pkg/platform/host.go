package platform

import (
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

// Host is the operating system and native architecture of a machine.
type Host struct {
	OS   Os
	Arch Arch
}

// CurrentHost returns the host this binary was built to run on.
func CurrentHost() Host {
	return Host{OS: CurrentOS(), Arch: CurrentArch()}
}

// String returns "<os>/<arch>".
func (h Host) String() string {
	return h.OS.String() + "/" + h.Arch.String()
}

// CurrentOS returns the operating system of the running binary.
func CurrentOS() Os {
	return osFromGOOS(runtime.GOOS)
}

// CurrentArch returns the architecture of the running binary, without a variant.
// 32-bit ARM builds are refined by the GOARM setting recorded in the build info.
func CurrentArch() Arch {
	return ArchOf(familyFromGOARCH(runtime.GOARCH, goarm()))
}

// goarm is the GOARM build setting, read from the build info once.
var goarm = sync.OnceValue(func() string {
	return buildSetting("GOARM")
})

func osFromGOOS(goos string) Os {
	switch goos {
	case "linux", "android":
		return OsLinux
	case "darwin":
		return OsDarwin
	case "ios":
		return OsIOS
	case "windows":
		return OsWindows
	case "freebsd":
		return OsFreeBSD
	case "netbsd":
		return OsNetBSD
	case "openbsd":
		return OsOpenBSD
	case "dragonfly":
		return OsDragonfly
	case "illumos":
		return OsIllumos
	case "solaris":
		return OsSolaris
	case "aix":
		return OsAIX
	case "js":
		return OsEmscripten
	case "wasip1":
		return OsWASI
	case "hurd":
		return OsHurd
	default:
		return Os{}
	}
}

func familyFromGOARCH(goarch, goarm string) Family {
	switch goarch {
	case "amd64":
		return FamilyX8664
	case "386":
		return FamilyI686
	case "arm64":
		return FamilyAarch64
	case "arm64be":
		return FamilyAarch64BE
	case "arm":
		return armFamily(goarm)
	case "ppc":
		return FamilyPowerpc
	case "ppc64":
		return FamilyPowerpc64
	case "ppc64le":
		return FamilyPowerpc64le
	case "s390x":
		return FamilyS390x
	case "riscv":
		return FamilyRiscv32
	case "riscv64":
		return FamilyRiscv64
	case "loong64":
		return FamilyLoongarch64
	case "mips":
		return FamilyMips
	case "mipsle":
		return FamilyMipsel
	case "mips64":
		return FamilyMips64
	case "mips64le":
		return FamilyMips64el
	case "sparc64":
		return FamilySparc64
	case "wasm":
		return FamilyWasm32
	default:
		return 0
	}
}

// armFamily maps a GOARM value such as "7" or "6,softfloat" to an ARM family.
func armFamily(goarm string) Family {
	level, _, _ := strings.Cut(goarm, ",")
	switch level {
	case "5":
		return FamilyArmv5te
	case "6":
		return FamilyArmv6
	case "7":
		return FamilyArmv7
	default:
		return FamilyArm
	}
}

func buildSetting(key string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}
