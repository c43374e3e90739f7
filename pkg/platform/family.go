package platform

// Family is a CPU instruction-set family, independent of any variant.
// The zero value is not a family; ParseFamily never returns it.
type Family uint8

// Known architecture families.
const (
	FamilyX8664 Family = iota + 1
	FamilyI386
	FamilyI586
	FamilyI686
	FamilyAarch64
	FamilyAarch64BE
	FamilyArm
	FamilyArmv4t
	FamilyArmv5te
	FamilyArmv6
	FamilyArmv7
	FamilyArmv7a
	FamilyPowerpc
	FamilyPowerpc64
	FamilyPowerpc64le
	FamilyS390x
	FamilyRiscv32
	FamilyRiscv64
	FamilyLoongarch64
	FamilyMips
	FamilyMipsel
	FamilyMips64
	FamilyMips64el
	FamilySparc64
	FamilyWasm32
	FamilyWasm64
	FamilyArmeb
	FamilyArmebv7r
	FamilyArmv4
	FamilyArmv5t
	FamilyArmv5tej
	FamilyArmv6j
	FamilyArmv6k
	FamilyArmv6z
	FamilyArmv6kz
	FamilyArmv6t2
	FamilyArmv6m
	FamilyArmv7k
	FamilyArmv7ve
	FamilyArmv7m
	FamilyArmv7r
	FamilyArmv7s
	FamilyArmv8
	FamilyArmv8a
	FamilyArmv8r
	FamilyThumbeb
	FamilyThumbv4t
	FamilyThumbv5te
	FamilyThumbv6m
	FamilyThumbv7a
	FamilyThumbv7em
	FamilyThumbv7m
	FamilyThumbv7neon
	FamilyX8664h
	FamilyAmdgcn
	FamilyAsmjs
	FamilyAvr
	FamilyBpfeb
	FamilyBpfel
	FamilyHexagon
	FamilyM68k
	FamilyMipsisa32r6
	FamilyMipsisa32r6el
	FamilyMipsisa64r6
	FamilyMipsisa64r6el
	FamilyMsp430
	FamilyNvptx64
	FamilyRiscv32gc
	FamilyRiscv32i
	FamilyRiscv32imac
	FamilyRiscv32imc
	FamilyRiscv64gc
	FamilyRiscv64imac
	FamilySparc
	FamilySparcv9
	FamilyXtensa

	familyEnd
)

var familyNames = map[Family]string{
	FamilyX8664:         "x86_64",
	FamilyI386:          "i386",
	FamilyI586:          "i586",
	FamilyI686:          "i686",
	FamilyAarch64:       "aarch64",
	FamilyAarch64BE:     "aarch64_be",
	FamilyArm:           "arm",
	FamilyArmv4t:        "armv4t",
	FamilyArmv5te:       "armv5te",
	FamilyArmv6:         "armv6",
	FamilyArmv7:         "armv7",
	FamilyArmv7a:        "armv7a",
	FamilyPowerpc:       "powerpc",
	FamilyPowerpc64:     "powerpc64",
	FamilyPowerpc64le:   "powerpc64le",
	FamilyS390x:         "s390x",
	FamilyRiscv32:       "riscv32",
	FamilyRiscv64:       "riscv64",
	FamilyLoongarch64:   "loongarch64",
	FamilyMips:          "mips",
	FamilyMipsel:        "mipsel",
	FamilyMips64:        "mips64",
	FamilyMips64el:      "mips64el",
	FamilySparc64:       "sparc64",
	FamilyWasm32:        "wasm32",
	FamilyWasm64:        "wasm64",
	FamilyArmeb:         "armeb",
	FamilyArmebv7r:      "armebv7r",
	FamilyArmv4:         "armv4",
	FamilyArmv5t:        "armv5t",
	FamilyArmv5tej:      "armv5tej",
	FamilyArmv6j:        "armv6j",
	FamilyArmv6k:        "armv6k",
	FamilyArmv6z:        "armv6z",
	FamilyArmv6kz:       "armv6kz",
	FamilyArmv6t2:       "armv6t2",
	FamilyArmv6m:        "armv6m",
	FamilyArmv7k:        "armv7k",
	FamilyArmv7ve:       "armv7ve",
	FamilyArmv7m:        "armv7m",
	FamilyArmv7r:        "armv7r",
	FamilyArmv7s:        "armv7s",
	FamilyArmv8:         "armv8",
	FamilyArmv8a:        "armv8a",
	FamilyArmv8r:        "armv8r",
	FamilyThumbeb:       "thumbeb",
	FamilyThumbv4t:      "thumbv4t",
	FamilyThumbv5te:     "thumbv5te",
	FamilyThumbv6m:      "thumbv6m",
	FamilyThumbv7a:      "thumbv7a",
	FamilyThumbv7em:     "thumbv7em",
	FamilyThumbv7m:      "thumbv7m",
	FamilyThumbv7neon:   "thumbv7neon",
	FamilyX8664h:        "x86_64h",
	FamilyAmdgcn:        "amdgcn",
	FamilyAsmjs:         "asmjs",
	FamilyAvr:           "avr",
	FamilyBpfeb:         "bpfeb",
	FamilyBpfel:         "bpfel",
	FamilyHexagon:       "hexagon",
	FamilyM68k:          "m68k",
	FamilyMipsisa32r6:   "mipsisa32r6",
	FamilyMipsisa32r6el: "mipsisa32r6el",
	FamilyMipsisa64r6:   "mipsisa64r6",
	FamilyMipsisa64r6el: "mipsisa64r6el",
	FamilyMsp430:        "msp430",
	FamilyNvptx64:       "nvptx64",
	FamilyRiscv32gc:     "riscv32gc",
	FamilyRiscv32i:      "riscv32i",
	FamilyRiscv32imac:   "riscv32imac",
	FamilyRiscv32imc:    "riscv32imc",
	FamilyRiscv64gc:     "riscv64gc",
	FamilyRiscv64imac:   "riscv64imac",
	FamilySparc:         "sparc",
	FamilySparcv9:       "sparcv9",
	FamilyXtensa:        "xtensa",
}

var familiesByName = invert(familyNames)

// ParseFamily resolves a canonical family name. Aliases such as "x86" are handled by ParseArch.
func ParseFamily(s string) (Family, bool) {
	f, ok := familiesByName[s]
	return f, ok
}

// String returns the canonical family name, or "unknown" for the zero value.
func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return "unknown"
}

// IsArm reports whether f is a 32-bit ARM family, Thumb included.
func (f Family) IsArm() bool {
	switch f {
	case FamilyArm, FamilyArmv4t, FamilyArmv5te, FamilyArmv6, FamilyArmv7, FamilyArmv7a,
		FamilyArmeb, FamilyArmebv7r, FamilyArmv4, FamilyArmv5t, FamilyArmv5tej,
		FamilyArmv6j, FamilyArmv6k, FamilyArmv6z, FamilyArmv6kz, FamilyArmv6t2,
		FamilyArmv6m, FamilyArmv7k, FamilyArmv7ve, FamilyArmv7m, FamilyArmv7r,
		FamilyArmv7s, FamilyArmv8, FamilyArmv8a, FamilyArmv8r, FamilyThumbeb,
		FamilyThumbv4t, FamilyThumbv5te, FamilyThumbv6m, FamilyThumbv7a, FamilyThumbv7em,
		FamilyThumbv7m, FamilyThumbv7neon:
		return true
	default:
		return false
	}
}

// IsAarch64 reports whether f is a 64-bit ARM family of either endianness.
func (f Family) IsAarch64() bool {
	return f == FamilyAarch64 || f == FamilyAarch64BE
}

// Families returns every known family in declaration order.
func Families() []Family {
	out := make([]Family, 0, len(familyNames))
	for f := FamilyX8664; f < familyEnd; f++ {
		out = append(out, f)
	}
	return out
}

func invert[K comparable](m map[K]string) map[string]K {
	out := make(map[string]K, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}
