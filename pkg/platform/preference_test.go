package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func archs(tokens ...string) []Arch {
	out := make([]Arch, 0, len(tokens))
	for _, token := range tokens {
		out = append(out, MustParseArch(token))
	}
	return out
}

func TestPreferredFamily(t *testing.T) {
	tests := []struct {
		name     string
		host     Host
		expected Family
	}{
		{name: "linux x86_64", host: Host{OS: OsLinux, Arch: ArchOf(FamilyX8664)}, expected: FamilyX8664},
		{name: "linux aarch64", host: Host{OS: OsLinux, Arch: ArchOf(FamilyAarch64)}, expected: FamilyAarch64},
		{name: "macos aarch64", host: Host{OS: OsDarwin, Arch: ArchOf(FamilyAarch64)}, expected: FamilyAarch64},
		{name: "windows x86_64", host: Host{OS: OsWindows, Arch: ArchOf(FamilyX8664)}, expected: FamilyX8664},
		{name: "windows aarch64 prefers x86_64", host: Host{OS: OsWindows, Arch: ArchOf(FamilyAarch64)}, expected: FamilyX8664},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, PreferredFamily(tt.host))
		})
	}
}

func TestComparePreferred(t *testing.T) {
	tests := []struct {
		name      string
		preferred Family
		a, b      string
		expected  int
	}{
		{name: "preferred first", preferred: FamilyX8664, a: "x86_64", b: "aarch64", expected: -1},
		{name: "preferred second", preferred: FamilyX8664, a: "aarch64", b: "x86_64", expected: 1},
		{name: "preferred with variant still first", preferred: FamilyX8664, a: "x86_64_v4", b: "aarch64", expected: -1},
		{name: "no variant below v2", preferred: FamilyAarch64, a: "x86_64", b: "x86_64_v2", expected: -1},
		{name: "v3 above v2", preferred: FamilyAarch64, a: "x86_64_v3", b: "x86_64_v2", expected: 1},
		{name: "equal", preferred: FamilyX8664, a: "x86_64_v3", b: "x86_64_v3", expected: 0},
		{name: "neither preferred is lexicographic", preferred: FamilyX8664, a: "powerpc64le", b: "aarch64", expected: 1},
		{name: "lexicographic uses family name not alias", preferred: FamilyX8664, a: "x86", b: "s390x", expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComparePreferred(tt.preferred, MustParseArch(tt.a), MustParseArch(tt.b))
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSortArchs(t *testing.T) {
	tests := []struct {
		name     string
		host     Host
		input    []Arch
		expected []Arch
	}{
		{
			name:     "native first",
			host:     Host{OS: OsLinux, Arch: ArchOf(FamilyX8664)},
			input:    archs("aarch64", "x86_64"),
			expected: archs("x86_64", "aarch64"),
		},
		{
			name:     "variants ascend within family",
			host:     Host{OS: OsLinux, Arch: ArchOf(FamilyX8664)},
			input:    archs("x86_64_v4", "x86_64_v2", "x86_64", "x86_64_v3"),
			expected: archs("x86_64", "x86_64_v2", "x86_64_v3", "x86_64_v4"),
		},
		{
			name:     "mixed candidates",
			host:     Host{OS: OsLinux, Arch: ArchOf(FamilyX8664)},
			input:    archs("s390x", "aarch64", "x86_64_v3", "x86", "x86_64"),
			expected: archs("x86_64", "x86_64_v3", "aarch64", "x86", "s390x"),
		},
		{
			name:     "windows aarch64 ranks x86_64 first",
			host:     Host{OS: OsWindows, Arch: ArchOf(FamilyAarch64)},
			input:    archs("aarch64", "x86_64"),
			expected: archs("x86_64", "aarch64"),
		},
		{
			name:     "macos aarch64 ranks native first",
			host:     Host{OS: OsDarwin, Arch: ArchOf(FamilyAarch64)},
			input:    archs("x86_64", "aarch64"),
			expected: archs("aarch64", "x86_64"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SortArchs(tt.host, tt.input)
			assert.Equal(t, tt.expected, tt.input)
		})
	}
}

func TestArch_Compare_Native(t *testing.T) {
	native := CurrentArch()
	other := ArchOf(FamilyS390x)
	if native.Family() == FamilyS390x {
		other = ArchOf(FamilyX8664)
	}
	if PreferredFamily(CurrentHost()) != native.Family() {
		t.Skip("host prefers an emulated architecture")
	}

	assert.Negative(t, native.Compare(other))
	assert.Positive(t, other.Compare(native))
	assert.Zero(t, native.Compare(native))
}

func TestArch_Compare_UsesCachedHostPreference(t *testing.T) {
	assert.Equal(t, PreferredFamily(CurrentHost()), livePreferredFamily())
	assert.Equal(t, livePreferredFamily(), livePreferredFamily())

	archs := []Arch{ArchOf(FamilyS390x), ArchOf(FamilyRiscv64), CurrentArch(), ArchOf(FamilyAarch64)}
	preferred := livePreferredFamily()
	for _, a := range archs {
		for _, b := range archs {
			assert.Equal(t, ComparePreferred(preferred, a, b), a.Compare(b), "%s vs %s", a, b)
		}
	}
}
