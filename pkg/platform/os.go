package platform

import (
	"github.com/WindSoilder/uv/pkg/errutils"
)

// Os is a canonical operating system identity.
//
// The zero value stands for an unknown system. ParseOs never returns it; it only
// appears from CurrentOS on a GOOS with no canonical name.
type Os struct {
	name string
}

// Known operating systems.
//
// OsNone is the bare-metal target, not an absent value.
var (
	OsAIX        = Os{"aix"}
	OsAmdHsa     = Os{"amdhsa"}
	OsBitrig     = Os{"bitrig"}
	OsCloudABI   = Os{"cloudabi"}
	OsCUDA       = Os{"cuda"}
	OsDarwin     = Os{"darwin"}
	OsDragonfly  = Os{"dragonfly"}
	OsEmscripten = Os{"emscripten"}
	OsEspIDF     = Os{"espidf"}
	OsFreeBSD    = Os{"freebsd"}
	OsFuchsia    = Os{"fuchsia"}
	OsHaiku      = Os{"haiku"}
	OsHermit     = Os{"hermit"}
	OsHorizon    = Os{"horizon"}
	OsHurd       = Os{"hurd"}
	OsIllumos    = Os{"illumos"}
	OsIOS        = Os{"ios"}
	OsL4Re       = Os{"l4re"}
	OsLinux      = Os{"linux"}
	OsNebulet    = Os{"nebulet"}
	OsNetBSD     = Os{"netbsd"}
	OsNone       = Os{"none"}
	OsOpenBSD    = Os{"openbsd"}
	OsPSP        = Os{"psp"}
	OsRedox      = Os{"redox"}
	OsSolaris    = Os{"solaris"}
	OsSolidASP3  = Os{"solid_asp3"}
	OsTvOS       = Os{"tvos"}
	OsUEFI       = Os{"uefi"}
	OsVisionOS   = Os{"visionos"}
	OsVxWorks    = Os{"vxworks"}
	OsWASI       = Os{"wasi"}
	OsWASIp1     = Os{"wasip1"}
	OsWASIp2     = Os{"wasip2"}
	OsWatchOS    = Os{"watchos"}
	OsWindows    = Os{"windows"}
)

var knownOs = []Os{
	OsAIX, OsAmdHsa, OsBitrig, OsCloudABI, OsCUDA, OsDarwin, OsDragonfly, OsEmscripten,
	OsEspIDF, OsFreeBSD, OsFuchsia, OsHaiku, OsHermit, OsHorizon, OsHurd, OsIllumos, OsIOS,
	OsL4Re, OsLinux, OsNebulet, OsNetBSD, OsNone, OsOpenBSD, OsPSP, OsRedox, OsSolaris,
	OsSolidASP3, OsTvOS, OsUEFI, OsVisionOS, OsVxWorks, OsWASI, OsWASIp1, OsWASIp2,
	OsWatchOS, OsWindows,
}

var osByName = func() map[string]Os {
	m := make(map[string]Os, len(knownOs))
	for _, o := range knownOs {
		m[o.name] = o
	}
	return m
}()

// ParseOs parses an operating system token. "macos" is accepted as the Darwin family.
func ParseOs(s string) (Os, error) {
	if s == tokenMacOS {
		return OsDarwin, nil
	}
	o, ok := osByName[s]
	if !ok {
		return Os{}, errutils.ErrUnknownOsWithValue(s)
	}
	return o, nil
}

// KnownOs returns every operating system ParseOs accepts under its canonical name.
func KnownOs() []Os {
	return append([]Os(nil), knownOs...)
}

// String returns the canonical token. Darwin always formats as "macos".
func (o Os) String() string {
	switch {
	case o == OsDarwin:
		return tokenMacOS
	case o.name == "":
		return "unknown"
	default:
		return o.name
	}
}

// Name returns the underlying family name, which is "darwin" for macOS.
func (o Os) Name() string {
	return o.name
}

// IsWindows reports whether o is Windows.
func (o Os) IsWindows() bool { return o == OsWindows }

// IsMacOS reports whether o is the Darwin family.
func (o Os) IsMacOS() bool { return o == OsDarwin }

// IsLinux reports whether o is Linux.
func (o Os) IsLinux() bool { return o == OsLinux }

// IsKnown reports whether o is a recognized operating system.
func (o Os) IsKnown() bool { return o.name != "" }

// MarshalText implements encoding.TextMarshaler.
func (o Os) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseOs.
func (o *Os) UnmarshalText(text []byte) error {
	parsed, err := ParseOs(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
