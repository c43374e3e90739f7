package platform

import (
	"os"
	"runtime"

	"github.com/WindSoilder/uv/internal/logger"
	"github.com/WindSoilder/uv/pkg/cpuinfo"
	"github.com/WindSoilder/uv/pkg/errutils"
	"github.com/WindSoilder/uv/pkg/libc"
)

// LibcEnv is a C runtime environment a Linux binary is linked against.
type LibcEnv uint8

// Known libc environments.
const (
	LibcGnu LibcEnv = iota + 1
	LibcGnueabi
	LibcGnueabihf
	LibcMusl
)

var libcEnvNames = map[LibcEnv]string{
	LibcGnu:       "gnu",
	LibcGnueabi:   "gnueabi",
	LibcGnueabihf: "gnueabihf",
	LibcMusl:      "musl",
}

var libcEnvsByName = invert(libcEnvNames)

// String returns the canonical environment name.
func (e LibcEnv) String() string {
	if name, ok := libcEnvNames[e]; ok {
		return name
	}
	return "unknown"
}

// Libc is either a specific libc environment or none. The zero value is LibcNone.
type Libc struct {
	env LibcEnv
}

// LibcNone means no specific libc applies, as on Windows and macOS.
var LibcNone = Libc{}

// LibcOf returns the Libc for a specific environment.
func LibcOf(env LibcEnv) Libc {
	return Libc{env: env}
}

// ParseLibc accepts exactly "gnu", "gnueabi", "gnueabihf", "musl" and "none".
func ParseLibc(s string) (Libc, error) {
	if s == tokenNone {
		return LibcNone, nil
	}
	env, ok := libcEnvsByName[s]
	if !ok {
		return Libc{}, errutils.ErrUnknownLibcWithValue(s)
	}
	return Libc{env: env}, nil
}

// String returns the canonical token, "none" for LibcNone.
func (l Libc) String() string {
	if l.env == 0 {
		return tokenNone
	}
	return l.env.String()
}

// Env returns the environment and whether one is set.
func (l Libc) Env() (LibcEnv, bool) {
	return l.env, l.env != 0
}

// IsMusl reports whether l is the musl environment.
func (l Libc) IsMusl() bool {
	return l.env == LibcMusl
}

// MarshalText implements encoding.TextMarshaler.
func (l Libc) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseLibc.
func (l *Libc) UnmarshalText(text []byte) error {
	parsed, err := ParseLibc(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// LibcFromEnv detects the libc of the live host. See LibcDetector.Detect.
func LibcFromEnv() (Libc, error) {
	return NewLibcDetector().Detect()
}

// LibcDetector resolves the Libc of a host from an override variable and two probes.
type LibcDetector struct {
	Host Host
	// GOOS is the runtime.GOOS of the process. Android reports OsLinux as its Host.OS
	// but has no glibc or musl, so it is told apart here.
	GOOS   string
	Getenv func(key string) string
	Libc   LibcProbe
	Float  FloatProbe
}

// NewLibcDetector returns a detector wired to the live host.
func NewLibcDetector() *LibcDetector {
	return &LibcDetector{
		Host:   CurrentHost(),
		GOOS:   runtime.GOOS,
		Getenv: os.Getenv,
		Libc:   libc.NewDetector(),
		Float:  cpuinfo.NewProbe(),
	}
}

// Detect returns the host libc.
//
// Only Linux has a libc axis; every other host, Android included, returns LibcNone. On Linux a non-empty
// UV_LIBC wins and is parsed strictly. Otherwise the libc probe decides between glibc
// and musl, and a probe failure is returned. glibc on arm, armv5te and armv7 is refined
// by the hardware float probe; if that probe fails, plain gnu is used.
func (d *LibcDetector) Detect() (Libc, error) {
	if !d.Host.OS.IsLinux() || d.GOOS == goosAndroid {
		return LibcNone, nil
	}

	if override := d.Getenv(EnvLibc); override != "" {
		logger.Debug("Using libc override", logger.Fields{"env": EnvLibc, "value": override})
		return ParseLibc(override)
	}

	detected, err := d.Libc.DetectLibc()
	if err != nil {
		return Libc{}, errutils.ErrLibcDetectionWithCause(err)
	}
	logger.Debug("Detected host libc", logger.Fields{"libc": detected.String(), "tag": detected.Tag()})

	switch detected.Kind {
	case libc.Musllinux:
		return LibcOf(LibcMusl), nil
	case libc.Manylinux:
		return LibcOf(d.gnuFlavor()), nil
	default:
		return Libc{}, errutils.ErrLibcDetectionWithCause(libc.ErrUnrecognizedOutput)
	}
}

func (d *LibcDetector) gnuFlavor() LibcEnv {
	// armv6 always resolves to plain gnu.
	if f := d.Host.Arch.family; f != FamilyArm && f != FamilyArmv5te && f != FamilyArmv7 {
		return LibcGnu
	}

	hardFloat, err := d.Float.HardwareFloat()
	if err != nil {
		logger.Debug("Hardware float detection failed, using gnu", logger.Fields{"error": err.Error()})
		return LibcGnu
	}
	if hardFloat {
		return LibcGnueabihf
	}
	return LibcGnueabi
}
