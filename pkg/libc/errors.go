package libc

import "fmt"

// Common libc detection errors.
var (
	// ErrUnsupportedOS is returned when detection runs on a non-Linux host.
	ErrUnsupportedOS = fmt.Errorf("libc detection is only supported on linux")

	// ErrNoInterpreter is returned when no candidate executable names a dynamic linker.
	ErrNoInterpreter = fmt.Errorf("could not find the dynamic linker")

	// ErrUnrecognizedOutput is returned when a linker or ldd prints no recognizable version.
	ErrUnrecognizedOutput = fmt.Errorf("could not parse libc version")
)
