//go:build unix

package platform

import (
	"golang.org/x/sys/unix"
)

// MachineArch returns the machine name reported by the kernel, such as "x86_64" or
// "aarch64". Unlike CurrentArch it describes the hardware, not the binary, so the two
// differ when the binary runs under emulation or in 32-bit compatibility mode.
func MachineArch() (string, error) {
	var utsname unix.Utsname
	if err := unix.Uname(&utsname); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(utsname.Machine[:]), nil
}
