//go:build !unix

package platform

// MachineArch returns the architecture of the running binary. Kernel machine names are
// only available on unix systems.
func MachineArch() (string, error) {
	return CurrentArch().String(), nil
}
