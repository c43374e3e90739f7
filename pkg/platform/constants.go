// Package platform identifies the operating system, CPU architecture and C library of a
// machine, and answers which prebuilt binaries that machine should prefer or can run.
//
// Os, Arch and Libc are independent axes. Each can be parsed from a canonical token,
// formatted back to that token, or read from the live host.
package platform

// EnvLibc names the environment variable that overrides libc detection on Linux.
const EnvLibc = "UV_LIBC"

// goosAndroid is the GOOS of Android builds, which otherwise identify as Linux.
const goosAndroid = "android"

// Tokens shared by the parsers and formatters.
const (
	// tokenMacOS is the lookup key for the Darwin family.
	tokenMacOS = "macos"
	// tokenX86 is the short name of the i686 family.
	tokenX86 = "x86"
	// tokenArm64 is the Apple and Windows name of the aarch64 family.
	tokenArm64 = "arm64"
	// tokenNone is the libc token meaning no specific libc applies.
	tokenNone = "none"
	// variantSeparator splits a family from its variant suffix, as in x86_64_v3.
	variantSeparator = "_"
)
