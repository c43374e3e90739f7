// Package errutils defines the error values shared by the platform packages and the CLI.
//
// Every failure is represented by a sentinel error. Helpers named ...WithValue or
// ...WithDetails wrap a sentinel together with the offending input, so callers can
// match with errors.Is while users still see what was rejected.
package errutils

import (
	"fmt"
)

// Platform parsing and detection errors.
var (
	// ErrUnknownOs is returned when a string is not a recognized operating system token.
	ErrUnknownOs = fmt.Errorf("unknown operating system")

	// ErrUnknownArch is returned when a string is not a recognized architecture family token.
	ErrUnknownArch = fmt.Errorf("unknown architecture")

	// ErrUnknownLibc is returned when a string is not one of the libc environment tokens.
	ErrUnknownLibc = fmt.Errorf("unknown libc environment")

	// ErrUnknownVariant is returned when a string is not one of v2, v3 or v4.
	ErrUnknownVariant = fmt.Errorf("unknown architecture variant")

	// ErrUnsupportedVariant is returned when a valid variant suffix is attached to a
	// family that has no variants.
	ErrUnsupportedVariant = fmt.Errorf("unsupported variant")

	// ErrLibcDetection is returned when the host C library could not be identified.
	ErrLibcDetection = fmt.Errorf("failed to detect libc")

	// ErrHardwareFloatDetection is returned when the CPU floating-point capability
	// could not be determined.
	ErrHardwareFloatDetection = fmt.Errorf("failed to detect hardware floating point support")

	// ErrUnknownPlatform is returned when a platform key is not of the form os-arch-libc.
	ErrUnknownPlatform = fmt.Errorf("invalid platform key")

	// ErrUnknownTag is returned when a platform tag component is not recognized.
	ErrUnknownTag = fmt.Errorf("unknown platform tag")
)

// Config errors are related to configuration file operations and validation.
var (
	ErrEmptyConfigPath = fmt.Errorf(
		"config file path cannot be empty") // When config file path is empty

	ErrInvalidConfigPath = fmt.Errorf(
		"invalid config file path") // When provided config file path is invalid

	ErrConfigParse = fmt.Errorf(
		"failed to parse config") // When config file cannot be parsed

	// ErrConfigValidation is returned when configuration values fail validation.
	ErrConfigValidation = fmt.Errorf("invalid configuration")

	ErrConfigEncode = fmt.Errorf(
		"failed to encode config") // When config cannot be encoded

	ErrConfigDirectory = fmt.Errorf(
		"failed to create config directory") // When config dir cannot be created

	ErrConfigFileCreate = fmt.Errorf(
		"failed to create config file") // When config file cannot be created

	// ErrConfigFileExists is returned when attempting to create a configuration file that already exists.
	ErrConfigFileExists = fmt.Errorf("configuration file already exists (use --force to overwrite)")

	// ErrConfigFileRename is returned when renaming the temporary config file fails.
	ErrConfigFileRename = fmt.Errorf("failed to rename temporary config file")

	// ErrConfigMarshal is returned when marshaling the config to YAML fails.
	ErrConfigMarshal = fmt.Errorf("failed to marshal config to YAML")

	// ErrUnknownConfigKey is returned by get/set for keys the config does not have.
	ErrUnknownConfigKey = fmt.Errorf("unknown configuration key")

	// ErrInvalidOutputFormat is returned when an output format is not supported.
	ErrInvalidOutputFormat = fmt.Errorf("invalid output format")

	// ErrInvalidLogLevel is returned when a log level is not supported.
	ErrInvalidLogLevel = fmt.Errorf("invalid log level")

	// ErrInvalidLogFormat is returned when a log format is not supported.
	ErrInvalidLogFormat = fmt.Errorf("invalid log format")
)

// ErrUnknownOsWithValue wraps ErrUnknownOs with the rejected input.
func ErrUnknownOsWithValue(value string) error {
	return fmt.Errorf("%w: %s", ErrUnknownOs, value)
}

// ErrUnknownArchWithValue wraps ErrUnknownArch with the rejected input.
func ErrUnknownArchWithValue(value string) error {
	return fmt.Errorf("%w: %s", ErrUnknownArch, value)
}

// ErrUnknownLibcWithValue wraps ErrUnknownLibc with the rejected input.
func ErrUnknownLibcWithValue(value string) error {
	return fmt.Errorf("%w: %s", ErrUnknownLibc, value)
}

// ErrUnknownVariantWithValue wraps ErrUnknownVariant with the rejected input.
func ErrUnknownVariantWithValue(value string) error {
	return fmt.Errorf("%w: %s", ErrUnknownVariant, value)
}

// ErrUnsupportedVariantWithDetails wraps ErrUnsupportedVariant with the variant and the family it was paired with.
func ErrUnsupportedVariantWithDetails(variant, family string) error {
	return fmt.Errorf("%w `%s` for architecture `%s`", ErrUnsupportedVariant, variant, family)
}

// ErrLibcDetectionWithCause wraps both ErrLibcDetection and the probe failure.
func ErrLibcDetectionWithCause(cause error) error {
	return fmt.Errorf("%w: %w", ErrLibcDetection, cause)
}

// ErrUnknownPlatformWithValue wraps ErrUnknownPlatform with the rejected key.
func ErrUnknownPlatformWithValue(value string) error {
	return fmt.Errorf("%w: %q (expected <os>-<arch>-<libc>)", ErrUnknownPlatform, value)
}

// ErrUnknownTagWithValue wraps ErrUnknownTag with the rejected tag component.
func ErrUnknownTagWithValue(value string) error {
	return fmt.Errorf("%w: %s", ErrUnknownTag, value)
}

// ErrUnknownConfigKeyWithName wraps ErrUnknownConfigKey with the key.
func ErrUnknownConfigKeyWithName(key string) error {
	return fmt.Errorf("%w: %s", ErrUnknownConfigKey, key)
}

// ErrInvalidOutputFormatWithDetails is a helper to create a wrapped error with the invalid format and valid options.
func ErrInvalidOutputFormatWithDetails(format string) error {
	return fmt.Errorf("%w: '%s', must be one of: text, json, yaml", ErrInvalidOutputFormat, format)
}

// ErrInvalidLogLevelWithDetails is a helper to create a wrapped error with the invalid level and valid options.
func ErrInvalidLogLevelWithDetails(level string) error {
	return fmt.Errorf("%w: '%s', must be one of: debug, info, warn, error", ErrInvalidLogLevel, level)
}

// ErrInvalidLogFormatWithDetails is a helper to create a wrapped error with the invalid log format and valid options.
func ErrInvalidLogFormatWithDetails(format string) error {
	return fmt.Errorf("%w: '%s', must be one of: text, json", ErrInvalidLogFormat, format)
}

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
