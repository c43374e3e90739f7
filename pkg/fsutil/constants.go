// Package fsutil holds the file permission defaults and write helpers used for config files.
package fsutil

// File and directory permission constants.
const (
	FileModeDefault = 0o644 // -rw-r--r--: Default for regular files
	DirModeDefault  = 0o755 // drwxr-xr-x: Default for directories
)
