package libc

import (
	"bytes"
	"debug/elf"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"runtime"
	"strconv"
	"strings"
)

// DefaultCandidates are the executables whose ELF interpreter names the system linker.
var DefaultCandidates = []string{"/bin/sh", "/usr/bin/env", "/bin/dash", "/bin/ls"}

var (
	muslVersionRe  = regexp.MustCompile(`(?m)^Version (\d+)\.(\d+)`)
	glibcVersionRe = regexp.MustCompile(`version (\d+)\.(\d+)`)
	lddVersionRe   = regexp.MustCompile(`(?m)^ldd \(.*\) (\d+)\.(\d+)`)
)

// Runner runs a command and returns its stdout, stderr and exit error.
type Runner func(name string, args ...string) (stdout, stderr []byte, err error)

// InterpreterFunc returns the PT_INTERP path of an ELF file, or "" if it has none.
type InterpreterFunc func(path string) (string, error)

// Detector finds the libc of a Linux host. The zero value is not usable; use NewDetector.
type Detector struct {
	GOOS        string
	Candidates  []string
	Interpreter InterpreterFunc
	Run         Runner
}

// NewDetector returns a Detector that inspects the live host.
func NewDetector() *Detector {
	return &Detector{
		GOOS:        runtime.GOOS,
		Candidates:  DefaultCandidates,
		Interpreter: ELFInterpreter,
		Run:         runCommand,
	}
}

// Detect returns the libc of the live host.
func Detect() (Version, error) {
	return NewDetector().Detect()
}

// DetectLibc implements the probe interface used by the platform package.
func (d *Detector) DetectLibc() (Version, error) {
	return d.Detect()
}

// Detect identifies the host libc from its dynamic linker, falling back to ldd.
func (d *Detector) Detect() (Version, error) {
	if d.GOOS != "linux" {
		return Version{}, fmt.Errorf("%w: %s", ErrUnsupportedOS, d.GOOS)
	}

	ld, err := d.findLinker()
	if err != nil {
		v, lddErr := d.fromLdd()
		if lddErr != nil {
			return Version{}, errors.Join(err, lddErr)
		}
		return v, nil
	}

	if strings.Contains(ld, "musl") {
		return d.muslVersion(ld)
	}

	v, err := d.glibcVersion(ld)
	if err != nil {
		if v, lddErr := d.fromLdd(); lddErr == nil {
			return v, nil
		}
		return Version{}, err
	}
	return v, nil
}

func (d *Detector) findLinker() (string, error) {
	for _, candidate := range d.Candidates {
		interp, err := d.Interpreter(candidate)
		if err != nil || interp == "" {
			continue
		}
		return interp, nil
	}
	return "", fmt.Errorf("%w (checked %s)", ErrNoInterpreter, strings.Join(d.Candidates, ", "))
}

// muslVersion runs the musl loader with no arguments. It exits non-zero and prints
// its version banner on stderr.
func (d *Detector) muslVersion(ld string) (Version, error) {
	_, stderr, _ := d.Run(ld)
	major, minor, ok := match(muslVersionRe, stderr)
	if !ok {
		return Version{}, fmt.Errorf("%w: musl loader %s printed %q", ErrUnrecognizedOutput, ld, firstLine(stderr))
	}
	return NewVersion(Musllinux, major, minor), nil
}

func (d *Detector) glibcVersion(ld string) (Version, error) {
	stdout, _, err := d.Run(ld, "--version")
	if err != nil {
		return Version{}, fmt.Errorf("failed to run %s --version: %w", ld, err)
	}
	major, minor, ok := match(glibcVersionRe, stdout)
	if !ok {
		return Version{}, fmt.Errorf("%w: %s printed %q", ErrUnrecognizedOutput, ld, firstLine(stdout))
	}
	return NewVersion(Manylinux, major, minor), nil
}

// fromLdd parses `ldd --version`. glibc prints to stdout, musl's ldd prints to stderr.
func (d *Detector) fromLdd() (Version, error) {
	stdout, stderr, err := d.Run("ldd", "--version")
	if major, minor, ok := match(lddVersionRe, stdout); ok {
		return NewVersion(Manylinux, major, minor), nil
	}
	if bytes.Contains(stderr, []byte("musl")) {
		if major, minor, ok := match(muslVersionRe, stderr); ok {
			return NewVersion(Musllinux, major, minor), nil
		}
	}
	if err != nil {
		return Version{}, fmt.Errorf("failed to run ldd --version: %w", err)
	}
	return Version{}, fmt.Errorf("%w: ldd printed %q", ErrUnrecognizedOutput, firstLine(stdout))
}

// ELFInterpreter reads the PT_INTERP segment of the ELF file at path.
func ELFInterpreter(path string) (string, error) {
	f, err := elf.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	for _, prog := range f.Progs {
		if prog.Type != elf.PT_INTERP {
			continue
		}
		data := make([]byte, prog.Filesz)
		if _, err := prog.ReadAt(data, 0); err != nil {
			return "", fmt.Errorf("failed to read interpreter of %s: %w", path, err)
		}
		return string(bytes.TrimRight(data, "\x00")), nil
	}
	return "", nil
}

func runCommand(name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command(name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

func match(re *regexp.Regexp, out []byte) (int, int, bool) {
	m := re.FindSubmatch(out)
	if m == nil {
		return 0, 0, false
	}
	major, err := strconv.Atoi(string(m[1]))
	if err != nil {
		return 0, 0, false
	}
	minor, err := strconv.Atoi(string(m[2]))
	if err != nil {
		return 0, 0, false
	}
	return major, minor, true
}

func firstLine(out []byte) string {
	line, _, _ := bytes.Cut(bytes.TrimSpace(out), []byte("\n"))
	return string(line)
}
