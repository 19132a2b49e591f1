// Package interp expands shell substitution markers embedded in literal
// strings. It recognizes $NAME, ${NAME}, `command` and $(command) forms;
// everything else passes through verbatim.
package interp

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

var (
	// ErrUnterminated is returned when a substitution marker is opened but
	// never closed before the end of the input string.
	ErrUnterminated = errors.New("unterminated substitution")

	// ErrExec is returned when a command substitution could not be executed
	// or produced output that is not valid UTF-8.
	ErrExec = errors.New("command substitution failed")
)

// CommandRunner executes a literal command line via the host shell and
// returns its captured standard-output bytes. The engine takes it as an
// injected dependency so tests can substitute a deterministic fake instead
// of spawning real subprocesses.
type CommandRunner func(cmd string) ([]byte, error)

// Interpolator expands substitution markers in strings. Variable references
// resolve against the process environment; command substitutions are handed
// to the configured CommandRunner. Results are never cached: repeated
// identical command substitutions re-execute the command each time, since
// command output may be side-effectful or time-varying.
type Interpolator struct {
	runner CommandRunner
}

// New creates an Interpolator backed by the given command runner.
func New(runner CommandRunner) *Interpolator {
	return &Interpolator{runner: runner}
}

// Expand scans raw left to right, replacing each substitution marker with
// its resolved value. Strings without markers are returned unchanged with
// zero external calls. An unset environment variable expands to the empty
// string, matching shell behavior; callers rely on that for optional
// interpolations. Any unterminated marker or command failure aborts the
// whole expansion.
func (ip *Interpolator) Expand(raw string) (string, error) {
	var out strings.Builder
	i := 0
	for i < len(raw) {
		switch {
		case raw[i] == '`':
			end := strings.IndexByte(raw[i+1:], '`')
			if end < 0 {
				return "", fmt.Errorf("%w: missing closing ` in %q", ErrUnterminated, raw)
			}
			expanded, err := ip.substitute(raw[i+1 : i+1+end])
			if err != nil {
				return "", err
			}
			out.WriteString(expanded)
			i += end + 2
		case raw[i] == '$' && i+1 < len(raw) && raw[i+1] == '(':
			end := strings.IndexByte(raw[i+2:], ')')
			if end < 0 {
				return "", fmt.Errorf("%w: missing closing ) in %q", ErrUnterminated, raw)
			}
			expanded, err := ip.substitute(raw[i+2 : i+2+end])
			if err != nil {
				return "", err
			}
			out.WriteString(expanded)
			i += end + 3
		case raw[i] == '$' && i+1 < len(raw) && raw[i+1] == '{':
			end := strings.IndexByte(raw[i+2:], '}')
			if end < 0 {
				return "", fmt.Errorf("%w: missing closing } in %q", ErrUnterminated, raw)
			}
			out.WriteString(os.Getenv(raw[i+2 : i+2+end]))
			i += end + 3
		case raw[i] == '$' && i+1 < len(raw) && isNameStart(raw[i+1]):
			j := i + 1
			for j < len(raw) && isNameChar(raw[j]) {
				j++
			}
			out.WriteString(os.Getenv(raw[i+1 : j]))
			i = j
		default:
			out.WriteByte(raw[i])
			i++
		}
	}
	return out.String(), nil
}

// substitute runs one command substitution and trims the trailing line
// terminators from its output before splicing.
func (ip *Interpolator) substitute(cmd string) (string, error) {
	output, err := ip.runner(cmd)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", ErrExec, cmd, err)
	}
	if !utf8.Valid(output) {
		return "", fmt.Errorf("%w: %q produced output that is not valid UTF-8", ErrExec, cmd)
	}
	return strings.TrimRight(string(output), "\r\n"), nil
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isNameStart(c) || (c >= '0' && c <= '9')
}
