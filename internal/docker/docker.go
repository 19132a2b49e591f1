// Package docker turns a RunSpec into a concrete `docker run` command line
// and hands it to a process launcher.
package docker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"sort"

	"github.com/guangie88/doa/internal/interp"
	"github.com/guangie88/doa/pkg/launch"
	"github.com/guangie88/doa/pkg/runspec"
)

// CLIName is the container-runtime binary searched for on PATH.
const CLIName = "docker"

var (
	// ErrBuild wraps any interpolation failure while assembling flags.
	ErrBuild = errors.New("failed to build docker arguments")

	// ErrLaunch wraps spawn failures of the docker binary.
	ErrLaunch = errors.New("failed to launch docker")

	// ErrToolNotFound is returned when the docker binary is not on PATH.
	ErrToolNotFound = errors.New("docker binary not found")
)

// FindCLI resolves the docker binary path from PATH.
func FindCLI() (string, error) {
	path, err := exec.LookPath(CLIName)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrToolNotFound, err)
	}
	return path, nil
}

// Builder assembles and executes docker run invocations. It borrows each
// RunSpec read-only and never mutates it.
type Builder struct {
	interp   *interp.Interpolator
	launcher launch.Launcher
	stdout   io.Writer
	stderr   io.Writer
}

// NewBuilder creates a Builder. Captured container output is copied
// verbatim to stdout and stderr after the invocation completes.
func NewBuilder(ip *interp.Interpolator, launcher launch.Launcher, stdout, stderr io.Writer) *Builder {
	return &Builder{
		interp:   ip,
		launcher: launcher,
		stdout:   stdout,
		stderr:   stderr,
	}
}

// flagRenderer maps one RunSpec field to its flag tokens. Keeping the
// renderers as an ordered list makes the flag order auditable in one place.
type flagRenderer struct {
	field  string
	render func(spec *runspec.RunSpec) ([]string, error)
}

// BuildArgs converts spec into the full ordered docker argument list:
//
//	run --rm [--entrypoint X] [-e k=v]... [--env-file X] [--network=X]
//	[-p X]... [-v X]... [-u X] [extra...] <image> [command...]
//
// Every user-controlled substring passes through the interpolation engine
// first. Any interpolation failure aborts the whole build; no partial
// argument list is ever returned.
func (b *Builder) BuildArgs(spec *runspec.RunSpec) ([]string, error) {
	args := []string{"run", "--rm"}

	for _, r := range b.renderers() {
		tokens, err := r.render(spec)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrBuild, r.field, err)
		}
		args = append(args, tokens...)
	}

	return args, nil
}

func (b *Builder) renderers() []flagRenderer {
	return []flagRenderer{
		{"entrypoint", func(spec *runspec.RunSpec) ([]string, error) {
			if spec.Entrypoint == "" {
				return nil, nil
			}
			entrypoint, err := b.interp.Expand(spec.Entrypoint)
			if err != nil {
				return nil, err
			}
			return []string{"--entrypoint", entrypoint}, nil
		}},
		{"envs", func(spec *runspec.RunSpec) ([]string, error) {
			// Keys are sorted so the order is stable within a call. Each
			// pair is joined as "k=v" before expansion, so markers in the
			// key half are expanded too.
			keys := make([]string, 0, len(spec.Envs))
			for k := range spec.Envs {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			var tokens []string
			for _, k := range keys {
				pair, err := b.interp.Expand(fmt.Sprintf("%s=%s", k, spec.Envs[k]))
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, "-e", pair)
			}
			return tokens, nil
		}},
		{"env_file", func(spec *runspec.RunSpec) ([]string, error) {
			if spec.EnvFile == "" {
				return nil, nil
			}
			envFile, err := b.interp.Expand(spec.EnvFile)
			if err != nil {
				return nil, err
			}
			return []string{"--env-file", envFile}, nil
		}},
		{"network", func(spec *runspec.RunSpec) ([]string, error) {
			if spec.Network == "" {
				return nil, nil
			}
			// Single combined token, expanded after joining.
			network, err := b.interp.Expand("--network=" + spec.Network)
			if err != nil {
				return nil, err
			}
			return []string{network}, nil
		}},
		{"ports", func(spec *runspec.RunSpec) ([]string, error) {
			return b.expandRepeated("-p", spec.Ports)
		}},
		{"volumes", func(spec *runspec.RunSpec) ([]string, error) {
			return b.expandRepeated("-v", spec.Volumes)
		}},
		{"user", func(spec *runspec.RunSpec) ([]string, error) {
			if spec.User == "" {
				return nil, nil
			}
			user, err := b.interp.Expand(spec.User)
			if err != nil {
				return nil, err
			}
			return []string{"-u", user}, nil
		}},
		{"extra_flags", func(spec *runspec.RunSpec) ([]string, error) {
			// Opaque pass-through: the caller supplies full flag text, one
			// token per entry. No prefix is injected.
			return b.expandEach(spec.ExtraFlags)
		}},
		{"image", func(spec *runspec.RunSpec) ([]string, error) {
			image, err := b.interp.Expand(spec.Image)
			if err != nil {
				return nil, err
			}
			return []string{image}, nil
		}},
		{"command", func(spec *runspec.RunSpec) ([]string, error) {
			return b.expandEach(spec.Command)
		}},
	}
}

// expandRepeated renders one "<flag> <expanded>" pair per entry, in order.
func (b *Builder) expandRepeated(flag string, entries []string) ([]string, error) {
	var tokens []string
	for _, entry := range entries {
		expanded, err := b.interp.Expand(entry)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, flag, expanded)
	}
	return tokens, nil
}

// expandEach expands each entry into its own token, in order.
func (b *Builder) expandEach(entries []string) ([]string, error) {
	var tokens []string
	for _, entry := range entries {
		expanded, err := b.interp.Expand(entry)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, expanded)
	}
	return tokens, nil
}

// Run builds the argument list for spec and launches the docker binary at
// cliPath, blocking until the child exits. Captured stdout and stderr are
// copied verbatim to the builder's writers. A non-zero container exit code
// is not treated as an error; only spawn failures are. The caller inspects
// captured output and exit status itself if it cares.
func (b *Builder) Run(ctx context.Context, cliPath string, spec *runspec.RunSpec) error {
	args, err := b.BuildArgs(spec)
	if err != nil {
		return err
	}

	result, err := b.launcher.Launch(ctx, cliPath, args)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLaunch, err)
	}

	if _, err := b.stdout.Write(result.Stdout); err != nil {
		return fmt.Errorf("failed to copy container stdout: %w", err)
	}
	if _, err := b.stderr.Write(result.Stderr); err != nil {
		return fmt.Errorf("failed to copy container stderr: %w", err)
	}
	return nil
}
