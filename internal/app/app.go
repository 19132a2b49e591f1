// Package app orchestrates one doa invocation: parse the spec file, check
// the daemon, resolve the docker binary, then build and launch.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/google/uuid"

	"github.com/guangie88/doa/internal/docker"
	"github.com/guangie88/doa/internal/interp"
	"github.com/guangie88/doa/internal/parser"
	"github.com/guangie88/doa/internal/shell"
	"github.com/guangie88/doa/internal/ui"
	"github.com/guangie88/doa/pkg/launch"
)

// Options holds the flags for a single `doa run` invocation.
type Options struct {
	SpecFile    string
	Name        string
	DryRun      bool
	NoPreflight bool
}

// PreflightFunc checks the container daemon is reachable before launching.
type PreflightFunc func(ctx context.Context) error

// DiscoverFunc resolves the docker binary path.
type DiscoverFunc func() (string, error)

// Runner wires the interpolation engine, builder, and launcher together.
// Collaborators are injected so tests can run without Docker installed.
type Runner struct {
	preflight PreflightFunc
	discover  DiscoverFunc
	launcher  launch.Launcher
	console   *ui.Console
	stdout    io.Writer
	stderr    io.Writer
}

// NewRunner creates a Runner with the production collaborators.
func NewRunner() *Runner {
	return &Runner{
		preflight: docker.Preflight,
		discover:  docker.FindCLI,
		launcher:  docker.NewExecLauncher(),
		console:   ui.NewConsole(),
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// Run executes the named spec from the spec file. With DryRun it prints the
// fully rendered command line and launches nothing.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	runID := uuid.New().String()
	slog.Info("Starting doa run", "runId", runID, "spec", opts.Name, "file", opts.SpecFile, "dryRun", opts.DryRun)

	spec, err := parser.Lookup(opts.SpecFile, opts.Name)
	if err != nil {
		return fmt.Errorf("spec loading failed: %w", err)
	}

	builder := docker.NewBuilder(interp.New(shell.Run), r.launcher, r.stdout, r.stderr)

	if opts.DryRun {
		args, err := builder.BuildArgs(spec)
		if err != nil {
			return err
		}
		r.console.PrintCommand(docker.CLIName, args)
		slog.Info("Dry run completed", "runId", runID, "tokens", len(args))
		return nil
	}

	if !opts.NoPreflight {
		if err := r.preflight(ctx); err != nil {
			return fmt.Errorf("daemon preflight failed: %w", err)
		}
	}

	cliPath, err := r.discover()
	if err != nil {
		return err
	}

	if err := builder.Run(ctx, cliPath, spec); err != nil {
		return err
	}

	slog.Info("doa run completed", "runId", runID, "spec", opts.Name)
	return nil
}

// Entry is one named spec with its help text, for list output.
type Entry struct {
	Name string
	Help string
}

// List returns the entries of a spec file sorted by name.
func List(specFile string) ([]Entry, error) {
	file, err := parser.Parse(specFile)
	if err != nil {
		return nil, fmt.Errorf("spec loading failed: %w", err)
	}

	entries := make([]Entry, 0, len(file.Specs))
	for name, spec := range file.Specs {
		entries = append(entries, Entry{Name: name, Help: spec.Help})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	return entries, nil
}
