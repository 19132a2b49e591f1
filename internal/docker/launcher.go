package docker

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/guangie88/doa/pkg/launch"
)

// ExecLauncher implements launch.Launcher using os/exec.
type ExecLauncher struct{}

// NewExecLauncher creates an ExecLauncher.
func NewExecLauncher() *ExecLauncher {
	return &ExecLauncher{}
}

// Launch spawns path with args, waits for it to exit, and returns its
// captured output. An exec.ExitError is folded into the result's exit code
// rather than surfaced as an error.
func (l *ExecLauncher) Launch(ctx context.Context, path string, args []string) (*launch.Result, error) {
	cmd := exec.CommandContext(ctx, path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := &launch.Result{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return nil, err
	}

	return result, nil
}
