// Package shell runs command lines through the host's default command
// interpreter.
package shell

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Run executes cmd via /bin/sh -c on POSIX hosts or cmd /C on Windows and
// returns the captured standard output. It satisfies interp.CommandRunner.
func Run(cmd string) ([]byte, error) {
	var c *exec.Cmd
	if runtime.GOOS == "windows" {
		c = exec.Command("cmd", "/C", cmd)
	} else {
		c = exec.Command("sh", "-c", cmd)
	}

	output, err := c.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to run %q: %w", cmd, err)
	}
	return output, nil
}
