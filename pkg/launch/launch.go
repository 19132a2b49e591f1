// Located in pkg/launch/launch.go
package launch

import "context"

// Result holds the captured output of a finished process.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Launcher defines the contract for spawning the container-runtime CLI.
// Launch blocks until the child exits and returns its captured output.
// A non-zero exit code is reported through Result, not as an error; only
// spawn failures are errors.
type Launcher interface {
	Launch(ctx context.Context, path string, args []string) (*Result, error)
}
