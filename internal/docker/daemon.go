package docker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/docker/docker/client"
)

// Preflight checks that the Docker daemon is reachable before an invocation
// is attempted, so a dead daemon surfaces as a clear error instead of CLI
// noise from the child process.
func Preflight(ctx context.Context) error {
	dockerClient, err := client.NewClientWithOpts(client.FromEnv)
	if err != nil {
		return fmt.Errorf("failed to create Docker client: %w", err)
	}
	defer dockerClient.Close()

	if _, err := dockerClient.Ping(ctx); err != nil {
		return fmt.Errorf("failed to connect to Docker daemon: %w", err)
	}

	slog.Debug("Docker daemon reachable")
	return nil
}
