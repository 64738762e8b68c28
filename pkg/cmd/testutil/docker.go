package testutil

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/pseudomuto/poise/pkg/config"
	"github.com/pseudomuto/poise/pkg/docker"
	"github.com/stretchr/testify/require"
)

// SkipIfNoDocker skips the test in short mode or if Docker is not available
func SkipIfNoDocker(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("Docker tests are skipped in short mode")
	}

	// Check if Docker binary exists
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("Docker not available")
	}

	// Check if Docker daemon is running
	cmd := exec.CommandContext(t.Context(), "docker", "ps")
	if err := cmd.Run(); err != nil {
		t.Skip("Docker daemon not running")
	}
}

// StartPostgres starts a disposable PostgreSQL container and returns the
// settings to reach it. The container is removed when the test ends.
func StartPostgres(t *testing.T) config.Database {
	t.Helper()

	SkipIfNoDocker(t)

	container := docker.New()
	t.Cleanup(func() {
		_ = container.Stop(context.Background())
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	require.NoError(t, container.Start(ctx), "Failed to start PostgreSQL container")

	cfg, err := container.Config(ctx)
	require.NoError(t, err, "Failed to get container config")
	return cfg
}
