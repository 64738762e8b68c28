package testutil

import (
	"os"
	"strings"
	"testing"

	"github.com/pseudomuto/poise/pkg/config"
	"github.com/stretchr/testify/require"
)

// RequireFileExists asserts that a file exists and optionally checks its content
func RequireFileExists(t *testing.T, path string, checks ...func(content string)) {
	t.Helper()

	require.FileExists(t, path, "File should exist: %s", path)

	if len(checks) > 0 {
		content, err := os.ReadFile(path)
		require.NoError(t, err, "Failed to read file: %s", path)

		contentStr := string(content)
		for _, check := range checks {
			check(contentStr)
		}
	}
}

// RequireFileContains returns a check function that verifies file contains text
func RequireFileContains(t *testing.T, expected string) func(string) {
	return func(content string) {
		require.Contains(t, content, expected, "File should contain: %s", expected)
	}
}

// RequireFileNotContains returns a check function that verifies file doesn't contain text
func RequireFileNotContains(t *testing.T, unexpected string) func(string) {
	return func(content string) {
		require.NotContains(t, content, unexpected, "File should not contain: %s", unexpected)
	}
}

// RequireConfigValid asserts that path holds a loadable poise config and
// returns it.
func RequireConfigValid(t *testing.T, path string) *config.Config {
	t.Helper()

	cfg, err := config.LoadConfigFile(path)
	require.NoError(t, err, "Config should load: %s", path)
	return cfg
}

// RequireLines asserts that out holds exactly n non-empty lines.
func RequireLines(t *testing.T, out string, n int) []string {
	t.Helper()

	var lines []string
	for _, l := range strings.Split(out, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}

	require.Len(t, lines, n, "unexpected output:\n%s", out)
	return lines
}

// RequireNoFile asserts that a file does not exist
func RequireNoFile(t *testing.T, path string) {
	t.Helper()

	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err), "File should not exist: %s", path)
}
