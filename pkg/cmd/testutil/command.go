package testutil

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
)

// RunCommand executes a command with test context
func RunCommand(t *testing.T, command *cli.Command, args []string) error {
	t.Helper()
	return RunCommandWithContext(context.Background(), t, command, args)
}

// RunCommandWithContext executes a command with a custom context
func RunCommandWithContext(ctx context.Context, t *testing.T, command *cli.Command, args []string) error {
	t.Helper()

	_, err := run(ctx, command, "", args)
	return err
}

// RunCommandWithInput executes a command with stdin set to input and returns
// everything it wrote to stdout.
func RunCommandWithInput(t *testing.T, command *cli.Command, input string, args []string) (string, error) {
	t.Helper()
	return run(context.Background(), command, input, args)
}

// CaptureCommand executes a command and returns everything it wrote to
// stdout.
func CaptureCommand(t *testing.T, command *cli.Command, args []string) (string, error) {
	t.Helper()
	return run(context.Background(), command, "", args)
}

func run(ctx context.Context, command *cli.Command, input string, args []string) (string, error) {
	var out bytes.Buffer

	// Create a test CLI app
	app := &cli.Command{
		Name:      "test",
		Reader:    strings.NewReader(input),
		Writer:    &out,
		ErrWriter: &out,
		Commands:  []*cli.Command{command},
	}

	// Prepend command name to args
	fullArgs := append([]string{"test", command.Name}, args...)

	err := app.Run(ctx, fullArgs)
	return out.String(), err
}
