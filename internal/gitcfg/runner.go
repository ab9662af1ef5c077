package gitcfg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner is an interface for executing external commands.
// This allows mocking in tests without actually executing binaries.
type CommandRunner interface {
	// Output runs the command and returns its standard output.
	Output(ctx context.Context, name string, args ...string) (string, error)
	// Run runs the command, discarding output on success.
	Run(ctx context.Context, name string, args ...string) error
}

// realCommandRunner is the real implementation using os/exec.
type realCommandRunner struct{}

// NewCommandRunner creates a new real command runner.
func NewCommandRunner() CommandRunner {
	return &realCommandRunner{}
}

func (r *realCommandRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		return "", commandError(name, args, stderr.String(), err)
	}
	return string(out), nil
}

func (r *realCommandRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return commandError(name, args, stderr.String(), err)
	}
	return nil
}

// commandError wraps a command failure, folding in captured stderr so the
// underlying tool's message reaches the user.
func commandError(name string, args []string, stderr string, err error) error {
	stderr = strings.TrimSpace(stderr)
	if stderr != "" {
		return fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, stderr)
	}
	return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
}
