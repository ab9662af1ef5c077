//go:build integration

// Package integration provides integration tests for gident. They exercise
// the built binary end to end against a real git installation, with every
// piece of state (config dir, git global config, HOME) isolated per test.
package integration

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// TestEnv is an isolated environment for a single gident invocation.
type TestEnv struct {
	Home      string
	ConfigDir string
	// GitConfig is the file used as the global git configuration.
	GitConfig string
}

// NewTestEnv creates an isolated environment under a temp directory.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	home := t.TempDir()
	configDir := filepath.Join(home, ".config", "gident")
	if err := os.MkdirAll(configDir, 0700); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	return &TestEnv{
		Home:      home,
		ConfigDir: configDir,
		GitConfig: filepath.Join(home, ".gitconfig"),
	}
}

// SkipIfGitMissing skips the test if no git binary is on PATH.
func SkipIfGitMissing(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not found in PATH")
	}
}

// GidentBinaryPath returns the path to the gident binary.
func GidentBinaryPath(t *testing.T) string {
	t.Helper()

	if path := os.Getenv("GIDENT_BINARY"); path != "" {
		return path
	}

	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("failed to get caller information")
	}

	// Go up from test/integration to the project root
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(filename)))
	binaryPath := filepath.Join(projectRoot, "bin", "gident")

	if runtime.GOOS == "windows" {
		binaryPath += ".exe"
	}

	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Fatalf("gident binary not found at %s - run 'make build' first", binaryPath)
	}

	return binaryPath
}

// Run runs gident in the isolated environment and returns stdout, stderr
// and the command error.
func (e *TestEnv) Run(ctx context.Context, t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.CommandContext(ctx, GidentBinaryPath(t), args...)
	cmd.Dir = e.Home
	cmd.Env = append(os.Environ(),
		"HOME="+e.Home,
		"GIDENT_CONFIG_DIR="+e.ConfigDir,
		"GIT_CONFIG_GLOBAL="+e.GitConfig,
		"GIT_CONFIG_SYSTEM=/dev/null",
	)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// SetGlobalIdentity seeds the isolated global git config.
func (e *TestEnv) SetGlobalIdentity(ctx context.Context, t *testing.T, name, email string) {
	t.Helper()

	for key, value := range map[string]string{"user.name": name, "user.email": email} {
		cmd := exec.CommandContext(ctx, "git", "config", "--global", key, value)
		cmd.Env = append(os.Environ(),
			"HOME="+e.Home,
			"GIT_CONFIG_GLOBAL="+e.GitConfig,
		)
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("failed to set %s: %v: %s", key, err, out)
		}
	}
}

// WriteProfiles seeds the profile store file.
func (e *TestEnv) WriteProfiles(t *testing.T, content string) {
	t.Helper()

	path := filepath.Join(e.ConfigDir, "profiles.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write profiles: %v", err)
	}
}
