// Package sshkey locates SSH keys and registers them with the agent.
package sshkey

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gident/gident/internal/gitcfg"
)

// ErrKeyNotFound indicates the key file does not exist on disk.
var ErrKeyNotFound = errors.New("ssh key file not found")

// DefaultKeyNames are the conventional private key file names scanned for.
var DefaultKeyNames = []string{"id_ed25519", "id_ecdsa", "id_rsa", "id_dsa"}

// Dir returns the SSH key directory: the override when set, else ~/.ssh.
func Dir(override string) string {
	if override != "" {
		return ExpandPath(override)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ssh"
	}
	return filepath.Join(home, ".ssh")
}

// Installed returns the conventional key names that exist in dir.
func Installed(dir string) []string {
	var found []string
	for _, name := range DefaultKeyNames {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			found = append(found, name)
		}
	}
	return found
}

// ExpandPath expands a leading "~" to the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Registrar adds keys to the SSH agent via the ssh-add binary.
type Registrar struct {
	bin    string
	runner gitcfg.CommandRunner
}

// NewRegistrar creates a Registrar for the given ssh-add binary.
func NewRegistrar(bin string, runner gitcfg.CommandRunner) *Registrar {
	if bin == "" {
		bin = "ssh-add"
	}
	if runner == nil {
		runner = gitcfg.NewCommandRunner()
	}
	return &Registrar{bin: bin, runner: runner}
}

// Register expands the key path and adds it to the agent in a single
// attempt. A missing file returns ErrKeyNotFound; callers downgrade every
// failure here to a warning.
func (r *Registrar) Register(ctx context.Context, path string) (string, error) {
	resolved := ExpandPath(strings.TrimSpace(path))

	if _, err := os.Stat(resolved); err != nil {
		return resolved, fmt.Errorf("%w: %s", ErrKeyNotFound, resolved)
	}

	if err := r.runner.Run(ctx, r.bin, resolved); err != nil {
		return resolved, fmt.Errorf("failed to register ssh key: %w", err)
	}
	return resolved, nil
}
