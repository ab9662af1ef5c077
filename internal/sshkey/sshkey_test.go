package sshkey

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gident/gident/internal/gitcfg"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	tests := []struct {
		input string
		want  string
	}{
		{"~", home},
		{"~/.ssh/id_ed25519", filepath.Join(home, ".ssh", "id_ed25519")},
		{"/abs/path/key", "/abs/path/key"},
		{"relative/key", "relative/key"},
		{"~user/key", "~user/key"}, // other-user expansion not supported
		{"", ""},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestDir(t *testing.T) {
	if got := Dir("/custom/ssh"); got != "/custom/ssh" {
		t.Errorf("Dir(override) = %q", got)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	if got := Dir(""); got != filepath.Join(home, ".ssh") {
		t.Errorf("Dir(\"\") = %q", got)
	}
}

func TestInstalled(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"id_ed25519", "id_rsa", "unrelated_file"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("key"), 0600); err != nil {
			t.Fatal(err)
		}
	}

	got := Installed(dir)
	want := []string{"id_ed25519", "id_rsa"}
	if len(got) != len(want) {
		t.Fatalf("Installed() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Installed()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestInstalledEmptyDir(t *testing.T) {
	if got := Installed(t.TempDir()); len(got) != 0 {
		t.Errorf("Installed() = %v, want none", got)
	}
}

func TestRegisterMissingKey(t *testing.T) {
	runner := gitcfg.NewFakeRunner()
	r := NewRegistrar("ssh-add", runner)

	_, err := r.Register(context.Background(), filepath.Join(t.TempDir(), "no_such_key"))
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("Register() err = %v, want ErrKeyNotFound", err)
	}
	if len(runner.Calls) != 0 {
		t.Errorf("ssh-add must not run for a missing key, calls: %v", runner.Calls)
	}
}

func TestRegister(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "id_ed25519")
	if err := os.WriteFile(keyPath, []byte("key"), 0600); err != nil {
		t.Fatal(err)
	}

	runner := gitcfg.NewFakeRunner()
	r := NewRegistrar("ssh-add", runner)

	resolved, err := r.Register(context.Background(), "  "+keyPath+"  ")
	if err != nil {
		t.Fatalf("Register() failed: %v", err)
	}
	if resolved != keyPath {
		t.Errorf("resolved = %q, want %q", resolved, keyPath)
	}
	if len(runner.Calls) != 1 || runner.Calls[0] != "ssh-add "+keyPath {
		t.Errorf("Calls = %v", runner.Calls)
	}
}

func TestRegisterAgentFailure(t *testing.T) {
	dir := t.TempDir()
	keyPath := filepath.Join(dir, "id_rsa")
	if err := os.WriteFile(keyPath, []byte("key"), 0600); err != nil {
		t.Fatal(err)
	}

	runner := gitcfg.NewFakeRunner()
	runner.FailOn = []string{"ssh-add " + keyPath}
	r := NewRegistrar("ssh-add", runner)

	_, err := r.Register(context.Background(), keyPath)
	if err == nil {
		t.Fatal("Register() expected error")
	}
	if errors.Is(err, ErrKeyNotFound) {
		t.Error("agent failure must not read as a missing key")
	}
	if !strings.Contains(err.Error(), "failed to register") {
		t.Errorf("err = %v", err)
	}
}
