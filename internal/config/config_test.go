package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default()

	if s == nil {
		t.Fatal("Default() returned nil")
	}
	if s.GitBinary != "git" {
		t.Errorf("expected GitBinary git, got %q", s.GitBinary)
	}
	if s.SSHAddBinary != "ssh-add" {
		t.Errorf("expected SSHAddBinary ssh-add, got %q", s.SSHAddBinary)
	}
	if s.Notifications.Enabled {
		t.Error("expected notifications disabled by default")
	}
	if !s.Notifications.OnApply {
		t.Error("expected OnApply true by default")
	}
}

func TestLoadFromMissing(t *testing.T) {
	s, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if s.GitBinary != "git" {
		t.Errorf("expected defaults, got %+v", s)
	}
}

func TestLoadFromMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("git_binary: [not: closed"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Fatal("LoadFrom() expected error for malformed settings")
	}
}

func TestLoadFromPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "notifications:\n  enabled: true\n  on_apply: true\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	s, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if !s.Notifications.Enabled {
		t.Error("expected notifications enabled")
	}
	// Binaries left empty in the file fall back to defaults
	if s.GitBinary != "git" || s.SSHAddBinary != "ssh-add" {
		t.Errorf("expected binary defaults, got %+v", s)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("GIDENT_CONFIG_DIR", tmpDir)

	s := Default()
	s.GitBinary = "/opt/git/bin/git"
	s.Notifications.Enabled = true

	if err := s.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.GitBinary != "/opt/git/bin/git" {
		t.Errorf("GitBinary = %q", loaded.GitBinary)
	}
	if !loaded.Notifications.Enabled {
		t.Error("expected notifications enabled after round trip")
	}
}
