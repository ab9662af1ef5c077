//go:build integration

package integration

import (
	"context"
	"strings"
	"testing"
	"time"
)

// TestList_Empty tests list with no saved profiles.
func TestList_Empty(t *testing.T) {
	SkipIfGitMissing(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	env := NewTestEnv(t)

	stdout, stderr, err := env.Run(ctx, t, "list")
	if err != nil {
		t.Fatalf("list failed: %v: %s", err, stderr)
	}
	if !strings.Contains(stdout, "No profiles saved.") {
		t.Errorf("expected the empty notice, got:\n%s", stdout)
	}
}

// TestList_SeededProfiles tests list against a seeded store file.
func TestList_SeededProfiles(t *testing.T) {
	SkipIfGitMissing(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	env := NewTestEnv(t)
	env.WriteProfiles(t, `{
  "profiles": [
    {"name": "Jane Doe", "email": "jane@example.com", "sshKey": ""},
    {"name": "Work Jane", "email": "jane@corp.example", "sshKey": "~/.ssh/id_work"}
  ],
  "lastUsed": {"name": "Work Jane", "email": "jane@corp.example", "sshKey": "~/.ssh/id_work"}
}`)

	stdout, stderr, err := env.Run(ctx, t, "list")
	if err != nil {
		t.Fatalf("list failed: %v: %s", err, stderr)
	}
	t.Logf("list output:\n%s", stdout)

	for _, want := range []string{"Jane Doe <jane@example.com>", "Work Jane <jane@corp.example>", "*"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output", want)
		}
	}
}

// TestList_CorruptStore tests that a corrupt store file is treated as empty
// instead of failing the command.
func TestList_CorruptStore(t *testing.T) {
	SkipIfGitMissing(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	env := NewTestEnv(t)
	env.WriteProfiles(t, "{ this is not json")

	stdout, stderr, err := env.Run(ctx, t, "list")
	if err != nil {
		t.Fatalf("list should succeed on a corrupt store: %v: %s", err, stderr)
	}
	if !strings.Contains(stdout, "No profiles saved.") {
		t.Errorf("expected the empty notice, got:\n%s", stdout)
	}
}
