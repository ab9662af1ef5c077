//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// TestCurrent_GlobalIdentity tests that current reports the seeded global
// identity.
func TestCurrent_GlobalIdentity(t *testing.T) {
	SkipIfGitMissing(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	env := NewTestEnv(t)
	env.SetGlobalIdentity(ctx, t, "Jane Doe", "jane@example.com")

	stdout, stderr, err := env.Run(ctx, t, "current")
	if err != nil {
		t.Fatalf("current failed: %v: %s", err, stderr)
	}
	t.Logf("current output:\n%s", stdout)

	if !strings.Contains(stdout, "Jane Doe") {
		t.Error("expected the global name in the output")
	}
	if !strings.Contains(stdout, "jane@example.com") {
		t.Error("expected the global email in the output")
	}
}

// TestCurrent_Unset tests current with nothing configured.
func TestCurrent_Unset(t *testing.T) {
	SkipIfGitMissing(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	env := NewTestEnv(t)

	stdout, stderr, err := env.Run(ctx, t, "current")
	if err != nil {
		t.Fatalf("current failed: %v: %s", err, stderr)
	}

	if !strings.Contains(stdout, "not set") {
		t.Errorf("expected an unset marker, got:\n%s", stdout)
	}
}

// TestCurrent_JSONOutput tests current with JSON output format.
func TestCurrent_JSONOutput(t *testing.T) {
	SkipIfGitMissing(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	env := NewTestEnv(t)
	env.SetGlobalIdentity(ctx, t, "Jane Doe", "jane@example.com")

	stdout, stderr, err := env.Run(ctx, t, "current", "-o", "json")
	if err != nil {
		t.Fatalf("current failed: %v: %s", err, stderr)
	}

	var data struct {
		Identity struct {
			IsRepo bool `json:"is_repo"`
			Global struct {
				Name  string `json:"name"`
				Email string `json:"email"`
			} `json:"global"`
		} `json:"identity"`
	}
	if err := json.Unmarshal([]byte(stdout), &data); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, stdout)
	}
	if data.Identity.Global.Name != "Jane Doe" || data.Identity.Global.Email != "jane@example.com" {
		t.Errorf("unexpected identity: %+v", data.Identity.Global)
	}
}
