// Package gitcfg reads and writes the git identity configuration by driving
// the git binary. The config subsystem itself stays opaque; gident only ever
// issues `git config` get/set invocations.
package gitcfg

import (
	"context"
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// Scope selects where an identity change applies.
type Scope int

const (
	// ScopeLocal applies to the current repository only.
	ScopeLocal Scope = iota
	// ScopeGlobal applies to every repository for the user.
	ScopeGlobal
)

// String returns the scope name as shown to the user.
func (s Scope) String() string {
	if s == ScopeGlobal {
		return "global"
	}
	return "local"
}

// flags returns the git config scope flags for writes. A flagless write
// already targets the repository config.
func (s Scope) flags() []string {
	if s == ScopeGlobal {
		return []string{"--global"}
	}
	return nil
}

// readFlags returns the git config scope flags for reads. Reads must pin the
// scope explicitly: a flagless --get returns the merged local-over-global
// value, not the repository-local one.
func (s Scope) readFlags() []string {
	if s == ScopeGlobal {
		return []string{"--global"}
	}
	return []string{"--local"}
}

// Ident is a name/email pair as configured in git.
type Ident struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// IsSet reports whether any part of the identity is configured.
func (i Ident) IsSet() bool {
	return i.Name != "" || i.Email != ""
}

// Merge returns the identity with unset fields filled from fallback.
func (i Ident) Merge(fallback Ident) Ident {
	out := i
	if out.Name == "" {
		out.Name = fallback.Name
	}
	if out.Email == "" {
		out.Email = fallback.Email
	}
	return out
}

// Identity is the full picture of the currently configured git identity.
type Identity struct {
	IsRepo bool  `json:"is_repo"`
	Global Ident `json:"global"`
	Local  Ident `json:"local"`
}

// Effective returns the identity in force for the given scope: global values
// for global scope, local values falling back to global otherwise.
func (id Identity) Effective(scope Scope) Ident {
	if scope == ScopeGlobal {
		return id.Global
	}
	return id.Local.Merge(id.Global)
}

// Client drives the git binary for identity reads and writes.
type Client struct {
	bin    string
	runner CommandRunner
}

// NewClient creates a Client for the given git binary.
func NewClient(bin string, runner CommandRunner) *Client {
	if bin == "" {
		bin = "git"
	}
	if runner == nil {
		runner = NewCommandRunner()
	}
	return &Client{bin: bin, runner: runner}
}

// Get reads a config key at the given scope. Any failure, including an unset
// key, yields an empty string.
func (c *Client) Get(ctx context.Context, scope Scope, key string) string {
	args := append([]string{"config"}, scope.readFlags()...)
	args = append(args, "--get", key)

	out, err := c.runner.Output(ctx, c.bin, args...)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

// Set writes a config key at the given scope. Failures propagate.
func (c *Client) Set(ctx context.Context, scope Scope, key, value string) error {
	args := append([]string{"config"}, scope.flags()...)
	args = append(args, key, value)

	if err := c.runner.Run(ctx, c.bin, args...); err != nil {
		return fmt.Errorf("failed to set %s %s: %w", scope, key, err)
	}
	return nil
}

// SetIdentity writes user.name and user.email at the given scope, in that
// order. There is no rollback: a name already written stays in place when
// the email write fails.
func (c *Client) SetIdentity(ctx context.Context, scope Scope, name, email string) error {
	if err := c.Set(ctx, scope, "user.name", name); err != nil {
		return err
	}
	return c.Set(ctx, scope, "user.email", email)
}

// IsInsideRepo reports whether dir is inside a git working tree.
func IsInsideRepo(dir string) bool {
	_, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	return err == nil
}

// CurrentIdentity collects the configured identity: global user.name and
// user.email always, plus the local pair when dir is inside a repository.
func (c *Client) CurrentIdentity(ctx context.Context, dir string) Identity {
	id := Identity{
		IsRepo: IsInsideRepo(dir),
		Global: Ident{
			Name:  c.Get(ctx, ScopeGlobal, "user.name"),
			Email: c.Get(ctx, ScopeGlobal, "user.email"),
		},
	}

	if id.IsRepo {
		id.Local = Ident{
			Name:  c.Get(ctx, ScopeLocal, "user.name"),
			Email: c.Get(ctx, ScopeLocal, "user.email"),
		}
	}

	return id
}
