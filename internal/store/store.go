// Package store persists git identity profiles as a JSON file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gident/gident/internal/config"
	"github.com/gident/gident/internal/logging"
)

// ErrIndexOutOfRange indicates a removal index outside the profile list.
var ErrIndexOutOfRange = errors.New("profile index out of range")

// Profile represents a saved git identity.
type Profile struct {
	// Name is the identity display name (git user.name).
	Name string `json:"name"`
	// Email is the identity email (git user.email). Profiles are keyed by it.
	Email string `json:"email"`
	// SSHKey is an optional path to an SSH private key.
	SSHKey string `json:"sshKey"`
}

// String renders the profile as "name <email>".
func (p Profile) String() string {
	return fmt.Sprintf("%s <%s>", p.Name, p.Email)
}

// HasSSHKey reports whether the profile carries a non-blank SSH key path.
func (p Profile) HasSSHKey() bool {
	return strings.TrimSpace(p.SSHKey) != ""
}

// Store holds the persisted profile list and the last applied identity.
type Store struct {
	// Profiles is the ordered list of saved profiles.
	Profiles []Profile `json:"profiles"`
	// LastUsed is a full copy of the most recently applied profile.
	LastUsed *Profile `json:"lastUsed"`

	// filePath is the path this store was loaded from.
	filePath string
}

// Empty returns a new empty store bound to the given path.
func Empty(path string) *Store {
	return &Store{
		Profiles: []Profile{},
		filePath: path,
	}
}

// Load loads the profile store from the default path.
func Load() *Store {
	paths := config.GetPaths()
	return LoadFrom(paths.ProfilesFile)
}

// LoadFrom loads the profile store from a specific path.
// A missing or unreadable or malformed file yields the empty default; a
// broken store must never block the tool from running, so the worst case is
// a warning and a fresh start.
func LoadFrom(path string) *Store {
	s := Empty(path)

	// #nosec G304 - path is the profile store path (controlled, from user config directory)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Logger.Warn("failed to read profile store, starting empty", "path", path, "err", err)
		}
		return s
	}

	if err := json.Unmarshal(data, s); err != nil {
		logging.Logger.Warn("failed to parse profile store, starting empty", "path", path, "err", err)
		return Empty(path)
	}

	if s.Profiles == nil {
		s.Profiles = []Profile{}
	}
	s.filePath = path

	return s
}

// Save writes the store to its file path with stable indented formatting.
// Unlike Load, failures here propagate.
func (s *Store) Save() error {
	if s.filePath == "" {
		return errors.New("profile store path not set")
	}

	if err := os.MkdirAll(filepath.Dir(s.filePath), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile store: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write profile store: %w", err)
	}

	return nil
}

// Upsert inserts the profile, replacing in place any existing entry with the
// same email. Email is the uniqueness key.
func (s *Store) Upsert(p Profile) {
	for i := range s.Profiles {
		if s.Profiles[i].Email == p.Email {
			s.Profiles[i] = p
			return
		}
	}
	s.Profiles = append(s.Profiles, p)
}

// RemoveAt splices out the profile at the given index, preserving the
// relative order of the remaining entries.
func (s *Store) RemoveAt(index int) error {
	if index < 0 || index >= len(s.Profiles) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	s.Profiles = append(s.Profiles[:index], s.Profiles[index+1:]...)
	return nil
}

// FindByEmail returns the profile with the given email, or nil.
func (s *Store) FindByEmail(email string) *Profile {
	for i := range s.Profiles {
		if s.Profiles[i].Email == email {
			return &s.Profiles[i]
		}
	}
	return nil
}

// SetLastUsed records a full copy of the applied profile.
func (s *Store) SetLastUsed(p Profile) {
	cp := p
	s.LastUsed = &cp
}

// IsLastUsed reports whether the profile matches the last applied identity,
// compared by name and email.
func (s *Store) IsLastUsed(p Profile) bool {
	return s.LastUsed != nil && s.LastUsed.Name == p.Name && s.LastUsed.Email == p.Email
}

// FilePath returns the path this store is bound to.
func (s *Store) FilePath() string {
	return s.filePath
}
