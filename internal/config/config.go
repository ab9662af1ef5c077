package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NotificationConfig holds settings for desktop notifications.
type NotificationConfig struct {
	// Enabled enables desktop notifications.
	Enabled bool `yaml:"enabled,omitempty"`
	// OnApply sends a notification when an identity is applied.
	OnApply bool `yaml:"on_apply,omitempty"`
}

// Settings represents the gident settings file.
type Settings struct {
	// GitBinary is an optional custom path to the git binary.
	GitBinary string `yaml:"git_binary,omitempty"`
	// SSHAddBinary is an optional custom path to the ssh-add binary.
	SSHAddBinary string `yaml:"ssh_add_binary,omitempty"`
	// SSHDir is an optional override of the SSH key directory.
	SSHDir string `yaml:"ssh_dir,omitempty"`
	// Notifications holds notification settings.
	Notifications NotificationConfig `yaml:"notifications,omitempty"`

	// filePath is the path where these settings were loaded from.
	filePath string `yaml:"-"`
}

// Default returns Settings with default values.
func Default() *Settings {
	paths := GetPaths()
	return &Settings{
		GitBinary:    "git",
		SSHAddBinary: "ssh-add",
		Notifications: NotificationConfig{
			Enabled: false,
			OnApply: true,
		},
		filePath: paths.SettingsFile,
	}
}

// Load loads the settings from the default path.
func Load() (*Settings, error) {
	paths := GetPaths()
	return LoadFrom(paths.SettingsFile)
}

// LoadFrom loads the settings from a specific path.
// A missing file yields defaults; a malformed file is an error, since the
// settings file is only ever authored by the user.
func LoadFrom(path string) (*Settings, error) {
	s := Default()
	s.filePath = path

	// #nosec G304 - path is the settings file path (controlled, from user config directory)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	// Apply defaults for values left empty in the file
	if s.GitBinary == "" {
		s.GitBinary = "git"
	}
	if s.SSHAddBinary == "" {
		s.SSHAddBinary = "ssh-add"
	}

	return s, nil
}

// Save writes the settings to their file path.
func (s *Settings) Save() error {
	if s.filePath == "" {
		return errors.New("settings file path not set")
	}

	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// FilePath returns the path the settings were loaded from.
func (s *Settings) FilePath() string {
	return s.filePath
}
