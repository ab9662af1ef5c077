package cli

import (
	"strings"

	"github.com/gident/gident/internal/prompt"
	"github.com/gident/gident/internal/store"
)

// promptProfile collects the fields of a new identity profile: a non-blank
// name, a plausible email, and an optional SSH key path.
func (cli *CLI) promptProfile() (store.Profile, error) {
	name, err := cli.Prompter.Input(prompt.InputConfig{
		Title:       "Name",
		Placeholder: "Jane Doe",
		Validate:    prompt.ValidateNotEmpty,
	})
	if err != nil {
		return store.Profile{}, err
	}

	email, err := cli.Prompter.Input(prompt.InputConfig{
		Title:       "Email",
		Placeholder: "jane@example.com",
		Validate:    prompt.ValidateEmail,
	})
	if err != nil {
		return store.Profile{}, err
	}

	key, err := cli.Prompter.Input(prompt.InputConfig{
		Title:       "SSH key path (optional)",
		Placeholder: "~/.ssh/id_ed25519",
	})
	if err != nil {
		return store.Profile{}, err
	}

	return store.Profile{
		Name:   strings.TrimSpace(name),
		Email:  strings.TrimSpace(email),
		SSHKey: strings.TrimSpace(key),
	}, nil
}
