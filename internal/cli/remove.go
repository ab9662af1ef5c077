package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gident/gident/internal/prompt"
)

// newRemoveCmd creates the remove command.
func (cli *CLI) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove",
		Aliases: []string{"rm"},
		Short:   "Remove a saved identity profile",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.runRemove()
		},
	}
}

// runRemove presents the saved profiles and removes the chosen one after a
// destructive confirmation defaulting to decline. The list is read and the
// choice made in the same interactive step, so the removal index is never
// stale.
func (cli *CLI) runRemove() error {
	if len(cli.Store.Profiles) == 0 {
		fmt.Fprintln(cli.out, "No profiles saved.")
		return nil
	}

	options := make([]prompt.SelectOption, len(cli.Store.Profiles))
	for i, p := range cli.Store.Profiles {
		options[i] = prompt.SelectOption{Label: p.String(), Value: strconv.Itoa(i)}
	}

	sel, err := cli.Prompter.Select(prompt.SelectConfig{
		Title:   "Remove which profile?",
		Options: options,
	})
	if err != nil {
		return cli.declined(err)
	}

	index, err := strconv.Atoi(sel)
	if err != nil || index < 0 || index >= len(cli.Store.Profiles) {
		return fmt.Errorf("invalid selection %q", sel)
	}
	chosen := cli.Store.Profiles[index]

	confirmed, err := cli.Prompter.Confirm(prompt.ConfirmConfig{
		Title:       fmt.Sprintf("Remove %s?", chosen.String()),
		Description: "This cannot be undone.",
		Affirmative: "Remove",
		Negative:    "Keep",
		Default:     false,
	})
	if err != nil {
		return cli.declined(err)
	}
	if !confirmed {
		fmt.Fprintln(cli.out, "Removal cancelled.")
		return nil
	}

	if err := cli.Store.RemoveAt(index); err != nil {
		return err
	}
	if err := cli.Store.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "Removed profile %s.\n", chosen.String())
	return nil
}

// declined maps a prompt abort during removal to a clean cancellation.
func (cli *CLI) declined(err error) error {
	if errors.Is(err, prompt.ErrAborted) {
		fmt.Fprintln(cli.out, "Removal cancelled.")
		return nil
	}
	return err
}
