package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gident/gident/internal/gitcfg"
	"github.com/gident/gident/internal/logging"
	"github.com/gident/gident/internal/prompt"
	"github.com/gident/gident/internal/sshkey"
	"github.com/gident/gident/internal/store"
)

// Sentinel values for the non-profile select choices.
const (
	choiceNew    = "new"
	choiceCancel = "cancel"
)

// newSwitchCmd creates the switch command.
func (cli *CLI) newSwitchCmd() *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "switch",
		Short: "Interactively switch the active git identity",
		Long: `Pick a saved profile, or enter a new identity, and apply it as the
active git identity.

By default the change is local to the current repository; pass --global to
change the user-wide identity instead. Local changes require being inside a
git repository.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.runSwitch(cmd.Context(), global)
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "Apply to the global git configuration")

	return cmd
}

// runSwitch drives the interactive identity switch.
func (cli *CLI) runSwitch(ctx context.Context, global bool) error {
	scope := gitcfg.ScopeLocal
	if global {
		scope = gitcfg.ScopeGlobal
	}

	id := cli.Git.CurrentIdentity(ctx, ".")
	if scope == gitcfg.ScopeLocal && !id.IsRepo {
		return errors.New("not inside a git repository: a local identity change needs one (re-run with --global for the user-wide identity)")
	}

	description := "currently unset"
	if eff := id.Effective(scope); eff.IsSet() {
		description = "currently " + eff.Name + " <" + eff.Email + ">"
	}

	options := []prompt.SelectOption{{Label: "Enter a new identity", Value: choiceNew}}
	for i, p := range cli.Store.Profiles {
		options = append(options, prompt.SelectOption{Label: p.String(), Value: strconv.Itoa(i)})
	}
	options = append(options, prompt.SelectOption{Label: "Cancel", Value: choiceCancel})

	sel, err := cli.Prompter.Select(prompt.SelectConfig{
		Title:       fmt.Sprintf("Switch %s git identity", scope),
		Description: description,
		Options:     options,
	})
	if err != nil {
		return cli.cancelled(err)
	}

	var creds store.Profile
	switch sel {
	case choiceCancel:
		fmt.Fprintln(cli.out, "No changes made.")
		return nil
	case choiceNew:
		p, err := cli.promptProfile()
		if err != nil {
			return cli.cancelled(err)
		}
		save, err := cli.Prompter.Confirm(prompt.ConfirmConfig{
			Title:   "Save this identity as a reusable profile?",
			Default: true,
		})
		if err != nil {
			return cli.cancelled(err)
		}
		if save {
			cli.Store.Upsert(p)
		}
		creds = p
	default:
		// Options are built from the freshly loaded list in this same
		// interactive step, so the index cannot be stale.
		i, err := strconv.Atoi(sel)
		if err != nil || i < 0 || i >= len(cli.Store.Profiles) {
			return fmt.Errorf("invalid selection %q", sel)
		}
		creds = cli.Store.Profiles[i]
	}

	return cli.applyProfile(ctx, scope, creds)
}

// applyProfile writes the identity into git config, registers the SSH key
// when present, and records the profile as last used.
func (cli *CLI) applyProfile(ctx context.Context, scope gitcfg.Scope, p store.Profile) error {
	if err := cli.Git.SetIdentity(ctx, scope, p.Name, p.Email); err != nil {
		return err
	}

	// Agent registration never blocks the switch
	if p.HasSSHKey() {
		resolved, err := cli.Registrar.Register(ctx, p.SSHKey)
		switch {
		case errors.Is(err, sshkey.ErrKeyNotFound):
			logging.Logger.Warn("ssh key file not found, skipping agent registration", "path", resolved)
		case err != nil:
			logging.Logger.Warn("could not register ssh key with the agent", "err", err)
		default:
			fmt.Fprintf(cli.out, "Added %s to the ssh agent.\n", resolved)
		}
	}

	cli.Store.SetLastUsed(p)
	if err := cli.Store.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "Now committing as %s (%s scope).\n", markerStyle.Render(p.String()), scope)

	if err := cli.Notifier.NotifyApply(p.String(), scope.String()); err != nil {
		logging.Logger.Warn("desktop notification failed", "err", err)
	}

	return nil
}

// cancelled maps a user prompt abort to a clean exit; other errors propagate.
func (cli *CLI) cancelled(err error) error {
	if errors.Is(err, prompt.ErrAborted) {
		fmt.Fprintln(cli.out, "No changes made.")
		return nil
	}
	return err
}
