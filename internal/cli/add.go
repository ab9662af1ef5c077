package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newAddCmd creates the add command.
func (cli *CLI) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add",
		Short: "Save a new identity profile",
		Long: `Prompt for a name, email and optional SSH key path, and save them as a
profile. Profiles are keyed by email: adding one with an email that is
already saved replaces that profile.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.runAdd()
		},
	}
}

// runAdd prompts for a profile and upserts it into the store.
func (cli *CLI) runAdd() error {
	p, err := cli.promptProfile()
	if err != nil {
		return cli.cancelled(err)
	}

	replaced := cli.Store.FindByEmail(p.Email) != nil
	cli.Store.Upsert(p)

	if err := cli.Store.Save(); err != nil {
		return err
	}

	if replaced {
		fmt.Fprintf(cli.out, "Updated profile %s.\n", p.String())
	} else {
		fmt.Fprintf(cli.out, "Saved profile %s.\n", p.String())
	}
	return nil
}
