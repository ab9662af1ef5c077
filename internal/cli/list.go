package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gident/gident/internal/store"
)

// ListOutput represents the list command output for JSON.
type ListOutput struct {
	Profiles []store.Profile `json:"profiles"`
	LastUsed *store.Profile  `json:"lastUsed"`
}

// newListCmd creates the list command.
func (cli *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved identity profiles",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(cli.outputFlag)
			if err != nil {
				return err
			}
			return cli.runList(format)
		},
	}
}

// runList prints the saved profiles, marking the last applied one.
func (cli *CLI) runList(format OutputFormat) error {
	output := NewOutputWriterTo(format, cli.out)

	data := ListOutput{
		Profiles: cli.Store.Profiles,
		LastUsed: cli.Store.LastUsed,
	}

	if len(cli.Store.Profiles) == 0 {
		return output.Write(data, func(w io.Writer) {
			fmt.Fprintln(w, "No profiles saved.")
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Add one with: gident add")
		})
	}

	return output.Write(data, func(w io.Writer) {
		for _, p := range cli.Store.Profiles {
			marker := "  "
			if cli.Store.IsLastUsed(p) {
				marker = markerStyle.Render("* ")
			}
			fmt.Fprintf(w, "%s%s\n", marker, p.String())
			if p.HasSSHKey() {
				fmt.Fprintf(w, "  %s\n", dimStyle.Render("ssh key: "+p.SSHKey))
			}
		}
	})
}
