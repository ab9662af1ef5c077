package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gident/gident/internal/gitcfg"
	"github.com/gident/gident/internal/sshkey"
)

// CurrentOutput represents the current command output for JSON.
type CurrentOutput struct {
	Identity gitcfg.Identity `json:"identity"`
	SSHDir   string          `json:"ssh_dir"`
	SSHKeys  []string        `json:"ssh_keys"`
}

// newCurrentCmd creates the current command.
func (cli *CLI) newCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the currently active git identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(cli.outputFlag)
			if err != nil {
				return err
			}
			return cli.runCurrent(cmd.Context(), format)
		},
	}
}

// runCurrent shows the configured identity and which conventional SSH keys
// exist. Read-only: no store or git mutation.
func (cli *CLI) runCurrent(ctx context.Context, format OutputFormat) error {
	output := NewOutputWriterTo(format, cli.out)

	id := cli.Git.CurrentIdentity(ctx, ".")
	dir := sshkey.Dir(cli.Settings.SSHDir)
	keys := sshkey.Installed(dir)

	data := CurrentOutput{
		Identity: id,
		SSHDir:   dir,
		SSHKeys:  keys,
	}

	return output.Write(data, func(w io.Writer) {
		if id.IsRepo && id.Local.IsSet() {
			fmt.Fprintln(w, titleStyle.Render("Local identity (this repository):"))
			printIdent(w, id.Local)
			fmt.Fprintln(w)
		}

		fmt.Fprintln(w, titleStyle.Render("Global identity:"))
		if id.Global.IsSet() {
			printIdent(w, id.Global)
		} else {
			fmt.Fprintln(w, dimStyle.Render("  (not set)"))
		}
		fmt.Fprintln(w)

		fmt.Fprintln(w, titleStyle.Render("SSH keys in "+dir+":"))
		if len(keys) == 0 {
			fmt.Fprintln(w, dimStyle.Render("  (none of the conventional key files found)"))
			return
		}
		for _, k := range keys {
			fmt.Fprintf(w, "  %s\n", k)
		}
	})
}

func printIdent(w io.Writer, id gitcfg.Ident) {
	name := id.Name
	if name == "" {
		name = dimStyle.Render("(unset)")
	}
	email := id.Email
	if email == "" {
		email = dimStyle.Render("(unset)")
	}
	fmt.Fprintf(w, "  Name:  %s\n", name)
	fmt.Fprintf(w, "  Email: %s\n", email)
}
