package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// ConfigOutput represents the config command output for JSON.
type ConfigOutput struct {
	Path          string `json:"path"`
	Present       bool   `json:"present"`
	GitBinary     string `json:"git_binary"`
	SSHAddBinary  string `json:"ssh_add_binary"`
	SSHDir        string `json:"ssh_dir,omitempty"`
	Notifications bool   `json:"notifications"`
}

// newConfigCmd creates the config command group.
func (cli *CLI) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved settings",
		Long: `Show where the settings file lives and the values in effect, defaults
included. Use 'config init' to write a default settings file to edit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(cli.outputFlag)
			if err != nil {
				return err
			}
			return cli.runConfig(format)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a default settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.runConfigInit()
		},
	})

	return cmd
}

// runConfig prints the settings path and the effective values.
func (cli *CLI) runConfig(format OutputFormat) error {
	output := NewOutputWriterTo(format, cli.out)

	path := cli.Settings.FilePath()
	_, statErr := os.Stat(path)

	data := ConfigOutput{
		Path:          path,
		Present:       statErr == nil,
		GitBinary:     cli.Settings.GitBinary,
		SSHAddBinary:  cli.Settings.SSHAddBinary,
		SSHDir:        cli.Settings.SSHDir,
		Notifications: cli.Settings.Notifications.Enabled,
	}

	return output.Write(data, func(w io.Writer) {
		fmt.Fprintln(w, titleStyle.Render("Settings file:"))
		if data.Present {
			fmt.Fprintf(w, "  %s\n", path)
		} else {
			fmt.Fprintf(w, "  %s %s\n", path, dimStyle.Render("(not present, defaults in use)"))
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  git binary:     %s\n", data.GitBinary)
		fmt.Fprintf(w, "  ssh-add binary: %s\n", data.SSHAddBinary)
		if data.SSHDir != "" {
			fmt.Fprintf(w, "  ssh directory:  %s\n", data.SSHDir)
		}
		fmt.Fprintf(w, "  notifications:  %t\n", data.Notifications)
	})
}

// runConfigInit writes the effective settings as a starting file to edit.
func (cli *CLI) runConfigInit() error {
	path := cli.Settings.FilePath()
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("settings file already exists at %s", path)
	}

	if err := cli.Settings.Save(); err != nil {
		return err
	}

	fmt.Fprintf(cli.out, "Wrote default settings to %s.\n", path)
	return nil
}
