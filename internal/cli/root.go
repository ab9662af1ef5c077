// Package cli provides the command-line interface for gident.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gident/gident/internal/config"
	"github.com/gident/gident/internal/gitcfg"
	"github.com/gident/gident/internal/logging"
	"github.com/gident/gident/internal/notify"
	"github.com/gident/gident/internal/prompt"
	"github.com/gident/gident/internal/sshkey"
	"github.com/gident/gident/internal/store"
	"github.com/gident/gident/internal/version"
)

// CLI holds the application state for the CLI.
type CLI struct {
	Settings  *config.Settings
	Store     *store.Store
	Git       *gitcfg.Client
	Registrar *sshkey.Registrar
	Prompter  prompt.Prompter
	Notifier  notify.Notifier
	Runner    gitcfg.CommandRunner

	rootCmd *cobra.Command
	out     io.Writer

	// Flags
	verboseFlag bool
	outputFlag  string
}

// New creates a new CLI instance.
func New() *CLI {
	cli := &CLI{}

	cli.rootCmd = &cobra.Command{
		Use:   "gident [command]",
		Short: "gident - Git identity profile manager",
		Long: `gident stores named identity profiles (name, email, optional SSH key)
and applies one of them as the active git identity, scoped to the current
repository or globally.

Profiles live in a plain JSON file in your config directory; git itself is
driven through 'git config', so nothing is changed behind git's back.`,
		Version:       version.Get().Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.initialize(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cli.rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Global flags
	cli.rootCmd.PersistentFlags().BoolVarP(&cli.verboseFlag, "verbose", "v", false, "Enable verbose output")
	cli.rootCmd.PersistentFlags().StringVarP(&cli.outputFlag, "output", "o", "text", "Output format (text, json)")

	// Add commands
	cli.addCommands()

	return cli
}

// addCommands adds all subcommands to the root command.
func (cli *CLI) addCommands() {
	cli.rootCmd.AddCommand(
		cli.newCurrentCmd(),
		cli.newSwitchCmd(),
		cli.newListCmd(),
		cli.newAddCmd(),
		cli.newRemoveCmd(),
		cli.newDoctorCmd(),
		cli.newConfigCmd(),
		cli.newVersionCmd(),
		cli.newCompletionCmd(),
	)
}

// initialize loads settings and the profile store, and wires the real
// collaborators for anything not injected beforehand (tests inject fakes).
func (cli *CLI) initialize(cmd *cobra.Command) error {
	logging.SetVerbose(cli.verboseFlag)

	if cli.out == nil {
		cli.out = os.Stdout
	}
	if cli.Settings == nil {
		s, err := config.Load()
		if err != nil {
			return err
		}
		cli.Settings = s
	}
	if cli.Store == nil {
		cli.Store = store.Load()
	}
	if cli.Runner == nil {
		cli.Runner = gitcfg.NewCommandRunner()
	}
	if cli.Git == nil {
		cli.Git = gitcfg.NewClient(cli.Settings.GitBinary, cli.Runner)
	}
	if cli.Registrar == nil {
		cli.Registrar = sshkey.NewRegistrar(cli.Settings.SSHAddBinary, cli.Runner)
	}
	if cli.Prompter == nil {
		cli.Prompter = &prompt.Huh{}
	}
	if cli.Notifier == nil {
		cli.Notifier = notify.New(cli.Settings.Notifications)
	}

	return nil
}

// Execute runs the CLI.
func (cli *CLI) Execute(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}
