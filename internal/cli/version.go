package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gident/gident/internal/version"
)

// newVersionCmd creates the version command.
func (cli *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print gident version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ParseOutputFormat(cli.outputFlag)
			if err != nil {
				return err
			}

			info := version.Get()
			return NewOutputWriterTo(format, cli.out).Write(info, func(w io.Writer) {
				fmt.Fprintln(w, info.String())
			})
		},
	}
}
