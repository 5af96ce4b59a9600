package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/walteh/uwuify/cmd/uwuify/opts"
)

// NewTestCmd creates the test command, a one-shot preview of the transform
func NewTestCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test [text...]",
		Short: "Preview the transform next to its input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args, " ")
			output := o.Transformer.ApplyRules(input)

			return pterm.DefaultTable.
				WithWriter(cmd.OutOrStdout()).
				WithData(pterm.TableData{
					{"input", input},
					{"output", output},
				}).
				Render()
		},
	}

	return cmd
}
