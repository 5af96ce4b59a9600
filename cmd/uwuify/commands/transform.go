package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/uwuify/cmd/uwuify/opts"
	"github.com/walteh/uwuify/pkg/hook"
)

// NewTransformCmd creates the transform command
func NewTransformCmd(o *opts.RootOpts) *cobra.Command {
	var channel string

	cmd := &cobra.Command{
		Use:   "transform [text...]",
		Short: "Uwuify text as if it were sent as a message",
		Long: `Transform sends text through the pre-send hook and prints the result.
Arguments are joined with single spaces into one message. Without
arguments every line read from stdin is a separate message.

Messages sent to the reserved channel are printed unchanged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			send := func(content string) error {
				msg := &hook.Message{Content: content}
				if err := o.Dispatcher.Dispatch(ctx, channel, msg); err != nil {
					return errors.Errorf("dispatching message: %w", err)
				}
				fmt.Fprintln(out, msg.Content)
				return nil
			}

			if len(args) > 0 {
				return send(strings.Join(args, " "))
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if err := send(scanner.Text()); err != nil {
					return err
				}
			}
			if err := scanner.Err(); err != nil {
				return errors.Errorf("reading stdin: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&channel, "channel", "cli", "channel id the message is sent to")
	return cmd
}
