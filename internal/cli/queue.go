package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewQueueCommand создает группу команд для просмотра и правки очереди
func NewQueueCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Inspect and edit the offline action queue",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List queued actions in send order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootOpts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			queue, err := a.Queue.List(cmd.Context())
			if err != nil {
				return err
			}
			return rootOpts.render(cmd, queue, func(w io.Writer) { printQueue(w, queue) })
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "send <action-id>",
		Short: "Send a single queued action now if the network is available",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootOpts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Engine.SendItem(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "action %s sent\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove <action-id>",
		Short: "Discard a queued action and its temporary occurrence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootOpts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.Queue.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "action %s removed\n", args[0])
			return nil
		},
	})

	return cmd
}
