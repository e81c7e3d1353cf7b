package cli

import (
	"fmt"
	"io"

	"github.com/shenikar/field_sync/internal/storage"
	"github.com/spf13/cobra"
)

// NewMigrateCommand создает команду применения миграций хранилища
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply storage migrations for the sqlite and postgres drivers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := storage.Migrate(rootOpts.cfg, rootOpts.logger); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "migrations applied for %s storage\n", rootOpts.cfg.StorageDriver)
			return nil
		},
	}
}

// NewDrainCommand создает команду однократной синхронизации очереди
func NewDrainCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "drain",
		Short: "Send queued actions to the remote API in order, stopping at the first failure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootOpts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			report, err := a.Engine.Drain(cmd.Context())
			if err != nil {
				return err
			}
			return rootOpts.render(cmd, report, func(w io.Writer) { printDrainReport(w, report) })
		},
	}
}

// NewStatusCommand создает команду вывода состояния синхронизации
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show connectivity and pending queue size",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootOpts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			status := a.Engine.Status(cmd.Context())
			return rootOpts.render(cmd, status, func(w io.Writer) { printStatus(w, status) })
		},
	}
}
