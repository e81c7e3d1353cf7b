package cli

import (
	"fmt"
	"io"

	"github.com/shenikar/field_sync/internal/catalog"
	"github.com/spf13/cobra"
)

// NewCatalogCommand создает группу команд справочных кешей
func NewCatalogCommand(rootOpts *RootOptions) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Refresh and inspect cached reference lists",
	}

	refresh := &cobra.Command{
		Use:   "refresh",
		Short: "Refetch every reference list and the user's occurrences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootOpts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if !cmd.Flags().Changed("user-id") {
				userID = rootOpts.cfg.SyncUserID
			}
			report, err := a.Catalog.Refresh(cmd.Context(), userID)
			if err != nil {
				return err
			}
			return rootOpts.render(cmd, report, func(w io.Writer) { printRefreshReport(w, report) })
		},
	}
	refresh.Flags().Int64Var(&userID, "user-id", 0, "user whose occurrences are refreshed (default SYNC_USER_ID)")

	show := &cobra.Command{
		Use:       "show <entity>",
		Short:     "Print a cached reference list",
		Args:      cobra.ExactArgs(1),
		ValidArgs: catalog.Entities(),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootOpts.openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			items, err := a.Catalog.Items(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return rootOpts.render(cmd, items, func(w io.Writer) {
				for _, item := range items {
					fmt.Fprintln(w, string(item))
				}
			})
		},
	}

	cmd.AddCommand(refresh, show)
	return cmd
}
