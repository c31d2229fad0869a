package main

import (
	"fmt"

	"github.com/Ram-Pam-Pam/Projekt/internal/service/districts"
	"github.com/spf13/cobra"
)

func newDistrictsCmd() *cobra.Command {
	districtsCmd := &cobra.Command{
		Use:   "districts",
		Short: "Manage the reference district dataset",
	}

	districtsCmd.AddCommand(&cobra.Command{
		Use:   "import [url]",
		Short: "Import district statistics from an HTML table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, closeStore, err := connectStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			imported, err := districts.NewImporterService(st, nil).Import(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d districts\n", len(imported))
			return nil
		},
	})

	return districtsCmd
}
