package main

import (
	"fmt"

	"github.com/Ram-Pam-Pam/Projekt/internal/api"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/constants"
	"github.com/Ram-Pam-Pam/Projekt/internal/service/analyzer"
	"github.com/Ram-Pam-Pam/Projekt/internal/weights"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newAnalyzerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyzer",
		Short: "Run the location analysis service backed by PostGIS",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			catalog, err := weights.DefaultCatalog()
			if err != nil {
				return fmt.Errorf("weights.DefaultCatalog: %w", err)
			}

			st, closeStore, err := connectStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			svc, err := api.NewAnalyzerService(
				analyzer.NewAnalyzerService(st, catalog),
				viper.GetString(constants.ViperSecretKey),
				viper.GetStringSlice(constants.ViperCORSOriginsKey),
			)
			if err != nil {
				return fmt.Errorf("api.NewAnalyzerService: %w", err)
			}

			return run(ctx, svc, viper.GetString(constants.ViperAnalyzerAddrKey))
		},
	}
}
