package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ram-Pam-Pam/Projekt/internal/api"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/analysis"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/constants"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/logger"
	"github.com/Ram-Pam-Pam/Projekt/internal/service/candidates"
	"github.com/Ram-Pam-Pam/Projekt/internal/service/session"
	"github.com/Ram-Pam-Pam/Projekt/internal/weights"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

type server interface {
	Serve(addr string)
	Shutdown(ctx context.Context) error
}

// run serves until SIGINT/SIGTERM or ctx is done. beforeShutdown runs before
// Shutdown so that open event streams end.
func run(ctx context.Context, srv server, addr string, beforeShutdown ...func()) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go srv.Serve(addr)
	<-ctx.Done()

	logger.Info(context.Background(), "shutting down")
	for _, f := range beforeShutdown {
		f()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the session API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			catalog, err := weights.DefaultCatalog()
			if err != nil {
				return fmt.Errorf("weights.DefaultCatalog: %w", err)
			}
			dataset, err := loadDataset(ctx)
			if err != nil {
				return err
			}

			client := analysis.NewClient(analysis.Config{
				URL:     viper.GetString(constants.ViperAnalysisURLKey),
				Timeout: viper.GetDuration(constants.ViperAnalysisTimeout),
				Secret:  viper.GetString(constants.ViperSecretKey),
			}, nil)

			manager := session.NewManager(catalog, dataset, client, candidates.Options{
				Timeout:     viper.GetDuration(constants.ViperAnalysisTimeout),
				Radius:      viper.GetInt(constants.ViperAnalysisRadius),
				MaxInFlight: viper.GetInt(constants.ViperMaxInFlightKey),
			})
			defer manager.CloseAll()

			sweeper, err := manager.StartSweeper(ctx,
				viper.GetString(constants.ViperSweepScheduleKey),
				viper.GetDuration(constants.ViperSessionIdleTTL))
			if err != nil {
				return err
			}
			defer sweeper.Stop()

			svc, err := api.NewAPIService(manager, viper.GetStringSlice(constants.ViperCORSOriginsKey))
			if err != nil {
				return fmt.Errorf("api.NewAPIService: %w", err)
			}

			return run(ctx, svc, viper.GetString(constants.ViperServerAddrKey), manager.CloseAll)
		},
	}
}
