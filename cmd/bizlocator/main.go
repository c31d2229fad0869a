package main

import (
	"fmt"
	"os"

	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/config"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/constants"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "bizlocator",
		Short:         "Business location scoring and ranking",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Init(configPath); err != nil {
				return err
			}
			return logger.Init(viper.GetString(constants.ViperLogLevelKey), viper.GetBool(constants.ViperLogDevKey))
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (yaml, json or toml)")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAnalyzerCmd())
	rootCmd.AddCommand(newRankCmd())
	rootCmd.AddCommand(newDistrictsCmd())

	return rootCmd
}
