package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/constants"
	"github.com/spf13/viper"
)

const envPrefix = "BIZLOCATOR"

// SetDefaults registers a default for every known key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(constants.ViperServerAddrKey, ":8080")
	v.SetDefault(constants.ViperAnalyzerAddrKey, ":8000")
	v.SetDefault(constants.ViperCORSOriginsKey, []string{"http://localhost:5173"})
	v.SetDefault(constants.ViperAnalysisURLKey, "http://127.0.0.1:8000")
	v.SetDefault(constants.ViperAnalysisTimeout, 10*time.Second)
	v.SetDefault(constants.ViperAnalysisRadius, constants.DefaultRadiusMeters)
	v.SetDefault(constants.ViperSecretKey, "")
	v.SetDefault(constants.ViperMaxInFlightKey, constants.MaxCandidateLocations)
	v.SetDefault(constants.ViperDBDSNKey, "")
	v.SetDefault(constants.ViperDBRetriesKey, 5)
	v.SetDefault(constants.ViperSessionIdleTTL, 30*time.Minute)
	v.SetDefault(constants.ViperSweepScheduleKey, "@every 5m")
	v.SetDefault(constants.ViperLogLevelKey, "info")
	v.SetDefault(constants.ViperLogDevKey, false)
}

// Init configures the global viper instance. An empty path only reads env vars;
// a missing config file at an explicit path is an error.
func Init(path string) error {
	return Load(viper.GetViper(), path)
}

func Load(v *viper.Viper, path string) error {
	SetDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("config file %s not found: %w", path, err)
		}
		return fmt.Errorf("viper.ReadInConfig: %w", err)
	}

	return nil
}
