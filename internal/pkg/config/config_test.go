package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	require.NoError(t, Load(v, ""))

	assert.Equal(t, ":8080", v.GetString(constants.ViperServerAddrKey))
	assert.Equal(t, 10*time.Second, v.GetDuration(constants.ViperAnalysisTimeout))
	assert.Equal(t, 500, v.GetInt(constants.ViperAnalysisRadius))
	assert.Equal(t, 5, v.GetInt(constants.ViperMaxInFlightKey))
	assert.Equal(t, "@every 5m", v.GetString(constants.ViperSweepScheduleKey))
	assert.Equal(t, []string{"http://localhost:5173"}, v.GetStringSlice(constants.ViperCORSOriginsKey))
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BIZLOCATOR_ANALYSIS_TIMEOUT", "3s")
	t.Setenv("BIZLOCATOR_LOG_LEVEL", "debug")

	v := viper.New()
	require.NoError(t, Load(v, ""))

	assert.Equal(t, 3*time.Second, v.GetDuration(constants.ViperAnalysisTimeout))
	assert.Equal(t, "debug", v.GetString(constants.ViperLogLevelKey))
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bizlocator.yaml")
	content := "analysis:\n  url: http://analyzer:9000\n  radius: 750\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := viper.New()
	require.NoError(t, Load(v, path))

	assert.Equal(t, "http://analyzer:9000", v.GetString(constants.ViperAnalysisURLKey))
	assert.Equal(t, 750, v.GetInt(constants.ViperAnalysisRadius))
	assert.Equal(t, ":8000", v.GetString(constants.ViperAnalyzerAddrKey))
}

func TestLoad_MissingFile(t *testing.T) {
	v := viper.New()
	err := Load(v, filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
