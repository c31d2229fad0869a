package main

import (
	"context"
	"fmt"

	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/constants"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/logger"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/store"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/store/xpgx"
	"github.com/Ram-Pam-Pam/Projekt/internal/reference"
	"github.com/spf13/viper"
)

// connectStore opens the database named by db.dsn. It fails when no DSN is set.
func connectStore(ctx context.Context) (store.Store, func(), error) {
	dsn := viper.GetString(constants.ViperDBDSNKey)
	if dsn == "" {
		return nil, nil, fmt.Errorf("%s is not set", constants.ViperDBDSNKey)
	}

	pool, err := xpgx.Connect(ctx, dsn, viper.GetUint64(constants.ViperDBRetriesKey))
	if err != nil {
		return nil, nil, fmt.Errorf("xpgx.Connect: %w", err)
	}
	return store.NewStore(pool), pool.Close, nil
}

// loadDataset reads districts from the database when one is configured and
// falls back to the embedded dataset otherwise.
func loadDataset(ctx context.Context) (*reference.Dataset, error) {
	if viper.GetString(constants.ViperDBDSNKey) == "" {
		return reference.DefaultDataset()
	}

	st, closeStore, err := connectStore(ctx)
	if err != nil {
		return nil, err
	}
	defer closeStore()

	districts, err := st.ListDistricts(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.ListDistricts: %w", err)
	}

	logger.Infof(ctx, "loaded %d districts from the database", len(districts))
	return reference.NewDataset(districts)
}
