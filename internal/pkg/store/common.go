package store

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/constants"
	"github.com/jackc/pgx/v5"
)

const (
	tableDistricts = "districts"
	tablePOIs      = "pois"
	tableResidents = "residents"
	tableTraffic   = "traffic"
)

var mapping = map[error]error{pgx.ErrNoRows: constants.ErrDBNotFound}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder returns a squirrel statement builder with postgres placeholders.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
