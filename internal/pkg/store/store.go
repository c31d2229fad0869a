package store

import (
	"context"

	"github.com/Ram-Pam-Pam/Projekt/internal/domain"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	ListDistricts(ctx context.Context) ([]*domain.District, error)
	UpsertDistricts(ctx context.Context, districts []*domain.District) error
	AreaMetrics(ctx context.Context, coords domain.Coords, radius int) (domain.AreaMetrics, error)
}

type store struct {
	pool *Pool
}

func NewStore(pool *Pool) Store {
	return &store{pool}
}
