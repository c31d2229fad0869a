package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/Ram-Pam-Pam/Projekt/internal/domain"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/logger"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/store/xpgx"
)

var districtColumns = []string{
	"id", "name", "population", "density", "income", "traffic_index", "type", "lon", "lat", "created_at", "updated_at",
}

func listDistrictsQuery() sq.SelectBuilder {
	return builder().Select(districtColumns...).
		From(tableDistricts).
		OrderBy("id")
}

func (s *store) ListDistricts(ctx context.Context) ([]*domain.District, error) {
	records, err := xpgx.Selectx[domain.DistrictRecord](ctx, s.pool, listDistrictsQuery())
	if err != nil {
		logger.Errorf(ctx, "ListDistricts: %s", err.Error())
		return nil, wrapErr(err)
	}

	districts := make([]*domain.District, 0, len(records))
	for _, r := range records {
		districts = append(districts, r.ToDistrict())
	}
	return districts, nil
}

func upsertDistrictsQuery(districts []*domain.District) sq.InsertBuilder {
	query := builder().Insert(tableDistricts).
		Columns(districtColumns[:9]...)

	for _, d := range districts {
		query = query.Values(d.ID, d.Name, d.Population, d.Density, d.Income, d.TrafficIndex, d.Type, d.Coords.Lon, d.Coords.Lat)
	}

	return query.Suffix(`
on conflict (id)
do update
set
	name = excluded.name,
	population = excluded.population,
	density = excluded.density,
	income = excluded.income,
	traffic_index = excluded.traffic_index,
	type = excluded.type,
	lon = excluded.lon,
	lat = excluded.lat,
	updated_at = now()`)
}

func (s *store) UpsertDistricts(ctx context.Context, districts []*domain.District) error {
	if len(districts) == 0 {
		return nil
	}

	if _, err := s.pool.Execx(ctx, upsertDistrictsQuery(districts)); err != nil {
		logger.Error(ctx, err.Error())
		return fmt.Errorf("upsert districts: %w", err)
	}
	return nil
}
