package store

import (
	"context"
	"fmt"
	"sync"

	sq "github.com/Masterminds/squirrel"
	"github.com/Ram-Pam-Pam/Projekt/internal/domain"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/store/xpgx"
	"golang.org/x/sync/errgroup"
)

const (
	MetricHousing = "housing"
	MetricTraffic = "traffic"
)

// Input coordinates are WGS84; geometries are stored in EPSG:2180 so that the
// radius is in metres.
const withinRadius = "ST_DWithin(geom, ST_Transform(ST_SetSRID(ST_MakePoint(?, ?), 4326), 2180), ?)"

type poiCount struct {
	Category string `db:"category"`
	N        int64  `db:"n"`
}

func poiCountsQuery(c domain.Coords, radius int) sq.SelectBuilder {
	return builder().Select("category", "count(*) as n").
		From(tablePOIs).
		Where(sq.Expr(withinRadius, c.Lon, c.Lat, radius)).
		GroupBy("category")
}

func sumWithinQuery(table, column string, c domain.Coords, radius int) sq.SelectBuilder {
	return builder().Select(fmt.Sprintf("coalesce(sum(%s), 0)::float8", column)).
		From(table).
		Where(sq.Expr(withinRadius, c.Lon, c.Lat, radius))
}

// AreaMetrics collects POI counts per subcategory, the resident sum and the
// traffic volume sum around c.
func (s *store) AreaMetrics(ctx context.Context, c domain.Coords, radius int) (domain.AreaMetrics, error) {
	metrics := make(domain.AreaMetrics)
	metricsMx := sync.Mutex{}
	put := func(k string, v float64) {
		metricsMx.Lock()
		defer metricsMx.Unlock()
		metrics[k] = v
	}

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		counts, err := xpgx.Selectx[poiCount](egCtx, s.pool, poiCountsQuery(c, radius))
		if err != nil {
			return fmt.Errorf("poi counts: %w", err)
		}
		for _, pc := range counts {
			put(pc.Category, float64(pc.N))
		}
		return nil
	})

	eg.Go(func() error {
		v, err := xpgx.Scalar[float64](egCtx, s.pool, sumWithinQuery(tableResidents, "population", c, radius))
		if err != nil {
			return fmt.Errorf("residents: %w", err)
		}
		put(MetricHousing, v)
		return nil
	})

	eg.Go(func() error {
		v, err := xpgx.Scalar[float64](egCtx, s.pool, sumWithinQuery(tableTraffic, "volume", c, radius))
		if err != nil {
			return fmt.Errorf("traffic: %w", err)
		}
		put(MetricTraffic, v)
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, wrapErr(err)
	}
	return metrics, nil
}
