// Package analyzer is the location analysis service: it reads metrics around a
// point and scores them against a business template.
package analyzer

import (
	"context"
	"fmt"

	"github.com/Ram-Pam-Pam/Projekt/internal/domain"
	"github.com/Ram-Pam-Pam/Projekt/internal/domain/dto"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/constants"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/logger"
	"github.com/Ram-Pam-Pam/Projekt/internal/weights"
)

type MetricsSource interface {
	AreaMetrics(ctx context.Context, coords domain.Coords, radius int) (domain.AreaMetrics, error)
}

type Service struct {
	metrics MetricsSource
	catalog *weights.Catalog
}

func NewAnalyzerService(metrics MetricsSource, catalog *weights.Catalog) *Service {
	return &Service{metrics: metrics, catalog: catalog}
}

func (s *Service) Analyze(ctx context.Context, req dto.AnalyzeRequest) (*dto.AnalyzeResponse, error) {
	if req.Type == "" {
		req.Type = constants.DefaultBusinessType
	}
	if req.Radius <= 0 {
		req.Radius = constants.DefaultRadiusMeters
	}

	t, err := s.catalog.ByBusinessType(req.Type)
	if err != nil {
		return nil, err
	}

	coords := domain.Coords{Lon: req.Lon, Lat: req.Lat}
	metrics, err := s.metrics.AreaMetrics(ctx, coords, req.Radius)
	if err != nil {
		logger.Errorf(ctx, "AreaMetrics: %s", err.Error())
		return nil, fmt.Errorf("AreaMetrics: %w", err)
	}

	total, scores := HierarchicalScore(t, metrics)
	logger.Infof(ctx, "analyzed %.5f,%.5f as %s: %d", req.Lat, req.Lon, req.Type, total)

	return dto.NewAnalyzeResponse(total, scores), nil
}
