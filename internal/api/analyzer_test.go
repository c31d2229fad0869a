package api

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/Ram-Pam-Pam/Projekt/internal/domain"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/utils"
	"github.com/Ram-Pam-Pam/Projekt/internal/service/analyzer"
	"github.com/Ram-Pam-Pam/Projekt/internal/weights"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMetrics struct {
	err error
}

func (s stubMetrics) AreaMetrics(context.Context, domain.Coords, int) (domain.AreaMetrics, error) {
	return domain.AreaMetrics{"housing": 5000}, s.err
}

func newTestAnalyzer(t *testing.T, metrics analyzer.MetricsSource, secret string) *AnalyzerService {
	t.Helper()
	catalog, err := weights.DefaultCatalog()
	require.NoError(t, err)

	svc, err := NewAnalyzerService(analyzer.NewAnalyzerService(metrics, catalog), secret, []string{"*"})
	require.NoError(t, err)
	return svc
}

func TestAnalyzerAPI(t *testing.T) {
	svc := newTestAnalyzer(t, stubMetrics{}, "")

	rec := do(t, svc, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, svc, http.MethodPost, "/api/analyze", `{"lat":50.06,"lon":19.94}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[struct {
		TotalScore     int                   `json:"total_score"`
		CategoryScores domain.CategoryScores `json:"category_scores"`
	}](t, rec)
	// cafe: competition 100*5 + residents 100*4 over 16
	assert.Equal(t, 56, resp.TotalScore)
	assert.Equal(t, 100, resp.CategoryScores.Residents)

	rec = do(t, svc, http.MethodPost, "/api/analyze", `{"lat":50.06,"lon":19.94,"type":"kantor"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, svc, http.MethodPost, "/api/analyze", `{"lat":500,"lon":19.94}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzerAPI_StoreFailure(t *testing.T) {
	svc := newTestAnalyzer(t, stubMetrics{err: errors.New("db down")}, "")

	rec := do(t, svc, http.MethodPost, "/api/analyze", `{"lat":50.06,"lon":19.94}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAnalyzerAPI_ServiceToken(t *testing.T) {
	svc := newTestAnalyzer(t, stubMetrics{}, "shh")

	rec := do(t, svc, http.MethodPost, "/api/analyze", `{"lat":50.06,"lon":19.94}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := utils.GenerateServiceToken("shh", "test", time.Minute)
	require.NoError(t, err)

	req := newJSONRequest(http.MethodPost, "/api/analyze", `{"lat":50.06,"lon":19.94}`)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = serveRequest(t, svc, req)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// health stays open
	rec = do(t, svc, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
