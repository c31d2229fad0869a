package analysis

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Ram-Pam-Pam/Projekt/internal/domain/dto"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/constants"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const okBody = `{"total_score":72,"category_scores":{"public_amenities":80,"transport":60,"residents":70,"competition":55}}`

func TestClient_Analyze(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/analyze", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Empty(t, r.Header.Get("Authorization"))
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		_, _ = w.Write([]byte(okBody))
	}))
	defer srv.Close()

	c := NewClient(Config{URL: srv.URL + "/", Timeout: time.Second}, nil)
	resp, err := c.Analyze(context.Background(), dto.AnalyzeRequest{Lat: 50.06, Lon: 19.94, Type: "kawiarnia", Radius: 500})
	require.NoError(t, err)

	assert.JSONEq(t, `{"lat":50.06,"lon":19.94,"type":"kawiarnia","radius":500}`, gotBody)
	assert.Equal(t, 72, *resp.TotalScore)
	assert.Equal(t, 55, resp.CategoryScores.ToDomain().Competition)
}

func TestClient_Analyze_BearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if _, err := utils.ParseServiceToken("shh", raw); err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(okBody))
	}))
	defer srv.Close()

	c := NewClient(Config{URL: srv.URL, Timeout: time.Second, Secret: "shh"}, nil)
	_, err := c.Analyze(context.Background(), dto.AnalyzeRequest{})
	require.NoError(t, err)
}

func TestClient_Analyze_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"detail":"boom"}`},
		{"bad request", http.StatusBadRequest, `{"detail":"Nieznany typ biznesu"}`},
		{"not json", http.StatusOK, `<html>`},
		{"missing total", http.StatusOK, `{"category_scores":{"public_amenities":1,"transport":1,"residents":1,"competition":1}}`},
		{"missing category", http.StatusOK, `{"total_score":10,"category_scores":{"public_amenities":1,"transport":1,"residents":1}}`},
		{"out of range", http.StatusOK, `{"total_score":140,"category_scores":{"public_amenities":1,"transport":1,"residents":1,"competition":1}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(Config{URL: srv.URL, Timeout: time.Second}, nil)
			resp, err := c.Analyze(context.Background(), dto.AnalyzeRequest{})
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, constants.ErrRemoteScoring)
		})
	}
}

func TestClient_Analyze_ContextDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := NewClient(Config{URL: srv.URL, Timeout: time.Minute}, nil)
	_, err := c.Analyze(ctx, dto.AnalyzeRequest{})
	assert.ErrorIs(t, err, constants.ErrRemoteScoring)
}
