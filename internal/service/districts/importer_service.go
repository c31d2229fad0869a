// Package districts imports reference district statistics from an HTML page.
package districts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/Ram-Pam-Pam/Projekt/internal/domain"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/logger"
	"github.com/Ram-Pam-Pam/Projekt/internal/reference"
	"github.com/cenkalti/backoff/v4"
)

const (
	rowSelector = "table.districts tbody tr"
	numColumns  = 9
)

type Upserter interface {
	UpsertDistricts(ctx context.Context, districts []*domain.District) error
}

type Service struct {
	store      Upserter
	httpClient *http.Client
	retries    uint64
	interval   time.Duration
}

func NewImporterService(store Upserter, httpClient *http.Client) *Service {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Service{
		store:      store,
		httpClient: httpClient,
		retries:    10,
		interval:   500 * time.Millisecond,
	}
}

// Import downloads url, parses the districts table and upserts every row.
func (s *Service) Import(ctx context.Context, url string) ([]*domain.District, error) {
	body, err := s.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer body.Close()

	districts, err := ParseDistricts(body)
	if err != nil {
		return nil, fmt.Errorf("ParseDistricts: %w", err)
	}

	if err := s.store.UpsertDistricts(ctx, districts); err != nil {
		return nil, fmt.Errorf("store.UpsertDistricts: %w", err)
	}

	logger.Infof(ctx, "imported %d districts from %s", len(districts), url)
	return districts, nil
}

func (s *Service) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	var resp *http.Response
	err := backoff.Retry(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return backoff.Permanent(fmt.Errorf("http.NewRequestWithContext: %w", err))
			}

			r, err := s.httpClient.Do(req)
			if err != nil {
				return fmt.Errorf("http.Do: %w", err)
			}
			if r.StatusCode != http.StatusOK {
				_ = r.Body.Close()
				err = fmt.Errorf("status code error: %d %s", r.StatusCode, r.Status)
				if r.StatusCode >= 400 && r.StatusCode < 500 {
					return backoff.Permanent(err)
				}
				return err
			}

			resp = r
			return nil
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(s.interval), s.retries),
			ctx,
		),
	)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// ParseDistricts reads rows of id, name, population, density, income, traffic
// index, type, lon, lat. Numbers may use a decimal comma and spaces as
// thousands separators.
func ParseDistricts(r io.Reader) ([]*domain.District, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("goquery.NewDocumentFromReader: %w", err)
	}

	districts := make([]*domain.District, 0, 20)
	doc.Find(rowSelector).EachWithBreak(func(i int, tr *goquery.Selection) bool {
		cells := tr.Find("td").Map(func(_ int, td *goquery.Selection) string {
			return strings.TrimSpace(td.Text())
		})
		if len(cells) < numColumns {
			err = fmt.Errorf("row %d: expected %d columns, got %d", i, numColumns, len(cells))
			return false
		}

		var d *domain.District
		d, err = parseRow(cells)
		if err != nil {
			err = fmt.Errorf("row %d: %w", i, err)
			return false
		}
		districts = append(districts, d)
		return true
	})
	if err != nil {
		return nil, err
	}
	if len(districts) == 0 {
		return nil, fmt.Errorf("no rows matched %q", rowSelector)
	}

	return districts, nil
}

func parseRow(cells []string) (*domain.District, error) {
	id, err := strconv.ParseInt(cells[0], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("id %q: %w", cells[0], err)
	}

	nums := make([]float64, 0, 6)
	for _, idx := range []int{2, 3, 4, 5, 7, 8} {
		v, err := parseNumber(cells[idx])
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", idx, err)
		}
		nums = append(nums, v)
	}
	if nums[3] < 0 || nums[3] > reference.MaxTrafficIndex {
		return nil, fmt.Errorf("district %d: traffic index %g out of [0, %g]", id, nums[3], reference.MaxTrafficIndex)
	}

	return &domain.District{
		ID:           id,
		Name:         cells[1],
		Population:   nums[0],
		Density:      nums[1],
		Income:       nums[2],
		TrafficIndex: nums[3],
		Type:         cells[6],
		Coords:       domain.Coords{Lon: nums[4], Lat: nums[5]},
	}, nil
}

func parseNumber(s string) (float64, error) {
	s = strings.NewReplacer(" ", "", "\u00a0", "", ",", ".").Replace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("strconv.ParseFloat: %w", err)
	}
	return v, nil
}
