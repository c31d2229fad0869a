// Package analysis is the HTTP client of the remote location analysis service.
package analysis

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Ram-Pam-Pam/Projekt/internal/domain/dto"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/constants"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/utils"
	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
)

const (
	analyzePath     = "/api/analyze"
	maxResponseSize = 1 << 20
	tokenSubject    = "bizlocator"
)

type Config struct {
	URL     string
	Timeout time.Duration
	// Secret enables a Bearer service token when set.
	Secret string
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	validate   *validator.Validate
}

func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		validate:   validator.New(),
	}
}

// Analyze asks the service for the score of one point. It is called exactly
// once per candidate location; there is no retry. Every failure, including a
// payload that does not validate, wraps constants.ErrRemoteScoring.
func (c *Client) Analyze(ctx context.Context, req dto.AnalyzeRequest) (*dto.AnalyzeResponse, error) {
	body, err := sonic.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("sonic.Marshal: %w", err)
	}

	url := strings.TrimRight(c.cfg.URL, "/") + analyzePath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	if c.cfg.Secret != "" {
		token, err := utils.GenerateServiceToken(c.cfg.Secret, tokenSubject, time.Minute)
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set(constants.HeaderAuthorization, constants.BearerPrefix+token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", constants.ErrRemoteScoring, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", constants.ErrRemoteScoring, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d: %s", constants.ErrRemoteScoring, resp.StatusCode, bytes.TrimSpace(raw))
	}

	var out dto.AnalyzeResponse
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", constants.ErrRemoteScoring, err)
	}
	if err := c.validate.Struct(&out); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", constants.ErrRemoteScoring, err)
	}

	return &out, nil
}
