package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/destination-deals-service/internal/app/dto"
	"github.com/ijalalfrz/destination-deals-service/internal/pkg/offerprovider"
)

const (
	ProviderName   = "scraper"
	DefaultTimeout = 60 * time.Second
	searchPath     = "/search"
)

type Provider struct {
	Name         string
	SearchAPIURL string
	Timeout      time.Duration
	RateLimitRPS int
	Limiter      offerprovider.RateLimiter
	HTTPClient   *http.Client
}

func NewProvider(config offerprovider.OfferProviderConfig) *Provider {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Provider{
		Name:         ProviderName,
		SearchAPIURL: strings.TrimRight(strings.TrimSpace(config.SearchAPIURL), "/"),
		Timeout:      timeout,
		RateLimitRPS: config.RateLimitRPS,
		Limiter:      config.Limiter,
		HTTPClient:   httpClient,
	}
}

// Search forwards the request to {SearchAPIURL}/search and returns the
// response body untouched. Any non-2xx status, transport error, timeout,
// non-JSON or null body is returned as an error; there are no retries.
func (p *Provider) Search(ctx context.Context, req dto.SearchRequest) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	if err := p.allow(ctx); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.SearchAPIURL+searchPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	slog.InfoContext(ctx, "calling scraper API", slog.String("url", httpReq.URL.String()))

	resp, err := p.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("scraper request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s", offerprovider.ErrUnexpectedStatus, resp.Status)
	}

	var results json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("%w: %w", offerprovider.ErrMalformedResponse, err)
	}

	trimmed := bytes.TrimSpace(results)
	if bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%w: null body", offerprovider.ErrMalformedResponse)
	}

	var items []json.RawMessage
	if trimmed[0] == '[' && json.Unmarshal(trimmed, &items) == nil {
		slog.InfoContext(ctx, "scraper API returned destinations", slog.Int("count", len(items)))
	} else {
		slog.InfoContext(ctx, "scraper API returned a non-array body")
	}

	return results, nil
}

func (p *Provider) allow(ctx context.Context) error {
	if p.Limiter == nil || p.RateLimitRPS <= 0 {
		return nil
	}

	res, err := p.Limiter.Allow(ctx, fmt.Sprintf("limit:%s", p.Name),
		redis_rate.PerSecond(p.RateLimitRPS))
	if err != nil {
		return fmt.Errorf("failed to rate limit: %w", err)
	}

	if res.Allowed == 0 {
		return offerprovider.ErrRateLimitExceeded
	}

	return nil
}
