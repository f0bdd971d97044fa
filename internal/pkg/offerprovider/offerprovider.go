package offerprovider

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/destination-deals-service/internal/app/dto"
)

// config for offer provider
type OfferProviderConfig struct {
	SearchAPIURL string
	Timeout      time.Duration
	RateLimitRPS int
	Limiter      RateLimiter
	HTTPClient   *http.Client
}

// OfferProvider returns the raw offers payload of an external pricing service.
type OfferProvider interface {
	Search(ctx context.Context, req dto.SearchRequest) (json.RawMessage, error)
}

// RateLimiter is satisfied by *redis_rate.Limiter.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}
