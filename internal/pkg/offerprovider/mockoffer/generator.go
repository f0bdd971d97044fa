package mockoffer

import (
	"context"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/ijalalfrz/destination-deals-service/internal/app/dto"
)

const (
	DefaultLatency = 2 * time.Second

	// jitter spans [-10%, +10%] of the base price
	jitterSpread = 0.2
)

// JitterSource returns a uniform value in [0, 1). It must be safe for
// concurrent use.
type JitterSource func() float64

// Generator synthesizes offers for the static destination table.
type Generator struct {
	Destinations []dto.Destination
	Jitter       JitterSource
	Latency      time.Duration
}

func NewGenerator(latency time.Duration) *Generator {
	return &Generator{
		Destinations: Destinations,
		Jitter:       rand.Float64,
		Latency:      latency,
	}
}

// Price returns the base fare of code with a random jitter applied,
// rounded to the nearest integer.
func (g *Generator) Price(code string) int {
	variation := (g.Jitter() - 0.5) * jitterSpread

	return int(math.Round(float64(BasePrice(code)) * (1 + variation)))
}

// Generate waits for the simulated latency and returns one offer per
// destination, unfiltered and in table order. The wait is not cancellable.
func (g *Generator) Generate(ctx context.Context) []dto.Offer {
	slog.InfoContext(ctx, "using mock offers", slog.Duration("latency", g.Latency))

	if g.Latency > 0 {
		time.Sleep(g.Latency)
	}

	offers := make([]dto.Offer, 0, len(g.Destinations))
	for _, dest := range g.Destinations {
		offers = append(offers, dto.Offer{
			City:     dest.City,
			Country:  dest.Country,
			Code:     dest.Code,
			Price:    g.Price(dest.Code),
			Currency: dto.CurrencyCAD,
			Flag:     dest.Flag,
		})
	}

	return offers
}
