package service

import (
	"context"
	"log/slog"

	"github.com/ijalalfrz/destination-deals-service/internal/app/dto"
	"github.com/ijalalfrz/destination-deals-service/internal/pkg/offer"
	"github.com/ijalalfrz/destination-deals-service/internal/pkg/offerprovider"
)

type OfferGenerator interface {
	Generate(ctx context.Context) []dto.Offer
}

type SearchService struct {
	// Provider is nil when no external provider is configured.
	Provider  offerprovider.OfferProvider
	Generator OfferGenerator
}

func NewSearchService(provider offerprovider.OfferProvider, generator OfferGenerator) *SearchService {
	return &SearchService{
		Provider:  provider,
		Generator: generator,
	}
}

// Search answers with provider offers, or mock offers when the provider is absent or fails
// Search godoc
// @Summary      Search destination offers
// @Tags         Search
// @Description  Search destination offers from the scraper API, falling back to mock prices
// @Param        request  body      dto.SearchRequest  true  "Search Request"
// @Success      200      {array}   dto.Offer
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/search [post]
func (s *SearchService) Search(ctx context.Context, req dto.SearchRequest) (dto.SearchResponse, error) {
	if s.Provider != nil {
		results, err := s.Provider.Search(ctx, req)
		if err == nil {
			return dto.SearchResponse{
				Source: dto.SourceProvider,
				Raw:    results,
			}, nil
		}

		slog.WarnContext(ctx, "provider failed, falling back to mock offers",
			slog.Any("error", err))
	}

	return dto.SearchResponse{
		Source: dto.SourceMock,
		Offers: s.mockOffers(ctx, req),
	}, nil
}

func (s *SearchService) mockOffers(ctx context.Context, req dto.SearchRequest) []dto.Offer {
	offers := s.Generator.Generate(ctx)
	filtered := offer.FilterByBudget(offers, req.BudgetAmount())

	return offer.SortByPrice(filtered)
}
