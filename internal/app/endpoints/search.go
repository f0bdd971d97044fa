package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/destination-deals-service/internal/app/dto"
)

type SearchService interface {
	Search(ctx context.Context, req dto.SearchRequest) (dto.SearchResponse, error)
}

type SearchEndpoint struct {
	Search endpoint.Endpoint
}

func MakeSearchEndpoint(service SearchService) SearchEndpoint {
	return SearchEndpoint{
		Search: makeSearchEndpoint(service),
	}
}

func makeSearchEndpoint(service SearchService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		offers, err := service.Search(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("search service: %w", err)
		}

		return offers, nil
	}
}
