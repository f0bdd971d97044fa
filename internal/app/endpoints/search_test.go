package endpoints

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ijalalfrz/destination-deals-service/internal/app/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSearchService struct {
	resp dto.SearchResponse
	err  error
	got  dto.SearchRequest
}

func (s *stubSearchService) Search(_ context.Context, req dto.SearchRequest) (dto.SearchResponse, error) {
	s.got = req
	return s.resp, s.err
}

func TestMakeSearchEndpoint(t *testing.T) {
	req := &dto.SearchRequest{
		Origin: json.RawMessage(`"YUL"`),
		Budget: json.RawMessage(`500`),
		Period: json.RawMessage(`"july"`),
	}

	t.Run("success", func(t *testing.T) {
		svc := &stubSearchService{resp: dto.SearchResponse{Source: dto.SourceMock}}
		e := MakeSearchEndpoint(svc)

		got, err := e.Search(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, dto.SearchResponse{Source: dto.SourceMock}, got)
		assert.Equal(t, *req, svc.got)
	})

	t.Run("invalid_type", func(t *testing.T) {
		e := MakeSearchEndpoint(&stubSearchService{})

		_, err := e.Search(context.Background(), dto.SearchRequest{})
		assert.EqualError(t, err, "invalid type")
	})

	t.Run("nil_request", func(t *testing.T) {
		e := MakeSearchEndpoint(&stubSearchService{})

		_, err := e.Search(context.Background(), (*dto.SearchRequest)(nil))
		assert.EqualError(t, err, "invalid type")
	})

	t.Run("service_error", func(t *testing.T) {
		e := MakeSearchEndpoint(&stubSearchService{err: errors.New("boom")})

		_, err := e.Search(context.Background(), req)
		assert.EqualError(t, err, "search service: boom")
	})
}
