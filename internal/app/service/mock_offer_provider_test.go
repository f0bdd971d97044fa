//go:build unit

package service

import (
	"context"
	"encoding/json"

	"github.com/ijalalfrz/destination-deals-service/internal/app/dto"
	"github.com/stretchr/testify/mock"
)

type MockOfferProvider struct {
	mock.Mock
}

func NewMockOfferProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOfferProvider {
	m := &MockOfferProvider{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockOfferProvider) Search(ctx context.Context, req dto.SearchRequest) (json.RawMessage, error) {
	ret := m.Called(ctx, req)

	var results json.RawMessage
	if ret.Get(0) != nil {
		results = ret.Get(0).(json.RawMessage)
	}

	return results, ret.Error(1)
}
