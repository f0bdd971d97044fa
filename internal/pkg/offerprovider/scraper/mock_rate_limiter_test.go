package scraper

import (
	"context"

	"github.com/go-redis/redis_rate/v10"
	"github.com/stretchr/testify/mock"
)

type MockRateLimiter struct {
	mock.Mock
}

func NewMockRateLimiter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRateLimiter {
	m := &MockRateLimiter{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockRateLimiter) Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	ret := m.Called(ctx, key, limit)

	var res *redis_rate.Result
	if fn, ok := ret.Get(0).(func(context.Context, string, redis_rate.Limit) *redis_rate.Result); ok {
		res = fn(ctx, key, limit)
	} else if ret.Get(0) != nil {
		res = ret.Get(0).(*redis_rate.Result)
	}

	return res, ret.Error(1)
}
