package mocks

import (
	"context"
	"time"

	"loyalty-storefront/report-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// RevenueRepository is a mock type for the service.RevenueRepository type.
type RevenueRepository struct {
	mock.Mock
}

func (_m *RevenueRepository) RevenueSince(ctx context.Context, since time.Time) (int64, error) {
	ret := _m.Called(ctx, since)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *RevenueRepository) MonthlyRevenue(ctx context.Context, since time.Time, loc *time.Location) (map[string]int64, error) {
	ret := _m.Called(ctx, since, loc)

	var r0 map[string]int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]int64)
	}
	return r0, ret.Error(1)
}

func (_m *RevenueRepository) StatusCounts(ctx context.Context) (map[string]int, error) {
	ret := _m.Called(ctx)

	var r0 map[string]int
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[string]int)
	}
	return r0, ret.Error(1)
}

func (_m *RevenueRepository) TopRewards(ctx context.Context, limit int) ([]domain.TopReward, error) {
	ret := _m.Called(ctx, limit)

	var r0 []domain.TopReward
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.TopReward)
	}
	return r0, ret.Error(1)
}

// NewRevenueRepository creates a new instance of RevenueRepository. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewRevenueRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RevenueRepository {
	m := &RevenueRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
