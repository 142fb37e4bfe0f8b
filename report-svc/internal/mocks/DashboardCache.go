package mocks

import (
	"context"

	"loyalty-storefront/report-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// DashboardCache is a mock type for the service.DashboardCache type.
type DashboardCache struct {
	mock.Mock
}

func (_m *DashboardCache) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	ret := _m.Called(ctx)

	var r0 *domain.Dashboard
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Dashboard)
	}
	return r0, ret.Error(1)
}

func (_m *DashboardCache) StoreDashboard(ctx context.Context, dashboard *domain.Dashboard) error {
	ret := _m.Called(ctx, dashboard)
	return ret.Error(0)
}

func (_m *DashboardCache) TopRewards(ctx context.Context, limit int) ([]domain.TopReward, error) {
	ret := _m.Called(ctx, limit)

	var r0 []domain.TopReward
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.TopReward)
	}
	return r0, ret.Error(1)
}

// NewDashboardCache creates a new instance of DashboardCache. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewDashboardCache(t interface {
	mock.TestingT
	Cleanup(func())
}) *DashboardCache {
	m := &DashboardCache{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
