package mocks

import (
	"context"

	"loyalty-storefront/report-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// DashboardInterface is a mock type for the service.DashboardInterface type.
type DashboardInterface struct {
	mock.Mock
}

func (_m *DashboardInterface) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	ret := _m.Called(ctx)

	var r0 *domain.Dashboard
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Dashboard)
	}
	return r0, ret.Error(1)
}

func (_m *DashboardInterface) Refresh(ctx context.Context) (*domain.Dashboard, error) {
	ret := _m.Called(ctx)

	var r0 *domain.Dashboard
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Dashboard)
	}
	return r0, ret.Error(1)
}

// NewDashboardInterface creates a new instance of DashboardInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewDashboardInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *DashboardInterface {
	m := &DashboardInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
