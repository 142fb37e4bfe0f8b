package mocks

import (
	"context"

	"loyalty-storefront/shop-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// PointsLedgerInterface is a mock type for the service.PointsLedgerInterface type.
type PointsLedgerInterface struct {
	mock.Mock
}

func (_m *PointsLedgerInterface) BalanceOf(ctx context.Context, userID int64) (domain.Balance, error) {
	ret := _m.Called(ctx, userID)

	var r0 domain.Balance
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(domain.Balance)
	}
	return r0, ret.Error(1)
}

// NewPointsLedgerInterface creates a new instance of PointsLedgerInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewPointsLedgerInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *PointsLedgerInterface {
	m := &PointsLedgerInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
