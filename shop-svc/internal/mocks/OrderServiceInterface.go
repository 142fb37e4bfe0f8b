package mocks

import (
	"context"

	"loyalty-storefront/shop-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// OrderServiceInterface is a mock type for the service.OrderServiceInterface type.
type OrderServiceInterface struct {
	mock.Mock
}

func (_m *OrderServiceInterface) Create(ctx context.Context, principal domain.Principal, req domain.CheckoutRequest) (*domain.Order, error) {
	ret := _m.Called(ctx, principal, req)

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) Transition(ctx context.Context, principal domain.Principal, orderID int64, target domain.OrderStatus) (*domain.Order, error) {
	ret := _m.Called(ctx, principal, orderID, target)

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) Get(ctx context.Context, principal domain.Principal, orderID int64) (*domain.Order, error) {
	ret := _m.Called(ctx, principal, orderID)

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) ListByUser(ctx context.Context, principal domain.Principal) ([]domain.Order, error) {
	ret := _m.Called(ctx, principal)

	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) ListAll(ctx context.Context, principal domain.Principal) ([]domain.Order, error) {
	ret := _m.Called(ctx, principal)

	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) Board(ctx context.Context, principal domain.Principal) (*domain.OrderBoard, error) {
	ret := _m.Called(ctx, principal)

	var r0 *domain.OrderBoard
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.OrderBoard)
	}
	return r0, ret.Error(1)
}

func (_m *OrderServiceInterface) ReceiptQR(ctx context.Context, principal domain.Principal, orderID int64) ([]byte, error) {
	ret := _m.Called(ctx, principal, orderID)

	var r0 []byte
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]byte)
	}
	return r0, ret.Error(1)
}

// NewOrderServiceInterface creates a new instance of OrderServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewOrderServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *OrderServiceInterface {
	m := &OrderServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
