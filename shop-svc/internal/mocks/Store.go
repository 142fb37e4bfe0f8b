package mocks

import (
	"context"

	"loyalty-storefront/shop-svc/internal/domain"
	"loyalty-storefront/shop-svc/internal/service"

	"github.com/stretchr/testify/mock"
)

// Store is a mock type for the service.Store type.
//
// InTx accepts either an error or a func(context.Context, func(service.Tx) error) error
// as its return value; the latter runs the callback against a caller-chosen Tx.
type Store struct {
	mock.Mock
}

func (_m *Store) InTx(ctx context.Context, fn func(tx service.Tx) error) error {
	ret := _m.Called(ctx, fn)

	if rf, ok := ret.Get(0).(func(context.Context, func(service.Tx) error) error); ok {
		return rf(ctx, fn)
	}
	return ret.Error(0)
}

func (_m *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Product)
	}
	return r0, ret.Error(1)
}

func (_m *Store) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Product)
	}
	return r0, ret.Error(1)
}

func (_m *Store) CreateProduct(ctx context.Context, product *domain.Product) error {
	ret := _m.Called(ctx, product)
	return ret.Error(0)
}

func (_m *Store) UpdateProduct(ctx context.Context, product *domain.Product) error {
	ret := _m.Called(ctx, product)
	return ret.Error(0)
}

func (_m *Store) DeleteProduct(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func (_m *Store) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	ret := _m.Called(ctx, filter)

	var r0 []domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *Store) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	ret := _m.Called(ctx, orderID)

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *Store) GetPointsAccount(ctx context.Context, userID int64) (*domain.PointsAccount, error) {
	ret := _m.Called(ctx, userID)

	var r0 *domain.PointsAccount
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.PointsAccount)
	}
	return r0, ret.Error(1)
}

func (_m *Store) ListRewards(ctx context.Context, activeOnly bool) ([]domain.Reward, error) {
	ret := _m.Called(ctx, activeOnly)

	var r0 []domain.Reward
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Reward)
	}
	return r0, ret.Error(1)
}

func (_m *Store) GetReward(ctx context.Context, id int64) (*domain.Reward, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Reward
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Reward)
	}
	return r0, ret.Error(1)
}

func (_m *Store) CreateReward(ctx context.Context, reward *domain.Reward) error {
	ret := _m.Called(ctx, reward)
	return ret.Error(0)
}

func (_m *Store) UpdateReward(ctx context.Context, reward *domain.Reward) error {
	ret := _m.Called(ctx, reward)
	return ret.Error(0)
}

func (_m *Store) ListRedemptions(ctx context.Context, userID int64) ([]domain.RedemptionRecord, error) {
	ret := _m.Called(ctx, userID)

	var r0 []domain.RedemptionRecord
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.RedemptionRecord)
	}
	return r0, ret.Error(1)
}

// NewStore creates a new instance of Store. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *Store {
	m := &Store{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
