package mocks

import (
	"context"

	"loyalty-storefront/shop-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Tx is a mock type for the service.Tx type.
type Tx struct {
	mock.Mock
}

func (_m *Tx) ProductsByID(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	ret := _m.Called(ctx, ids)

	var r0 map[int64]domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[int64]domain.Product)
	}
	return r0, ret.Error(1)
}

func (_m *Tx) InsertOrder(ctx context.Context, order *domain.Order) error {
	ret := _m.Called(ctx, order)
	return ret.Error(0)
}

func (_m *Tx) LockOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	ret := _m.Called(ctx, orderID)

	var r0 *domain.Order
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Order)
	}
	return r0, ret.Error(1)
}

func (_m *Tx) SaveOrderStatus(ctx context.Context, order *domain.Order) error {
	ret := _m.Called(ctx, order)
	return ret.Error(0)
}

func (_m *Tx) LockPointsAccount(ctx context.Context, userID int64) (*domain.PointsAccount, error) {
	ret := _m.Called(ctx, userID)

	var r0 *domain.PointsAccount
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.PointsAccount)
	}
	return r0, ret.Error(1)
}

func (_m *Tx) SavePointsAccount(ctx context.Context, account *domain.PointsAccount) error {
	ret := _m.Called(ctx, account)
	return ret.Error(0)
}

func (_m *Tx) LockReward(ctx context.Context, rewardID int64) (*domain.Reward, error) {
	ret := _m.Called(ctx, rewardID)

	var r0 *domain.Reward
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Reward)
	}
	return r0, ret.Error(1)
}

func (_m *Tx) SaveRewardStock(ctx context.Context, rewardID int64, stock int) error {
	ret := _m.Called(ctx, rewardID, stock)
	return ret.Error(0)
}

func (_m *Tx) InsertRedemption(ctx context.Context, record *domain.RedemptionRecord) error {
	ret := _m.Called(ctx, record)
	return ret.Error(0)
}

// NewTx creates a new instance of Tx. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewTx(t interface {
	mock.TestingT
	Cleanup(func())
}) *Tx {
	m := &Tx{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
