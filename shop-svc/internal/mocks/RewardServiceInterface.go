package mocks

import (
	"context"

	"loyalty-storefront/shop-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// RewardServiceInterface is a mock type for the service.RewardServiceInterface type.
type RewardServiceInterface struct {
	mock.Mock
}

func (_m *RewardServiceInterface) ListActive(ctx context.Context) ([]domain.Reward, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Reward
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Reward)
	}
	return r0, ret.Error(1)
}

func (_m *RewardServiceInterface) Overview(ctx context.Context, principal domain.Principal) (*domain.RewardsOverview, error) {
	ret := _m.Called(ctx, principal)

	var r0 *domain.RewardsOverview
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.RewardsOverview)
	}
	return r0, ret.Error(1)
}

func (_m *RewardServiceInterface) Redeem(ctx context.Context, principal domain.Principal, rewardID int64) (*domain.RedemptionRecord, error) {
	ret := _m.Called(ctx, principal, rewardID)

	var r0 *domain.RedemptionRecord
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.RedemptionRecord)
	}
	return r0, ret.Error(1)
}

func (_m *RewardServiceInterface) Redemptions(ctx context.Context, principal domain.Principal) ([]domain.RedemptionRecord, error) {
	ret := _m.Called(ctx, principal)

	var r0 []domain.RedemptionRecord
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.RedemptionRecord)
	}
	return r0, ret.Error(1)
}

func (_m *RewardServiceInterface) ListAll(ctx context.Context, principal domain.Principal) ([]domain.Reward, error) {
	ret := _m.Called(ctx, principal)

	var r0 []domain.Reward
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Reward)
	}
	return r0, ret.Error(1)
}

func (_m *RewardServiceInterface) Create(ctx context.Context, principal domain.Principal, reward *domain.Reward) error {
	ret := _m.Called(ctx, principal, reward)
	return ret.Error(0)
}

func (_m *RewardServiceInterface) Update(ctx context.Context, principal domain.Principal, reward *domain.Reward) error {
	ret := _m.Called(ctx, principal, reward)
	return ret.Error(0)
}

// NewRewardServiceInterface creates a new instance of RewardServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewRewardServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *RewardServiceInterface {
	m := &RewardServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
