package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// StoreInterface is a mock type for the service.StoreInterface type.
type StoreInterface struct {
	mock.Mock
}

func (_m *StoreInterface) MarkSeen(ctx context.Context, eventID string) (bool, error) {
	ret := _m.Called(ctx, eventID)
	return ret.Bool(0), ret.Error(1)
}

func (_m *StoreInterface) ForgetSeen(ctx context.Context, eventID string) error {
	ret := _m.Called(ctx, eventID)
	return ret.Error(0)
}

func (_m *StoreInterface) InvalidateDashboard(ctx context.Context) error {
	ret := _m.Called(ctx)
	return ret.Error(0)
}

func (_m *StoreInterface) RecordRedemption(ctx context.Context, rewardID int64, rewardName string) error {
	ret := _m.Called(ctx, rewardID, rewardName)
	return ret.Error(0)
}

// NewStoreInterface creates a new instance of StoreInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewStoreInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *StoreInterface {
	m := &StoreInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
