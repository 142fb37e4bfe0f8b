package mocks

import (
	"context"

	"loyalty-storefront/shop-svc/internal/domain"

	"github.com/stretchr/testify/mock"
)

// CatalogServiceInterface is a mock type for the service.CatalogServiceInterface type.
type CatalogServiceInterface struct {
	mock.Mock
}

func (_m *CatalogServiceInterface) List(ctx context.Context) ([]domain.Product, error) {
	ret := _m.Called(ctx)

	var r0 []domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.Product)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) Get(ctx context.Context, id int64) (*domain.Product, error) {
	ret := _m.Called(ctx, id)

	var r0 *domain.Product
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*domain.Product)
	}
	return r0, ret.Error(1)
}

func (_m *CatalogServiceInterface) Create(ctx context.Context, principal domain.Principal, product *domain.Product) error {
	ret := _m.Called(ctx, principal, product)
	return ret.Error(0)
}

func (_m *CatalogServiceInterface) Update(ctx context.Context, principal domain.Principal, product *domain.Product) error {
	ret := _m.Called(ctx, principal, product)
	return ret.Error(0)
}

func (_m *CatalogServiceInterface) Delete(ctx context.Context, principal domain.Principal, id int64) error {
	ret := _m.Called(ctx, principal, id)
	return ret.Error(0)
}

// NewCatalogServiceInterface creates a new instance of CatalogServiceInterface. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewCatalogServiceInterface(t interface {
	mock.TestingT
	Cleanup(func())
}) *CatalogServiceInterface {
	m := &CatalogServiceInterface{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
