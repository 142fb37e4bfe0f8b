package service

import (
	"context"
	"fmt"
	"strings"

	"loyalty-storefront/shop-svc/internal/domain"
)

const DefaultCategory = "other"

// Categories accepted by the catalog; anything else is filed under DefaultCategory.
var Categories = map[string]bool{
	"garland":  true,
	"offering": true,
	"water":    true,
	"other":    true,
}

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.ListProducts(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, principal domain.Principal, product *domain.Product) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}
	if err := normalizeProduct(product); err != nil {
		return err
	}
	return s.repo.CreateProduct(ctx, product)
}

// Update never touches existing orders: line items carry their own snapshot.
func (s *CatalogService) Update(ctx context.Context, principal domain.Principal, product *domain.Product) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}
	if err := normalizeProduct(product); err != nil {
		return err
	}
	return s.repo.UpdateProduct(ctx, product)
}

func (s *CatalogService) Delete(ctx context.Context, principal domain.Principal, id int64) error {
	if err := requireAdmin(principal); err != nil {
		return err
	}
	return s.repo.DeleteProduct(ctx, id)
}

func normalizeProduct(product *domain.Product) error {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" {
		return fmt.Errorf("%w: product name is required", domain.ErrValidation)
	}
	if product.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", domain.ErrValidation)
	}
	product.Category = strings.ToLower(strings.TrimSpace(product.Category))
	if !Categories[product.Category] {
		product.Category = DefaultCategory
	}
	return nil
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
