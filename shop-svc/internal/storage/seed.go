package storage

import (
	"context"
	"log"

	"loyalty-storefront/shop-svc/internal/domain"
)

var DefaultProducts = []domain.Product{
	{Name: "Jasmine garland, medium", Price: 120, Category: "garland"},
	{Name: "Plastic marigold garland", Price: 45, Category: "garland"},
	{Name: "Drinking water 350ml, pack of 12", Price: 55, Category: "water"},
	{Name: "Panchamrit water 100ml", Price: 180, Category: "water"},
	{Name: "Incense and candle set, 5 sets", Price: 90, Category: "offering"},
	{Name: "Mixed fruit basket", Price: 150, Category: "other"},
}

var DefaultRewards = []domain.Reward{
	{Name: "Free marigold garland", Description: "One plastic marigold garland", PointsRequired: 5, Stock: 50, Active: true},
	{Name: "Incense set voucher", Description: "One incense and candle set", PointsRequired: 10, Stock: 20, Active: true},
	{Name: "Fruit basket voucher", Description: "One mixed fruit basket", PointsRequired: 15, Stock: 10, Active: true},
}

type seedTarget interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, p *domain.Product) error
	ListRewards(ctx context.Context, activeOnly bool) ([]domain.Reward, error)
	CreateReward(ctx context.Context, rw *domain.Reward) error
}

// Seed fills an empty catalog and reward list with sample data.
func Seed(ctx context.Context, store seedTarget) error {
	products, err := store.ListProducts(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		for _, p := range DefaultProducts {
			p := p
			if err := store.CreateProduct(ctx, &p); err != nil {
				return err
			}
		}
		log.Printf("[shop-svc] seeded %d products", len(DefaultProducts))
	}

	rewards, err := store.ListRewards(ctx, false)
	if err != nil {
		return err
	}
	if len(rewards) == 0 {
		for _, rw := range DefaultRewards {
			rw := rw
			if err := store.CreateReward(ctx, &rw); err != nil {
				return err
			}
		}
		log.Printf("[shop-svc] seeded %d rewards", len(DefaultRewards))
	}
	return nil
}
