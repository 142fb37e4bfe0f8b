package service

import (
	"context"
	"time"

	"loyalty-storefront/report-svc/internal/domain"
	"loyalty-storefront/report-svc/internal/storage"
)

type RevenueRepository interface {
	RevenueSince(ctx context.Context, since time.Time) (int64, error)
	MonthlyRevenue(ctx context.Context, since time.Time, loc *time.Location) (map[string]int64, error)
	StatusCounts(ctx context.Context) (map[string]int, error)
	TopRewards(ctx context.Context, limit int) ([]domain.TopReward, error)
}

type DashboardCache interface {
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
	StoreDashboard(ctx context.Context, dashboard *domain.Dashboard) error
	TopRewards(ctx context.Context, limit int) ([]domain.TopReward, error)
}

type DashboardInterface interface {
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
	Refresh(ctx context.Context) (*domain.Dashboard, error)
}

var (
	_ RevenueRepository  = (*storage.PostgresRepository)(nil)
	_ DashboardCache     = (*storage.RedisCache)(nil)
	_ DashboardInterface = (*DashboardService)(nil)
)
