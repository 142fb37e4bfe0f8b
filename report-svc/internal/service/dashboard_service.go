package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"loyalty-storefront/report-svc/internal/domain"
)

const topRewardsLimit = 5

type DashboardService struct {
	repo  RevenueRepository
	cache DashboardCache
	loc   *time.Location
	now   func() time.Time
}

func NewDashboardService(repo RevenueRepository, cache DashboardCache, loc *time.Location, now func() time.Time) *DashboardService {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &DashboardService{repo: repo, cache: cache, loc: loc, now: now}
}

// Dashboard serves the cached summary when present and rebuilds it otherwise.
// Cache failures only cost a rebuild.
func (s *DashboardService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	cached, err := s.cache.Dashboard(ctx)
	if err != nil {
		log.Printf("WARNING: dashboard cache read failed: %v", err)
	}
	if cached != nil {
		return cached, nil
	}
	return s.Refresh(ctx)
}

// Refresh rebuilds the summary from the database and re-primes the cache.
func (s *DashboardService) Refresh(ctx context.Context) (*domain.Dashboard, error) {
	now := s.now()
	windows := domain.WindowsAt(now, s.loc)

	var revenue domain.RevenueSummary
	for _, window := range []struct {
		since time.Time
		dest  *int64
	}{
		{windows.Week, &revenue.Week},
		{windows.Month, &revenue.Month},
		{windows.Year, &revenue.Year},
		{time.Time{}, &revenue.AllTime},
	} {
		total, err := s.repo.RevenueSince(ctx, window.since)
		if err != nil {
			return nil, fmt.Errorf("revenue since %s: %w", window.since.Format(time.DateOnly), err)
		}
		*window.dest = total
	}

	monthly, err := s.repo.MonthlyRevenue(ctx, windows.SeriesStart, s.loc)
	if err != nil {
		return nil, fmt.Errorf("monthly revenue: %w", err)
	}
	counts, err := s.repo.StatusCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("status counts: %w", err)
	}

	dashboard := &domain.Dashboard{
		Revenue:      revenue,
		Monthly:      domain.FillSeries(windows.SeriesStart, monthly),
		StatusCounts: counts,
		TopRewards:   s.topRewards(ctx),
		GeneratedAt:  now,
	}

	if err := s.cache.StoreDashboard(ctx, dashboard); err != nil {
		log.Printf("WARNING: Failed to cache dashboard: %v", err)
	}
	log.Printf("[report-svc] dashboard rebuilt: all_time=%d month=%d", revenue.AllTime, revenue.Month)
	return dashboard, nil
}

// topRewards prefers the Redis ranking and falls back to counting redemptions.
func (s *DashboardService) topRewards(ctx context.Context) []domain.TopReward {
	top, err := s.cache.TopRewards(ctx, topRewardsLimit)
	if err == nil && len(top) > 0 {
		return top
	}
	if err != nil {
		log.Printf("WARNING: reward ranking unavailable: %v", err)
	}

	top, err = s.repo.TopRewards(ctx, topRewardsLimit)
	if err != nil {
		log.Printf("WARNING: Failed to load top rewards: %v", err)
		return []domain.TopReward{}
	}
	return top
}
