package storage

import (
	"context"
	"testing"
	"time"

	"loyalty-storefront/config"
	"loyalty-storefront/report-svc/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCache(client, time.Minute), mr
}

func TestRedisCache_Dashboard(t *testing.T) {
	ctx := context.Background()
	cache, mr := setupCache(t)

	missing, err := cache.Dashboard(ctx)
	require.NoError(t, err)
	assert.Nil(t, missing)

	dashboard := &domain.Dashboard{
		Revenue: domain.RevenueSummary{Week: 1, Month: 2, Year: 3, AllTime: 4},
		Monthly: []domain.MonthlyRevenue{{Month: "2026-03", Revenue: 2}},
	}
	require.NoError(t, cache.StoreDashboard(ctx, dashboard))
	assert.Equal(t, time.Minute, mr.TTL(config.DashboardCacheKey))

	cached, err := cache.Dashboard(ctx)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, dashboard.Revenue, cached.Revenue)

	mr.FastForward(2 * time.Minute)
	expired, err := cache.Dashboard(ctx)
	require.NoError(t, err)
	assert.Nil(t, expired)
}

func TestRedisCache_TopRewards(t *testing.T) {
	ctx := context.Background()
	cache, mr := setupCache(t)

	empty, err := cache.TopRewards(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, empty)

	mr.ZAdd(config.RewardPopularityKey, 3, "1")
	mr.ZAdd(config.RewardPopularityKey, 7, "2")
	mr.HSet(config.RewardNamesKey, "1", "Garland", "2", "Incense")

	top, err := cache.TopRewards(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []domain.TopReward{
		{RewardID: 2, Name: "Incense", Redemptions: 7},
		{RewardID: 1, Name: "Garland", Redemptions: 3},
	}, top)

	limited, err := cache.TopRewards(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
