package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"loyalty-storefront/config"
	"loyalty-storefront/report-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

// Dashboard returns nil without error on a cache miss.
func (c *RedisCache) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	raw, err := c.Client.Get(ctx, config.DashboardCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var dashboard domain.Dashboard
	if err := json.Unmarshal(raw, &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

func (c *RedisCache) StoreDashboard(ctx context.Context, dashboard *domain.Dashboard) error {
	payload, err := json.Marshal(dashboard)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, config.DashboardCacheKey, payload, c.TTL).Err()
}

// TopRewards reads the popularity ranking maintained by agg-svc.
func (c *RedisCache) TopRewards(ctx context.Context, limit int) ([]domain.TopReward, error) {
	ranked, err := c.Client.ZRevRangeWithScores(ctx, config.RewardPopularityKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return nil, nil
	}

	members := make([]string, 0, len(ranked))
	for _, z := range ranked {
		members = append(members, z.Member.(string))
	}
	names, err := c.Client.HMGet(ctx, config.RewardNamesKey, members...).Result()
	if err != nil {
		return nil, err
	}

	top := make([]domain.TopReward, 0, len(ranked))
	for i, z := range ranked {
		id, err := strconv.ParseInt(members[i], 10, 64)
		if err != nil {
			continue
		}
		name, _ := names[i].(string)
		top = append(top, domain.TopReward{RewardID: id, Name: name, Redemptions: int64(z.Score)})
	}
	return top, nil
}
