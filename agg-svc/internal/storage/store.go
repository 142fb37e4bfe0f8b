package storage

import (
	"context"
	"strconv"
	"time"

	"loyalty-storefront/config"

	"github.com/redis/go-redis/v9"
)

const seenKeyPrefix = "event:seen:"

type Store struct {
	rdb     *redis.Client
	seenTTL time.Duration
}

func NewStore(rdb *redis.Client, seenTTL time.Duration) *Store {
	return &Store{rdb: rdb, seenTTL: seenTTL}
}

// MarkSeen records eventID and reports whether this is its first delivery.
func (s *Store) MarkSeen(ctx context.Context, eventID string) (bool, error) {
	return s.rdb.SetNX(ctx, seenKeyPrefix+eventID, 1, s.seenTTL).Result()
}

// ForgetSeen releases the marker so a redelivered event is applied again.
func (s *Store) ForgetSeen(ctx context.Context, eventID string) error {
	return s.rdb.Del(ctx, seenKeyPrefix+eventID).Err()
}

func (s *Store) InvalidateDashboard(ctx context.Context) error {
	return s.rdb.Del(ctx, config.DashboardCacheKey).Err()
}

func (s *Store) RecordRedemption(ctx context.Context, rewardID int64, rewardName string) error {
	member := strconv.FormatInt(rewardID, 10)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZIncrBy(ctx, config.RewardPopularityKey, 1, member)
		if rewardName != "" {
			pipe.HSet(ctx, config.RewardNamesKey, member, rewardName)
		}
		return nil
	})
	return err
}
