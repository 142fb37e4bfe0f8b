package service

import (
	"context"

	"loyalty-storefront/agg-svc/internal/domain"
	"loyalty-storefront/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	MarkSeen(ctx context.Context, eventID string) (bool, error)
	ForgetSeen(ctx context.Context, eventID string) error
	InvalidateDashboard(ctx context.Context) error
	RecordRedemption(ctx context.Context, rewardID int64, rewardName string) error
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Process(ctx context.Context, event domain.Event) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
