package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"loyalty-storefront/agg-svc/internal/domain"
	"loyalty-storefront/agg-svc/internal/mocks"
	"loyalty-storefront/agg-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestConsumer_Process(t *testing.T) {
	tests := []struct {
		name           string
		event          domain.Event
		setupMockStore func(*mocks.StoreInterface)
		expectedError  string
	}{
		{
			name:  "order_completed_invalidates_dashboard",
			event: domain.Event{ID: "e1", Type: domain.EventOrderCompleted, OrderID: 4, Amount: 295},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("MarkSeen", mock.Anything, "e1").Return(true, nil).Once()
				mockStore.On("InvalidateDashboard", mock.Anything).Return(nil).Once()
			},
		},
		{
			name:  "reward_redeemed_updates_ranking",
			event: domain.Event{ID: "e2", Type: domain.EventRewardRedeemed, RewardID: 3, RewardName: "Garland"},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("MarkSeen", mock.Anything, "e2").Return(true, nil).Once()
				mockStore.On("RecordRedemption", mock.Anything, int64(3), "Garland").Return(nil).Once()
				mockStore.On("InvalidateDashboard", mock.Anything).Return(nil).Once()
			},
		},
		{
			name:  "duplicate_delivery_skipped",
			event: domain.Event{ID: "e3", Type: domain.EventRewardRedeemed, RewardID: 3},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("MarkSeen", mock.Anything, "e3").Return(false, nil).Once()
			},
		},
		{
			name:           "unknown_type_ignored",
			event:          domain.Event{ID: "e4", Type: "product_viewed"},
			setupMockStore: func(mockStore *mocks.StoreInterface) {},
		},
		{
			name:  "redis_error",
			event: domain.Event{ID: "e5", Type: domain.EventOrderCreated, OrderID: 9},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("MarkSeen", mock.Anything, "e5").Return(false, errors.New("redis error")).Once()
			},
			expectedError: "redis error",
		},
		{
			name:  "failed_write_releases_marker",
			event: domain.Event{ID: "e6", Type: domain.EventRewardRedeemed, RewardID: 3},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("MarkSeen", mock.Anything, "e6").Return(true, nil).Once()
				mockStore.On("RecordRedemption", mock.Anything, int64(3), "").Return(errors.New("redis timeout")).Once()
				mockStore.On("ForgetSeen", mock.Anything, "e6").Return(nil).Once()
			},
			expectedError: "redis timeout",
		},
		{
			name:  "failed_invalidation_releases_marker",
			event: domain.Event{ID: "e7", Type: domain.EventOrderCompleted, OrderID: 4},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("MarkSeen", mock.Anything, "e7").Return(true, nil).Once()
				mockStore.On("InvalidateDashboard", mock.Anything).Return(errors.New("redis timeout")).Once()
				mockStore.On("ForgetSeen", mock.Anything, "e7").Return(errors.New("redis down")).Once()
			},
			expectedError: "redis timeout",
		},
		{
			name:  "event_without_id_still_applied",
			event: domain.Event{Type: domain.EventOrderStatusChanged, OrderID: 9, Status: "confirmed"},
			setupMockStore: func(mockStore *mocks.StoreInterface) {
				mockStore.On("InvalidateDashboard", mock.Anything).Return(nil).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockStore := mocks.NewStoreInterface(t)
			testCase.setupMockStore(mockStore)

			consumer := &service.Consumer{Store: mockStore}
			err := consumer.Process(context.Background(), testCase.event)
			if testCase.expectedError != "" {
				assert.EqualError(t, err, testCase.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConsumer_RedeliveryAfterFailureIsApplied(t *testing.T) {
	ctx := context.Background()
	store := mocks.NewStoreInterface(t)
	event := domain.Event{ID: "e1", Type: domain.EventRewardRedeemed, RewardID: 3, RewardName: "Garland"}

	store.On("MarkSeen", mock.Anything, "e1").Return(true, nil).Twice()
	store.On("RecordRedemption", mock.Anything, int64(3), "Garland").Return(errors.New("redis timeout")).Once()
	store.On("ForgetSeen", mock.Anything, "e1").Return(nil).Once()
	store.On("RecordRedemption", mock.Anything, int64(3), "Garland").Return(nil).Once()
	store.On("InvalidateDashboard", mock.Anything).Return(nil).Once()

	consumer := service.NewConsumer(nil, store)
	assert.EqualError(t, consumer.Process(ctx, event), "redis timeout")
	assert.NoError(t, consumer.Process(ctx, event))
	store.AssertNumberOfCalls(t, "RecordRedemption", 2)
}

func offsetIs(offset int64) interface{} {
	return mock.MatchedBy(func(msgs []kafka.Message) bool {
		return len(msgs) == 1 && msgs[0].Offset == offset
	})
}

func TestConsumer_StartStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	reader := mocks.NewMessageReader(t)
	store := mocks.NewStoreInterface(t)

	reader.On("FetchMessage", mock.Anything).
		Return(kafka.Message{Offset: 1, Value: []byte(`not json`)}, nil).Once()
	reader.On("FetchMessage", mock.Anything).
		Return(kafka.Message{Offset: 2, Value: []byte(`{"id":"e1","type":"order_completed","order_id":4}`)}, nil).Once()
	reader.On("FetchMessage", mock.Anything).
		Return(func(ctx context.Context) (kafka.Message, error) {
			cancel()
			return kafka.Message{}, ctx.Err()
		}).Once()
	reader.On("CommitMessages", mock.Anything, offsetIs(1)).Return(nil).Once()
	reader.On("CommitMessages", mock.Anything, offsetIs(2)).Return(nil).Once()
	store.On("MarkSeen", mock.Anything, "e1").Return(true, nil).Once()
	store.On("InvalidateDashboard", mock.Anything).Return(nil).Once()

	service.NewConsumer(reader, store).Start(ctx)
}

func TestConsumer_StartRetriesBeforeCommit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	reader := mocks.NewMessageReader(t)
	store := mocks.NewStoreInterface(t)

	reader.On("FetchMessage", mock.Anything).
		Return(kafka.Message{Offset: 7, Value: []byte(`{"id":"e9","type":"reward_redeemed","reward_id":3}`)}, nil).Once()
	reader.On("FetchMessage", mock.Anything).
		Return(func(ctx context.Context) (kafka.Message, error) {
			cancel()
			return kafka.Message{}, ctx.Err()
		}).Once()
	store.On("MarkSeen", mock.Anything, "e9").Return(true, nil).Twice()
	store.On("RecordRedemption", mock.Anything, int64(3), "").Return(errors.New("redis timeout")).Once()
	store.On("ForgetSeen", mock.Anything, "e9").Return(nil).Once()
	store.On("RecordRedemption", mock.Anything, int64(3), "").Return(nil).Once()
	store.On("InvalidateDashboard", mock.Anything).Return(nil).Once()
	reader.On("CommitMessages", mock.Anything, offsetIs(7)).Return(nil).Once()

	consumer := service.NewConsumer(reader, store)
	consumer.RetryDelay = time.Millisecond
	consumer.Start(ctx)
}

func TestConsumer_StartLeavesOffsetWhenCancelledMidRetry(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	reader := mocks.NewMessageReader(t)
	store := mocks.NewStoreInterface(t)

	reader.On("FetchMessage", mock.Anything).
		Return(kafka.Message{Offset: 3, Value: []byte(`{"id":"e2","type":"order_completed","order_id":1}`)}, nil).Once()
	store.On("MarkSeen", mock.Anything, "e2").Return(true, nil).Once()
	store.On("InvalidateDashboard", mock.Anything).Return(errors.New("redis down")).Run(func(mock.Arguments) {
		cancel()
	}).Once()
	store.On("ForgetSeen", mock.Anything, "e2").Return(nil).Once()

	consumer := service.NewConsumer(reader, store)
	consumer.RetryDelay = time.Hour
	consumer.Start(ctx)

	reader.AssertNotCalled(t, "CommitMessages", mock.Anything, mock.Anything)
}
