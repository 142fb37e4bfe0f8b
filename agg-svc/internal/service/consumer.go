package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"loyalty-storefront/agg-svc/internal/domain"
)

const defaultRetryDelay = time.Second

type Consumer struct {
	Reader     MessageReader
	Store      StoreInterface
	RetryDelay time.Duration
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader:     reader,
		Store:      store,
		RetryDelay: defaultRetryDelay,
	}
}

// Start reads events until ctx is cancelled. An offset is committed only after
// its event has been applied; malformed messages are logged, committed and skipped.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Aggregation Service consumer...")
	for {
		message, err := c.Reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("[agg-svc] consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message at offset %d: %v", message.Offset, err)
		} else if !c.apply(ctx, event) {
			log.Println("[agg-svc] consumer stopped")
			return
		}

		if err := c.Reader.CommitMessages(ctx, message); err != nil {
			if ctx.Err() != nil {
				log.Println("[agg-svc] consumer stopped")
				return
			}
			log.Printf("ERROR: commit offset %d: %v", message.Offset, err)
		}
	}
}

// apply retries Process until it succeeds. It returns false when ctx ends first.
func (c *Consumer) apply(ctx context.Context, event domain.Event) bool {
	for {
		err := c.Process(ctx, event)
		if err == nil {
			return true
		}
		log.Printf("ERROR: processing %s event %s: %v", event.Type, event.ID, err)

		select {
		case <-ctx.Done():
			return false
		case <-time.After(c.RetryDelay):
		}
	}
}

// Process applies one event at most once per event id. The id is claimed
// before the writes and released again if any write fails.
func (c *Consumer) Process(ctx context.Context, event domain.Event) error {
	if !event.Known() {
		return nil
	}
	if event.ID != "" {
		first, err := c.Store.MarkSeen(ctx, event.ID)
		if err != nil {
			return err
		}
		if !first {
			log.Printf("[agg-svc] skipping duplicate event %s", event.ID)
			return nil
		}
	}

	if err := c.applyWrites(ctx, event); err != nil {
		if event.ID != "" {
			if ferr := c.Store.ForgetSeen(ctx, event.ID); ferr != nil {
				log.Printf("WARNING: release marker for event %s: %v", event.ID, ferr)
			}
		}
		return err
	}

	log.Printf("[agg-svc] processed %s (order=%d reward=%d)", event.Type, event.OrderID, event.RewardID)
	return nil
}

func (c *Consumer) applyWrites(ctx context.Context, event domain.Event) error {
	if event.Type == domain.EventRewardRedeemed {
		if err := c.Store.RecordRedemption(ctx, event.RewardID, event.RewardName); err != nil {
			return err
		}
	}
	return c.Store.InvalidateDashboard(ctx)
}
