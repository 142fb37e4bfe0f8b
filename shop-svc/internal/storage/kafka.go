package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"loyalty-storefront/shop-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer messageWriter
}

func NewKafkaPublisher(writer messageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// Publish keys order events by order id so one order's events stay in sequence.
func (p *KafkaPublisher) Publish(ctx context.Context, msg domain.KafkaMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	key := "order:" + strconv.FormatInt(msg.OrderID, 10)
	if msg.Type == domain.EventRewardRedeemed {
		key = "reward:" + strconv.FormatInt(msg.RewardID, 10)
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
	})
}
