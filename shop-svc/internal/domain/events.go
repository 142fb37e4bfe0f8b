package domain

import "time"

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
	EventOrderCompleted     = "order_completed"
	EventRewardRedeemed     = "reward_redeemed"
)

// KafkaMessage is published after a ledger transaction commits.
type KafkaMessage struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"`
	OrderID    int64       `json:"order_id,omitempty"`
	UserID     *int64      `json:"user_id,omitempty"`
	Status     OrderStatus `json:"status,omitempty"`
	Amount     int64       `json:"amount,omitempty"`
	Points     int64       `json:"points,omitempty"`
	RewardID   int64       `json:"reward_id,omitempty"`
	RewardName string      `json:"reward_name,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
}
