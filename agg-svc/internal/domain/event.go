package domain

import "time"

const (
	EventOrderCreated       = "order_created"
	EventOrderStatusChanged = "order_status_changed"
	EventOrderCompleted     = "order_completed"
	EventRewardRedeemed     = "reward_redeemed"
)

// Event is the subset of the shop's event payload the aggregator reads.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OrderID    int64     `json:"order_id,omitempty"`
	Status     string    `json:"status,omitempty"`
	Amount     int64     `json:"amount,omitempty"`
	Points     int64     `json:"points,omitempty"`
	RewardID   int64     `json:"reward_id,omitempty"`
	RewardName string    `json:"reward_name,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Known reports whether the event type is one the shop publishes. Every known
// event can change some dashboard figure.
func (e Event) Known() bool {
	switch e.Type {
	case EventOrderCreated, EventOrderStatusChanged, EventOrderCompleted, EventRewardRedeemed:
		return true
	}
	return false
}
