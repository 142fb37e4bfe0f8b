package domain

import "fmt"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusCompleted OrderStatus = "completed"
)

// Statuses lists the fulfillment pipeline in order.
var Statuses = []OrderStatus{StatusPending, StatusConfirmed, StatusPreparing, StatusCompleted}

// successor is the whole transition table: each status has at most one next stage.
var successor = map[OrderStatus]OrderStatus{
	StatusPending:   StatusConfirmed,
	StatusConfirmed: StatusPreparing,
	StatusPreparing: StatusCompleted,
}

func ParseStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: unknown status %q", ErrValidation, s)
	}
	return status, nil
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusCompleted:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted
}

// Next returns the single legal successor of s.
func (s OrderStatus) Next() (OrderStatus, bool) {
	next, ok := successor[s]
	return next, ok
}

func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	next, ok := s.Next()
	return ok && next == target
}

// CheckTransition returns an error wrapping ErrInvalidTransition unless target
// is the successor of from.
func CheckTransition(from, target OrderStatus) error {
	if from.CanTransitionTo(target) {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, target)
}
