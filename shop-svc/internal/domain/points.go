package domain

import (
	"fmt"
	"time"
)

// PointsDivisor is the amount of money spent per point earned.
const PointsDivisor int64 = 10

// PointsFor returns the points earned for amountSpent, rounded down.
func PointsFor(amountSpent int64) int64 {
	if amountSpent <= 0 {
		return 0
	}
	return amountSpent / PointsDivisor
}

// PointsAccount is the per-user ledger row. Earned minus redeemed always
// equals available; pending holds points of confirmed but not yet completed orders.
type PointsAccount struct {
	UserID      int64     `json:"user_id"`
	Available   int64     `json:"available_points"`
	Earned      int64     `json:"earned_points"`
	Redeemed    int64     `json:"redeemed_points"`
	Pending     int64     `json:"pending_points"`
	LastUpdated time.Time `json:"last_updated"`
}

type Balance struct {
	Available int64 `json:"available"`
	Earned    int64 `json:"earned"`
	Redeemed  int64 `json:"redeemed"`
	Pending   int64 `json:"pending"`
}

func (a *PointsAccount) Balance() Balance {
	if a == nil {
		return Balance{}
	}
	return Balance{
		Available: a.Available,
		Earned:    a.Earned,
		Redeemed:  a.Redeemed,
		Pending:   a.Pending,
	}
}

func (a *PointsAccount) Hold(points int64, now time.Time) {
	if points <= 0 {
		return
	}
	a.Pending += points
	a.LastUpdated = now
}

// Accrue credits points and releases up to the same amount from pending.
func (a *PointsAccount) Accrue(points int64, now time.Time) {
	if points <= 0 {
		return
	}
	a.Available += points
	a.Earned += points
	a.Pending -= min(a.Pending, points)
	a.LastUpdated = now
}

func (a *PointsAccount) Debit(points int64, now time.Time) error {
	if points < 0 {
		return fmt.Errorf("%w: negative debit %d", ErrValidation, points)
	}
	if a.Available < points {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientPoints, a.Available, points)
	}
	a.Available -= points
	a.Redeemed += points
	a.LastUpdated = now
	return nil
}
