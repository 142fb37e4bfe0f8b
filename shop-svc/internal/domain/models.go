package domain

import (
	"fmt"
	"math"
	"time"
)

// MaxLineQuantity bounds a single checkout line; it fits the INT quantity column.
const MaxLineQuantity = 10000

// Principal is the caller as established by the upstream auth collaborator.
// A nil UserID means an anonymous visitor.
type Principal struct {
	UserID *int64 `json:"user_id,omitempty"`
	Admin  bool   `json:"admin"`
}

func (p Principal) Authenticated() bool {
	return p.UserID != nil
}

// Owns reports whether the principal placed an order with the given user reference.
func (p Principal) Owns(userID *int64) bool {
	return p.UserID != nil && userID != nil && *p.UserID == *userID
}

type Product struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

type Order struct {
	ID            int64       `json:"id"`
	CustomerName  string      `json:"customer_name"`
	Phone         string      `json:"phone"`
	UserID        *int64      `json:"user_id,omitempty"`
	Status        OrderStatus `json:"status"`
	Total         int64       `json:"total"`
	PointsAccrued int64       `json:"points_accrued"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     *time.Time  `json:"updated_at,omitempty"`
	CompletedAt   *time.Time  `json:"completed_at,omitempty"`
	Items         []OrderItem `json:"items"`
}

type OrderItem struct {
	ProductID   *int64 `json:"product_id,omitempty"`
	ProductName string `json:"product_name"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
}

func (i OrderItem) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

// CheckedTotal is ItemsTotal with overflow detection on every line and on the running sum.
func (o *Order) CheckedTotal() (int64, error) {
	var total int64
	for _, item := range o.Items {
		if item.Price < 0 || item.Quantity <= 0 {
			return 0, fmt.Errorf("%w: invalid line %q", ErrValidation, item.ProductName)
		}
		if item.Price > math.MaxInt64/int64(item.Quantity) {
			return 0, fmt.Errorf("%w: line %q exceeds the order limit", ErrValidation, item.ProductName)
		}
		subtotal := item.Subtotal()
		if total > math.MaxInt64-subtotal {
			return 0, fmt.Errorf("%w: order total exceeds the limit", ErrValidation)
		}
		total += subtotal
	}
	return total, nil
}

// ItemsTotal is the authoritative order total; the stored Total column is only a cache of it.
func (o *Order) ItemsTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Subtotal()
	}
	return total
}

type LineSelection struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type CheckoutRequest struct {
	CustomerName string          `json:"customer_name"`
	Phone        string          `json:"phone"`
	Items        []LineSelection `json:"items"`
}

type OrderFilter struct {
	UserID *int64
	Status OrderStatus
}

// OrderBoard is the admin fulfillment view.
type OrderBoard struct {
	Orders       []Order             `json:"orders"`
	StatusCounts map[OrderStatus]int `json:"status_counts"`
	Revenue      int64               `json:"completed_revenue"`
}

type Reward struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	PointsRequired int64     `json:"points_required"`
	Stock          int       `json:"stock"`
	Active         bool      `json:"active"`
	ImageURL       string    `json:"image_url"`
	CreatedAt      time.Time `json:"created_at"`
}

type RedemptionRecord struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	RewardID   int64     `json:"reward_id"`
	RewardName string    `json:"reward_name"`
	PointsUsed int64     `json:"points_used"`
	Code       string    `json:"code"`
	RedeemedAt time.Time `json:"redeemed_at"`
}

// RewardsOverview is what a signed-in customer sees on the rewards page.
type RewardsOverview struct {
	Rewards []Reward `json:"rewards"`
	Balance Balance  `json:"balance"`
}
