package service

import (
	"context"
	"time"

	"loyalty-storefront/shop-svc/internal/domain"
)

// PointsLedger owns every mutation of points accounts. Mutating methods run
// inside the caller's transaction so they commit or roll back with it.
type PointsLedger struct {
	repo PointsRepository
	now  Clock
}

func NewPointsLedger(repo PointsRepository, now Clock) *PointsLedger {
	if now == nil {
		now = time.Now
	}
	return &PointsLedger{repo: repo, now: now}
}

// Accrue grants floor(amountSpent/10) points. Anonymous orders earn nothing.
func (l *PointsLedger) Accrue(ctx context.Context, tx Tx, userID *int64, amountSpent int64) (int64, error) {
	granted := domain.PointsFor(amountSpent)
	if userID == nil || granted == 0 {
		return 0, nil
	}
	account, err := tx.LockPointsAccount(ctx, *userID)
	if err != nil {
		return 0, err
	}
	account.Accrue(granted, l.now())
	if err := tx.SavePointsAccount(ctx, account); err != nil {
		return 0, err
	}
	return granted, nil
}

// Hold records points of a confirmed order as pending until it completes.
func (l *PointsLedger) Hold(ctx context.Context, tx Tx, userID *int64, amountSpent int64) (int64, error) {
	held := domain.PointsFor(amountSpent)
	if userID == nil || held == 0 {
		return 0, nil
	}
	account, err := tx.LockPointsAccount(ctx, *userID)
	if err != nil {
		return 0, err
	}
	account.Hold(held, l.now())
	if err := tx.SavePointsAccount(ctx, account); err != nil {
		return 0, err
	}
	return held, nil
}

func (l *PointsLedger) Debit(ctx context.Context, tx Tx, userID int64, amount int64) error {
	account, err := tx.LockPointsAccount(ctx, userID)
	if err != nil {
		return err
	}
	if err := account.Debit(amount, l.now()); err != nil {
		return err
	}
	return tx.SavePointsAccount(ctx, account)
}

// BalanceOf treats a missing account as all zeros.
func (l *PointsLedger) BalanceOf(ctx context.Context, userID int64) (domain.Balance, error) {
	account, err := l.repo.GetPointsAccount(ctx, userID)
	if err != nil {
		return domain.Balance{}, err
	}
	return account.Balance(), nil
}

var _ PointsLedgerInterface = (*PointsLedger)(nil)
