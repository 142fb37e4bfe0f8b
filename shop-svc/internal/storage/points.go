package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"loyalty-storefront/shop-svc/internal/domain"
)

const pointsColumns = "user_id, available_points, earned_points, redeemed_points, pending_points, last_updated"

func scanPoints(row interface{ Scan(...any) error }, a *domain.PointsAccount) error {
	return row.Scan(&a.UserID, &a.Available, &a.Earned, &a.Redeemed, &a.Pending, &a.LastUpdated)
}

// GetPointsAccount returns nil without error when the user has no ledger row yet.
func (r *PostgresRepository) GetPointsAccount(ctx context.Context, userID int64) (*domain.PointsAccount, error) {
	var account domain.PointsAccount
	err := scanPoints(r.DB.QueryRowContext(ctx, "SELECT "+pointsColumns+" FROM points_accounts WHERE user_id = $1", userID), &account)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// LockPointsAccount creates the account on first use and locks it.
func (t *pgTx) LockPointsAccount(ctx context.Context, userID int64) (*domain.PointsAccount, error) {
	if _, err := t.q.ExecContext(ctx,
		"INSERT INTO points_accounts (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING", userID); err != nil {
		return nil, fmt.Errorf("open points account %d: %w", userID, err)
	}

	var account domain.PointsAccount
	err := scanPoints(t.q.QueryRowContext(ctx,
		"SELECT "+pointsColumns+" FROM points_accounts WHERE user_id = $1 FOR UPDATE", userID), &account)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (t *pgTx) SavePointsAccount(ctx context.Context, a *domain.PointsAccount) error {
	_, err := t.q.ExecContext(ctx, `
		UPDATE points_accounts
		SET available_points = $1, earned_points = $2, redeemed_points = $3, pending_points = $4, last_updated = $5
		WHERE user_id = $6
	`, a.Available, a.Earned, a.Redeemed, a.Pending, a.LastUpdated, a.UserID)
	return err
}
