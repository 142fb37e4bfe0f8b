package storage

import (
	"context"

	"loyalty-storefront/shop-svc/internal/domain"
)

const rewardColumns = "id, name, description, points_required, stock, active, image_url, created_at"

func scanReward(row interface{ Scan(...any) error }, rw *domain.Reward) error {
	return row.Scan(&rw.ID, &rw.Name, &rw.Description, &rw.PointsRequired, &rw.Stock, &rw.Active, &rw.ImageURL, &rw.CreatedAt)
}

// ListRewards orders by cost so customers see attainable rewards first.
func (r *PostgresRepository) ListRewards(ctx context.Context, activeOnly bool) ([]domain.Reward, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+rewardColumns+`
		FROM rewards
		WHERE active OR NOT $1
		ORDER BY points_required ASC, id ASC`, activeOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rewards := []domain.Reward{}
	for rows.Next() {
		var rw domain.Reward
		if err := scanReward(rows, &rw); err != nil {
			return nil, err
		}
		rewards = append(rewards, rw)
	}
	return rewards, rows.Err()
}

func (r *PostgresRepository) GetReward(ctx context.Context, id int64) (*domain.Reward, error) {
	var rw domain.Reward
	if err := scanReward(r.DB.QueryRowContext(ctx, "SELECT "+rewardColumns+" FROM rewards WHERE id = $1", id), &rw); err != nil {
		return nil, notFound(err, "reward %d", id)
	}
	return &rw, nil
}

func (r *PostgresRepository) CreateReward(ctx context.Context, rw *domain.Reward) error {
	return r.DB.QueryRowContext(ctx, `
		INSERT INTO rewards (name, description, points_required, stock, active, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, rw.Name, rw.Description, rw.PointsRequired, rw.Stock, rw.Active, rw.ImageURL).Scan(&rw.ID, &rw.CreatedAt)
}

func (r *PostgresRepository) UpdateReward(ctx context.Context, rw *domain.Reward) error {
	err := r.DB.QueryRowContext(ctx, `
		UPDATE rewards
		SET name = $1, description = $2, points_required = $3, stock = $4, active = $5, image_url = $6
		WHERE id = $7
		RETURNING created_at
	`, rw.Name, rw.Description, rw.PointsRequired, rw.Stock, rw.Active, rw.ImageURL, rw.ID).Scan(&rw.CreatedAt)
	return notFound(err, "reward %d", rw.ID)
}

func (r *PostgresRepository) ListRedemptions(ctx context.Context, userID int64) ([]domain.RedemptionRecord, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, user_id, COALESCE(reward_id, 0), reward_name, points_used, code, redeemed_at
		FROM redemptions
		WHERE user_id = $1
		ORDER BY redeemed_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []domain.RedemptionRecord{}
	for rows.Next() {
		var rec domain.RedemptionRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.RewardID, &rec.RewardName, &rec.PointsUsed, &rec.Code, &rec.RedeemedAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (t *pgTx) LockReward(ctx context.Context, rewardID int64) (*domain.Reward, error) {
	var rw domain.Reward
	err := scanReward(t.q.QueryRowContext(ctx, "SELECT "+rewardColumns+" FROM rewards WHERE id = $1 FOR UPDATE", rewardID), &rw)
	if err != nil {
		return nil, notFound(err, "reward %d", rewardID)
	}
	return &rw, nil
}

func (t *pgTx) SaveRewardStock(ctx context.Context, rewardID int64, stock int) error {
	_, err := t.q.ExecContext(ctx, "UPDATE rewards SET stock = $1 WHERE id = $2", stock, rewardID)
	return err
}

func (t *pgTx) InsertRedemption(ctx context.Context, rec *domain.RedemptionRecord) error {
	return t.q.QueryRowContext(ctx, `
		INSERT INTO redemptions (user_id, reward_id, reward_name, points_used, code, redeemed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, rec.UserID, rec.RewardID, rec.RewardName, rec.PointsUsed, rec.Code, rec.RedeemedAt).Scan(&rec.ID)
}
