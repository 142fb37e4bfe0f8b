package storage

import (
	"context"
	"database/sql"
	"time"

	"loyalty-storefront/report-svc/internal/domain"
)

// completedRevenue sums line-item subtotals of completed orders.
const completedRevenue = `
	SELECT COALESCE(SUM(oi.price * oi.quantity), 0)
	FROM orders o
	JOIN order_items oi ON oi.order_id = o.id
	WHERE o.status = 'completed'`

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

// RevenueSince sums completed revenue with completed_at at or after since.
// A zero since covers all time.
func (r *PostgresRepository) RevenueSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	var err error
	if since.IsZero() {
		err = r.DB.QueryRowContext(ctx, completedRevenue).Scan(&total)
	} else {
		err = r.DB.QueryRowContext(ctx, completedRevenue+" AND o.completed_at >= $1", since).Scan(&total)
	}
	return total, err
}

// MonthlyRevenue buckets completed revenue by calendar month in loc, keyed "YYYY-MM".
func (r *PostgresRepository) MonthlyRevenue(ctx context.Context, since time.Time, loc *time.Location) (map[string]int64, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT to_char(date_trunc('month', o.completed_at AT TIME ZONE $2), 'YYYY-MM') AS month,
		       COALESCE(SUM(oi.price * oi.quantity), 0)
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		WHERE o.status = 'completed' AND o.completed_at >= $1
		GROUP BY month
		ORDER BY month
	`, since, loc.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[string]int64)
	for rows.Next() {
		var month string
		var revenue int64
		if err := rows.Scan(&month, &revenue); err != nil {
			return nil, err
		}
		totals[month] = revenue
	}
	return totals, rows.Err()
}

func (r *PostgresRepository) StatusCounts(ctx context.Context) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT status, COUNT(*) FROM orders GROUP BY status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{"pending": 0, "confirmed": 0, "preparing": 0, "completed": 0}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}
	return counts, rows.Err()
}

// TopRewards ranks rewards by redemption count straight from the redemption log.
func (r *PostgresRepository) TopRewards(ctx context.Context, limit int) ([]domain.TopReward, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT reward_id, reward_name, COUNT(*) AS redemptions
		FROM redemptions
		WHERE reward_id IS NOT NULL
		GROUP BY reward_id, reward_name
		ORDER BY redemptions DESC, reward_id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	top := []domain.TopReward{}
	for rows.Next() {
		var reward domain.TopReward
		if err := rows.Scan(&reward.RewardID, &reward.Name, &reward.Redemptions); err != nil {
			return nil, err
		}
		top = append(top, reward)
	}
	return top, rows.Err()
}
