package storage

import (
	"context"
	"testing"
	"time"

	"loyalty-storefront/report-svc/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepository(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewPostgresRepository(db), mock
}

func TestRevenueSince(t *testing.T) {
	since := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		since    time.Time
		prepare  func(mock sqlmock.Sqlmock)
		expected int64
	}{
		{
			name:  "window",
			since: since,
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`WHERE o.status = 'completed' AND o.completed_at >= \$1`).
					WithArgs(since).
					WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(295))
			},
			expected: 295,
		},
		{
			name: "all_time",
			prepare: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SUM\(oi.price \* oi.quantity\).*WHERE o.status = 'completed'$`).
					WithArgs().
					WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(5000))
			},
			expected: 5000,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupRepository(t)
			testCase.prepare(mock)

			total, err := repo.RevenueSince(context.Background(), testCase.since)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, total)
		})
	}
}

func TestMonthlyRevenue(t *testing.T) {
	repo, mock := setupRepository(t)
	since := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`date_trunc\('month', o.completed_at AT TIME ZONE \$2\)`).
		WithArgs(since, "UTC").
		WillReturnRows(sqlmock.NewRows([]string{"month", "sum"}).
			AddRow("2025-11", 500).
			AddRow("2026-03", 295))

	totals, err := repo.MonthlyRevenue(context.Background(), since, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"2025-11": 500, "2026-03": 295}, totals)
}

func TestStatusCounts_ZeroFilled(t *testing.T) {
	repo, mock := setupRepository(t)
	mock.ExpectQuery(`SELECT status, COUNT\(\*\) FROM orders GROUP BY status`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).AddRow("completed", 3))

	counts, err := repo.StatusCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"pending": 0, "confirmed": 0, "preparing": 0, "completed": 3}, counts)
}

func TestTopRewardsFromRedemptions(t *testing.T) {
	repo, mock := setupRepository(t)
	mock.ExpectQuery(`FROM redemptions`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"reward_id", "reward_name", "redemptions"}).
			AddRow(2, "Incense set voucher", 4).
			AddRow(1, "Free marigold garland", 1))

	top, err := repo.TopRewards(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []domain.TopReward{
		{RewardID: 2, Name: "Incense set voucher", Redemptions: 4},
		{RewardID: 1, Name: "Free marigold garland", Redemptions: 1},
	}, top)
}
