package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"loyalty-storefront/shop-svc/internal/domain"
	"loyalty-storefront/shop-svc/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
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

var rewardRowColumns = []string{"id", "name", "description", "points_required", "stock", "active", "image_url", "created_at"}

func TestInTx_Commit(t *testing.T) {
	repo, mock := setupRepository(t)
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`SET LOCAL lock_timeout = '5000ms'`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT .* FROM rewards WHERE id = \$1 FOR UPDATE`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(rewardRowColumns).AddRow(3, "Garland", "", 5, 2, true, "", created))
	mock.ExpectExec(`UPDATE rewards SET stock = \$1 WHERE id = \$2`).
		WithArgs(1, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.InTx(context.Background(), func(tx service.Tx) error {
		reward, err := tx.LockReward(context.Background(), 3)
		if err != nil {
			return err
		}
		assert.Equal(t, int64(5), reward.PointsRequired)
		return tx.SaveRewardStock(context.Background(), reward.ID, reward.Stock-1)
	})
	assert.NoError(t, err)
}

func TestInTx_Rollback(t *testing.T) {
	tests := []struct {
		name          string
		queryErr      error
		expectedError error
	}{
		{name: "missing_row", queryErr: sql.ErrNoRows, expectedError: domain.ErrNotFound},
		{name: "lock_timeout", queryErr: &pq.Error{Code: "55P03", Message: "canceling statement due to lock timeout"}, expectedError: domain.ErrPersistenceConflict},
		{name: "deadlock", queryErr: &pq.Error{Code: "40P01", Message: "deadlock detected"}, expectedError: domain.ErrPersistenceConflict},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupRepository(t)

			mock.ExpectBegin()
			mock.ExpectExec(`SET LOCAL lock_timeout`).WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectQuery(`FROM orders WHERE id = \$1\s+FOR UPDATE`).
				WithArgs(int64(8)).
				WillReturnError(testCase.queryErr)
			mock.ExpectRollback()

			err := repo.InTx(context.Background(), func(tx service.Tx) error {
				_, err := tx.LockOrder(context.Background(), 8)
				return err
			})
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestInTx_CallbackErrorRollsBack(t *testing.T) {
	repo, mock := setupRepository(t)
	repo.LockTimeout = 0
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := repo.InTx(context.Background(), func(tx service.Tx) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestGetOrder_FoldsJoinedRows(t *testing.T) {
	repo, mock := setupRepository(t)
	created := time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC)
	columns := []string{
		"id", "customer_name", "phone", "user_id", "status", "points_accrued",
		"created_at", "updated_at", "completed_at",
		"product_id", "product_name", "price", "quantity",
	}

	mock.ExpectQuery(`LEFT JOIN order_items oi ON oi.order_id = o.id WHERE o.id = \$1`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(4, "Somchai", "081", 42, "pending", 0, created, nil, nil, 1, "Garland", 100, 2).
			AddRow(4, "Somchai", "081", 42, "pending", 0, created, nil, nil, nil, "Red water", 95, 1))

	order, err := repo.GetOrder(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, order.Status)
	require.NotNil(t, order.UserID)
	assert.Equal(t, int64(42), *order.UserID)
	require.Len(t, order.Items, 2)
	assert.Nil(t, order.Items[1].ProductID)
	assert.Equal(t, int64(295), order.Total)
}

func TestGetOrder_NotFound(t *testing.T) {
	repo, mock := setupRepository(t)
	mock.ExpectQuery(`WHERE o.id = \$1`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetOrder(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteProduct(t *testing.T) {
	tests := []struct {
		name          string
		affected      int64
		exists        bool
		expectedError error
	}{
		{name: "deleted", affected: 1},
		{name: "referenced_by_orders", exists: true, expectedError: domain.ErrProductInUse},
		{name: "missing", exists: false, expectedError: domain.ErrNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo, mock := setupRepository(t)
			mock.ExpectExec(`DELETE FROM products`).
				WithArgs(int64(2)).
				WillReturnResult(sqlmock.NewResult(0, testCase.affected))
			if testCase.affected == 0 {
				mock.ExpectQuery(`SELECT EXISTS`).
					WithArgs(int64(2)).
					WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(testCase.exists))
			}

			err := repo.DeleteProduct(context.Background(), 2)
			if testCase.expectedError == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, testCase.expectedError)
		})
	}
}

func TestPointsAccounts(t *testing.T) {
	repo, mock := setupRepository(t)
	now := time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC)
	columns := []string{"user_id", "available_points", "earned_points", "redeemed_points", "pending_points", "last_updated"}

	mock.ExpectQuery(`FROM points_accounts WHERE user_id = \$1`).
		WithArgs(int64(1)).
		WillReturnError(sql.ErrNoRows)
	account, err := repo.GetPointsAccount(context.Background(), 1)
	require.NoError(t, err)
	assert.Nil(t, account)

	mock.ExpectBegin()
	mock.ExpectExec(`SET LOCAL lock_timeout`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO points_accounts \(user_id\) VALUES \(\$1\) ON CONFLICT`).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`FROM points_accounts WHERE user_id = \$1 FOR UPDATE`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(columns).AddRow(1, 0, 0, 0, 0, now))
	mock.ExpectExec(`UPDATE points_accounts`).
		WithArgs(int64(29), int64(29), int64(0), int64(0), sqlmock.AnyArg(), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ledger := service.NewPointsLedger(repo, func() time.Time { return now })
	userID := int64(1)
	err = repo.InTx(context.Background(), func(tx service.Tx) error {
		_, err := ledger.Accrue(context.Background(), tx, &userID, 295)
		return err
	})
	assert.NoError(t, err)
}

func TestProductsByID_EmptySelection(t *testing.T) {
	tx := &pgTx{}
	products, err := tx.ProductsByID(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestClassify(t *testing.T) {
	assert.Nil(t, classify(nil))
	assert.ErrorIs(t, classify(&pq.Error{Code: "40001"}), domain.ErrPersistenceConflict)

	other := &pq.Error{Code: "23505"}
	assert.Equal(t, error(other), classify(other))
}
