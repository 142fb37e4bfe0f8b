package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"loyalty-storefront/shop-svc/internal/domain"
	"loyalty-storefront/shop-svc/internal/service"

	"github.com/lib/pq"
)

const defaultLockTimeout = 5 * time.Second

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type PostgresRepository struct {
	DB          *sql.DB
	LockTimeout time.Duration
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db, LockTimeout: defaultLockTimeout}
}

// InTx runs fn in a transaction. Row locks taken by fn are bounded by
// LockTimeout so a blocked caller gets ErrPersistenceConflict instead of waiting forever.
func (r *PostgresRepository) InTx(ctx context.Context, fn func(tx service.Tx) error) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return classify(err)
	}
	defer tx.Rollback()

	if r.LockTimeout > 0 {
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.LockTimeout.Milliseconds())
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return classify(err)
		}
	}

	if err := fn(&pgTx{q: tx}); err != nil {
		return classify(err)
	}
	return classify(tx.Commit())
}

func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			price BIGINT NOT NULL CHECK (price >= 0),
			category TEXT NOT NULL DEFAULT 'other',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id BIGSERIAL PRIMARY KEY,
			customer_name TEXT NOT NULL,
			phone TEXT NOT NULL,
			user_id BIGINT,
			status TEXT NOT NULL DEFAULT 'pending'
				CHECK (status IN ('pending', 'confirmed', 'preparing', 'completed')),
			total BIGINT NOT NULL DEFAULT 0,
			points_accrued BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ,
			completed_at TIMESTAMPTZ
		)`,
		"CREATE INDEX IF NOT EXISTS orders_user_created_idx ON orders (user_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS orders_status_completed_idx ON orders (status, completed_at)",
		`CREATE TABLE IF NOT EXISTS order_items (
			id BIGSERIAL PRIMARY KEY,
			order_id BIGINT NOT NULL REFERENCES orders(id),
			product_id BIGINT REFERENCES products(id) ON DELETE SET NULL,
			product_name TEXT NOT NULL,
			price BIGINT NOT NULL CHECK (price >= 0),
			quantity INT NOT NULL CHECK (quantity > 0)
		)`,
		"CREATE INDEX IF NOT EXISTS order_items_order_idx ON order_items (order_id)",
		`CREATE TABLE IF NOT EXISTS points_accounts (
			user_id BIGINT PRIMARY KEY,
			available_points BIGINT NOT NULL DEFAULT 0 CHECK (available_points >= 0),
			earned_points BIGINT NOT NULL DEFAULT 0 CHECK (earned_points >= 0),
			redeemed_points BIGINT NOT NULL DEFAULT 0 CHECK (redeemed_points >= 0),
			pending_points BIGINT NOT NULL DEFAULT 0 CHECK (pending_points >= 0),
			last_updated TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS rewards (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			points_required BIGINT NOT NULL CHECK (points_required > 0),
			stock INT NOT NULL DEFAULT 0 CHECK (stock >= 0),
			active BOOLEAN NOT NULL DEFAULT TRUE,
			image_url TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS redemptions (
			id BIGSERIAL PRIMARY KEY,
			user_id BIGINT NOT NULL,
			reward_id BIGINT REFERENCES rewards(id),
			reward_name TEXT NOT NULL,
			points_used BIGINT NOT NULL,
			code TEXT NOT NULL UNIQUE,
			redeemed_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema `%s`: %w", firstLine(stmt), err)
		}
	}
	return nil
}

// pgTx implements service.Tx on top of an open transaction.
type pgTx struct {
	q queryer
}

var (
	_ service.Store = (*PostgresRepository)(nil)
	_ service.Tx    = (*pgTx)(nil)
)

// classify maps lock and serialization failures to ErrPersistenceConflict.
func classify(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "40001", "40P01", "55P03":
			return fmt.Errorf("%w: %s", domain.ErrPersistenceConflict, pqErr.Message)
		}
	}
	return err
}

func notFound(err error, format string, args ...any) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: "+format, append([]any{domain.ErrNotFound}, args...)...)
	}
	return err
}

func firstLine(stmt string) string {
	for i, c := range stmt {
		if c == '\n' {
			return stmt[:i]
		}
	}
	return stmt
}
