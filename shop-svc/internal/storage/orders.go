package storage

import (
	"context"
	"fmt"

	"loyalty-storefront/shop-svc/internal/domain"
)

const orderSelect = `
	SELECT o.id, o.customer_name, o.phone, o.user_id, o.status, o.points_accrued,
	       o.created_at, o.updated_at, o.completed_at,
	       oi.product_id, oi.product_name, oi.price, oi.quantity
	FROM orders o
	LEFT JOIN order_items oi ON oi.order_id = o.id`

// loadOrders runs an orderSelect query and folds the joined rows into orders.
func loadOrders(ctx context.Context, q queryer, query string, args ...any) ([]domain.Order, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	agg := domain.NewOrderAggregator()
	for rows.Next() {
		var row domain.OrderRow
		var status string
		if err := rows.Scan(
			&row.OrderID, &row.CustomerName, &row.Phone, &row.UserID, &status, &row.PointsAccrued,
			&row.CreatedAt, &row.UpdatedAt, &row.CompletedAt,
			&row.ProductID, &row.ProductName, &row.Price, &row.Quantity,
		); err != nil {
			return nil, err
		}
		row.Status = domain.OrderStatus(status)
		agg.Add(row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return agg.Orders(), nil
}

func (r *PostgresRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, error) {
	query := orderSelect + " WHERE ($1::bigint IS NULL OR o.user_id = $1) AND ($2::text = '' OR o.status = $2)" +
		" ORDER BY o.created_at DESC, o.id DESC, oi.id"
	return loadOrders(ctx, r.DB, query, filter.UserID, string(filter.Status))
}

func (r *PostgresRepository) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	orders, err := loadOrders(ctx, r.DB, orderSelect+" WHERE o.id = $1 ORDER BY oi.id", orderID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("%w: order %d", domain.ErrNotFound, orderID)
	}
	return &orders[0], nil
}

func (t *pgTx) InsertOrder(ctx context.Context, order *domain.Order) error {
	if err := t.q.QueryRowContext(ctx, `
		INSERT INTO orders (customer_name, phone, user_id, status, total, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, order.CustomerName, order.Phone, order.UserID, string(order.Status), order.Total, order.CreatedAt).Scan(&order.ID); err != nil {
		return err
	}

	for _, item := range order.Items {
		if _, err := t.q.ExecContext(ctx, `
			INSERT INTO order_items (order_id, product_id, product_name, price, quantity)
			VALUES ($1, $2, $3, $4, $5)
		`, order.ID, item.ProductID, item.ProductName, item.Price, item.Quantity); err != nil {
			return fmt.Errorf("insert item %q of order %d: %w", item.ProductName, order.ID, err)
		}
	}
	return nil
}

// LockOrder takes the order row lock first, then reads its immutable items.
func (t *pgTx) LockOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	var order domain.Order
	var status string
	err := t.q.QueryRowContext(ctx, `
		SELECT id, customer_name, phone, user_id, status, total, points_accrued, created_at, updated_at, completed_at
		FROM orders WHERE id = $1
		FOR UPDATE
	`, orderID).Scan(&order.ID, &order.CustomerName, &order.Phone, &order.UserID, &status, &order.Total,
		&order.PointsAccrued, &order.CreatedAt, &order.UpdatedAt, &order.CompletedAt)
	if err != nil {
		return nil, notFound(err, "order %d", orderID)
	}
	order.Status = domain.OrderStatus(status)

	rows, err := t.q.QueryContext(ctx, `
		SELECT product_id, product_name, price, quantity
		FROM order_items WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	order.Items = []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Price, &item.Quantity); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}
	return &order, rows.Err()
}

func (t *pgTx) SaveOrderStatus(ctx context.Context, order *domain.Order) error {
	result, err := t.q.ExecContext(ctx, `
		UPDATE orders
		SET status = $1, total = $2, points_accrued = $3, updated_at = $4, completed_at = $5
		WHERE id = $6
	`, string(order.Status), order.Total, order.PointsAccrued, order.UpdatedAt, order.CompletedAt, order.ID)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: order %d", domain.ErrNotFound, order.ID)
	}
	return nil
}
