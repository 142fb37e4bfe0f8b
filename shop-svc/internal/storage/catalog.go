package storage

import (
	"context"
	"fmt"

	"loyalty-storefront/shop-svc/internal/domain"

	"github.com/lib/pq"
)

const productColumns = "id, name, price, category, created_at"

func scanProduct(row interface{ Scan(...any) error }, p *domain.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.CreatedAt)
}

func (r *PostgresRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY category, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresRepository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := scanProduct(r.DB.QueryRowContext(ctx, "SELECT "+productColumns+" FROM products WHERE id = $1", id), &p)
	if err != nil {
		return nil, notFound(err, "product %d", id)
	}
	return &p, nil
}

func (r *PostgresRepository) CreateProduct(ctx context.Context, p *domain.Product) error {
	return r.DB.QueryRowContext(ctx,
		"INSERT INTO products (name, price, category) VALUES ($1, $2, $3) RETURNING id, created_at",
		p.Name, p.Price, p.Category,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *PostgresRepository) UpdateProduct(ctx context.Context, p *domain.Product) error {
	err := r.DB.QueryRowContext(ctx,
		"UPDATE products SET name = $1, price = $2, category = $3 WHERE id = $4 RETURNING created_at",
		p.Name, p.Price, p.Category, p.ID,
	).Scan(&p.CreatedAt)
	return notFound(err, "product %d", p.ID)
}

// DeleteProduct refuses to remove products that order history still points at.
func (r *PostgresRepository) DeleteProduct(ctx context.Context, id int64) error {
	result, err := r.DB.ExecContext(ctx, `
		DELETE FROM products
		WHERE id = $1 AND NOT EXISTS (SELECT 1 FROM order_items WHERE product_id = $1)`, id)
	if err != nil {
		return err
	}
	if n, _ := result.RowsAffected(); n > 0 {
		return nil
	}

	var exists bool
	if err := r.DB.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)", id).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: product %d", domain.ErrProductInUse, id)
	}
	return fmt.Errorf("%w: product %d", domain.ErrNotFound, id)
}

func (t *pgTx) ProductsByID(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	products := make(map[int64]domain.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	rows, err := t.q.QueryContext(ctx, "SELECT "+productColumns+" FROM products WHERE id = ANY($1)", pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products[p.ID] = p
	}
	return products, rows.Err()
}
