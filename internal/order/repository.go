package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, orderID string) (*Order, error)
	List(ctx context.Context) ([]Order, error)
}

type repo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repo{db: db}
}

func (r *repo) Create(ctx context.Context, o *Order) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO orders (id, user_id, status, total, currency, customer_email, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		o.ID, o.UserID, o.Status, o.Total, o.Currency, nullable(o.CustomerEmail), o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, it := range o.Items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO order_items (id, order_id, product_id, name, quantity, unit_price, line_total)
             VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			uuid.NewString(), o.ID, nullable(it.ProductID), it.Name, it.Quantity, it.UnitPrice, it.LineTotal,
		)
		if err != nil {
			return fmt.Errorf("insert order_item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *repo) GetByID(ctx context.Context, orderID string) (*Order, error) {
	var o Order
	var email sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, status, total, currency, customer_email, created_at
         FROM orders WHERE id = $1`,
		orderID,
	).Scan(&o.ID, &o.UserID, &o.Status, &o.Total, &o.Currency, &email, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select order: %w", err)
	}
	o.CustomerEmail = email.String

	rows, err := r.db.QueryContext(ctx,
		`SELECT COALESCE(product_id, ''), name, quantity, unit_price, line_total
         FROM order_items WHERE order_id = $1`,
		o.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("select order_items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ProductID, &it.Name, &it.Quantity, &it.UnitPrice, &it.LineTotal); err != nil {
			return nil, fmt.Errorf("scan order_item: %w", err)
		}
		o.Items = append(o.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return &o, nil
}

// List returns all orders newest first, without items. The admin table and
// the monthly chart only need the header rows.
func (r *repo) List(ctx context.Context) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, status, total, currency, customer_email, created_at
         FROM orders ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		var email sql.NullString
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.Total, &o.Currency, &email, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.CustomerEmail = email.String
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
