package quote

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Repository interface {
	Insert(ctx context.Context, r *Request) error
	List(ctx context.Context) ([]Request, error)
}

type repo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repo{db: db}
}

func (r *repo) Insert(ctx context.Context, q *Request) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}

	const insert = `
INSERT INTO quote_requests
    (id, name, email, company, phone, board_type, quantity, layers, dimensions,
     specifications, timeline, budget, additional_services, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW())
RETURNING created_at
`
	err := r.db.QueryRowContext(ctx, insert,
		q.ID, q.Name, q.Email, q.Company, q.Phone, q.BoardType, q.Quantity,
		q.Layers, q.Dimensions, q.Specifications, q.Timeline, q.Budget,
		pq.Array(q.AdditionalServices),
	).Scan(&q.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert quote request: %w", err)
	}
	return nil
}

func (r *repo) List(ctx context.Context) ([]Request, error) {
	const query = `
SELECT id, name, email, company, phone, board_type, quantity, layers, dimensions,
       specifications, timeline, budget, additional_services, created_at
FROM quote_requests ORDER BY created_at DESC
`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select quote requests: %w", err)
	}
	defer rows.Close()

	var out []Request
	for rows.Next() {
		var q Request
		if err := rows.Scan(
			&q.ID, &q.Name, &q.Email, &q.Company, &q.Phone, &q.BoardType, &q.Quantity,
			&q.Layers, &q.Dimensions, &q.Specifications, &q.Timeline, &q.Budget,
			pq.Array(&q.AdditionalServices), &q.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan quote request: %w", err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}
