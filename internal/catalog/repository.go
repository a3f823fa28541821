package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrNotFound = errors.New("not found")

// DBPool matches the methods from *pgxpool.Pool that we use.
// This allows us to swap the database out in tests.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]Product, error)
	Get(ctx context.Context, id string) (Product, error)
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error
	ImportBatch(ctx context.Context, products []Product) error

	ListCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, c *Category) error
	UpdateCategory(ctx context.Context, c *Category) error
	DeleteCategory(ctx context.Context, id string) error
}

type PostgresRepository struct {
	pool DBPool
}

func NewPostgresRepository(pool DBPool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const productColumns = `id, name, description, price, original_price, image_url, category, in_stock, rating, review_count, created_at, updated_at`

func (r *PostgresRepository) List(ctx context.Context, f Filter) ([]Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`

	var conds []string
	var args []any
	if f.Category != "" {
		args = append(args, f.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		conds = append(conds, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}
	if f.InStockOnly {
		conds = append(conds, "in_stock = TRUE")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY name ASC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (Product, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)

	var p Product
	if err := scanProduct(row, &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, p *Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	const insert = `
INSERT INTO products (id, name, description, price, original_price, image_url, category, in_stock, rating, review_count, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
RETURNING created_at, updated_at
`
	err := r.pool.QueryRow(ctx, insert,
		p.ID, p.Name, p.Description, p.Price, p.OriginalPrice, p.ImageURL, p.Category, p.InStock, p.Rating, p.ReviewCount,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *Product) error {
	const update = `
UPDATE products
SET name = $2, description = $3, price = $4, original_price = $5, image_url = $6,
    category = $7, in_stock = $8, rating = $9, review_count = $10, updated_at = NOW()
WHERE id = $1
`
	tag, err := r.pool.Exec(ctx, update,
		p.ID, p.Name, p.Description, p.Price, p.OriginalPrice, p.ImageURL, p.Category, p.InStock, p.Rating, p.ReviewCount,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ImportBatch inserts one batch of products in a single transaction. Callers
// chunk the input (see Service.ImportCSV) so a bad row only fails its own
// batch.
func (r *PostgresRepository) ImportBatch(ctx context.Context, products []Product) error {
	if len(products) == 0 {
		return nil
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const insert = `
INSERT INTO products (id, name, description, price, original_price, image_url, category, in_stock, rating, review_count, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
`
	for i := range products {
		p := &products[i]
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		_, err := tx.Exec(ctx, insert,
			p.ID, p.Name, p.Description, p.Price, p.OriginalPrice, p.ImageURL, p.Category, p.InStock, p.Rating, p.ReviewCount,
		)
		if err != nil {
			return fmt.Errorf("insert product %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row, p *Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.OriginalPrice, &p.ImageURL,
		&p.Category, &p.InStock, &p.Rating, &p.ReviewCount, &p.CreatedAt, &p.UpdatedAt,
	)
}
