package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const categoryColumns = `id, name, slug, description, is_active, created_at, updated_at`

func (r *PostgresRepository) ListCategories(ctx context.Context) ([]Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) CreateCategory(ctx context.Context, c *Category) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Slug == "" {
		c.Slug = Slugify(c.Name)
	}

	const insert = `
INSERT INTO categories (id, name, slug, description, is_active, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
RETURNING created_at, updated_at
`
	err := r.pool.QueryRow(ctx, insert, c.ID, c.Name, c.Slug, c.Description, c.IsActive).
		Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *PostgresRepository) UpdateCategory(ctx context.Context, c *Category) error {
	const update = `
UPDATE categories
SET name = $2, description = $3, is_active = $4, updated_at = NOW()
WHERE id = $1
`
	tag, err := r.pool.Exec(ctx, update, c.ID, c.Name, c.Description, c.IsActive)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) DeleteCategory(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Slugify lowers the name and collapses runs of non-alphanumerics into single
// hyphens ("Development Boards" -> "development-boards").
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
