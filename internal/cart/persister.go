package cart

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// Persister is the durable storage contract for cart state. One persister is
// bound to one cart key at construction time; the store never sees the key.
type Persister interface {
	Load(ctx context.Context) ([]LineItem, error)
	Save(ctx context.Context, items []LineItem) error
}

// SQLPersister stores the cart as a single JSON blob row keyed by cart key.
type SQLPersister struct {
	db  *sql.DB
	key string
}

func NewSQLPersister(db *sql.DB, key string) *SQLPersister {
	return &SQLPersister{db: db, key: key}
}

// Load returns the persisted line items, or nil when no row exists. A blob
// that fails to decode is treated as absence of data, not an error.
func (p *SQLPersister) Load(ctx context.Context) ([]LineItem, error) {
	var payload []byte
	err := p.db.QueryRowContext(ctx,
		`SELECT payload FROM cart_state WHERE cart_key = $1`, p.key,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load cart %q: %w", p.key, err)
	}

	var items []LineItem
	if err := json.Unmarshal(payload, &items); err != nil {
		// malformed persisted state falls back to an empty cart
		return nil, nil
	}
	return items, nil
}

func (p *SQLPersister) Save(ctx context.Context, items []LineItem) error {
	if items == nil {
		items = []LineItem{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart %q: %w", p.key, err)
	}

	const upsert = `
INSERT INTO cart_state (cart_key, payload, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (cart_key) DO UPDATE
SET payload = EXCLUDED.payload, updated_at = NOW()
`
	if _, err := p.db.ExecContext(ctx, upsert, p.key, payload); err != nil {
		return fmt.Errorf("save cart %q: %w", p.key, err)
	}
	return nil
}
