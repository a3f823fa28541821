package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const RoleAdmin = "admin"

// Roles answers role-membership questions for authenticated users. Identity
// itself is established upstream; this package only consults the role table.
type Roles interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

type sqlRoles struct {
	db *sql.DB
}

func NewSQLRoles(db *sql.DB) Roles {
	return &sqlRoles{db: db}
}

func (r *sqlRoles) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, nil
	}

	var id string
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM user_roles WHERE user_id = $1 AND role = $2 LIMIT 1`,
		userID, RoleAdmin,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("lookup role: %w", err)
	}
	return true, nil
}
