package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/pockettrader/internal/repos/users"
)

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	var u users.User

	err := r.db.QueryRowContext(ctx, `
		SELECT id, username, joined_at
		FROM users
		WHERE username = $1
	`, username).Scan(&u.ID, &u.Username, &u.JoinedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrUserNotFound
		}

		return users.User{}, fmt.Errorf("get by username: %w", err)
	}

	return u, nil
}
