package users

import (
	"context"
	"fmt"
	"time"

	"github.com/fastprodman/pockettrader/internal/apperr"
)

var ErrUserNotFound = fmt.Errorf("user %w", apperr.ErrNotFound)

type User struct {
	ID       uint64    `json:"userID"`
	Username string    `json:"username"`
	JoinedAt time.Time `json:"joinedAt"`
}

// Users is read-only: accounts are created and edited outside the trade core.
type Users interface {
	Exists(ctx context.Context, userID uint64) error
	GetByUsername(ctx context.Context, username string) (User, error)
}
