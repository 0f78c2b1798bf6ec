package wishlist

import (
	"database/sql"

	"github.com/fastprodman/pockettrader/internal/repos/wishlist"
)

var _ wishlist.Wishlist = (*wishlistRepo)(nil)

type wishlistRepo struct{ db *sql.DB }

func New(db *sql.DB) *wishlistRepo {
	return &wishlistRepo{db: db}
}
