package wishlist

import (
	"context"
	"fmt"
	"time"

	"github.com/fastprodman/pockettrader/internal/apperr"
	"github.com/fastprodman/pockettrader/internal/catalog"
)

var (
	ErrNotInWishlist     = fmt.Errorf("card not in wishlist: %w", apperr.ErrNotFound)
	ErrUnknownUserOrCard = fmt.Errorf("unknown user or card: %w", apperr.ErrNotFound)
)

type Wish struct {
	catalog.Card
	DateAdded time.Time `json:"dateAdded"`
}

// Owner is another user holding spare copies of a wished card.
type Owner struct {
	OwnerID  uint64 `json:"ownerID"`
	Username string `json:"username"`
	Quantity int    `json:"quantity"`
	Surplus  int    `json:"surplus"`
}

type Wishlist interface {
	Add(ctx context.Context, userID uint64, cardID string) error
	Remove(ctx context.Context, userID uint64, cardID string) error
	List(ctx context.Context, userID uint64, filter catalog.Filter) ([]Wish, error)
	Owners(ctx context.Context, userID uint64, cardID string) ([]Owner, error)
}
