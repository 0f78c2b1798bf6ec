package collection

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/pockettrader/internal/apperr"
	"github.com/fastprodman/pockettrader/internal/catalog"
	"github.com/fastprodman/pockettrader/internal/infra/pgutils"
)

var (
	ErrNotInCollection   = fmt.Errorf("card not in collection: %w", apperr.ErrNotFound)
	ErrUnknownUserOrCard = fmt.Errorf("unknown user or card: %w", apperr.ErrNotFound)
	ErrQuantityOverflow  = fmt.Errorf("%w: quantity out of range", apperr.ErrInvalidArgument)
)

// Item is a card the user owns together with how many copies they hold.
type Item struct {
	catalog.Card
	Quantity int `json:"quantity"`
}

// Collection is the only writer of ownership quantities. A stored quantity is
// always positive; a row that would reach zero is deleted instead.
type Collection interface {
	Acquire(ctx context.Context, q pgutils.Querier, userID uint64, cardID string, qty int) (int, error)
	Dispose(ctx context.Context, tx *sql.Tx, userID uint64, cardID string) (int, error)
	List(ctx context.Context, userID uint64, filter catalog.Filter) ([]Item, error)
}
