package trading

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/pockettrader/internal/apperr"
	"github.com/fastprodman/pockettrader/internal/repos/activetrades"
	"github.com/fastprodman/pockettrader/internal/repos/collection"
)

// settlement swaps one copy each way inside the caller's transaction.
// Both disposals run before either acquisition so a missing card aborts the
// swap before anything is credited.
type settlement struct {
	collection collection.Collection
}

func (s settlement) execute(ctx context.Context, tx *sql.Tx, key activetrades.Key) error {
	err := s.take(ctx, tx, key.User1, key.CardSent1)
	if err != nil {
		return err
	}

	err = s.take(ctx, tx, key.User2, key.CardSent2)
	if err != nil {
		return err
	}

	_, err = s.collection.Acquire(ctx, tx, key.User2, key.CardSent1, 1)
	if err != nil {
		return fmt.Errorf("credit user %d with %s: %w", key.User2, key.CardSent1, err)
	}

	_, err = s.collection.Acquire(ctx, tx, key.User1, key.CardSent2, 1)
	if err != nil {
		return fmt.Errorf("credit user %d with %s: %w", key.User1, key.CardSent2, err)
	}

	return nil
}

func (s settlement) take(ctx context.Context, tx *sql.Tx, userID uint64, cardID string) error {
	_, err := s.collection.Dispose(ctx, tx, userID, cardID)
	if err != nil {
		if errors.Is(err, collection.ErrNotInCollection) {
			return fmt.Errorf("user %d does not hold %s: %w", userID, cardID, apperr.ErrInsufficientInventory)
		}

		return fmt.Errorf("debit user %d of %s: %w", userID, cardID, err)
	}

	return nil
}
