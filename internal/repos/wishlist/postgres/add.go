package wishlist

import (
	"context"
	"fmt"

	"github.com/fastprodman/pockettrader/internal/infra/pgutils"
	"github.com/fastprodman/pockettrader/internal/repos/wishlist"
)

// Add records a wish. Re-adding an existing wish refreshes its date_added.
func (r *wishlistRepo) Add(ctx context.Context, userID uint64, cardID string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO wishlist (user_id, card_id, date_added)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id, card_id)
		DO UPDATE SET date_added = EXCLUDED.date_added
	`, userID, cardID)
	if err != nil {
		if pgutils.IsForeignKeyViolation(err) {
			return wishlist.ErrUnknownUserOrCard
		}

		return fmt.Errorf("add wish: %w", err)
	}

	return nil
}
