package wishlist

import (
	"context"
	"fmt"

	"github.com/fastprodman/pockettrader/internal/repos/wishlist"
)

func (r *wishlistRepo) Remove(ctx context.Context, userID uint64, cardID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM wishlist
		WHERE user_id = $1 AND card_id = $2
	`, userID, cardID)
	if err != nil {
		return fmt.Errorf("remove wish: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return wishlist.ErrNotInWishlist
	}

	return nil
}
