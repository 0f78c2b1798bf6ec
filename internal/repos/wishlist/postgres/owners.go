package wishlist

import (
	"context"
	"fmt"

	"github.com/fastprodman/pockettrader/internal/repos/wishlist"
)

// Owners lists every other user holding more than one copy of cardID.
func (r *wishlistRepo) Owners(ctx context.Context, userID uint64, cardID string) ([]wishlist.Owner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT u.id, u.username, col.quantity
		FROM collection col
		JOIN users u ON u.id = col.user_id
		WHERE col.card_id = $1
		  AND col.quantity > 1
		  AND col.user_id <> $2
		ORDER BY col.quantity DESC, u.username
	`, cardID, userID)
	if err != nil {
		return nil, fmt.Errorf("query owners: %w", err)
	}
	defer rows.Close()

	owners := make([]wishlist.Owner, 0)

	for rows.Next() {
		var o wishlist.Owner

		err = rows.Scan(&o.OwnerID, &o.Username, &o.Quantity)
		if err != nil {
			return nil, fmt.Errorf("scan owner: %w", err)
		}

		o.Surplus = o.Quantity - 1
		owners = append(owners, o)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate owners: %w", err)
	}

	return owners, nil
}
