package wishlist

import (
	"context"
	"fmt"

	"github.com/fastprodman/pockettrader/internal/catalog"
	"github.com/fastprodman/pockettrader/internal/repos/wishlist"
)

func (r *wishlistRepo) List(ctx context.Context, userID uint64, filter catalog.Filter) ([]wishlist.Wish, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.pack_name, c.rarity, c.type, c.image_url, w.date_added
		FROM wishlist w
		JOIN cards c ON c.id = w.card_id
		WHERE w.user_id = $1
		  AND ($2::text = '' OR c.rarity = $2::text)
		  AND ($3::text = '' OR c.type = $3::text)
		  AND ($4::text = '' OR c.pack_name = $4::text)
		  AND ($5::text = '' OR c.name ILIKE $5::text)
		ORDER BY c.name, c.id
	`, userID, filter.Rarity, filter.Type, filter.PackName, filter.NamePattern())
	if err != nil {
		return nil, fmt.Errorf("query wishlist: %w", err)
	}
	defer rows.Close()

	wishes := make([]wishlist.Wish, 0)

	for rows.Next() {
		var w wishlist.Wish

		err = rows.Scan(&w.CardID, &w.Name, &w.PackName, &w.Rarity, &w.Type, &w.ImageURL, &w.DateAdded)
		if err != nil {
			return nil, fmt.Errorf("scan wish: %w", err)
		}

		wishes = append(wishes, w)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate wishlist: %w", err)
	}

	return wishes, nil
}
