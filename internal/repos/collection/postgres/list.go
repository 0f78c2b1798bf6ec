package collection

import (
	"context"
	"fmt"

	"github.com/fastprodman/pockettrader/internal/catalog"
	"github.com/fastprodman/pockettrader/internal/repos/collection"
)

func (r *collectionRepo) List(ctx context.Context, userID uint64, filter catalog.Filter) ([]collection.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.pack_name, c.rarity, c.type, c.image_url, col.quantity
		FROM collection col
		JOIN cards c ON c.id = col.card_id
		WHERE col.user_id = $1
		  AND ($2::text = '' OR c.rarity = $2::text)
		  AND ($3::text = '' OR c.type = $3::text)
		  AND ($4::text = '' OR c.pack_name = $4::text)
		  AND ($5::text = '' OR c.name ILIKE $5::text)
		ORDER BY c.name, c.id
	`, userID, filter.Rarity, filter.Type, filter.PackName, filter.NamePattern())
	if err != nil {
		return nil, fmt.Errorf("query collection: %w", err)
	}
	defer rows.Close()

	items := make([]collection.Item, 0)

	for rows.Next() {
		var it collection.Item

		err = rows.Scan(
			&it.CardID, &it.Name, &it.PackName, &it.Rarity, &it.Type, &it.ImageURL, &it.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("scan collection row: %w", err)
		}

		items = append(items, it)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate collection: %w", err)
	}

	return items, nil
}
