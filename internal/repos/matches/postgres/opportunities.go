package matches

import (
	"context"
	"fmt"

	"github.com/fastprodman/pockettrader/internal/repos/matches"
)

func (r *matchesRepo) Opportunities(ctx context.Context, userID uint64) ([]matches.Opportunity, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT u.id, u.username, c.id, c.name, w.date_added
		FROM collection mine
		JOIN wishlist w ON w.card_id = mine.card_id
		               AND w.user_id <> mine.user_id
		JOIN users u ON u.id = w.user_id
		JOIN cards c ON c.id = w.card_id
		WHERE mine.user_id = $1
		  AND mine.quantity > 1
		ORDER BY w.date_added DESC, u.id, c.id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query opportunities: %w", err)
	}
	defer rows.Close()

	out := make([]matches.Opportunity, 0)

	for rows.Next() {
		var o matches.Opportunity

		err = rows.Scan(&o.OwnerID, &o.OwnerName, &o.CardID, &o.CardName, &o.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan opportunity: %w", err)
		}

		out = append(out, o)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate opportunities: %w", err)
	}

	return out, nil
}
