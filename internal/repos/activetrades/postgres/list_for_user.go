package activetrades

import (
	"context"
	"fmt"

	"github.com/fastprodman/pockettrader/internal/repos/activetrades"
)

func (r *activeTradesRepo) ListForUser(ctx context.Context, userID uint64) ([]activetrades.Pending, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.user1, u1.username, t.user2, u2.username,
		       t.card_sent1, c1.name, c1.image_url,
		       t.card_sent2, c2.name, c2.image_url,
		       t.created_by, t.confirmed, t.created_at
		FROM active_trades t
		JOIN users u1 ON u1.id = t.user1
		JOIN users u2 ON u2.id = t.user2
		JOIN cards c1 ON c1.id = t.card_sent1
		JOIN cards c2 ON c2.id = t.card_sent2
		WHERE (t.user1 = $1 OR t.user2 = $1)
		  AND t.confirmed = false
		ORDER BY t.created_at DESC, t.user1, t.user2, t.card_sent1, t.card_sent2
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query trades: %w", err)
	}
	defer rows.Close()

	out := make([]activetrades.Pending, 0)

	for rows.Next() {
		p := activetrades.Pending{Status: activetrades.StatusPending}

		err = rows.Scan(
			&p.InitiatorID, &p.InitiatorName, &p.ResponderID, &p.ResponderName,
			&p.CardOfferedByUser1, &p.Card1Name, &p.Card1Image,
			&p.CardOfferedByUser2, &p.Card2Name, &p.Card2Image,
			&p.CreatedBy, &p.Confirmed, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan trade: %w", err)
		}

		out = append(out, p)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate trades: %w", err)
	}

	return out, nil
}
