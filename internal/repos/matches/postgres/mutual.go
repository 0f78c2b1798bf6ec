package matches

import (
	"context"
	"fmt"

	"github.com/fastprodman/pockettrader/internal/repos/matches"
)

// uw: user's wish (A), pa: partner's spare A, pw: partner's wish (B),
// ub: user's spare B.
const mutualQuery = `
	SELECT p.id, p.username, a.id, a.name, b.id, b.name, a.rarity
	FROM wishlist uw
	JOIN collection pa ON pa.card_id = uw.card_id
	                  AND pa.quantity > 1
	                  AND pa.user_id <> uw.user_id
	JOIN wishlist pw   ON pw.user_id = pa.user_id
	JOIN collection ub ON ub.user_id = uw.user_id
	                  AND ub.card_id = pw.card_id
	                  AND ub.quantity > 1
	JOIN users p ON p.id = pa.user_id
	JOIN cards a ON a.id = uw.card_id
	JOIN cards b ON b.id = pw.card_id
	WHERE uw.user_id = $1
	  AND a.id <> b.id
	  AND (NOT $2::boolean OR a.rarity = b.rarity)
	ORDER BY p.username, p.id, a.name, b.name, a.id, b.id
`

func (r *matchesRepo) Mutual(ctx context.Context, userID uint64, sameRarity bool) ([]matches.Mutual, error) {
	rows, err := r.db.QueryContext(ctx, mutualQuery, userID, sameRarity)
	if err != nil {
		return nil, fmt.Errorf("query mutual matches: %w", err)
	}
	defer rows.Close()

	out := make([]matches.Mutual, 0)

	for rows.Next() {
		var m matches.Mutual

		err = rows.Scan(
			&m.PartnerID, &m.PartnerName,
			&m.IWantCardID, &m.IWantName,
			&m.TheyWantCardID, &m.TheyWantName,
			&m.RarityRequired,
		)
		if err != nil {
			return nil, fmt.Errorf("scan mutual match: %w", err)
		}

		out = append(out, m)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate mutual matches: %w", err)
	}

	return out, nil
}
