package activetrades

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/pockettrader/internal/repos/activetrades"
)

func (r *activeTradesRepo) GetPending(ctx context.Context, tx *sql.Tx, key activetrades.Key) (activetrades.Trade, error) {
	var (
		t           activetrades.Trade
		confirmedBy sql.NullInt64
	)

	err := tx.QueryRowContext(ctx, `
		SELECT user1, user2, card_sent1, card_sent2, confirmed, created_by, confirmed_by, created_at
		FROM active_trades
		WHERE user1 = $1 AND user2 = $2 AND card_sent1 = $3 AND card_sent2 = $4
		  AND confirmed = false
	`, key.User1, key.User2, key.CardSent1, key.CardSent2).Scan(
		&t.User1, &t.User2, &t.CardSent1, &t.CardSent2,
		&t.Confirmed, &t.CreatedBy, &confirmedBy, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return activetrades.Trade{}, activetrades.ErrTradeNotFound
		}

		return activetrades.Trade{}, fmt.Errorf("get pending trade: %w", err)
	}

	if confirmedBy.Valid {
		id := uint64(confirmedBy.Int64)
		t.ConfirmedBy = &id
	}

	return t, nil
}
