package activetrades

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/pockettrader/internal/infra/pgutils"
	"github.com/fastprodman/pockettrader/internal/repos/activetrades"
)

// Delete removes a trade regardless of its confirmed flag. It is the last step
// of a settlement.
func (r *activeTradesRepo) Delete(ctx context.Context, tx *sql.Tx, key activetrades.Key) error {
	return deleteTrade(ctx, tx, key, false)
}

// DeletePending declines a trade. Confirmed rows are never touched.
func (r *activeTradesRepo) DeletePending(ctx context.Context, key activetrades.Key) error {
	return deleteTrade(ctx, r.db, key, true)
}

func deleteTrade(ctx context.Context, q pgutils.Querier, key activetrades.Key, pendingOnly bool) error {
	res, err := q.ExecContext(ctx, `
		DELETE FROM active_trades
		WHERE user1 = $1 AND user2 = $2 AND card_sent1 = $3 AND card_sent2 = $4
		  AND (NOT $5::boolean OR confirmed = false)
	`, key.User1, key.User2, key.CardSent1, key.CardSent2, pendingOnly)
	if err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return activetrades.ErrTradeNotFound
	}

	return nil
}
