package activetrades

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/pockettrader/internal/repos/activetrades"
)

// MarkConfirmed flips confirmed from false to true. Zero rows affected means
// another confirmer got there first.
func (r *activeTradesRepo) MarkConfirmed(
	ctx context.Context, tx *sql.Tx, key activetrades.Key, confirmedBy uint64,
) error {
	res, err := tx.ExecContext(ctx, `
		UPDATE active_trades
		SET confirmed = true, confirmed_by = $5
		WHERE user1 = $1 AND user2 = $2 AND card_sent1 = $3 AND card_sent2 = $4
		  AND confirmed = false
	`, key.User1, key.User2, key.CardSent1, key.CardSent2, confirmedBy)
	if err != nil {
		return fmt.Errorf("mark confirmed: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return activetrades.ErrConcurrentConfirm
	}

	return nil
}
