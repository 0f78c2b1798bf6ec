package activetrades

import (
	"context"
	"fmt"

	"github.com/fastprodman/pockettrader/internal/infra/pgutils"
	"github.com/fastprodman/pockettrader/internal/repos/activetrades"
)

func (r *activeTradesRepo) Insert(ctx context.Context, key activetrades.Key, createdBy uint64) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO active_trades (user1, user2, card_sent1, card_sent2, confirmed, created_by)
		VALUES ($1, $2, $3, $4, false, $5)
	`, key.User1, key.User2, key.CardSent1, key.CardSent2, createdBy)
	if err != nil {
		switch {
		case pgutils.IsUniqueViolation(err):
			return activetrades.ErrDuplicateProposal
		case pgutils.IsForeignKeyViolation(err):
			return activetrades.ErrUnknownUserOrCard
		}

		return fmt.Errorf("insert trade: %w", err)
	}

	return nil
}
