package collection

import (
	"context"
	"fmt"

	"github.com/fastprodman/pockettrader/internal/infra/pgutils"
	"github.com/fastprodman/pockettrader/internal/repos/collection"
)

// Acquire adds qty copies and returns the resulting quantity. qty must be
// positive; callers validate it.
func (r *collectionRepo) Acquire(
	ctx context.Context, q pgutils.Querier, userID uint64, cardID string, qty int,
) (int, error) {
	var quantity int

	err := q.QueryRowContext(ctx, `
		INSERT INTO collection (user_id, card_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, card_id)
		DO UPDATE SET quantity = collection.quantity + EXCLUDED.quantity
		RETURNING quantity
	`, userID, cardID, qty).Scan(&quantity)
	if err != nil {
		if pgutils.IsForeignKeyViolation(err) {
			return 0, collection.ErrUnknownUserOrCard
		}

		if pgutils.IsNumericOutOfRange(err) {
			return 0, collection.ErrQuantityOverflow
		}

		return 0, fmt.Errorf("acquire: %w", err)
	}

	return quantity, nil
}
