package collection

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fastprodman/pockettrader/internal/repos/collection"
)

// Dispose removes one copy and returns the resulting quantity; 0 means the
// row was deleted. The row is locked first so concurrent disposals and
// acquisitions on the same (user, card) serialize.
func (r *collectionRepo) Dispose(ctx context.Context, tx *sql.Tx, userID uint64, cardID string) (int, error) {
	current, err := lockQuantity(ctx, tx, userID, cardID)
	if err != nil {
		return 0, err
	}

	if current > 1 {
		return decrement(ctx, tx, userID, cardID)
	}

	return 0, deleteLast(ctx, tx, userID, cardID)
}

func lockQuantity(ctx context.Context, tx *sql.Tx, userID uint64, cardID string) (int, error) {
	var qty int

	err := tx.QueryRowContext(ctx, `
		SELECT quantity
		FROM collection
		WHERE user_id = $1 AND card_id = $2
		FOR UPDATE
	`, userID, cardID).Scan(&qty)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, collection.ErrNotInCollection
		}

		return 0, fmt.Errorf("lock quantity: %w", err)
	}

	return qty, nil
}

func decrement(ctx context.Context, tx *sql.Tx, userID uint64, cardID string) (int, error) {
	var qty int

	err := tx.QueryRowContext(ctx, `
		UPDATE collection
		SET quantity = quantity - 1
		WHERE user_id = $1 AND card_id = $2
		  AND quantity > 1
		RETURNING quantity
	`, userID, cardID).Scan(&qty)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, collection.ErrNotInCollection
		}

		return 0, fmt.Errorf("decrement: %w", err)
	}

	return qty, nil
}

func deleteLast(ctx context.Context, tx *sql.Tx, userID uint64, cardID string) error {
	res, err := tx.ExecContext(ctx, `
		DELETE FROM collection
		WHERE user_id = $1 AND card_id = $2
		  AND quantity = 1
	`, userID, cardID)
	if err != nil {
		return fmt.Errorf("delete last copy: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if affected == 0 {
		return collection.ErrNotInCollection
	}

	return nil
}
