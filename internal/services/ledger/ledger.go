// Package ledger is the only writer of collection quantities outside a
// settlement.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"github.com/fastprodman/pockettrader/internal/apperr"
	"github.com/fastprodman/pockettrader/internal/catalog"
	"github.com/fastprodman/pockettrader/internal/infra/pgutils"
	"github.com/fastprodman/pockettrader/internal/repos/collection"
	pgcollection "github.com/fastprodman/pockettrader/internal/repos/collection/postgres"
)

type Service struct {
	db         *sql.DB
	collection collection.Collection
}

func New(db *sql.DB) *Service {
	return &Service{
		db:         db,
		collection: pgcollection.New(db),
	}
}

// Acquire adds qty copies of cardID and returns the new quantity.
func (s *Service) Acquire(ctx context.Context, userID uint64, cardID string, qty int) (int, error) {
	err := validateKey(userID, cardID)
	if err != nil {
		return 0, err
	}

	if qty <= 0 {
		return 0, apperr.Invalid("quantity must be positive, got %d", qty)
	}

	if qty > math.MaxInt32 {
		return 0, apperr.Invalid("quantity %d too large", qty)
	}

	quantity, err := s.collection.Acquire(ctx, s.db, userID, cardID, qty)
	if err != nil {
		return 0, fmt.Errorf("acquire %s: %w", cardID, apperr.Storage(err))
	}

	return quantity, nil
}

// Dispose removes a single copy and returns the new quantity; 0 means the
// card left the collection.
func (s *Service) Dispose(ctx context.Context, userID uint64, cardID string) (int, error) {
	err := validateKey(userID, cardID)
	if err != nil {
		return 0, err
	}

	var quantity int

	err = pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		var derr error

		quantity, derr = s.collection.Dispose(ctx, tx, userID, cardID)

		return derr
	})
	if err != nil {
		return 0, fmt.Errorf("dispose %s: %w", cardID, apperr.Storage(err))
	}

	return quantity, nil
}

// Query lists the user's collection ordered by card name.
func (s *Service) Query(ctx context.Context, userID uint64, filter catalog.Filter) ([]collection.Item, error) {
	err := validateUser(userID)
	if err != nil {
		return nil, err
	}

	items, err := s.collection.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("query collection: %w", apperr.Storage(err))
	}

	return items, nil
}

// validateUser rejects ids outside the BIGINT range of users.id.
func validateUser(userID uint64) error {
	switch {
	case userID == 0:
		return apperr.Invalid("userID required")
	case userID > math.MaxInt64:
		return apperr.Invalid("userID %d out of range", userID)
	}

	return nil
}

func validateKey(userID uint64, cardID string) error {
	err := validateUser(userID)
	if err != nil {
		return err
	}

	if cardID == "" {
		return apperr.Invalid("cardID required")
	}

	return nil
}
