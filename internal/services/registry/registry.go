// Package registry manages each user's wishlist.
package registry

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"github.com/fastprodman/pockettrader/internal/apperr"
	"github.com/fastprodman/pockettrader/internal/catalog"
	"github.com/fastprodman/pockettrader/internal/repos/wishlist"
	pgwishlist "github.com/fastprodman/pockettrader/internal/repos/wishlist/postgres"
)

type Service struct {
	wishes wishlist.Wishlist
}

func New(db *sql.DB) *Service {
	return &Service{wishes: pgwishlist.New(db)}
}

func (s *Service) Add(ctx context.Context, userID uint64, cardID string) error {
	err := validateKey(userID, cardID)
	if err != nil {
		return err
	}

	err = s.wishes.Add(ctx, userID, cardID)
	if err != nil {
		return fmt.Errorf("add wish %s: %w", cardID, apperr.Storage(err))
	}

	return nil
}

func (s *Service) Remove(ctx context.Context, userID uint64, cardID string) error {
	err := validateKey(userID, cardID)
	if err != nil {
		return err
	}

	err = s.wishes.Remove(ctx, userID, cardID)
	if err != nil {
		return fmt.Errorf("remove wish %s: %w", cardID, apperr.Storage(err))
	}

	return nil
}

func (s *Service) List(ctx context.Context, userID uint64, filter catalog.Filter) ([]wishlist.Wish, error) {
	err := validateUser(userID)
	if err != nil {
		return nil, err
	}

	wishes, err := s.wishes.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list wishes: %w", apperr.Storage(err))
	}

	return wishes, nil
}

// Owners returns the other users holding a spare copy of cardID, most copies
// first.
func (s *Service) Owners(ctx context.Context, userID uint64, cardID string) ([]wishlist.Owner, error) {
	err := validateKey(userID, cardID)
	if err != nil {
		return nil, err
	}

	owners, err := s.wishes.Owners(ctx, userID, cardID)
	if err != nil {
		return nil, fmt.Errorf("owners of %s: %w", cardID, apperr.Storage(err))
	}

	return owners, nil
}

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
