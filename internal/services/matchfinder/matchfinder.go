// Package matchfinder discovers reciprocal trades and trade opportunities.
// Nothing is cached; every call reads the current collection and wishlist.
package matchfinder

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fastprodman/pockettrader/internal/apperr"
	"github.com/fastprodman/pockettrader/internal/repos/matches"
	pgmatches "github.com/fastprodman/pockettrader/internal/repos/matches/postgres"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	matches    matches.Matches
	sameRarity bool
}

// Suggestions bundles both discovery lists for one user.
type Suggestions struct {
	Matches       []matches.Mutual      `json:"matches"`
	Opportunities []matches.Opportunity `json:"opportunities"`
}

// New builds the finder. With sameRarity set, mutual matches are restricted
// to card pairs of equal rarity.
func New(db *sql.DB, sameRarity bool) *Service {
	return &Service{matches: pgmatches.New(db), sameRarity: sameRarity}
}

func (s *Service) Mutual(ctx context.Context, userID uint64) ([]matches.Mutual, error) {
	if userID == 0 {
		return nil, apperr.Invalid("userID required")
	}

	rows, err := s.matches.Mutual(ctx, userID, s.sameRarity)
	if err != nil {
		return nil, fmt.Errorf("mutual matches: %w", apperr.Storage(err))
	}

	return rows, nil
}

func (s *Service) Opportunities(ctx context.Context, userID uint64) ([]matches.Opportunity, error) {
	if userID == 0 {
		return nil, apperr.Invalid("userID required")
	}

	rows, err := s.matches.Opportunities(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("trade opportunities: %w", apperr.Storage(err))
	}

	return rows, nil
}

// Suggestions loads mutual matches and opportunities concurrently.
func (s *Service) Suggestions(ctx context.Context, userID uint64) (Suggestions, error) {
	if userID == 0 {
		return Suggestions{}, apperr.Invalid("userID required")
	}

	var out Suggestions

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.Mutual(gctx, userID)
		out.Matches = rows

		return err
	})

	g.Go(func() error {
		rows, err := s.Opportunities(gctx, userID)
		out.Opportunities = rows

		return err
	})

	err := g.Wait()
	if err != nil {
		return Suggestions{}, err
	}

	return out, nil
}
