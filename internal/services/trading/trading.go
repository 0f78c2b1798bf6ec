// Package trading owns the lifecycle of two-party trade proposals.
//
// A trade is Proposed until the counterparty confirms it, at which point it is
// settled and removed in one transaction, or until either side declines it.
package trading

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/fastprodman/pockettrader/internal/apperr"
	"github.com/fastprodman/pockettrader/internal/infra/pgutils"
	"github.com/fastprodman/pockettrader/internal/repos/activetrades"
	pgactivetrades "github.com/fastprodman/pockettrader/internal/repos/activetrades/postgres"
	pgcollection "github.com/fastprodman/pockettrader/internal/repos/collection/postgres"
)

type Service struct {
	db     *sql.DB
	trades activetrades.ActiveTrades
	settle settlement
}

func New(db *sql.DB) *Service {
	return &Service{
		db:     db,
		trades: pgactivetrades.New(db),
		settle: settlement{collection: pgcollection.New(db)},
	}
}

// Proposal is user1 offering cardSent1 for user2's cardSent2.
type Proposal struct {
	User1     uint64
	User2     uint64
	CardSent1 string
	CardSent2 string
	CreatedBy uint64
}

func (p Proposal) key() activetrades.Key {
	return activetrades.Key{User1: p.User1, User2: p.User2, CardSent1: p.CardSent1, CardSent2: p.CardSent2}
}

// Propose records a pending trade. Ownership is not checked here; it is
// enforced when the trade settles.
func (s *Service) Propose(ctx context.Context, p Proposal) error {
	err := validateKey(p.key())
	if err != nil {
		return err
	}

	if p.CreatedBy != p.User1 && p.CreatedBy != p.User2 {
		return apperr.Invalid("createdBy must be one of the trading users")
	}

	err = s.trades.Insert(ctx, p.key(), p.CreatedBy)
	if err != nil {
		return fmt.Errorf("propose trade: %w", apperr.Storage(err))
	}

	slog.InfoContext(ctx, "trade proposed",
		"user1", p.User1, "user2", p.User2,
		"card_sent1", p.CardSent1, "card_sent2", p.CardSent2,
		"created_by", p.CreatedBy)

	return nil
}

// Confirm accepts a pending trade on behalf of the counterparty and settles
// it. The confirmed flag flip, all four ledger changes and the row removal
// commit together or not at all.
func (s *Service) Confirm(ctx context.Context, confirmedBy uint64, key activetrades.Key) error {
	err := validateKey(key)
	if err != nil {
		return err
	}

	if confirmedBy != key.User1 && confirmedBy != key.User2 {
		return apperr.Invalid("confirmedBy must be one of the trading users")
	}

	err = pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		trade, err := s.trades.GetPending(ctx, tx, key)
		if err != nil {
			return fmt.Errorf("load trade: %w", err)
		}

		if trade.CreatedBy == confirmedBy {
			return apperr.Invalid("proposer cannot confirm their own trade")
		}

		err = s.trades.MarkConfirmed(ctx, tx, key, confirmedBy)
		if err != nil {
			return fmt.Errorf("mark confirmed: %w", err)
		}

		err = s.settle.execute(ctx, tx, key)
		if err != nil {
			return fmt.Errorf("settle: %w", err)
		}

		err = s.trades.Delete(ctx, tx, key)
		if err != nil {
			return fmt.Errorf("remove settled trade: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) || errors.Is(err, apperr.ErrInsufficientInventory) {
			slog.WarnContext(ctx, "trade not settled", "error", err,
				"user1", key.User1, "user2", key.User2, "confirmed_by", confirmedBy)
		}

		return fmt.Errorf("confirm trade: %w", apperr.Storage(err))
	}

	slog.InfoContext(ctx, "trade settled",
		"user1", key.User1, "user2", key.User2,
		"card_sent1", key.CardSent1, "card_sent2", key.CardSent2,
		"confirmed_by", confirmedBy)

	return nil
}

// Decline removes a pending trade. Declining a trade that is gone or already
// confirmed reports NotFound.
func (s *Service) Decline(ctx context.Context, key activetrades.Key) error {
	err := validateKey(key)
	if err != nil {
		return err
	}

	err = s.trades.DeletePending(ctx, key)
	if err != nil {
		return fmt.Errorf("decline trade: %w", apperr.Storage(err))
	}

	slog.InfoContext(ctx, "trade declined", "user1", key.User1, "user2", key.User2)

	return nil
}

// List returns the pending trades the user is a party to, newest first.
func (s *Service) List(ctx context.Context, userID uint64) ([]activetrades.Pending, error) {
	if userID == 0 || userID > math.MaxInt64 {
		return nil, apperr.Invalid("invalid userID %d", userID)
	}

	trades, err := s.trades.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list trades: %w", apperr.Storage(err))
	}

	return trades, nil
}

func validateKey(k activetrades.Key) error {
	switch {
	case k.User1 == 0 || k.User2 == 0:
		return apperr.Invalid("user1 and user2 required")
	case k.User1 > math.MaxInt64 || k.User2 > math.MaxInt64:
		return apperr.Invalid("user id out of range")
	case k.CardSent1 == "" || k.CardSent2 == "":
		return apperr.Invalid("cardSent1 and cardSent2 required")
	case k.User1 == k.User2:
		return apperr.Invalid("a user cannot trade with themself")
	}

	return nil
}
