package api

import (
	"context"

	"github.com/fastprodman/pockettrader/internal/catalog"
	"github.com/fastprodman/pockettrader/internal/repos/activetrades"
	"github.com/fastprodman/pockettrader/internal/repos/collection"
	"github.com/fastprodman/pockettrader/internal/repos/matches"
	"github.com/fastprodman/pockettrader/internal/repos/wishlist"
	"github.com/fastprodman/pockettrader/internal/services/matchfinder"
	"github.com/fastprodman/pockettrader/internal/services/trading"
)

type Directory interface {
	Resolve(ctx context.Context, userID uint64, username string) (uint64, error)
}

type Ledger interface {
	Acquire(ctx context.Context, userID uint64, cardID string, qty int) (int, error)
	Dispose(ctx context.Context, userID uint64, cardID string) (int, error)
	Query(ctx context.Context, userID uint64, filter catalog.Filter) ([]collection.Item, error)
}

type Registry interface {
	Add(ctx context.Context, userID uint64, cardID string) error
	Remove(ctx context.Context, userID uint64, cardID string) error
	List(ctx context.Context, userID uint64, filter catalog.Filter) ([]wishlist.Wish, error)
	Owners(ctx context.Context, userID uint64, cardID string) ([]wishlist.Owner, error)
}

type MatchFinder interface {
	Mutual(ctx context.Context, userID uint64) ([]matches.Mutual, error)
	Opportunities(ctx context.Context, userID uint64) ([]matches.Opportunity, error)
	Suggestions(ctx context.Context, userID uint64) (matchfinder.Suggestions, error)
}

type Trading interface {
	Propose(ctx context.Context, p trading.Proposal) error
	Confirm(ctx context.Context, confirmedBy uint64, key activetrades.Key) error
	Decline(ctx context.Context, key activetrades.Key) error
	List(ctx context.Context, userID uint64) ([]activetrades.Pending, error)
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Services is everything the HTTP layer talks to.
type Services struct {
	Directory Directory
	Ledger    Ledger
	Registry  Registry
	Matches   MatchFinder
	Trading   Trading
	DB        Pinger
}

// HandlerProvider exposes the trade core as HTTP handlers.
type HandlerProvider struct {
	svc Services
}

func NewHandler(svc Services) *HandlerProvider {
	return &HandlerProvider{svc: svc}
}
