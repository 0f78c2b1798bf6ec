package trading

import (
	"database/sql"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/fastprodman/pockettrader/internal/apperr"
	"github.com/fastprodman/pockettrader/internal/infra/pgtestutil"
	"github.com/fastprodman/pockettrader/internal/repos/activetrades"
	"golang.org/x/sync/errgroup"
)

const (
	alice = uint64(1)
	bob   = uint64(2)
)

var swap = activetrades.Key{User1: alice, User2: bob, CardSent1: "X", CardSent2: "Y"}

// alice holds 2×X and wishes for Y; bob holds 2×Y and wishes for X.
func seedSwap(t *testing.T, db *sql.DB) {
	t.Helper()

	pgtestutil.SeedUser(t, db, alice, "alice")
	pgtestutil.SeedUser(t, db, bob, "bob")
	pgtestutil.SeedCard(t, db, "X", "Bulbasaur", "1D")
	pgtestutil.SeedCard(t, db, "Y", "Pikachu", "1D")
	pgtestutil.SeedCollection(t, db, alice, "X", 2)
	pgtestutil.SeedCollection(t, db, bob, "Y", 2)
}

func proposal(k activetrades.Key, createdBy uint64) Proposal {
	return Proposal{User1: k.User1, User2: k.User2, CardSent1: k.CardSent1, CardSent2: k.CardSent2, CreatedBy: createdBy}
}

func TestTrading_Validation(t *testing.T) {
	t.Parallel()

	svc := New(nil)

	tests := []struct {
		name string
		err  error
	}{
		{name: "propose_missing_card", err: svc.Propose(t.Context(), Proposal{User1: 1, User2: 2, CardSent1: "X", CreatedBy: 1})},
		{name: "propose_missing_user", err: svc.Propose(t.Context(), Proposal{User1: 1, CardSent1: "X", CardSent2: "Y", CreatedBy: 1})},
		{name: "propose_self_trade", err: svc.Propose(t.Context(), Proposal{User1: 1, User2: 1, CardSent1: "X", CardSent2: "Y", CreatedBy: 1})},
		{name: "propose_outsider_creator", err: svc.Propose(t.Context(), proposal(swap, 3))},
		{name: "confirm_outsider", err: svc.Confirm(t.Context(), 3, swap)},
		{name: "confirm_missing_card", err: svc.Confirm(t.Context(), bob, activetrades.Key{User1: alice, User2: bob, CardSent1: "X"})},
		{name: "propose_user_past_int64", err: svc.Propose(t.Context(), Proposal{User1: 1, User2: math.MaxUint64, CardSent1: "X", CardSent2: "Y", CreatedBy: 1})},
		{name: "confirm_user_past_int64", err: svc.Confirm(t.Context(), 2, activetrades.Key{User1: math.MaxInt64 + 1, User2: 2, CardSent1: "X", CardSent2: "Y"})},
		{name: "decline_missing_user", err: svc.Decline(t.Context(), activetrades.Key{User1: alice, CardSent1: "X", CardSent2: "Y"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, apperr.ErrInvalidArgument) {
				t.Fatalf("want ErrInvalidArgument, got %v", tt.err)
			}
		})
	}

	_, err := svc.List(t.Context(), 0)
	if !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Fatalf("list: want ErrInvalidArgument, got %v", err)
	}
}

func TestTrading_ProposeConfirmSwap(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	seedSwap(t, db)

	svc := New(db)
	ctx := t.Context()

	err := svc.Propose(ctx, proposal(swap, alice))
	if err != nil {
		t.Fatalf("propose: %v", err)
	}

	err = svc.Propose(ctx, proposal(swap, alice))
	if !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("duplicate propose: want conflict, got %v", err)
	}

	pending, err := svc.List(ctx, bob)
	if err != nil || len(pending) != 1 {
		t.Fatalf("list for bob: %+v err=%v", pending, err)
	}

	err = svc.Confirm(ctx, alice, swap)
	if !errors.Is(err, apperr.ErrInvalidArgument) {
		t.Fatalf("proposer confirming own trade: want invalid argument, got %v", err)
	}

	err = svc.Confirm(ctx, bob, swap)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}

	for _, c := range []struct {
		user uint64
		card string
	}{{alice, "X"}, {alice, "Y"}, {bob, "X"}, {bob, "Y"}} {
		if q := pgtestutil.Quantity(t, db, c.user, c.card); q != 1 {
			t.Fatalf("user %d card %s: want 1, got %d", c.user, c.card, q)
		}
	}

	if n := pgtestutil.CountRows(t, db, "active_trades"); n != 0 {
		t.Fatalf("settled trade must be removed, rows=%d", n)
	}

	err = svc.Confirm(ctx, bob, swap)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("retried confirm: want not found, got %v", err)
	}
}

func TestTrading_ProposeUnknownCard(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	seedSwap(t, db)

	err := New(db).Propose(t.Context(), Proposal{User1: alice, User2: bob, CardSent1: "X", CardSent2: "NOPE", CreatedBy: alice})
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("want not found, got %v", err)
	}
}

// bob no longer holds Y: alice's X must be returned and the trade kept.
func TestTrading_SettlementRollsBack(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	pgtestutil.SeedUser(t, db, alice, "alice")
	pgtestutil.SeedUser(t, db, bob, "bob")
	pgtestutil.SeedCard(t, db, "X", "Bulbasaur", "1D")
	pgtestutil.SeedCard(t, db, "Y", "Pikachu", "1D")
	pgtestutil.SeedCollection(t, db, alice, "X", 1)

	svc := New(db)

	err := svc.Propose(t.Context(), proposal(swap, alice))
	if err != nil {
		t.Fatalf("propose: %v", err)
	}

	err = svc.Confirm(t.Context(), bob, swap)
	if !errors.Is(err, apperr.ErrInsufficientInventory) {
		t.Fatalf("want insufficient inventory, got %v", err)
	}
	if errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("settlement failure must not look like a missing trade: %v", err)
	}

	if q := pgtestutil.Quantity(t, db, alice, "X"); q != 1 {
		t.Fatalf("alice's X must be untouched, got %d", q)
	}
	if q := pgtestutil.Quantity(t, db, bob, "X"); q != 0 {
		t.Fatalf("bob must not be credited, got %d", q)
	}

	pending, err := svc.List(t.Context(), alice)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pending) != 1 || pending[0].Confirmed {
		t.Fatalf("trade must remain proposed, got %+v", pending)
	}
}

func TestTrading_DeclineTwice(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	seedSwap(t, db)

	svc := New(db)

	err := svc.Propose(t.Context(), proposal(swap, bob))
	if err != nil {
		t.Fatalf("propose: %v", err)
	}

	err = svc.Decline(t.Context(), swap)
	if err != nil {
		t.Fatalf("decline: %v", err)
	}

	err = svc.Decline(t.Context(), swap)
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("second decline: want not found, got %v", err)
	}

	if q := pgtestutil.Quantity(t, db, alice, "X"); q != 2 {
		t.Fatalf("decline must not touch inventory, got %d", q)
	}
}

func TestTrading_ConcurrentConfirmSettlesOnce(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	seedSwap(t, db)

	svc := New(db)

	err := svc.Propose(t.Context(), proposal(swap, alice))
	if err != nil {
		t.Fatalf("propose: %v", err)
	}

	const confirmers = 4

	var (
		mu     sync.Mutex
		wins   int
		misses int
	)

	var g errgroup.Group

	for range confirmers {
		g.Go(func() error {
			cerr := svc.Confirm(t.Context(), bob, swap)

			mu.Lock()
			defer mu.Unlock()

			switch {
			case cerr == nil:
				wins++
			case errors.Is(cerr, apperr.ErrNotFound), errors.Is(cerr, apperr.ErrConflict):
				misses++
			default:
				return cerr
			}

			return nil
		})
	}

	err = g.Wait()
	if err != nil {
		t.Fatalf("unexpected confirm error: %v", err)
	}

	if wins != 1 || misses != confirmers-1 {
		t.Fatalf("want exactly one settlement, got wins=%d misses=%d", wins, misses)
	}

	if a, b := pgtestutil.Quantity(t, db, alice, "X"), pgtestutil.Quantity(t, db, bob, "X"); a != 1 || b != 1 {
		t.Fatalf("X after one swap: alice=%d bob=%d", a, b)
	}
	if a, b := pgtestutil.Quantity(t, db, alice, "Y"), pgtestutil.Quantity(t, db, bob, "Y"); a != 1 || b != 1 {
		t.Fatalf("Y after one swap: alice=%d bob=%d", a, b)
	}
}
