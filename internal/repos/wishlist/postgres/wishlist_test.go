package wishlist

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/fastprodman/pockettrader/internal/apperr"
	"github.com/fastprodman/pockettrader/internal/catalog"
	"github.com/fastprodman/pockettrader/internal/infra/pgtestutil"
	"github.com/fastprodman/pockettrader/internal/repos/wishlist"
)

func dateAdded(t *testing.T, db *sql.DB, userID uint64, cardID string) time.Time {
	t.Helper()

	var at time.Time

	err := db.QueryRow(`
		SELECT date_added FROM wishlist WHERE user_id = $1 AND card_id = $2
	`, userID, cardID).Scan(&at)
	if err != nil {
		t.Fatalf("read date_added: %v", err)
	}

	return at
}

func TestWishlist_Add(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	pgtestutil.SeedUser(t, db, 1, "ash")
	pgtestutil.SeedCard(t, db, "A1-094", "Pikachu", "1D")

	repo := New(db)
	old := time.Now().Add(-48 * time.Hour).UTC()
	pgtestutil.SeedWish(t, db, 1, "A1-094", old)

	err := repo.Add(t.Context(), 1, "A1-094")
	if err != nil {
		t.Fatalf("re-add: %v", err)
	}

	if got := pgtestutil.CountRows(t, db, "wishlist"); got != 1 {
		t.Fatalf("want a single wish row, got %d", got)
	}

	if refreshed := dateAdded(t, db, 1, "A1-094"); !refreshed.After(old) {
		t.Fatalf("date_added not refreshed: old=%v new=%v", old, refreshed)
	}

	err = repo.Add(t.Context(), 1, "ZZ-000")
	if !errors.Is(err, wishlist.ErrUnknownUserOrCard) {
		t.Fatalf("unknown card: want ErrUnknownUserOrCard, got %v", err)
	}

	err = repo.Add(t.Context(), 99, "A1-094")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("unknown user: want not found, got %v", err)
	}
}

func TestWishlist_Remove(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	pgtestutil.SeedUser(t, db, 1, "ash")
	pgtestutil.SeedCard(t, db, "A1-094", "Pikachu", "1D")
	pgtestutil.SeedWish(t, db, 1, "A1-094", time.Now())

	repo := New(db)

	err := repo.Remove(t.Context(), 1, "A1-094")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}

	err = repo.Remove(t.Context(), 1, "A1-094")
	if !errors.Is(err, wishlist.ErrNotInWishlist) {
		t.Fatalf("second remove: want ErrNotInWishlist, got %v", err)
	}
}

func TestWishlist_List(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	pgtestutil.SeedUser(t, db, 1, "ash")
	pgtestutil.SeedCardFull(t, db, "A1-094", "Pikachu", "Pikachu", "1D", "Lightning")
	pgtestutil.SeedCardFull(t, db, "A1-036", "Charizard ex", "Charizard", "4D", "Fire")
	pgtestutil.SeedCardFull(t, db, "A1-001", "Bulbasaur", "Mewtwo", "1D", "Grass")

	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	pgtestutil.SeedWish(t, db, 1, "A1-094", at)
	pgtestutil.SeedWish(t, db, 1, "A1-036", at)
	pgtestutil.SeedWish(t, db, 1, "A1-001", at)

	repo := New(db)

	all, err := repo.List(t.Context(), 1, catalog.Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	wantOrder := []string{"A1-001", "A1-036", "A1-094"}
	if len(all) != len(wantOrder) {
		t.Fatalf("want %d wishes, got %+v", len(wantOrder), all)
	}

	for i, id := range wantOrder {
		if all[i].CardID != id {
			t.Fatalf("position %d: want %s, got %s", i, id, all[i].CardID)
		}
		if !all[i].DateAdded.Equal(at) {
			t.Fatalf("dateAdded for %s: want %v, got %v", id, at, all[i].DateAdded)
		}
	}

	oneD, err := repo.List(t.Context(), 1, catalog.Filter{Rarity: "1D", NameContains: "CHU"})
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if len(oneD) != 1 || oneD[0].CardID != "A1-094" {
		t.Fatalf("filtered list: got %+v", oneD)
	}

	none, err := repo.List(t.Context(), 2, catalog.Filter{})
	if err != nil {
		t.Fatalf("empty list: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", none)
	}
}

func TestWishlist_Owners(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	pgtestutil.SeedUser(t, db, 5, "brock")
	pgtestutil.SeedUser(t, db, 7, "misty")
	pgtestutil.SeedUser(t, db, 9, "gary")
	pgtestutil.SeedUser(t, db, 11, "erika")
	pgtestutil.SeedCard(t, db, "A1-010", "Butterfree", "3D")

	pgtestutil.SeedWish(t, db, 5, "A1-010", time.Now())
	pgtestutil.SeedCollection(t, db, 5, "A1-010", 4) // requester never lists themself
	pgtestutil.SeedCollection(t, db, 7, "A1-010", 3)
	pgtestutil.SeedCollection(t, db, 9, "A1-010", 1)
	pgtestutil.SeedCollection(t, db, 11, "A1-010", 3)

	owners, err := New(db).Owners(t.Context(), 5, "A1-010")
	if err != nil {
		t.Fatalf("owners: %v", err)
	}

	want := []wishlist.Owner{
		{OwnerID: 11, Username: "erika", Quantity: 3, Surplus: 2},
		{OwnerID: 7, Username: "misty", Quantity: 3, Surplus: 2},
	}

	if len(owners) != len(want) {
		t.Fatalf("want %+v, got %+v", want, owners)
	}

	for i := range want {
		if owners[i] != want[i] {
			t.Fatalf("position %d: want %+v, got %+v", i, want[i], owners[i])
		}
	}
}
