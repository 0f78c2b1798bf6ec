package collection

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fastprodman/pockettrader/internal/infra/pgtestutil"
	"github.com/fastprodman/pockettrader/internal/repos/collection"
)

func TestCollection_Dispose_Table(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		startQty   int // 0 -> no row
		wantQty    int
		wantErr    error
		wantAbsent bool
	}{
		{name: "decrements", startQty: 3, wantQty: 2},
		{name: "last_copy_deletes_row", startQty: 1, wantQty: 0, wantAbsent: true},
		{name: "missing_row", startQty: 0, wantErr: collection.ErrNotInCollection, wantAbsent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			db, cleanup := pgtestutil.NewTestDB(t)
			defer cleanup()

			seedBase(t, db)
			if tt.startQty > 0 {
				pgtestutil.SeedCollection(t, db, 1, "A1-094", tt.startQty)
			}

			repo := New(db)

			ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
			defer cancel()

			tx, err := db.BeginTx(ctx, nil)
			if err != nil {
				t.Fatalf("begin tx: %v", err)
			}
			defer func() { _ = tx.Rollback() }()

			got, err := repo.Dispose(ctx, tx, 1, "A1-094")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want %v, got %v", tt.wantErr, err)
				}
			} else {
				if err != nil {
					t.Fatalf("dispose: %v", err)
				}
				if got != tt.wantQty {
					t.Fatalf("quantity: want %d, got %d", tt.wantQty, got)
				}

				err = tx.Commit()
				if err != nil {
					t.Fatalf("commit: %v", err)
				}
			}

			var rows int

			err = db.QueryRow(`SELECT COUNT(*) FROM collection WHERE user_id = 1 AND card_id = 'A1-094'`).Scan(&rows)
			if err != nil {
				t.Fatalf("count: %v", err)
			}
			if tt.wantAbsent && rows != 0 {
				t.Fatalf("expected row to be absent, found %d", rows)
			}

			var zeroRows int

			err = db.QueryRow(`SELECT COUNT(*) FROM collection WHERE quantity <= 0`).Scan(&zeroRows)
			if err != nil {
				t.Fatalf("count zero rows: %v", err)
			}
			if zeroRows != 0 {
				t.Fatalf("found %d rows with non-positive quantity", zeroRows)
			}
		})
	}
}

// Three concurrent disposals against two copies: exactly two succeed and the
// row ends up deleted, never at zero.
func TestCollection_Dispose_ConcurrentGuard(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	seedBase(t, db)
	pgtestutil.SeedCollection(t, db, 2, "A1-001", 2)

	repo := New(db)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		success  int
		notFound int
	)

	worker := func(name string) {
		defer wg.Done()

		ctx := context.Background()

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			t.Errorf("[%s] begin tx: %v", name, err)
			return
		}
		defer func() { _ = tx.Rollback() }()

		_, err = repo.Dispose(ctx, tx, 2, "A1-001")
		if err == nil {
			err = tx.Commit()
			if err != nil {
				t.Errorf("[%s] commit: %v", name, err)
				return
			}

			mu.Lock()
			success++
			mu.Unlock()

			return
		}

		if errors.Is(err, collection.ErrNotInCollection) {
			mu.Lock()
			notFound++
			mu.Unlock()

			return
		}

		t.Errorf("[%s] unexpected error: %v", name, err)
	}

	wg.Add(3)
	go worker("A")
	go worker("B")
	go worker("C")
	wg.Wait()

	if success != 2 || notFound != 1 {
		t.Fatalf("want 2 success and 1 not found, got success=%d notFound=%d", success, notFound)
	}

	if q := pgtestutil.Quantity(t, db, 2, "A1-001"); q != 0 {
		t.Fatalf("expected row deleted, quantity=%d", q)
	}
}
