package pgtestutil

import (
	"database/sql"
	"fmt"
	"testing"
	"time"
)

// SeedUser inserts a user with the given id and username.
func SeedUser(t *testing.T, db *sql.DB, id uint64, username string) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO users (id, username, password_hash)
		VALUES ($1, $2, 'x')
	`, id, username)
	if err != nil {
		t.Fatalf("seed user(%d): %v", id, err)
	}
}

// SeedCard inserts a catalog card. Name defaults to the id when empty.
func SeedCard(t *testing.T, db *sql.DB, id, name, rarity string) {
	t.Helper()

	if name == "" {
		name = id
	}

	_, err := db.Exec(`
		INSERT INTO cards (id, name, pack_name, rarity, type, image_url)
		VALUES ($1, $2, 'Shared', $3, 'Colorless', '')
	`, id, name, rarity)
	if err != nil {
		t.Fatalf("seed card(%s): %v", id, err)
	}
}

// SeedCardFull inserts a catalog card with every attribute set.
func SeedCardFull(t *testing.T, db *sql.DB, id, name, pack, rarity, typ string) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO cards (id, name, pack_name, rarity, type, image_url)
		VALUES ($1, $2, $3, $4, $5, '')
	`, id, name, pack, rarity, typ)
	if err != nil {
		t.Fatalf("seed card(%s): %v", id, err)
	}
}

func SeedCollection(t *testing.T, db *sql.DB, userID uint64, cardID string, qty int) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO collection (user_id, card_id, quantity)
		VALUES ($1, $2, $3)
	`, userID, cardID, qty)
	if err != nil {
		t.Fatalf("seed collection(%d, %s): %v", userID, cardID, err)
	}
}

func SeedWish(t *testing.T, db *sql.DB, userID uint64, cardID string, at time.Time) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO wishlist (user_id, card_id, date_added)
		VALUES ($1, $2, $3)
	`, userID, cardID, at)
	if err != nil {
		t.Fatalf("seed wish(%d, %s): %v", userID, cardID, err)
	}
}

// Quantity returns the stored quantity, or 0 when the row is absent.
func Quantity(t *testing.T, db *sql.DB, userID uint64, cardID string) int {
	t.Helper()

	var qty int

	err := db.QueryRow(`
		SELECT COALESCE(
			(SELECT quantity FROM collection WHERE user_id = $1 AND card_id = $2), 0)
	`, userID, cardID).Scan(&qty)
	if err != nil {
		t.Fatalf("read quantity(%d, %s): %v", userID, cardID, err)
	}

	return qty
}

// CountRows returns COUNT(*) of table; table must be a trusted identifier.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var n int

	err := db.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM %s`, table)).Scan(&n)
	if err != nil {
		t.Fatalf("count %s: %v", table, err)
	}

	return n
}
