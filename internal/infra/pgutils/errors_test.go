package pgutils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestPgErrorClassification(t *testing.T) {
	t.Parallel()

	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23503"})
	overflow := fmt.Errorf("update: %w", &pgconn.PgError{Code: "22003"})
	other := errors.New("boom")

	tests := []struct {
		name       string
		err        error
		wantUnique bool
		wantFK     bool
		wantRange  bool
	}{
		{name: "unique_violation", err: unique, wantUnique: true},
		{name: "fk_violation", err: fk, wantFK: true},
		{name: "numeric_out_of_range", err: overflow, wantRange: true},
		{name: "plain_error", err: other},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsUniqueViolation(tt.err); got != tt.wantUnique {
				t.Fatalf("IsUniqueViolation: want %v, got %v", tt.wantUnique, got)
			}

			if got := IsForeignKeyViolation(tt.err); got != tt.wantFK {
				t.Fatalf("IsForeignKeyViolation: want %v, got %v", tt.wantFK, got)
			}

			if got := IsNumericOutOfRange(tt.err); got != tt.wantRange {
				t.Fatalf("IsNumericOutOfRange: want %v, got %v", tt.wantRange, got)
			}
		})
	}
}
