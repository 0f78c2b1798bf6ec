package matches

import (
	"database/sql"

	"github.com/fastprodman/pockettrader/internal/repos/matches"
)

var _ matches.Matches = (*matchesRepo)(nil)

type matchesRepo struct{ db *sql.DB }

func New(db *sql.DB) *matchesRepo {
	return &matchesRepo{db: db}
}
