package activetrades

import (
	"database/sql"

	"github.com/fastprodman/pockettrader/internal/repos/activetrades"
)

var _ activetrades.ActiveTrades = (*activeTradesRepo)(nil)

type activeTradesRepo struct{ db *sql.DB }

func New(db *sql.DB) *activeTradesRepo {
	return &activeTradesRepo{db: db}
}
