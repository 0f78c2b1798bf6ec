package activetrades

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fastprodman/pockettrader/internal/apperr"
)

var (
	ErrTradeNotFound     = fmt.Errorf("trade %w", apperr.ErrNotFound)
	ErrUnknownUserOrCard = fmt.Errorf("unknown user or card: %w", apperr.ErrNotFound)
	ErrDuplicateProposal = fmt.Errorf("trade already proposed: %w", apperr.ErrConflict)
	ErrConcurrentConfirm = fmt.Errorf("trade already being confirmed: %w", apperr.ErrConflict)
)

// Key is the natural key of a trade: user1 sends cardSent1 to user2, user2
// sends cardSent2 to user1.
type Key struct {
	User1     uint64
	User2     uint64
	CardSent1 string
	CardSent2 string
}

type Trade struct {
	Key
	Confirmed   bool
	CreatedBy   uint64
	ConfirmedBy *uint64
	CreatedAt   time.Time
}

// Pending is a listing row of an unconfirmed trade joined with user and card
// details.
type Pending struct {
	InitiatorID        uint64    `json:"initiatorID"`
	InitiatorName      string    `json:"initiatorName"`
	ResponderID        uint64    `json:"responderID"`
	ResponderName      string    `json:"responderName"`
	CardOfferedByUser1 string    `json:"cardOfferedByUser1"`
	Card1Name          string    `json:"cardOfferedByUser1Name"`
	Card1Image         string    `json:"cardOfferedByUser1Image"`
	CardOfferedByUser2 string    `json:"cardOfferedByUser2"`
	Card2Name          string    `json:"cardOfferedByUser2Name"`
	Card2Image         string    `json:"cardOfferedByUser2Image"`
	CreatedBy          uint64    `json:"createdBy"`
	Confirmed          bool      `json:"confirmed"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"createdAt"`
}

const StatusPending = "pending"

// ActiveTrades owns the active_trades rows. Only unconfirmed rows are ever
// visible outside a confirming transaction.
type ActiveTrades interface {
	Insert(ctx context.Context, key Key, createdBy uint64) error
	GetPending(ctx context.Context, tx *sql.Tx, key Key) (Trade, error)
	MarkConfirmed(ctx context.Context, tx *sql.Tx, key Key, confirmedBy uint64) error
	Delete(ctx context.Context, tx *sql.Tx, key Key) error
	DeletePending(ctx context.Context, key Key) error
	ListForUser(ctx context.Context, userID uint64) ([]Pending, error)
}
