package api

import (
	"net/http"

	"github.com/fastprodman/pockettrader/internal/repos/activetrades"
	"github.com/fastprodman/pockettrader/internal/services/trading"
)

type tradeKeyRequest struct {
	User1     uint64 `json:"user1" validate:"required"`
	User2     uint64 `json:"user2" validate:"required"`
	CardSent1 string `json:"cardSent1" validate:"required"`
	CardSent2 string `json:"cardSent2" validate:"required"`
}

func (t tradeKeyRequest) key() activetrades.Key {
	return activetrades.Key{User1: t.User1, User2: t.User2, CardSent1: t.CardSent1, CardSent2: t.CardSent2}
}

type proposeRequest struct {
	User1     uint64 `json:"user1" validate:"required"`
	User2     uint64 `json:"user2" validate:"required"`
	CardSent1 string `json:"cardSent1" validate:"required"`
	CardSent2 string `json:"cardSent2" validate:"required"`
	CreatedBy uint64 `json:"createdBy" validate:"required"`
}

type confirmRequest struct {
	ConfirmedBy uint64 `json:"confirmedBy" validate:"required"`
	User1       uint64 `json:"user1" validate:"required"`
	User2       uint64 `json:"user2" validate:"required"`
	CardSent1   string `json:"cardSent1" validate:"required"`
	CardSent2   string `json:"cardSent2" validate:"required"`
}

// GetActiveTrades handles GET /api/active-trades
func (h *HandlerProvider) GetActiveTrades(w http.ResponseWriter, r *http.Request) {
	userID, err := h.resolveUser(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	trades, err := h.svc.Trading.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, envelope{"items": trades})
}

// ProposeTrade handles POST /api/active-trades
func (h *HandlerProvider) ProposeTrade(w http.ResponseWriter, r *http.Request) {
	var req proposeRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	err = h.svc.Trading.Propose(r.Context(), trading.Proposal{
		User1:     req.User1,
		User2:     req.User2,
		CardSent1: req.CardSent1,
		CardSent2: req.CardSent2,
		CreatedBy: req.CreatedBy,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, nil)
}

// ConfirmTrade handles POST /api/active-trades/confirm
func (h *HandlerProvider) ConfirmTrade(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	key := activetrades.Key{User1: req.User1, User2: req.User2, CardSent1: req.CardSent1, CardSent2: req.CardSent2}

	err = h.svc.Trading.Confirm(r.Context(), req.ConfirmedBy, key)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, nil)
}

// DeclineTrade handles DELETE /api/active-trades
func (h *HandlerProvider) DeclineTrade(w http.ResponseWriter, r *http.Request) {
	var req tradeKeyRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	err = h.svc.Trading.Decline(r.Context(), req.key())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, nil)
}
