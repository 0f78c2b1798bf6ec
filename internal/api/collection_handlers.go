package api

import "net/http"

type acquireRequest struct {
	UserID   uint64 `json:"userID" validate:"required"`
	CardID   string `json:"cardID" validate:"required"`
	Quantity *int   `json:"quantity"`
}

type cardRequest struct {
	UserID uint64 `json:"userID" validate:"required"`
	CardID string `json:"cardID" validate:"required"`
}

// GetCollection handles GET /api/collection
func (h *HandlerProvider) GetCollection(w http.ResponseWriter, r *http.Request) {
	userID, err := h.resolveUser(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	items, err := h.svc.Ledger.Query(r.Context(), userID, filterFromQuery(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, envelope{"items": items})
}

// AddToCollection handles POST /api/collection. Quantity defaults to one copy.
func (h *HandlerProvider) AddToCollection(w http.ResponseWriter, r *http.Request) {
	var req acquireRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}

	quantity, err := h.svc.Ledger.Acquire(r.Context(), req.UserID, req.CardID, qty)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, envelope{"quantity": quantity})
}

// RemoveFromCollection handles DELETE /api/collection
func (h *HandlerProvider) RemoveFromCollection(w http.ResponseWriter, r *http.Request) {
	var req cardRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	quantity, err := h.svc.Ledger.Dispose(r.Context(), req.UserID, req.CardID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, envelope{"quantity": quantity})
}
