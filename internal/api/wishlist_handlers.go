package api

import (
	"net/http"

	"github.com/fastprodman/pockettrader/internal/apperr"
)

// GetWishlist handles GET /api/wishlist
func (h *HandlerProvider) GetWishlist(w http.ResponseWriter, r *http.Request) {
	userID, err := h.resolveUser(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	wishes, err := h.svc.Registry.List(r.Context(), userID, filterFromQuery(r))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, envelope{"items": wishes})
}

// AddToWishlist handles POST /api/wishlist
func (h *HandlerProvider) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	var req cardRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	err = h.svc.Registry.Add(r.Context(), req.UserID, req.CardID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, nil)
}

// RemoveFromWishlist handles DELETE /api/wishlist
func (h *HandlerProvider) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	var req cardRequest

	err := decodeJSON(w, r, &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	err = h.svc.Registry.Remove(r.Context(), req.UserID, req.CardID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, nil)
}

// GetOwners handles GET /api/wishlist/owners?userID=&cardID=
func (h *HandlerProvider) GetOwners(w http.ResponseWriter, r *http.Request) {
	cardID := r.URL.Query().Get("cardID")
	if cardID == "" {
		writeServiceError(w, r, apperr.Invalid("cardID required"))
		return
	}

	userID, err := h.resolveUser(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	owners, err := h.svc.Registry.Owners(r.Context(), userID, cardID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, envelope{"items": owners})
}
