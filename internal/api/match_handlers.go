package api

import "net/http"

// GetMatches handles GET /api/matches
func (h *HandlerProvider) GetMatches(w http.ResponseWriter, r *http.Request) {
	userID, err := h.resolveUser(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	rows, err := h.svc.Matches.Mutual(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, envelope{"items": rows})
}

// GetOpportunities handles GET /api/trade-opportunities
func (h *HandlerProvider) GetOpportunities(w http.ResponseWriter, r *http.Request) {
	userID, err := h.resolveUser(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	rows, err := h.svc.Matches.Opportunities(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, envelope{"items": rows})
}

// GetSuggestions handles GET /api/trade-suggestions
func (h *HandlerProvider) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	userID, err := h.resolveUser(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	s, err := h.svc.Matches.Suggestions(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, envelope{"matches": s.Matches, "opportunities": s.Opportunities})
}
