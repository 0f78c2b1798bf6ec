package api

import (
	"net/http"

	"github.com/fastprodman/pockettrader/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter registers every API endpoint. Mutating routes are rate limited
// per client IP.
func NewRouter(svc Services, rl config.RateLimitConfig) http.Handler {
	h := NewHandler(svc)
	limiter := newIPLimiter(rl.RPS, rl.Burst)

	r := chi.NewRouter()
	r.Use(middleware.RealIP, requestID, requestLogger, middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Get("/collection", h.GetCollection)
		r.Get("/wishlist", h.GetWishlist)
		r.Get("/wishlist/owners", h.GetOwners)
		r.Get("/matches", h.GetMatches)
		r.Get("/trade-opportunities", h.GetOpportunities)
		r.Get("/trade-suggestions", h.GetSuggestions)
		r.Get("/active-trades", h.GetActiveTrades)

		r.Group(func(r chi.Router) {
			r.Use(limiter.middleware)

			r.Post("/collection", h.AddToCollection)
			r.Delete("/collection", h.RemoveFromCollection)
			r.Post("/wishlist", h.AddToWishlist)
			r.Delete("/wishlist", h.RemoveFromWishlist)
			r.Post("/active-trades", h.ProposeTrade)
			r.Post("/active-trades/confirm", h.ConfirmTrade)
			r.Delete("/active-trades", h.DeclineTrade)
		})
	})

	return r
}
