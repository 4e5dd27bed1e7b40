package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/somi-im/somi/internal/httpserver/deps"
	"github.com/somi-im/somi/internal/httpserver/handlers"
)

func init() { Register(registerPublic) }

// Public read endpoints backing the storefront: listing with filters,
// the filter option sets, and the visitor statistics cards.
func registerPublic(r chi.Router, d deps.Deps) {
	r.Get("/api/domains", handlers.ListDomains(d))
	r.Get("/api/domains/options", handlers.ListOptions(d))
	r.Get("/api/stats/cards", handlers.CardStats(d))
}
