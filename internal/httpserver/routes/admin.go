package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/somi-im/somi/internal/httpserver/deps"
	"github.com/somi-im/somi/internal/httpserver/handlers"
	"github.com/somi-im/somi/internal/httpserver/mw"
)

func init() { Register(registerAdmin) }

func registerAdmin(r chi.Router, d deps.Deps) {
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(mw.AllowOnlyCIDRS(d.AdminCIDRS, d.TrustProxy, d.Logger))

		// Login is the only admin endpoint reachable without a token.
		r.Post("/login", handlers.AdminLogin(d))

		r.Group(func(r chi.Router) {
			r.Use(mw.RequireAdmin(d.AdminPassword, d.Logger))

			r.Get("/stats", handlers.OverviewStats(d))

			r.Post("/domains", handlers.CreateRecord(d))
			r.Put("/domains/{id}", handlers.UpdateRecord(d))
			r.Delete("/domains/{id}", handlers.DeleteRecord(d))
			r.Post("/domains/batch/status", handlers.BatchStatus(d))
			r.Post("/domains/batch/delete", handlers.BatchDelete(d))

			r.Post("/import/preview", handlers.ImportPreview(d))
			r.Post("/import/{session}/commit", handlers.ImportCommit(d))
			r.Delete("/import/{session}", handlers.ImportAbort(d))

			r.Get("/export/csv", handlers.ExportCSV(d))
			r.Get("/backup", handlers.Backup(d))
			r.Post("/restore", handlers.Restore(d))
		})
	})
}
