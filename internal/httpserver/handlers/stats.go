package handlers

import (
	"net/http"

	"github.com/somi-im/somi/internal/httpserver/deps"
	"github.com/somi-im/somi/internal/stats"
)

// CardStats serves the compact public stat cards (30-day expiry window).
func CardStats(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, stats.ComputeCards(d.Catalog.Snapshot(), d.Now()))
	}
}

// OverviewStats serves the admin dashboard aggregate (3-month expiry
// window). The two windows are intentionally separate computations.
func OverviewStats(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, stats.ComputeOverview(d.Catalog.Snapshot(), d.Now()))
	}
}
