package handlers

import (
	"net/http"

	"github.com/somi-im/somi/internal/httpserver/deps"
	"github.com/somi-im/somi/internal/stats"
)

// ListDomains serves the public listing, filtered by the q/provider/
// suffix query parameters. Filters are pure functions of the current
// snapshot; nothing is cached between requests.
func ListDomains(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := stats.Query{
			Search:   r.URL.Query().Get("q"),
			Provider: r.URL.Query().Get("provider"),
			Suffix:   r.URL.Query().Get("suffix"),
		}
		records := stats.Filter(d.Catalog.Snapshot(), q)
		writeJSON(w, http.StatusOK, map[string]any{
			"total":   len(records),
			"domains": records,
		})
	}
}

// ListOptions serves the selectable filter values for the public page.
func ListOptions(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, stats.FilterOptions(d.Catalog.Snapshot()))
	}
}
