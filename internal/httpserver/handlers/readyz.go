package handlers

import (
	"net/http"

	"github.com/somi-im/somi/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready   bool `json:"ready"`
	Records int  `json:"records"`
}

func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, readyzResponse{
			Ready:   true,
			Records: d.Cell.Len(),
		})
	}
}
