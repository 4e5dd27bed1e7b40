package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/somi-im/somi/internal/httpserver/deps"
	"github.com/somi-im/somi/internal/logger"
	"github.com/somi-im/somi/internal/utils"
)

type loginRequest struct {
	Password string `json:"password"`
}

// AdminLogin checks the admin password. On success the client reuses the
// password as the X-Admin-Token header for the admin endpoints.
func AdminLogin(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if subtle.ConstantTimeCompare([]byte(req.Password), []byte(d.AdminPassword)) != 1 {
			d.Logger.Warn("admin login rejected",
				logger.String("remote", utils.ClientIP(r, d.TrustProxy)))
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}
