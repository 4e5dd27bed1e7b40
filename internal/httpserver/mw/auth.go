package mw

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/somi-im/somi/internal/logger"
)

// AdminTokenHeader carries the shared admin password on every admin
// request. The auth model is deliberately a single shared plaintext
// secret (not hashed, no sessions); hardening it is out of scope.
const AdminTokenHeader = "X-Admin-Token"

// RequireAdmin rejects requests whose admin token does not match the
// configured password. The comparison is constant-time.
func RequireAdmin(password string, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(AdminTokenHeader)
			if subtle.ConstantTimeCompare([]byte(token), []byte(password)) != 1 {
				log.Warn("admin request rejected",
					logger.String("path", r.URL.Path),
					logger.String("remote_ip", r.RemoteAddr))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
