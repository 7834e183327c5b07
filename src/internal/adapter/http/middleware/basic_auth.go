package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/api-sage/branch-ledger/src/internal/commons"
	"github.com/api-sage/branch-ledger/src/internal/logger"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// BasicAuth admits requests whose basic credentials match the channel id and key.
func BasicAuth(channelID, channelKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fields := logger.Fields{
				"requestId": chimw.GetReqID(r.Context()),
				"method":    r.Method,
				"path":      r.URL.Path,
			}

			if channelID == "" || channelKey == "" {
				logger.Error("basic auth middleware missing server configuration", nil, fields)
				reject(w, http.StatusInternalServerError, "server auth configuration is missing")
				return
			}

			id, key, ok := r.BasicAuth()
			if !ok || !secureEqual(id, channelID) || !secureEqual(key, channelKey) {
				fields["credentials"] = "invalid_or_missing"
				logger.Warn("basic auth middleware unauthorized request", fields)
				w.Header().Set("WWW-Authenticate", `Basic realm="branch-ledger"`)
				reject(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func reject(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(commons.ErrorResponse[struct{}](message))
}

func secureEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
