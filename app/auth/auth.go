// Package auth guards admin routes with the shared admin token.
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/showcase/catalog-api/app/api"
	"go.uber.org/zap"
)

const bearerPrefix = "Bearer "

// RequireAdmin rejects requests whose Authorization header does not carry
// token, with or without a "Bearer " prefix. An empty token rejects everything.
func RequireAdmin(token string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				api.Error(w, http.StatusUnauthorized, "Authorization token is required")
				return
			}
			presented := strings.TrimPrefix(header, bearerPrefix)
			if token == "" || subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
				zap.L().Warn("rejected admin request",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("remote", r.RemoteAddr))
				api.Error(w, http.StatusUnauthorized, "Invalid authorization token")
				return
			}
			next(w, r)
		}
	}
}
