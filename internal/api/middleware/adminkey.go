package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/jaiidees/riser-gacha/internal/api/apierr"
)

// AdminKeyHeader carries the shared admin secret
const AdminKeyHeader = "X-Admin-Key"

// AdminKey creates middleware requiring the shared admin secret header.
// An empty configured secret rejects every request rather than opening
// the admin surface.
func AdminKey(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(AdminKeyHeader)
			if secret == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
