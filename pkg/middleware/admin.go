package middleware

import (
	"net/http"

	"github.com/shashiranjanraj/vendora/pkg/response"
)

// Admin allows only users whose access token carries the admin claim.
// Wire it after Auth.
func Admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromCtx(r.Context())
		if !ok || !claims.Admin {
			response.Forbidden(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}
