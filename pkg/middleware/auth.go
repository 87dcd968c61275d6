package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/vendora/pkg/auth"
	"github.com/shashiranjanraj/vendora/pkg/response"
)

type claimsKey struct{}

// Auth validates the bearer access token and stores its claims in the
// request context. Missing, malformed, expired and refresh-typed tokens all
// yield a 401 — the storefront client reacts by running its one-shot
// refresh-and-retry.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateAccess(token)
		if err != nil {
			response.Unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromCtx returns the validated token claims stored by Auth.
func ClaimsFromCtx(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	return c, ok
}

// UserIDFromCtx returns the authenticated user's ID, or (0, false).
func UserIDFromCtx(ctx context.Context) (uint, bool) {
	c, ok := ClaimsFromCtx(ctx)
	if !ok {
		return 0, false
	}
	return c.UserID, true
}
