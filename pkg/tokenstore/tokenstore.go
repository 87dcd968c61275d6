// Package tokenstore persists the two opaque credential slots of a storefront
// session: the access token sent as a bearer credential, and the refresh
// token exchanged for a new access token after a 401.
//
// Memory keeps the pair for the process lifetime; File additionally persists
// it (AES-GCM encrypted) so a session survives restarts, the same way a
// browser storefront keeps its tokens in per-origin local storage.
package tokenstore

// Store holds the access/refresh token pair.
// Mutations never fail; persistence problems are logged, not surfaced —
// the worst case is a session that does not survive a restart.
type Store interface {
	// Access returns the current access token, or "".
	Access() string
	// Refresh returns the current refresh token, or "".
	Refresh() string
	// SetTokens replaces both slots.
	SetTokens(access, refresh string)
	// SetAccess replaces only the access slot, leaving refresh untouched.
	SetAccess(access string)
	// Clear empties both slots.
	Clear()
}

// Authenticated reports whether an access token is present. Token presence
// is the only signal session initialization uses on load; the token is not
// validated until its first use.
func Authenticated(s Store) bool {
	return s.Access() != ""
}
