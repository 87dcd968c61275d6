// Package storefront is the client SDK a storefront UI binds to: an
// authenticated session, typed calls for the user and admin endpoints, and
// the login/signup/logout flows. Cart and catalogue state live in their own
// packages; this one owns identity.
package storefront

import (
	"context"
	"errors"
	"fmt"
	"sync"

	vhttp "github.com/shashiranjanraj/vendora/pkg/http"
	"github.com/shashiranjanraj/vendora/pkg/logger"
	"github.com/shashiranjanraj/vendora/pkg/tokenstore"
)

// ErrInvalidCredentials is returned by Login when the backend rejects the
// email/password pair.
var ErrInvalidCredentials = errors.New("storefront: invalid credentials")

// User is the authenticated identity held in memory for the session's life.
type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// Session ties a token store to a backend and tracks at most one signed-in
// user. The session is authenticated only while both an access token is
// stored AND a user identity is set.
type Session struct {
	api    *vhttp.API
	tokens tokenstore.Store

	mu   sync.RWMutex
	user *User

	home func()
}

// Option configures a Session.
type Option func(*Session)

// OnNavigateHome registers the callback fired after Logout, typically to
// return the UI to its unauthenticated entry point.
func OnNavigateHome(fn func()) Option {
	return func(s *Session) { s.home = fn }
}

// OnSessionExpired registers the callback fired when the token-refresh path
// gives up mid-request. The session's user and tokens are already cleared
// when it runs.
func OnSessionExpired(fn func()) Option {
	return func(s *Session) {
		s.api = vhttp.NewAPI(s.api.BaseURL(), s.tokens, vhttp.OnSessionExpired(func() {
			s.clearUser()
			fn()
		}))
	}
}

// NewSession builds a Session against baseURL with credentials in tokens.
func NewSession(baseURL string, tokens tokenstore.Store, opts ...Option) *Session {
	s := &Session{
		tokens: tokens,
		home:   func() {},
	}
	s.api = vhttp.NewAPI(baseURL, tokens, vhttp.OnSessionExpired(s.clearUser))

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resume restores the session after a restart: when a stored access token is
// present the user identity is fetched from the profile endpoint. Without a
// token the session simply stays signed out.
func (s *Session) Resume(ctx context.Context) error {
	if !tokenstore.Authenticated(s.tokens) {
		return nil
	}

	profile, err := s.Profile(ctx)
	if err != nil {
		logger.Warn("storefront: resume session", "error", err)
		return fmt.Errorf("storefront: resume: %w", err)
	}

	s.setUser(&User{ID: profile.ID, Name: profile.Name, Email: profile.Email, IsAdmin: profile.IsAdmin})
	return nil
}

// Login authenticates with the backend. On success both tokens are stored
// and the returned user becomes the session identity. On failure nothing is
// mutated — stored tokens survive a mistyped password.
func (s *Session) Login(ctx context.Context, email, password string) error {
	resp, err := vhttp.Post(s.api.BaseURL() + "/auth/login").
		WithContext(ctx).
		Body(map[string]string{"email": email, "password": password}).
		Send()
	if err != nil {
		return fmt.Errorf("storefront: login: %w", err)
	}
	if resp.StatusCode == 401 {
		return ErrInvalidCredentials
	}
	if err := resp.Throw(); err != nil {
		return fmt.Errorf("storefront: login: %w", err)
	}

	var out struct {
		Data struct {
			Access  string `json:"access"`
			Refresh string `json:"refresh"`
			User    User   `json:"user"`
		} `json:"data"`
	}
	if err := resp.JSON(&out); err != nil {
		return fmt.Errorf("storefront: login: %w", err)
	}

	s.tokens.SetTokens(out.Data.Access, out.Data.Refresh)
	s.setUser(&out.Data.User)
	return nil
}

// Signup registers a new account and immediately logs in with the same
// credentials. A failure in either step propagates.
func (s *Session) Signup(ctx context.Context, name, email, password string) error {
	resp, err := vhttp.Post(s.api.BaseURL() + "/auth/signup").
		WithContext(ctx).
		Body(map[string]string{"name": name, "email": email, "password": password}).
		Send()
	if err != nil {
		return fmt.Errorf("storefront: signup: %w", err)
	}
	if err := resp.Throw(); err != nil {
		return fmt.Errorf("storefront: signup: %w", err)
	}

	return s.Login(ctx, email, password)
}

// Logout clears both tokens and the in-memory user, then navigates home.
func (s *Session) Logout() {
	s.tokens.Clear()
	s.clearUser()
	s.home()
}

// IsAuthenticated reports whether an access token is stored AND a user is set.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && tokenstore.Authenticated(s.tokens)
}

// IsAdmin reports the signed-in user's admin flag; false with no user.
func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.IsAdmin
}

// CurrentUser returns the in-memory user, or (zero, false) when signed out.
func (s *Session) CurrentUser() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

func (s *Session) setUser(u *User) {
	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

func (s *Session) clearUser() {
	s.setUser(nil)
}
