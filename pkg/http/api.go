package http

import (
	"fmt"
	gohttp "net/http"
	"strings"

	"github.com/shashiranjanraj/vendora/pkg/logger"
	"github.com/shashiranjanraj/vendora/pkg/tokenstore"
)

// API sends requests against one backend, attaching the session's bearer
// credential and recovering from expired access tokens: a 401 triggers
// exactly one refresh-and-resend before the response is handed back.
type API struct {
	baseURL string
	tokens  tokenstore.Store
	expired func()
}

// Option configures an API.
type Option func(*API)

// OnSessionExpired registers the callback fired when the refresh path is
// exhausted (refresh token missing or the refresh call itself failing).
// Both token slots are already cleared when it runs; a UI typically
// navigates to its login screen here.
func OnSessionExpired(fn func()) Option {
	return func(a *API) { a.expired = fn }
}

// NewAPI builds an API rooted at baseURL whose credentials live in tokens.
func NewAPI(baseURL string, tokens tokenstore.Store, opts ...Option) *API {
	a := &API{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		expired: func() {},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// BaseURL returns the backend root this API talks to.
func (a *API) BaseURL() string { return a.baseURL }

// Get sends an authenticated GET to path (joined onto the base URL).
func (a *API) Get(path string) (*Response, error) {
	return a.Do(Get(a.baseURL + path))
}

// Post sends an authenticated POST with a JSON body.
func (a *API) Post(path string, body interface{}) (*Response, error) {
	return a.Do(Post(a.baseURL + path).Body(body))
}

// Do sends req with the current access token attached (when present) and
// applies the single-refresh retry policy.
func (a *API) Do(req *Request) (*Response, error) {
	send := func() (*Response, error) {
		if tok := a.tokens.Access(); tok != "" {
			req.Bearer(tok)
		}
		return req.Send()
	}
	return a.withSingleRefreshRetry(send)
}

// withSingleRefreshRetry runs send and, on a 401, refreshes the access token
// and runs send once more. Retry state lives entirely in this call frame, so
// a 401 on the resend simply passes through — there is no way to loop.
func (a *API) withSingleRefreshRetry(send func() (*Response, error)) (*Response, error) {
	resp, err := send()
	if err != nil || resp.StatusCode != gohttp.StatusUnauthorized {
		return resp, err
	}

	refresh := a.tokens.Refresh()
	if refresh == "" {
		a.expireSession()
		return resp, nil
	}

	access, err := a.refreshAccessToken(refresh)
	if err != nil {
		logger.Warn("http: token refresh failed", "error", err)
		a.expireSession()
		return resp, nil
	}

	// Refresh token stays as-is; only the access slot rotates.
	a.tokens.SetAccess(access)
	return send()
}

// refreshAccessToken exchanges the refresh token for a new access token.
// The refresh call itself is never retried and carries no bearer credential.
func (a *API) refreshAccessToken(refresh string) (string, error) {
	resp, err := Post(a.baseURL + "/token/refresh").
		Body(map[string]string{"refresh": refresh}).
		Send()
	if err != nil {
		return "", err
	}
	if err := resp.Throw(); err != nil {
		return "", err
	}

	var out struct {
		Data struct {
			Access string `json:"access"`
		} `json:"data"`
	}
	if err := resp.JSON(&out); err != nil {
		return "", err
	}
	if out.Data.Access == "" {
		return "", fmt.Errorf("http: refresh response carried no access token")
	}
	return out.Data.Access, nil
}

func (a *API) expireSession() {
	a.tokens.Clear()
	a.expired()
}
