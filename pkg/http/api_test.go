package http_test

import (
	"testing"

	"github.com/shashiranjanraj/vendora/pkg/http"
	"github.com/shashiranjanraj/vendora/pkg/testkit"
	"github.com/shashiranjanraj/vendora/pkg/tokenstore"
)

const base = "https://api.test"

func mock(t *testing.T, stubs ...testkit.Stub) *testkit.MockTransport {
	t.Helper()
	mt := testkit.NewMockTransport(stubs...)
	http.DefaultClient.Transport = mt
	t.Cleanup(http.ResetTransport)
	return mt
}

func TestGetAttachesBearer(t *testing.T) {
	mock(t, testkit.Stub{Method: "GET", URL: "/user/profile", Status: 200, Body: `{"data":{}}`})

	tokens := tokenstore.NewMemory()
	tokens.SetTokens("access-1", "refresh-1")

	resp, err := http.NewAPI(base, tokens).Get("/user/profile")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.OK() {
		t.Errorf("expected 2xx, got %d", resp.StatusCode)
	}
}

func TestRefreshOn401ThenResend(t *testing.T) {
	mt := mock(t,
		testkit.Stub{Method: "GET", URL: "/orders", Status: 401, Body: `{"status":401}`, Times: 1},
		testkit.Stub{Method: "POST", URL: "/token/refresh", Status: 200, Body: `{"data":{"access":"access-2"}}`},
		testkit.Stub{Method: "GET", URL: "/orders", Status: 200, Body: `{"data":[]}`},
	)

	tokens := tokenstore.NewMemory()
	tokens.SetTokens("access-stale", "refresh-1")

	resp, err := http.NewAPI(base, tokens).Get("/orders")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected the resend to succeed, got %d", resp.StatusCode)
	}
	if got := mt.Calls("POST", "/token/refresh"); got != 1 {
		t.Errorf("expected exactly 1 refresh call, got %d", got)
	}
	if got := tokens.Access(); got != "access-2" {
		t.Errorf("expected rotated access token, got %q", got)
	}
	if got := tokens.Refresh(); got != "refresh-1" {
		t.Errorf("refresh token must never rotate, got %q", got)
	}
}

func TestNoRefreshTokenExpiresSession(t *testing.T) {
	mt := mock(t,
		testkit.Stub{Method: "GET", URL: "/orders", Status: 401, Body: `{"status":401}`},
		testkit.Stub{Method: "POST", URL: "/token/refresh", Status: 200, Body: `{"data":{"access":"x"}}`},
	)

	tokens := tokenstore.NewMemory()
	tokens.SetAccess("access-stale") // no refresh token stored

	expired := false
	api := http.NewAPI(base, tokens, http.OnSessionExpired(func() { expired = true }))

	resp, err := api.Get("/orders")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("expected the original 401 back, got %d", resp.StatusCode)
	}
	if !expired {
		t.Error("expected the session-expired callback to fire")
	}
	if got := mt.Calls("POST", "/token/refresh"); got != 0 {
		t.Errorf("expected no refresh attempt, got %d", got)
	}
	if tokenstore.Authenticated(tokens) {
		t.Error("expected tokens cleared")
	}
}

func TestFailedRefreshExpiresSession(t *testing.T) {
	mt := mock(t,
		testkit.Stub{Method: "GET", URL: "/orders", Status: 401, Body: `{"status":401}`},
		testkit.Stub{Method: "POST", URL: "/token/refresh", Status: 401, Body: `{"status":401,"message":"refresh expired"}`},
	)

	tokens := tokenstore.NewMemory()
	tokens.SetTokens("access-stale", "refresh-dead")

	expired := false
	api := http.NewAPI(base, tokens, http.OnSessionExpired(func() { expired = true }))

	resp, err := api.Get("/orders")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("expected the original 401 back, got %d", resp.StatusCode)
	}
	if !expired {
		t.Error("expected the session-expired callback to fire")
	}
	if tokens.Access() != "" || tokens.Refresh() != "" {
		t.Error("expected both token slots cleared")
	}
	// The original request must not be resent after a failed refresh.
	if got := mt.Calls("GET", "/orders"); got != 1 {
		t.Errorf("expected 1 original call only, got %d", got)
	}
}

// A 401 on the resend passes straight through: retry state lives in the
// call frame, so there is no second refresh.
func TestResend401PassesThrough(t *testing.T) {
	mt := mock(t,
		testkit.Stub{Method: "GET", URL: "/orders", Status: 401, Body: `{"status":401}`},
		testkit.Stub{Method: "POST", URL: "/token/refresh", Status: 200, Body: `{"data":{"access":"access-2"}}`},
	)

	tokens := tokenstore.NewMemory()
	tokens.SetTokens("access-stale", "refresh-1")

	resp, err := http.NewAPI(base, tokens).Get("/orders")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("expected the resend's 401, got %d", resp.StatusCode)
	}
	if got := mt.Calls("POST", "/token/refresh"); got != 1 {
		t.Errorf("expected exactly 1 refresh, got %d", got)
	}
	if got := mt.Calls("GET", "/orders"); got != 2 {
		t.Errorf("expected original + one resend, got %d calls", got)
	}
}

func TestRefreshResponseWithoutAccessToken(t *testing.T) {
	mock(t,
		testkit.Stub{Method: "GET", URL: "/orders", Status: 401, Body: `{"status":401}`},
		testkit.Stub{Method: "POST", URL: "/token/refresh", Status: 200, Body: `{"data":{}}`},
	)

	tokens := tokenstore.NewMemory()
	tokens.SetTokens("access-stale", "refresh-1")

	expired := false
	api := http.NewAPI(base, tokens, http.OnSessionExpired(func() { expired = true }))

	resp, err := api.Get("/orders")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("expected the original 401 back, got %d", resp.StatusCode)
	}
	if !expired {
		t.Error("expected the session-expired callback to fire")
	}
}
