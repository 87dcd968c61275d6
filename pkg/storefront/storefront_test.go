package storefront_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shashiranjanraj/vendora/pkg/http"
	"github.com/shashiranjanraj/vendora/pkg/storefront"
	"github.com/shashiranjanraj/vendora/pkg/testkit"
	"github.com/shashiranjanraj/vendora/pkg/tokenstore"
)

const base = "https://api.test/api"

func mock(t *testing.T, stubs ...testkit.Stub) *testkit.MockTransport {
	t.Helper()
	mt := testkit.NewMockTransport(stubs...)
	http.DefaultClient.Transport = mt
	t.Cleanup(http.ResetTransport)
	return mt
}

const loginOK = `{"status":200,"data":{"access":"a1","refresh":"r1","user":{"id":7,"name":"John Doe","email":"john@example.com","is_admin":false}}}`

func TestLoginStoresTokensAndUser(t *testing.T) {
	mock(t, testkit.Stub{Method: "POST", URL: "/auth/login", Status: 200, Body: loginOK})

	tokens := tokenstore.NewMemory()
	s := storefront.NewSession(base, tokens)

	if err := s.Login(context.Background(), "john@example.com", "password123"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if tokens.Access() != "a1" || tokens.Refresh() != "r1" {
		t.Errorf("unexpected tokens: %q / %q", tokens.Access(), tokens.Refresh())
	}
	if !s.IsAuthenticated() {
		t.Error("expected authenticated session")
	}
	user, ok := s.CurrentUser()
	if !ok || user.Email != "john@example.com" {
		t.Errorf("unexpected user: %+v (ok=%v)", user, ok)
	}
	if s.IsAdmin() {
		t.Error("expected non-admin user")
	}
}

// A rejected login must not disturb tokens from an earlier session.
func TestFailedLoginLeavesTokensAlone(t *testing.T) {
	mt := mock(t,
		testkit.Stub{Method: "POST", URL: "/auth/login", Status: 401, Body: `{"status":401,"message":"invalid email or password"}`},
		testkit.Stub{Method: "POST", URL: "/token/refresh", Status: 200, Body: `{"data":{"access":"x"}}`},
	)

	tokens := tokenstore.NewMemory()
	tokens.SetTokens("a-old", "r-old")
	s := storefront.NewSession(base, tokens)

	err := s.Login(context.Background(), "john@example.com", "wrong")
	if !errors.Is(err, storefront.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if tokens.Access() != "a-old" || tokens.Refresh() != "r-old" {
		t.Errorf("stored tokens were mutated: %q / %q", tokens.Access(), tokens.Refresh())
	}
	// The 401 from login must never trigger the refresh path.
	if got := mt.Calls("POST", "/token/refresh"); got != 0 {
		t.Errorf("expected no refresh attempt, got %d", got)
	}
}

func TestSignupLogsIn(t *testing.T) {
	mock(t,
		testkit.Stub{Method: "POST", URL: "/auth/signup", Status: 201, Body: `{"status":201,"data":{"id":8}}`},
		testkit.Stub{Method: "POST", URL: "/auth/login", Status: 200, Body: loginOK},
	)

	s := storefront.NewSession(base, tokenstore.NewMemory())
	if err := s.Signup(context.Background(), "John Doe", "john@example.com", "password123"); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if !s.IsAuthenticated() {
		t.Error("expected signup to end in an authenticated session")
	}
}

func TestLogout(t *testing.T) {
	mock(t, testkit.Stub{Method: "POST", URL: "/auth/login", Status: 200, Body: loginOK})

	tokens := tokenstore.NewMemory()
	wentHome := false
	s := storefront.NewSession(base, tokens, storefront.OnNavigateHome(func() { wentHome = true }))

	if err := s.Login(context.Background(), "john@example.com", "password123"); err != nil {
		t.Fatalf("login: %v", err)
	}

	s.Logout()
	if s.IsAuthenticated() {
		t.Error("expected signed-out session")
	}
	if tokens.Access() != "" || tokens.Refresh() != "" {
		t.Error("expected tokens cleared")
	}
	if !wentHome {
		t.Error("expected navigate-home callback")
	}
}

func TestResumeWithStoredToken(t *testing.T) {
	mock(t, testkit.Stub{Method: "GET", URL: "/user/profile", Status: 200,
		Body: `{"status":200,"data":{"id":7,"name":"John Doe","email":"john@example.com","is_admin":true}}`})

	tokens := tokenstore.NewMemory()
	tokens.SetTokens("a1", "r1")
	s := storefront.NewSession(base, tokens)

	if err := s.Resume(context.Background()); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if !s.IsAuthenticated() {
		t.Error("expected resumed session to be authenticated")
	}
	if !s.IsAdmin() {
		t.Error("expected admin flag from profile")
	}
}

func TestResumeWithoutTokenStaysSignedOut(t *testing.T) {
	mt := mock(t)

	s := storefront.NewSession(base, tokenstore.NewMemory())
	if err := s.Resume(context.Background()); err != nil {
		t.Fatalf("resume: %v", err)
	}
	if s.IsAuthenticated() {
		t.Error("expected signed-out session")
	}
	if mt.TotalCalls() != 0 {
		t.Errorf("expected no network traffic, got %d calls", mt.TotalCalls())
	}
}

func TestSessionExpiryClearsUser(t *testing.T) {
	mock(t,
		testkit.Stub{Method: "POST", URL: "/auth/login", Status: 200, Body: loginOK},
		testkit.Stub{Method: "GET", URL: "/user/orders", Status: 401, Body: `{"status":401}`},
		testkit.Stub{Method: "POST", URL: "/token/refresh", Status: 401, Body: `{"status":401}`},
	)

	tokens := tokenstore.NewMemory()
	expired := false
	s := storefront.NewSession(base, tokens, storefront.OnSessionExpired(func() { expired = true }))

	if err := s.Login(context.Background(), "john@example.com", "password123"); err != nil {
		t.Fatalf("login: %v", err)
	}

	if _, err := s.Orders(context.Background()); err == nil {
		t.Fatal("expected the orders fetch to fail")
	}
	if !expired {
		t.Error("expected the session-expired callback to fire")
	}
	if s.IsAuthenticated() {
		t.Error("expected session cleared after refresh gave up")
	}
}

func TestOrdersUnwrapsEnvelope(t *testing.T) {
	mock(t, testkit.Stub{Method: "GET", URL: "/user/orders", Status: 200,
		Body: `{"status":200,"data":[{"number":"3F2A9C01","status":"delivered","total":42.39,"items":[{"name":"Yoga Mat","quantity":2,"price":9.25}]}]}`})

	tokens := tokenstore.NewMemory()
	tokens.SetTokens("a1", "r1")
	s := storefront.NewSession(base, tokens)

	orders, err := s.Orders(context.Background())
	if err != nil {
		t.Fatalf("orders: %v", err)
	}
	if len(orders) != 1 || orders[0].Number != "3F2A9C01" {
		t.Errorf("unexpected orders: %+v", orders)
	}
	if len(orders[0].Items) != 1 || orders[0].Items[0].Quantity != 2 {
		t.Errorf("unexpected items: %+v", orders[0].Items)
	}
}
