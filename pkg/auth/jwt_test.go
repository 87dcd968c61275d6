package auth_test

import (
	"errors"
	"testing"

	"github.com/shashiranjanraj/vendora/pkg/auth"
)

func TestGenerateAndValidatePair(t *testing.T) {
	pair, err := auth.GeneratePair(7, true)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := auth.ValidateAccess(pair.Access)
	if err != nil {
		t.Fatalf("validate access: %v", err)
	}
	if claims.UserID != 7 || !claims.Admin {
		t.Errorf("unexpected claims: %+v", claims)
	}

	claims, err = auth.ValidateRefresh(pair.Refresh)
	if err != nil {
		t.Fatalf("validate refresh: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("unexpected refresh claims: %+v", claims)
	}
}

// A refresh token must never pass as an access token, and vice versa.
func TestTokenTypesAreNotInterchangeable(t *testing.T) {
	pair, err := auth.GeneratePair(7, false)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := auth.ValidateAccess(pair.Refresh); !errors.Is(err, auth.ErrWrongTokenType) {
		t.Errorf("expected ErrWrongTokenType for refresh-as-access, got %v", err)
	}
	if _, err := auth.ValidateRefresh(pair.Access); !errors.Is(err, auth.ErrWrongTokenType) {
		t.Errorf("expected ErrWrongTokenType for access-as-refresh, got %v", err)
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	if _, err := auth.ValidateAccess("not.a.jwt"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("password123")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "password123" {
		t.Fatal("password stored unhashed")
	}

	if !auth.CheckPassword(hash, "password123") {
		t.Error("expected correct password to verify")
	}
	if auth.CheckPassword(hash, "wrong") {
		t.Error("expected wrong password to fail")
	}
}
