package services_test

import (
	"errors"
	"testing"

	"github.com/shashiranjanraj/vendora/app/services"
	"github.com/shashiranjanraj/vendora/pkg/auth"
)

func TestSignupAndLogin(t *testing.T) {
	testDB(t)
	svc := services.NewAuthService()

	user, err := svc.Signup("John Doe", "john@example.com", "password123")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.Password == "password123" {
		t.Fatal("password stored in plaintext")
	}

	got, pair, err := svc.Login("john@example.com", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("expected user %d, got %d", user.ID, got.ID)
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Error("expected a full token pair")
	}

	claims, err := auth.ValidateAccess(pair.Access)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != user.ID || claims.Admin {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	testDB(t)
	svc := services.NewAuthService()

	if _, err := svc.Signup("John", "john@example.com", "password123"); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	if _, err := svc.Signup("Johnny", "john@example.com", "different"); !errors.Is(err, services.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}
}

// Wrong password and unknown email look identical to the caller.
func TestLoginRejections(t *testing.T) {
	testDB(t)
	svc := services.NewAuthService()

	if _, err := svc.Signup("John", "john@example.com", "password123"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, _, err := svc.Login("john@example.com", "wrong"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login("ghost@example.com", "password123"); !errors.Is(err, services.ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefreshMintsAccessOnly(t *testing.T) {
	testDB(t)
	svc := services.NewAuthService()

	user, err := svc.Signup("John", "john@example.com", "password123")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	_, pair, err := svc.Login("john@example.com", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	access, err := svc.Refresh(pair.Refresh)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	claims, err := auth.ValidateAccess(access)
	if err != nil {
		t.Fatalf("validate minted token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("expected user %d, got %d", user.ID, claims.UserID)
	}

	// An access token can never be used as a refresh token.
	if _, err := svc.Refresh(pair.Access); err == nil {
		t.Error("expected refresh with an access token to fail")
	}
}

func TestChangePassword(t *testing.T) {
	testDB(t)
	svc := services.NewAuthService()

	user, err := svc.Signup("John", "john@example.com", "password123")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "wrong", "newpassword"); !errors.Is(err, services.ErrWrongPassword) {
		t.Errorf("expected ErrWrongPassword, got %v", err)
	}

	if err := svc.ChangePassword(user.ID, "password123", "newpassword"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	if _, _, err := svc.Login("john@example.com", "newpassword"); err != nil {
		t.Errorf("expected login with new password to work, got %v", err)
	}
	if _, _, err := svc.Login("john@example.com", "password123"); err == nil {
		t.Error("expected old password to stop working")
	}
}
