package validate_test

import (
	"testing"

	"github.com/shashiranjanraj/vendora/pkg/validate"
)

type signupInput struct {
	Name     string `json:"name"     validate:"required,alpha_dash,min=2,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Bio      string `json:"bio"      validate:"nullable,max=200"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(signupInput{
		Name:     "john_doe",
		Email:    "john@example.com",
		Password: "password123",
		Bio:      "", // nullable — allowed to be empty
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(signupInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	for _, field := range []string{"name", "email", "password"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required", field)
		}
	}
}

func TestEmailRule(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}
	if errs := validate.Struct(in{Email: "not-an-email"}); !validate.HasErrors(errs) {
		t.Error("expected email validation error")
	}
	if errs := validate.Struct(in{Email: "valid@example.com"}); validate.HasErrors(errs) {
		t.Errorf("expected valid email to pass, got: %v", errs)
	}
}

func TestMinMaxOnStrings(t *testing.T) {
	type in struct {
		Password string `json:"password" validate:"required,min=6"`
	}
	if errs := validate.Struct(in{Password: "short"}); !validate.HasErrors(errs) {
		t.Error("expected min=6 to fail for a 5-char password")
	}
	if errs := validate.Struct(in{Password: "longenough"}); validate.HasErrors(errs) {
		t.Errorf("expected valid password to pass, got: %v", errs)
	}
}

func TestInRule(t *testing.T) {
	type in struct {
		Status string `json:"status" validate:"required,in=pending|processing|shipped|delivered|cancelled"`
	}
	if errs := validate.Struct(in{Status: "teleported"}); !validate.HasErrors(errs) {
		t.Error("expected unknown status to fail")
	}
	if errs := validate.Struct(in{Status: "shipped"}); validate.HasErrors(errs) {
		t.Errorf("expected shipped to pass, got: %v", errs)
	}
}

func TestConfirmedRule(t *testing.T) {
	type in struct {
		Password             string `json:"password" validate:"required,min=6,confirmed"`
		PasswordConfirmation string `json:"password_confirmation"`
	}
	if errs := validate.Struct(in{Password: "password123", PasswordConfirmation: "different"}); !validate.HasErrors(errs) {
		t.Error("expected mismatched confirmation to fail")
	}
	if errs := validate.Struct(in{Password: "password123", PasswordConfirmation: "password123"}); validate.HasErrors(errs) {
		t.Errorf("expected matching confirmation to pass, got: %v", errs)
	}
}

func TestNumericRules(t *testing.T) {
	type in struct {
		Quantity int `json:"quantity" validate:"required,min=1"`
	}
	if errs := validate.Struct(in{Quantity: 0}); !validate.HasErrors(errs) {
		t.Error("expected zero quantity to fail")
	}
	if errs := validate.Struct(in{Quantity: 3}); validate.HasErrors(errs) {
		t.Errorf("expected quantity 3 to pass, got: %v", errs)
	}
}
