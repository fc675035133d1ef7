package service

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/Yashcodes04/codementor-project/internal/mentor_errors"
)

func TestMain(m *testing.M) {
	InitializeServices()
	os.Exit(m.Run())
}

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

func TestValidateInputValid(t *testing.T) {
	input := loginInput{Email: "dev@example.com", Password: "longenough"}
	if err := ValidateInput(input); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
}

func TestValidateInputUsesJsonFieldNames(t *testing.T) {
	input := loginInput{Password: "longenough"}
	err := ValidateInput(input)
	if !errors.Is(err, mentor_errors.ErrInvalidRequest) {
		t.Fatalf("err = %v, want ErrInvalidRequest", err)
	}
	if !strings.Contains(err.Error(), "email is required") {
		t.Errorf("error %q must name the json field", err)
	}
}

func TestValidateInputTranslatesMin(t *testing.T) {
	input := loginInput{Email: "dev@example.com", Password: "short"}
	err := ValidateInput(input)
	if err == nil {
		t.Fatal("short password accepted")
	}
	if !strings.Contains(err.Error(), "password must be at least 8 characters long") {
		t.Errorf("error = %q", err)
	}
}
