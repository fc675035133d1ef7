package auth_service

import (
	"errors"
	"testing"
	"time"

	"github.com/Yashcodes04/codementor-project/internal/database"
	"github.com/Yashcodes04/codementor-project/internal/mentor_errors"
	"github.com/Yashcodes04/codementor-project/internal/service"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func TestCreateAccessToken(t *testing.T) {
	t.Setenv(service.KeyJWTSecret, "test-secret")

	user := database.User{
		ID:    uuid.New(),
		Email: "dev@example.com",
	}

	tokenString, expiry, err := createAccessToken(user)
	if err != nil {
		t.Fatalf("createAccessToken returned error: %v", err)
	}
	if tokenString == "" {
		t.Fatal("empty token")
	}

	remaining := time.Until(expiry)
	if remaining < 29*time.Minute || remaining > 31*time.Minute {
		t.Errorf("token validity = %v, want about 30 minutes", remaining)
	}

	var claims service.UserCredentialClaims
	parsed, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("cannot parse signed token: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("user id claim = %s, want %s", claims.UserID, user.ID)
	}
	if claims.Email != user.Email {
		t.Errorf("email claim = %q, want %q", claims.Email, user.Email)
	}
}

func TestCreateAccessTokenMissingSecret(t *testing.T) {
	t.Setenv(service.KeyJWTSecret, "")

	_, _, err := createAccessToken(database.User{ID: uuid.New()})
	if !errors.Is(err, mentor_errors.ErrInternal) {
		t.Fatalf("err = %v, want ErrInternal", err)
	}
}
