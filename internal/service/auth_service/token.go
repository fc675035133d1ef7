package auth_service

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Yashcodes04/codementor-project/internal/database"
	"github.com/Yashcodes04/codementor-project/internal/mentor_errors"
	"github.com/Yashcodes04/codementor-project/internal/service"
	"github.com/golang-jwt/jwt/v4"
	log "github.com/sirupsen/logrus"
)

// access tokens are short lived, the client logs in again when one expires
const accessTokenValidity = 30 * time.Minute

func createAccessToken(user database.User) (tokenString string, expiry time.Time, err error) {
	secret := os.Getenv(service.KeyJWTSecret)
	if secret == "" {
		err = fmt.Errorf("%w, jwt secret is not configured", mentor_errors.ErrInternal)
		log.Error(err)
		return
	}

	expiry = time.Now().Add(accessTokenValidity)
	claims := service.UserCredentialClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, signErr := token.SignedString([]byte(secret))
	if signErr != nil {
		log.Errorf("unable to sign access token, %v", signErr)
		err = errors.Join(mentor_errors.ErrInternal, signErr)
		return
	}
	return
}
