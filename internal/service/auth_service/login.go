package auth_service

import (
	"context"
	"fmt"
	"time"

	"github.com/Yashcodes04/codementor-project/internal/mentor_errors"
	"github.com/Yashcodes04/codementor-project/internal/service"
	"github.com/Yashcodes04/codementor-project/internal/service/user_service"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

func (a *AuthService) Login(
	ctx context.Context,
	request UserLoginRequest,
) (response UserLoginResponse, jwtToken string, tokenExpiry time.Time, err error) {
	// validate the request shape before touching the db
	if err = service.ValidateInput(request); err != nil {
		return
	}

	user, err := a.UserConfig.FetchUserByEmail(ctx, request.Email)
	if err != nil {
		return
	}

	// compare password against the stored hash. the error is kept generic,
	// callers must not learn whether the email or the password was wrong
	if bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(request.Password),
	) != nil {
		err = fmt.Errorf("%w", mentor_errors.ErrInvalidUserCredentials)
		log.WithField("email", request.Email).Warn("login attempt with wrong password")
		return
	}

	jwtToken, tokenExpiry, err = createAccessToken(user)
	if err != nil {
		return
	}

	response = UserLoginResponse{
		AccessToken: jwtToken,
		TokenType:   "bearer",
		User:        user_service.UserInfoFromDb(user),
	}
	return
}
