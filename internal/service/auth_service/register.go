package auth_service

import (
	"context"
	"errors"

	"github.com/Yashcodes04/codementor-project/internal/database"
	"github.com/Yashcodes04/codementor-project/internal/mentor_errors"
	"github.com/Yashcodes04/codementor-project/internal/service"
	"github.com/Yashcodes04/codementor-project/internal/service/user_service"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

func (a *AuthService) Register(
	ctx context.Context,
	registration UserRegistration,
) (response UserLoginResponse, err error) {
	// Validate
	if err = service.ValidateInput(registration); err != nil {
		return
	}

	// Hash the password
	passwordHash, err := generatePasswordHash(registration.Password)
	if err != nil {
		return
	}

	// Create the user in the database and handle DB-specific errors
	dbUser, dbErr := a.DB.CreateUser(
		ctx,
		database.CreateUserParams{
			Email:        registration.Email,
			UserName:     registration.UserName,
			PasswordHash: passwordHash,
		},
	)
	if dbErr != nil {
		err = mentor_errors.HandleDBErrors(
			dbErr,
			errMsgs,
			"failed to insert user into db",
		)
		return
	}

	// issue the first session token right away
	token, _, err := createAccessToken(dbUser)
	if err != nil {
		return
	}

	log.WithFields(log.Fields{
		"user_name": dbUser.UserName,
		"email":     dbUser.Email,
	}).Info("created user")

	response = UserLoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user_service.UserInfoFromDb(dbUser),
	}
	return
}

func generatePasswordHash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Errorf("unable to hash password, %v", err)
		return "", errors.Join(mentor_errors.ErrInternal, err)
	}
	return string(hash), nil
}
