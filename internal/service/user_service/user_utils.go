package user_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Yashcodes04/codementor-project/internal/database"
	"github.com/Yashcodes04/codementor-project/internal/mentor_errors"
	"github.com/Yashcodes04/codementor-project/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
)

func (u *UserService) FetchUserById(
	ctx context.Context,
	userId uuid.UUID,
) (user database.User, err error) {
	if cached, ok := u.cache.Get(userId); ok {
		return cached, nil
	}

	user, dbErr := u.DB.GetUserById(ctx, userId)
	if dbErr != nil {
		if errors.Is(dbErr, pgx.ErrNoRows) {
			err = fmt.Errorf("%w, no user exist with that id", mentor_errors.ErrNotFound)
			return
		}
		log.Errorf("failed to get user by id. %v", dbErr)
		err = errors.Join(mentor_errors.ErrInternal, dbErr)
		return
	}

	u.cache.Add(user.ID, user)
	return
}

func (u *UserService) FetchUserByEmail(
	ctx context.Context,
	email string,
) (user database.User, err error) {
	if email == "" {
		err = fmt.Errorf("%w, email must be provided", mentor_errors.ErrInvalidRequest)
		return
	}

	user, dbErr := u.DB.GetUserByEmail(ctx, email)
	if dbErr != nil {
		if errors.Is(dbErr, pgx.ErrNoRows) {
			err = fmt.Errorf("%w, no user exist with that email", mentor_errors.ErrInvalidUserCredentials)
			return
		}
		log.Errorf("failed to get user by email. %v", dbErr)
		err = errors.Join(mentor_errors.ErrInternal, dbErr)
		return
	}
	return
}

// FetchUserFromClaims resolves the authenticated user of the request
// from the claims placed on the context by the jwt middleware.
func (u *UserService) FetchUserFromClaims(ctx context.Context) (database.User, error) {
	claims, err := service.GetClaimsFromContext(ctx)
	if err != nil {
		return database.User{}, err
	}
	return u.FetchUserById(ctx, claims.UserID)
}

// InvalidateUser drops the user from the cache after a write
func (u *UserService) InvalidateUser(userId uuid.UUID) {
	u.cache.Remove(userId)
}
