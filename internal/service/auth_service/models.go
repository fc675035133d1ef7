package auth_service

import (
	"github.com/Yashcodes04/codementor-project/internal/database"
	"github.com/Yashcodes04/codementor-project/internal/mentor_errors"
	"github.com/Yashcodes04/codementor-project/internal/service/user_service"
)

var (
	msgUniqueKey = map[string]string{
		"uq_users_email":     "user with that email already exist",
		"uq_users_user_name": "user with that username already exist",
	}

	errMsgs = map[string]map[string]string{
		mentor_errors.CodeUniqueConstraint: msgUniqueKey,
	}
)

type AuthService struct {
	DB         *database.Queries
	UserConfig *user_service.UserService
}

type UserRegistration struct {
	Email    string `json:"email" validate:"required,email"`
	UserName string `json:"username" validate:"required,min=3,max=30"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type UserLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserLoginResponse struct {
	AccessToken string                `json:"access_token"`
	TokenType   string                `json:"token_type"`
	User        user_service.UserInfo `json:"user"`
}

type VerifyResponse struct {
	Valid bool                  `json:"valid"`
	User  user_service.UserInfo `json:"user"`
}
