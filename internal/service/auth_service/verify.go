package auth_service

import (
	"context"

	"github.com/Yashcodes04/codementor-project/internal/service/user_service"
)

// Verify resolves the user behind a valid token. The jwt middleware has
// already rejected requests without one.
func (a *AuthService) Verify(ctx context.Context) (VerifyResponse, error) {
	user, err := a.UserConfig.FetchUserFromClaims(ctx)
	if err != nil {
		return VerifyResponse{}, err
	}
	return VerifyResponse{
		Valid: true,
		User:  user_service.UserInfoFromDb(user),
	}, nil
}
