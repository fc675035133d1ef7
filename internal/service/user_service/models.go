package user_service

import (
	"fmt"

	"github.com/Yashcodes04/codementor-project/internal/database"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	log "github.com/sirupsen/logrus"
)

const userCacheSize = 1024

type UserService struct {
	DB *database.Queries

	// read-through cache in front of the users table. verify and
	// hint generation hit it on every authenticated request.
	cache *lru.Cache[uuid.UUID, database.User]
}

func (u *UserService) InitializeUserService() error {
	log.Info("initializing user cache")
	cache, err := lru.New[uuid.UUID, database.User](userCacheSize)
	if err != nil {
		return fmt.Errorf("cannot create user cache, %w", err)
	}
	u.cache = cache
	return nil
}

type UserInfo struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	UserName string    `json:"username"`
}

func UserInfoFromDb(user database.User) UserInfo {
	return UserInfo{
		ID:       user.ID,
		Email:    user.Email,
		UserName: user.UserName,
	}
}
