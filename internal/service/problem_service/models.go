package problem_service

import (
	"encoding/json"
	"time"

	"github.com/Yashcodes04/codementor-project/internal/database"
	"github.com/Yashcodes04/codementor-project/internal/service/user_service"
	"github.com/google/uuid"
)

// MaxDescriptionLength caps stored problem statements. Detection clients
// truncate too, this is the authoritative bound.
const MaxDescriptionLength = 1000

type ProblemService struct {
	DB                *database.Queries
	UserServiceConfig *user_service.UserService
}

// ProblemSubmission is what a detection client sends after scraping a
// problem-hosting page.
type ProblemSubmission struct {
	ID          string            `json:"id" validate:"required"`
	Title       string            `json:"title" validate:"required"`
	Difficulty  string            `json:"difficulty" validate:"required"`
	Description string            `json:"description"`
	Platform    string            `json:"platform" validate:"required"`
	Url         string            `json:"url"`
	Examples    []json.RawMessage `json:"examples"`
	Constraints []string          `json:"constraints"`
}

type Problem struct {
	ID          uuid.UUID         `json:"id"`
	PlatformID  string            `json:"platform_id"`
	Platform    string            `json:"platform"`
	Title       string            `json:"title"`
	Difficulty  string            `json:"difficulty"`
	Description string            `json:"description"`
	Url         string            `json:"url"`
	Examples    []json.RawMessage `json:"examples"`
	Constraints []string          `json:"constraints"`
	CreatedAt   time.Time         `json:"created_at"`
}
