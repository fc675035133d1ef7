package hint_service

import (
	"context"

	"github.com/Yashcodes04/codementor-project/internal/database"
	"github.com/Yashcodes04/codementor-project/internal/service/problem_service"
	"github.com/Yashcodes04/codementor-project/internal/service/user_service"
)

// hint levels form a linear unlock sequence, there is nothing above level 3
const (
	MinHintLevel = 1
	MaxHintLevel = 3
)

// Provider generates the hint for a problem at a given level. Implementations
// must be safe for concurrent use, one service instance serves all requests.
type Provider interface {
	Hint(
		ctx context.Context,
		problem problem_service.Problem,
		level int,
		progress *UserProgress,
	) (string, error)
}

type HintService struct {
	DB            *database.Queries
	UserConfig    *user_service.UserService
	ProblemConfig *problem_service.ProblemService

	// Generator is tried first, Fallback catches its failures. Wiring the
	// static provider in both slots is valid and is the default without a
	// Gemini api key.
	Generator Provider
	Fallback  Provider
}

// UserProgress is the optional editor telemetry a client attaches to a hint
// request so later levels can adapt to where the user is stuck.
type UserProgress struct {
	LinesOfCode int  `json:"lines_of_code"`
	HasFunction bool `json:"has_function"`
	HasLoop     bool `json:"has_loop"`
	TimeSpent   int  `json:"time_spent"`
}

type HintRequest struct {
	ProblemID    string        `json:"problem_id" validate:"required"`
	Platform     string        `json:"platform"`
	Level        int           `json:"level" validate:"required,gte=1,lte=3"`
	UserProgress *UserProgress `json:"user_progress"`
}

type HintResponse struct {
	Hint string `json:"hint"`
}
