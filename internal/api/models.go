package api

import (
	"github.com/Yashcodes04/codementor-project/internal/service/analytics_service"
	"github.com/Yashcodes04/codementor-project/internal/service/auth_service"
	"github.com/Yashcodes04/codementor-project/internal/service/hint_service"
	"github.com/Yashcodes04/codementor-project/internal/service/problem_service"
	"github.com/Yashcodes04/codementor-project/internal/service/user_service"
)

type Api struct {
	AuthServiceConfig      *auth_service.AuthService
	UserServiceConfig      *user_service.UserService
	ProblemServiceConfig   *problem_service.ProblemService
	HintServiceConfig      *hint_service.HintService
	AnalyticsServiceConfig *analytics_service.AnalyticsService
}
