package main

import (
	"context"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"

	"github.com/Yashcodes04/codementor-project/internal/api"
	"github.com/Yashcodes04/codementor-project/internal/database"
	"github.com/Yashcodes04/codementor-project/internal/service"
	"github.com/Yashcodes04/codementor-project/internal/service/analytics_service"
	"github.com/Yashcodes04/codementor-project/internal/service/auth_service"
	"github.com/Yashcodes04/codementor-project/internal/service/hint_service"
	"github.com/Yashcodes04/codementor-project/internal/service/problem_service"
	"github.com/Yashcodes04/codementor-project/internal/service/user_service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var (
	apiConfig *api.Api
)

func initDatabase() *database.Queries {
	// get the database url
	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		panic("dbURL not found")
	}

	// create a conneciton to the database
	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		panic(err)
	}

	// get the query tool with this connection
	return database.New(pool)
}

func initUserService(db *database.Queries) *user_service.UserService {
	log.Info("initializing user service")
	us := user_service.UserService{
		DB: db,
	}
	err := us.InitializeUserService()
	if err != nil {
		panic(err)
	}
	return &us
}

func initAuthService(db *database.Queries, us *user_service.UserService) *auth_service.AuthService {
	log.Info("initializing auth service")
	return &auth_service.AuthService{
		DB:         db,
		UserConfig: us,
	}
}

func initProblemService(
	db *database.Queries,
	us *user_service.UserService,
) *problem_service.ProblemService {
	log.Info("initializing problem service")
	return &problem_service.ProblemService{
		DB:                db,
		UserServiceConfig: us,
	}
}

func initHintService(
	db *database.Queries,
	us *user_service.UserService,
	ps *problem_service.ProblemService,
) *hint_service.HintService {
	log.Info("initializing hint service")
	hs := hint_service.HintService{
		DB:            db,
		UserConfig:    us,
		ProblemConfig: ps,
		Generator:     hint_service.StaticProvider{},
		Fallback:      hint_service.StaticProvider{},
	}

	// the static provider carries the service when no gemini key is set
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Warn("GEMINI_API_KEY not set. serving static hints only")
		return &hs
	}

	gemini, err := hint_service.NewGeminiProvider(apiKey)
	if err != nil {
		panic(err)
	}
	hs.Generator = gemini
	return &hs
}

func initAnalyticsService(
	db *database.Queries,
	us *user_service.UserService,
) *analytics_service.AnalyticsService {
	return &analytics_service.AnalyticsService{
		DB:         db,
		UserConfig: us,
	}
}

func initApi(db *database.Queries) *api.Api {
	log.Info("initializing api config")
	us := initUserService(db)
	log.Info("user service created")
	as := initAuthService(db, us)
	log.Info("auth service created")
	ps := initProblemService(db, us)
	log.Info("problem service created")
	hs := initHintService(db, us, ps)
	log.Info("hint service created")
	ans := initAnalyticsService(db, us)
	log.Info("analytics service created")
	a := api.Api{
		AuthServiceConfig:      as,
		UserServiceConfig:      us,
		ProblemServiceConfig:   ps,
		HintServiceConfig:      hs,
		AnalyticsServiceConfig: ans,
	}
	return &a
}

func setup() {
	godotenv.Load()
	service.InitializeServices()
	db := initDatabase()
	apiConfig = initApi(db)
}

func setCors(router *chi.Mux) {
	router.Use(
		cors.Handler(
			cors.Options{
				AllowedOrigins:   []string{"https://leetcode.com", "chrome-extension://*"},
				AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowedHeaders:   []string{"*"},
				AllowCredentials: true,
				ExposedHeaders:   []string{"Link"},
				MaxAge:           300,
			},
		),
	)
	log.Info("cors options has been set")
}

func main() {
	setup()

	// initialize a new router
	router := chi.NewRouter()
	setCors(router)

	// mount api router
	apiRouter := NewApiRouter()
	router.Mount("/api", apiRouter)
	log.Info("api router has been mounted")

	// find port for the server to start
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
		log.Warnf("port not found in environment. using default port %s", port)
	}

	// find the address to start the server
	apiAddress := os.Getenv("API_URL") + ":" + port

	log.Info("starting server")
	// create a server object to listen to all requests
	srv := http.Server{
		Handler: router,
		Addr:    apiAddress,
	}
	err := srv.ListenAndServe()
	if err != nil {
		log.Fatalf("Server cannot be started. Error: %v", err)
		return
	}
}
