package main

import (
	"github.com/Yashcodes04/codementor-project/middleware"
	"github.com/go-chi/chi/v5"
)

func NewApiRouter() *chi.Mux {
	r := chi.NewRouter()

	// configure all endpoints
	r.Get("/healthz", apiConfig.HandlerReadiness)

	// auth layer
	r.Post("/auth/register", apiConfig.HandlerRegister)
	r.Post("/auth/login", apiConfig.HandlerLogin)
	r.Post("/auth/logout", apiConfig.HandlerLogout)
	r.Get("/auth/verify", middleware.JWTMiddleware(apiConfig.HandlerVerify))

	// problems layer
	r.Post("/problems/detect", middleware.JWTMiddleware(apiConfig.HandlerDetectProblem))

	// hints layer
	r.Post("/hints/generate", middleware.JWTMiddleware(apiConfig.HandlerGenerateHint))

	// analytics layer
	r.Post("/analytics/track", middleware.JWTMiddleware(apiConfig.HandlerTrackEvent))

	return r
}
