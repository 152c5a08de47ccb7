package routes

import (
	"github.com/go-chi/chi/v5"

	authHandlers "Glimpse/internal/api/handlers/auth"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/auth"
	"Glimpse/internal/core/users"
)

// RegisterAuthRoutes registers account endpoints on the router.
// Signup and login are the only unauthenticated endpoints in the API.
func RegisterAuthRoutes(r chi.Router, service users.Service, issuer *auth.TokenIssuer, authMiddleware *middleware.AuthMiddleware) {
	signupHandler := authHandlers.NewSignupHandler(service, issuer)
	loginHandler := authHandlers.NewLoginHandler(service, issuer)
	meHandler := authHandlers.NewMeHandler(service)

	r.Post("/api/auth/signup", signupHandler.HandleSignup)
	r.Post("/api/auth/login", loginHandler.HandleLogin)
	r.With(authMiddleware.RequireAuth).Get("/api/auth/me", meHandler.HandleMe)
}
