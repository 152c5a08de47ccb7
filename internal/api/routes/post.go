package routes

import (
	"github.com/go-chi/chi/v5"

	"Glimpse/internal/api/handlers/post"
	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/posts"
)

// RegisterPostRoutes registers post endpoints on the router.
// Every post endpoint requires authentication.
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.AuthMiddleware) {
	createHandler := post.NewCreateHandler(service)
	listHandler := post.NewListHandler(service)
	deleteHandler := post.NewDeleteHandler(service)
	likeHandler := post.NewLikeHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/api/posts", createHandler.HandleCreate)
	r.With(authMiddleware.RequireAuth).Get("/api/posts", listHandler.HandleList)
	r.With(authMiddleware.RequireAuth).Delete("/api/posts/{id}", deleteHandler.HandleDelete)
	r.With(authMiddleware.RequireAuth).Post("/api/posts/{id}/like", likeHandler.HandleLike)
}
