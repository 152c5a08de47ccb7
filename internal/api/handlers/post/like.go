package post

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/posts"
)

// LikeHandler handles like requests
type LikeHandler struct {
	service posts.Service
}

// NewLikeHandler creates a new like handler
func NewLikeHandler(service posts.Service) *LikeHandler {
	return &LikeHandler{service: service}
}

// LikePostOutput carries the updated like count
type LikePostOutput struct {
	Likes int `json:"likes"`
}

// HandleLike handles POST /api/posts/{id}/like
// One-way: a like cannot be withdrawn, and publishers cannot like their own
// posts. Liking the same post twice is rejected.
func (h *LikeHandler) HandleLike(w http.ResponseWriter, r *http.Request) {
	// 1. Extract authenticated caller
	userID := middleware.GetUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	// 2. Extract target post id from the path
	postID := chi.URLParam(r, "id")
	if postID == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "post id is required")
		return
	}

	// 3. Record the like
	count, err := h.service.LikePost(r.Context(), userID, postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(LikePostOutput{Likes: count}); err != nil {
		log.Printf("Failed to encode like response: %v", err)
	}
}
