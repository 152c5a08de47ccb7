package post

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/posts"
)

// DeleteHandler handles post deletion requests
type DeleteHandler struct {
	service posts.Service
}

// NewDeleteHandler creates a new handler for deleting posts
func NewDeleteHandler(service posts.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// DeletePostOutput confirms the deletion
type DeletePostOutput struct {
	Message string `json:"message"`
}

// HandleDelete handles DELETE /api/posts/{id}
// Only the publisher can delete a post. A missing post gets the same 403 as
// a foreign one, so the endpoint never reveals whether an id exists.
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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

	// 3. Delete through the service (ownership is checked there)
	if err := h.service.DeletePost(r.Context(), userID, postID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(DeletePostOutput{Message: "Post deleted"}); err != nil {
		log.Printf("Failed to encode delete response: %v", err)
	}
}
