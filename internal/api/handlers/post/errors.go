package post

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"Glimpse/internal/core/posts"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{
		Error:   errorType,
		Message: message,
	}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// handleServiceError maps post service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case posts.IsValidationError(err):
		writeError(w, http.StatusBadRequest, "InvalidRequest", err.Error())

	case posts.IsUploadError(err):
		writeError(w, http.StatusBadRequest, "UploadFailed", err.Error())

	case errors.Is(err, posts.ErrNotPostOwner):
		writeError(w, http.StatusForbidden, "NotAuthorized",
			"You are not authorized to delete this post")

	case errors.Is(err, posts.ErrPostNotFound):
		writeError(w, http.StatusNotFound, "PostNotFound", "Post not found")

	case errors.Is(err, posts.ErrSelfLike):
		writeError(w, http.StatusBadRequest, "InvalidOperation",
			"Cannot like your own post")

	case errors.Is(err, posts.ErrAlreadyLiked):
		writeError(w, http.StatusBadRequest, "InvalidOperation",
			"Post already liked")

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in post handler: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
