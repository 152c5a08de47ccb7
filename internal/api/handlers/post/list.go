package post

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/posts"
)

// ListHandler handles feed listing requests
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList handles GET /api/posts
// Returns the feed newest-first, publishers resolved to display names.
// Optional query params: limit (default 100, max 100) and offset.
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	// 1. Extract authenticated caller (listing requires auth, not filtering)
	if middleware.GetUserID(r) == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	// 2. Parse pagination params; bad values fall back to defaults
	limit := parseIntParam(r, "limit", 0)
	offset := parseIntParam(r, "offset", 0)

	// 3. Fetch the feed
	feed, err := h.service.ListPosts(r.Context(), limit, offset)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(feed); err != nil {
		log.Printf("Failed to encode feed response: %v", err)
	}
}

func parseIntParam(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
