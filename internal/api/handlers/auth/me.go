package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"Glimpse/internal/api/middleware"
	"Glimpse/internal/core/users"
)

// MeHandler returns the account of the authenticated caller
type MeHandler struct {
	service users.Service
}

// NewMeHandler creates a new me handler
func NewMeHandler(service users.Service) *MeHandler {
	return &MeHandler{
		service: service,
	}
}

// HandleMe handles GET /api/auth/me
// Returns the profile of the account behind the access token
func (h *MeHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	// 1. Get authenticated user from context
	userID := middleware.GetUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
		return
	}

	// 2. Load the account
	user, err := h.service.GetByID(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(user); err != nil {
		log.Printf("Failed to encode me response: %v", err)
	}
}
