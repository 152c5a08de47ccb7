package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"Glimpse/internal/core/auth"
	"Glimpse/internal/core/users"
)

// LoginHandler handles login requests
type LoginHandler struct {
	service users.Service
	issuer  *auth.TokenIssuer
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(service users.Service, issuer *auth.TokenIssuer) *LoginHandler {
	return &LoginHandler{
		service: service,
		issuer:  issuer,
	}
}

// HandleLogin handles POST /api/auth/login
// Verifies credentials and returns a fresh access token
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	// 1. Limit request body size
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	// 2. Parse request body
	var req users.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	// 3. Verify credentials
	user, err := h.service.Login(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// 4. Issue an access token
	token, err := h.issuer.Issue(user.ID)
	if err != nil {
		log.Printf("Failed to issue token after login: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(AuthResponse{Token: token, User: user}); err != nil {
		log.Printf("Failed to encode login response: %v", err)
	}
}
