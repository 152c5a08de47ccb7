package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"Glimpse/internal/core/auth"
	"Glimpse/internal/core/users"
)

// AuthResponse is returned by both signup and login
type AuthResponse struct {
	Token string      `json:"token"`
	User  *users.User `json:"user"`
}

// SignupHandler handles account registration requests
type SignupHandler struct {
	service users.Service
	issuer  *auth.TokenIssuer
}

// NewSignupHandler creates a new signup handler
func NewSignupHandler(service users.Service, issuer *auth.TokenIssuer) *SignupHandler {
	return &SignupHandler{
		service: service,
		issuer:  issuer,
	}
}

// HandleSignup handles POST /api/auth/signup
// Registers a new account and returns an access token for it
func (h *SignupHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	// 1. Limit request body size
	r.Body = http.MaxBytesReader(w, r.Body, 64*1024)

	// 2. Parse request body
	var req users.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	// 3. Register the account
	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// 4. Issue an access token so the client is logged in immediately
	token, err := h.issuer.Issue(user.ID)
	if err != nil {
		log.Printf("Failed to issue token after signup: %v", err)
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(AuthResponse{Token: token, User: user}); err != nil {
		log.Printf("Failed to encode signup response: %v", err)
	}
}
