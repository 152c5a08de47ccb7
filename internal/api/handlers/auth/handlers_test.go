package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Glimpse/internal/api/middleware"
	coreauth "Glimpse/internal/core/auth"
	"Glimpse/internal/core/users"
)

// stubUserService is a hand-rolled test double for users.Service
type stubUserService struct {
	registerFn func(ctx context.Context, req users.RegisterRequest) (*users.User, error)
	loginFn    func(ctx context.Context, req users.LoginRequest) (*users.User, error)
	getByIDFn  func(ctx context.Context, id string) (*users.User, error)
}

func (s *stubUserService) Register(ctx context.Context, req users.RegisterRequest) (*users.User, error) {
	return s.registerFn(ctx, req)
}

func (s *stubUserService) Login(ctx context.Context, req users.LoginRequest) (*users.User, error) {
	return s.loginFn(ctx, req)
}

func (s *stubUserService) GetByID(ctx context.Context, id string) (*users.User, error) {
	if s.getByIDFn == nil {
		return nil, users.ErrUserNotFound
	}
	return s.getByIDFn(ctx, id)
}

func testIssuer(t *testing.T) *coreauth.TokenIssuer {
	t.Helper()
	issuer, err := coreauth.NewTokenIssuer([]byte("test-secret"), time.Hour)
	if err != nil {
		t.Fatalf("failed to create issuer: %v", err)
	}
	return issuer
}

func TestHandleSignup_Success(t *testing.T) {
	issuer := testIssuer(t)
	service := &stubUserService{
		registerFn: func(ctx context.Context, req users.RegisterRequest) (*users.User, error) {
			return &users.User{
				ID:        "user-1",
				FirstName: req.FirstName,
				LastName:  req.LastName,
				Email:     req.Email,
			}, nil
		},
	}
	handler := NewSignupHandler(service, issuer)

	body := `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"correct horse"}`
	req := httptest.NewRequest("POST", "/api/auth/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleSignup(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp AuthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.User == nil || resp.User.ID != "user-1" {
		t.Errorf("unexpected user in response: %+v", resp.User)
	}

	// The issued token must verify back to the new user's id
	subject, err := issuer.Verify(resp.Token)
	if err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
	if subject != "user-1" {
		t.Errorf("expected token subject 'user-1', got %q", subject)
	}

	// The password hash must never leak into the response body
	if strings.Contains(rec.Body.String(), "passwordHash") {
		t.Error("response leaks password hash field")
	}
}

func TestHandleSignup_DuplicateEmail(t *testing.T) {
	service := &stubUserService{
		registerFn: func(ctx context.Context, req users.RegisterRequest) (*users.User, error) {
			return nil, users.ErrEmailTaken
		},
	}
	handler := NewSignupHandler(service, testIssuer(t))

	body := `{"firstName":"Ada","lastName":"Lovelace","email":"ada@example.com","password":"correct horse"}`
	req := httptest.NewRequest("POST", "/api/auth/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleSignup(rec, req)

	if rec.Code != http.StatusConflict {
		t.Errorf("expected status 409, got %d", rec.Code)
	}
}

func TestHandleSignup_ValidationError(t *testing.T) {
	service := &stubUserService{
		registerFn: func(ctx context.Context, req users.RegisterRequest) (*users.User, error) {
			return nil, users.NewValidationError("email", "invalid email address")
		},
	}
	handler := NewSignupHandler(service, testIssuer(t))

	req := httptest.NewRequest("POST", "/api/auth/signup", strings.NewReader(`{"email":"nope"}`))
	rec := httptest.NewRecorder()

	handler.HandleSignup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestHandleSignup_MalformedBody(t *testing.T) {
	service := &stubUserService{
		registerFn: func(ctx context.Context, req users.RegisterRequest) (*users.User, error) {
			t.Error("service should not be called")
			return nil, nil
		},
	}
	handler := NewSignupHandler(service, testIssuer(t))

	req := httptest.NewRequest("POST", "/api/auth/signup", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.HandleSignup(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestHandleLogin_Success(t *testing.T) {
	issuer := testIssuer(t)
	service := &stubUserService{
		loginFn: func(ctx context.Context, req users.LoginRequest) (*users.User, error) {
			return &users.User{ID: "user-1", Email: req.Email}, nil
		},
	}
	handler := NewLoginHandler(service, issuer)

	body := `{"email":"ada@example.com","password":"correct horse"}`
	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleLogin(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp AuthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if subject, err := issuer.Verify(resp.Token); err != nil || subject != "user-1" {
		t.Errorf("issued token did not verify to 'user-1': subject=%q err=%v", subject, err)
	}
}

func TestHandleLogin_BadCredentials(t *testing.T) {
	service := &stubUserService{
		loginFn: func(ctx context.Context, req users.LoginRequest) (*users.User, error) {
			return nil, users.ErrInvalidCredentials
		},
	}
	handler := NewLoginHandler(service, testIssuer(t))

	body := `{"email":"ada@example.com","password":"wrong"}`
	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleLogin(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}

func TestHandleMe_Success(t *testing.T) {
	service := &stubUserService{
		getByIDFn: func(ctx context.Context, id string) (*users.User, error) {
			return &users.User{ID: id, FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}, nil
		},
	}
	handler := NewMeHandler(service)

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req = req.WithContext(middleware.SetTestUserID(req.Context(), "user-1"))
	rec := httptest.NewRecorder()

	handler.HandleMe(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var user users.User
	if err := json.NewDecoder(rec.Body).Decode(&user); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if user.ID != "user-1" || user.Email != "ada@example.com" {
		t.Errorf("unexpected user in response: %+v", user)
	}
	if strings.Contains(rec.Body.String(), "passwordHash") {
		t.Error("response leaks password hash field")
	}
}

func TestHandleMe_Unauthenticated(t *testing.T) {
	handler := NewMeHandler(&stubUserService{})

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	rec := httptest.NewRecorder()

	handler.HandleMe(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}

// A token can outlive its account. The handler must report that as not
// found, not as an internal error.
func TestHandleMe_DeletedAccount(t *testing.T) {
	handler := NewMeHandler(&stubUserService{})

	req := httptest.NewRequest("GET", "/api/auth/me", nil)
	req = req.WithContext(middleware.SetTestUserID(req.Context(), "user-gone"))
	rec := httptest.NewRecorder()

	handler.HandleMe(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}
