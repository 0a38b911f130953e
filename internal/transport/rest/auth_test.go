package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/internal/service/auth"
	"github.com/hearthhq/hearth-backend/pkg/ctxutil"
)

type authServiceMock struct {
	RegisterFunc func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginFunc    func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	RefreshFunc  func(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	LogoutFunc   func(ctx context.Context) error
}

func (m *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	if m.RegisterFunc == nil {
		panic("RegisterFunc is nil but was called")
	}
	return m.RegisterFunc(ctx, input)
}

func (m *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	if m.LoginFunc == nil {
		panic("LoginFunc is nil but was called")
	}
	return m.LoginFunc(ctx, input)
}

func (m *authServiceMock) Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error) {
	if m.RefreshFunc == nil {
		panic("RefreshFunc is nil but was called")
	}
	return m.RefreshFunc(ctx, input)
}

func (m *authServiceMock) Logout(ctx context.Context) error {
	if m.LogoutFunc == nil {
		panic("LogoutFunc is nil but was called")
	}
	return m.LogoutFunc(ctx)
}

type tokenValidatorMock struct {
	userID uuid.UUID
	err    error
}

func (m *tokenValidatorMock) ValidateAccessToken(_ string) (uuid.UUID, error) {
	return m.userID, m.err
}

func testResult(userID uuid.UUID) *auth.AuthResult {
	return &auth.AuthResult{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User: &domain.User{
			ID:    userID,
			Email: "ada@example.com",
			Name:  "Ada",
		},
	}
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	svc := &authServiceMock{
		RegisterFunc: func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
			if input.Email != "ada@example.com" {
				t.Errorf("unexpected email: %s", input.Email)
			}
			return testResult(userID), nil
		},
	}

	h := NewAuthHandler(svc, &tokenValidatorMock{}, slog.Default())

	body := `{"email":"ada@example.com","name":"Ada","password":"s3cret-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.AccessToken != "access-token" {
		t.Errorf("expected access token, got %q", resp.AccessToken)
	}
	if resp.User.ID != userID.String() {
		t.Errorf("expected user id %s, got %s", userID, resp.User.ID)
	}
}

func TestRegister_AlreadyExists(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		RegisterFunc: func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
			return nil, domain.ErrAlreadyExists
		},
	}

	h := NewAuthHandler(svc, &tokenValidatorMock{}, slog.Default())

	body := `{"email":"taken@example.com","name":"X","password":"s3cret-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}
}

func TestRegister_InvalidBody(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&authServiceMock{}, &tokenValidatorMock{}, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		LoginFunc: func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
			return testResult(uuid.New()), nil
		},
	}

	h := NewAuthHandler(svc, &tokenValidatorMock{}, slog.Default())

	body := `{"email":"ada@example.com","password":"s3cret-pass"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		LoginFunc: func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
			return nil, domain.ErrUnauthorized
		},
	}

	h := NewAuthHandler(svc, &tokenValidatorMock{}, slog.Default())

	body := `{"email":"ada@example.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRefresh_Success(t *testing.T) {
	t.Parallel()

	svc := &authServiceMock{
		RefreshFunc: func(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error) {
			if input.RefreshToken != "old-refresh" {
				t.Errorf("unexpected refresh token: %s", input.RefreshToken)
			}
			return testResult(uuid.New()), nil
		},
	}

	h := NewAuthHandler(svc, &tokenValidatorMock{}, slog.Default())

	body := `{"refreshToken":"old-refresh"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Refresh(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp authResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.RefreshToken != "refresh-token" {
		t.Errorf("expected rotated refresh token, got %q", resp.RefreshToken)
	}
}

func TestLogout_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	svc := &authServiceMock{
		LogoutFunc: func(ctx context.Context) error {
			got, ok := ctxutil.UserIDFromCtx(ctx)
			if !ok || got != userID {
				t.Errorf("expected user id %s in context, got %s (ok=%v)", userID, got, ok)
			}
			return nil
		},
	}

	h := NewAuthHandler(svc, &tokenValidatorMock{userID: userID}, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rec := httptest.NewRecorder()

	h.Logout(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestLogout_MissingToken(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&authServiceMock{}, &tokenValidatorMock{}, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()

	h.Logout(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestLogout_InvalidToken(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&authServiceMock{}, &tokenValidatorMock{err: errors.New("expired")}, slog.Default())

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()

	h.Logout(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}
