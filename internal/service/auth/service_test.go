package auth

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hearthhq/hearth-backend/internal/auth"
	"github.com/hearthhq/hearth-backend/internal/config"
	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/pkg/ctxutil"
)

func testConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:       "test-secret-at-least-32-chars-long-for-security",
		JWTIssuer:       "hearth-test",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 30 * 24 * time.Hour,
		InviteTTL:       7 * 24 * time.Hour,
	}
}

func stubJWT() *jwtManagerMock {
	return &jwtManagerMock{
		GenerateAccessTokenFunc: func(userID uuid.UUID) (string, error) {
			return "access-" + userID.String(), nil
		},
		GenerateRefreshTokenFunc: func() (string, string, error) {
			raw := uuid.NewString()
			return raw, auth.HashToken(raw), nil
		},
	}
}

func newTestService(users *userRepoMock, tokens *tokenRepoMock, jwt *jwtManagerMock) *Service {
	return NewService(slog.Default(), users, tokens, jwt, testConfig())
}

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		CreateFunc: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			return user, nil
		},
	}
	tokens := &tokenRepoMock{
		CreateFunc: func(ctx context.Context, token *domain.RefreshToken) (*domain.RefreshToken, error) {
			return token, nil
		},
	}

	svc := newTestService(users, tokens, stubJWT())

	result, err := svc.Register(context.Background(), RegisterInput{
		Email:    "  Anna@Example.COM ",
		Name:     "Anna",
		Password: "correct horse battery",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Error("expected non-empty token pair")
	}
	if result.User.Email != "anna@example.com" {
		t.Errorf("email not normalized: got %q", result.User.Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(result.User.PasswordHash), []byte("correct horse battery")); err != nil {
		t.Error("stored hash does not match password")
	}
	if len(tokens.CreateCalls()) != 1 {
		t.Errorf("refresh token Create calls: got %d, want 1", len(tokens.CreateCalls()))
	}
	// Only the hash may reach the repo.
	stored := tokens.CreateCalls()[0].Token
	if stored.TokenHash == result.RefreshToken {
		t.Error("raw refresh token stored instead of hash")
	}
	if stored.TokenHash != auth.HashToken(result.RefreshToken) {
		t.Error("stored hash does not correspond to issued token")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		CreateFunc: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			return nil, domain.ErrAlreadyExists
		},
	}

	svc := newTestService(users, &tokenRepoMock{}, stubJWT())

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "anna@example.com",
		Name:     "Anna",
		Password: "correct horse battery",
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRegister_ValidationErrors(t *testing.T) {
	t.Parallel()

	svc := newTestService(&userRepoMock{}, &tokenRepoMock{}, stubJWT())

	cases := []struct {
		name  string
		input RegisterInput
	}{
		{"empty email", RegisterInput{Name: "A", Password: "long enough pw"}},
		{"bad email", RegisterInput{Email: "not-an-email", Name: "A", Password: "long enough pw"}},
		{"short password", RegisterInput{Email: "a@b.com", Name: "A", Password: "short"}},
		{"empty name", RegisterInput{Email: "a@b.com", Password: "long enough pw"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := svc.Register(context.Background(), tc.input)
			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
		})
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	hash, _ := bcrypt.GenerateFromPassword([]byte("sesame open please"), bcrypt.MinCost)
	userID := uuid.New()

	users := &userRepoMock{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: userID, Email: email, PasswordHash: string(hash)}, nil
		},
	}
	tokens := &tokenRepoMock{
		CreateFunc: func(ctx context.Context, token *domain.RefreshToken) (*domain.RefreshToken, error) {
			return token, nil
		},
	}

	svc := newTestService(users, tokens, stubJWT())

	result, err := svc.Login(context.Background(), LoginInput{
		Email:    "Anna@Example.com",
		Password: "sesame open please",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.User.ID != userID {
		t.Errorf("user ID: got %v, want %v", result.User.ID, userID)
	}
	if users.GetByEmailCalls()[0].Email != "anna@example.com" {
		t.Errorf("email not normalized in lookup: %q", users.GetByEmailCalls()[0].Email)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	hash, _ := bcrypt.GenerateFromPassword([]byte("the real password"), bcrypt.MinCost)

	users := &userRepoMock{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: uuid.New(), Email: email, PasswordHash: string(hash)}, nil
		},
	}

	svc := newTestService(users, &tokenRepoMock{}, stubJWT())

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "anna@example.com",
		Password: "a guess",
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()

	users := &userRepoMock{
		GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, domain.ErrNotFound
		},
	}

	svc := newTestService(users, &tokenRepoMock{}, stubJWT())

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever this is",
	})
	// Unknown email and wrong password must be indistinguishable.
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestRefresh_RotatesToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	raw := "the-raw-refresh-token"
	tokenID := uuid.New()

	tokens := &tokenRepoMock{
		GetByHashFunc: func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
			if tokenHash != auth.HashToken(raw) {
				return nil, domain.ErrNotFound
			}
			return &domain.RefreshToken{
				ID:        tokenID,
				UserID:    userID,
				TokenHash: tokenHash,
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		},
		RevokeFunc: func(ctx context.Context, id uuid.UUID) error { return nil },
		CreateFunc: func(ctx context.Context, token *domain.RefreshToken) (*domain.RefreshToken, error) {
			return token, nil
		},
	}
	users := &userRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.User, error) {
			return &domain.User{ID: id}, nil
		},
	}

	svc := newTestService(users, tokens, stubJWT())

	result, err := svc.Refresh(context.Background(), RefreshInput{RefreshToken: raw})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RefreshToken == raw {
		t.Error("refresh must rotate: got the same raw token back")
	}
	if len(tokens.RevokeCalls()) != 1 || tokens.RevokeCalls()[0].ID != tokenID {
		t.Errorf("old token not revoked: calls %v", tokens.RevokeCalls())
	}
}

func TestRefresh_ExpiredToken(t *testing.T) {
	t.Parallel()

	tokens := &tokenRepoMock{
		GetByHashFunc: func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
			return &domain.RefreshToken{
				ID:        uuid.New(),
				UserID:    uuid.New(),
				ExpiresAt: time.Now().Add(-time.Minute),
			}, nil
		},
	}

	svc := newTestService(&userRepoMock{}, tokens, stubJWT())

	_, err := svc.Refresh(context.Background(), RefreshInput{RefreshToken: "stale"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestRefresh_RevokedToken(t *testing.T) {
	t.Parallel()

	revokedAt := time.Now().Add(-time.Minute)
	tokens := &tokenRepoMock{
		GetByHashFunc: func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
			return &domain.RefreshToken{
				ID:        uuid.New(),
				UserID:    uuid.New(),
				ExpiresAt: time.Now().Add(time.Hour),
				RevokedAt: &revokedAt,
			}, nil
		},
	}

	svc := newTestService(&userRepoMock{}, tokens, stubJWT())

	_, err := svc.Refresh(context.Background(), RefreshInput{RefreshToken: "revoked"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestRefresh_UnknownToken(t *testing.T) {
	t.Parallel()

	tokens := &tokenRepoMock{
		GetByHashFunc: func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
			return nil, domain.ErrNotFound
		},
	}

	svc := newTestService(&userRepoMock{}, tokens, stubJWT())

	_, err := svc.Refresh(context.Background(), RefreshInput{RefreshToken: "forged"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestLogout_RevokesAll(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	tokens := &tokenRepoMock{
		RevokeAllForUserFunc: func(ctx context.Context, uid uuid.UUID) error { return nil },
	}

	svc := newTestService(&userRepoMock{}, tokens, stubJWT())
	ctx := ctxutil.WithUserID(context.Background(), userID)

	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	calls := tokens.RevokeAllForUserCalls()
	if len(calls) != 1 || calls[0].UserID != userID {
		t.Errorf("RevokeAllForUser calls: %v", calls)
	}
}

func TestLogout_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := newTestService(&userRepoMock{}, &tokenRepoMock{}, stubJWT())

	err := svc.Logout(context.Background())
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
