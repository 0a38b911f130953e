// Package household implements household, membership, and invitation
// business logic.
package household

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/config"
	"github.com/hearthhq/hearth-backend/internal/domain"
)

type householdRepo interface {
	Create(ctx context.Context, h *domain.Household) (*domain.Household, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Household, error)
	Update(ctx context.Context, id uuid.UUID, name string) (*domain.Household, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]*domain.Household, error)

	InsertMembership(ctx context.Context, m *domain.Membership) (*domain.Membership, error)
	GetMembership(ctx context.Context, householdID, userID uuid.UUID) (*domain.Membership, error)
	ListMemberships(ctx context.Context, householdID uuid.UUID) ([]*domain.Membership, error)
	UpdateMembershipRole(ctx context.Context, householdID, userID uuid.UUID, role domain.Role) (*domain.Membership, error)
	DeleteMembership(ctx context.Context, householdID, userID uuid.UUID) error
	CountOwners(ctx context.Context, householdID uuid.UUID) (int, error)

	InsertInvite(ctx context.Context, inv *domain.Invite) (*domain.Invite, error)
	GetInviteByTokenHash(ctx context.Context, hash string) (*domain.Invite, error)
	ListPendingInvites(ctx context.Context, householdID uuid.UUID) ([]*domain.Invite, error)
	UpdateInviteStatus(ctx context.Context, id uuid.UUID, status domain.InviteStatus) (*domain.Invite, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type accessService interface {
	Require(ctx context.Context, userID, householdID uuid.UUID, minRole domain.Role) (*domain.Membership, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type tokenGenerator interface {
	GenerateOpaqueToken() (raw string, hash string, err error)
}

// InviteMailer sends the invitation email. Delivery failure does not
// fail the invite: the token can be re-sent.
type InviteMailer interface {
	SendInvite(ctx context.Context, to, inviterName, householdName, token string) error
}

// Service implements household business logic.
type Service struct {
	log        *slog.Logger
	households householdRepo
	users      userRepo
	access     accessService
	tx         txManager
	tokens     tokenGenerator
	mailer     InviteMailer
	cfg        config.AuthConfig
}

// NewService creates a new household service.
func NewService(
	logger *slog.Logger,
	households householdRepo,
	users userRepo,
	access accessService,
	tx txManager,
	tokens tokenGenerator,
	mailer InviteMailer,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "household"),
		households: households,
		users:      users,
		access:     access,
		tx:         tx,
		tokens:     tokens,
		mailer:     mailer,
		cfg:        cfg,
	}
}
