package shopping

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/pkg/ctxutil"
)

// AddLine appends a line to a list. Requires MEMBER.
func (s *Service) AddLine(ctx context.Context, input AddLineInput) (*domain.ShoppingListItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.requireList(ctx, userID, input.ListID, domain.RoleMember); err != nil {
		return nil, err
	}

	line, err := s.repo.InsertLine(ctx, &domain.ShoppingListItem{
		ID:        uuid.New(),
		ListID:    input.ListID,
		ItemID:    input.ItemID,
		Name:      input.Name,
		Quantity:  input.Quantity,
		Unit:      input.Unit,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("shopping.AddLine: %w", err)
	}
	return line, nil
}

// ListLines returns a list's lines.
func (s *Service) ListLines(ctx context.Context, listID uuid.UUID) ([]*domain.ShoppingListItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.requireList(ctx, userID, listID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.repo.ListLines(ctx, listID)
}

// UpdateLine edits a line's name, quantity, and unit. Requires MEMBER.
func (s *Service) UpdateLine(ctx context.Context, input UpdateLineInput) (*domain.ShoppingListItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.Name = strings.TrimSpace(input.Name)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	line, err := s.repo.GetLine(ctx, input.LineID)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireList(ctx, userID, line.ListID, domain.RoleMember); err != nil {
		return nil, err
	}

	line.Name = input.Name
	line.Quantity = input.Quantity
	line.Unit = input.Unit

	return s.repo.UpdateLine(ctx, line)
}

// SetLineChecked flips a line's checked flag. Requires MEMBER.
func (s *Service) SetLineChecked(ctx context.Context, lineID uuid.UUID, checked bool) (*domain.ShoppingListItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	line, err := s.repo.GetLine(ctx, lineID)
	if err != nil {
		return nil, err
	}
	if _, err := s.requireList(ctx, userID, line.ListID, domain.RoleMember); err != nil {
		return nil, err
	}

	line.IsChecked = checked
	return s.repo.UpdateLine(ctx, line)
}

// DeleteLine removes one line. Requires MEMBER.
func (s *Service) DeleteLine(ctx context.Context, lineID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	line, err := s.repo.GetLine(ctx, lineID)
	if err != nil {
		return err
	}
	if _, err := s.requireList(ctx, userID, line.ListID, domain.RoleMember); err != nil {
		return err
	}
	return s.repo.DeleteLine(ctx, lineID)
}

// ClearChecked removes every checked line from a list and reports how
// many were removed. Requires MEMBER.
func (s *Service) ClearChecked(ctx context.Context, listID uuid.UUID) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if _, err := s.requireList(ctx, userID, listID, domain.RoleMember); err != nil {
		return 0, err
	}

	n, err := s.repo.DeleteChecked(ctx, listID)
	if err != nil {
		return 0, fmt.Errorf("shopping.ClearChecked: %w", err)
	}

	s.log.InfoContext(ctx, "checked lines cleared",
		slog.String("list_id", listID.String()),
		slog.Int("count", n))

	return n, nil
}
