package mealplan

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/pkg/ctxutil"
)

const maxReceiptBytes = 10 << 20

var receiptMIMETypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadReceipt stores a receipt image and returns its object key.
// Requires MEMBER.
func (s *Service) UploadReceipt(ctx context.Context, kitchenID uuid.UUID, data []byte, contentType string) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	if s.store == nil {
		return "", fmt.Errorf("receipt storage is not configured: %w", domain.ErrValidation)
	}
	ext, ok := receiptMIMETypes[contentType]
	if !ok {
		return "", domain.NewValidationError("content_type", "must be image/jpeg, image/png, or image/webp")
	}
	if len(data) == 0 {
		return "", domain.NewValidationError("data", "required")
	}
	if len(data) > maxReceiptBytes {
		return "", domain.NewValidationError("data", "too large (max 10 MiB)")
	}

	if _, err := s.access.RequireKitchen(ctx, userID, kitchenID, domain.RoleMember); err != nil {
		return "", err
	}

	key := path.Join("receipts", kitchenID.String(), uuid.NewString()+ext)
	if err := s.store.Upload(ctx, key, data, contentType); err != nil {
		return "", fmt.Errorf("mealplan.UploadReceipt: %w", err)
	}

	s.log.InfoContext(ctx, "receipt uploaded",
		slog.String("kitchen_id", kitchenID.String()),
		slog.String("key", key),
		slog.Int("bytes", len(data)))

	return key, nil
}

// ParseReceipt runs the vision model over a previously uploaded receipt
// and returns draft inventory lines. Nothing is written; the caller
// confirms lines before they become batches. Requires MEMBER.
func (s *Service) ParseReceipt(ctx context.Context, kitchenID uuid.UUID, key string) ([]domain.ReceiptLine, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if s.store == nil || s.llm == nil {
		return nil, fmt.Errorf("receipt parsing is not configured: %w", domain.ErrValidation)
	}

	// Keys are namespaced per kitchen; refuse reads across that line.
	if !strings.HasPrefix(key, path.Join("receipts", kitchenID.String())+"/") {
		return nil, domain.ErrForbidden
	}

	if _, err := s.access.RequireKitchen(ctx, userID, kitchenID, domain.RoleMember); err != nil {
		return nil, err
	}

	data, contentType, err := s.store.Download(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("fetch receipt: %w", err)
	}

	lines, err := s.llm.ParseReceipt(ctx, data, contentType)
	if err != nil {
		return nil, fmt.Errorf("mealplan.ParseReceipt: %w", err)
	}

	s.log.InfoContext(ctx, "receipt parsed",
		slog.String("kitchen_id", kitchenID.String()),
		slog.Int("lines", len(lines)))

	return lines, nil
}
