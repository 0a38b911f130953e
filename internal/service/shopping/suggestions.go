package shopping

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/pkg/ctxutil"
)

// RestockSuggestion is a proposed shopping line for an item running low.
type RestockSuggestion struct {
	ItemID   uuid.UUID
	Name     string
	Quantity float64
	Unit     string
}

// RestockSuggestions proposes lines for every item in the kitchen whose
// active quantity sits at or below its threshold, depleted items
// included. Suggested quantity is the shortfall against the threshold,
// or one full threshold when the item sits exactly at it.
func (s *Service) RestockSuggestions(ctx context.Context, kitchenID uuid.UUID) ([]RestockSuggestion, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.access.RequireKitchen(ctx, userID, kitchenID, domain.RoleViewer); err != nil {
		return nil, err
	}

	rows, err := s.inventory.ListRestockCandidates(ctx, kitchenID)
	if err != nil {
		return nil, fmt.Errorf("shopping.RestockSuggestions: %w", err)
	}

	out := make([]RestockSuggestion, 0, len(rows))
	for _, row := range rows {
		qty := row.Item.Threshold - row.Quantity
		if qty <= 0 {
			qty = row.Item.Threshold
		}
		out = append(out, RestockSuggestion{
			ItemID:   row.Item.ID,
			Name:     row.Item.Name,
			Quantity: qty,
			Unit:     row.Item.DefaultUnit,
		})
	}
	return out, nil
}

// AddRestockSuggestions materializes the kitchen's current restock
// suggestions as lines on the given list, skipping items the list
// already carries an unchecked line for. Requires MEMBER.
func (s *Service) AddRestockSuggestions(ctx context.Context, listID uuid.UUID) ([]*domain.ShoppingListItem, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.requireList(ctx, userID, listID, domain.RoleMember)
	if err != nil {
		return nil, err
	}

	suggestions, err := s.RestockSuggestions(ctx, list.KitchenID)
	if err != nil {
		return nil, err
	}

	var added []*domain.ShoppingListItem
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.repo.ListLines(txCtx, listID)
		if err != nil {
			return fmt.Errorf("list lines: %w", err)
		}
		onList := make(map[uuid.UUID]bool)
		for _, li := range existing {
			if li.ItemID != nil && !li.IsChecked {
				onList[*li.ItemID] = true
			}
		}

		now := time.Now()
		for _, sg := range suggestions {
			if onList[sg.ItemID] {
				continue
			}
			itemID := sg.ItemID
			line, err := s.repo.InsertLine(txCtx, &domain.ShoppingListItem{
				ID:        uuid.New(),
				ListID:    listID,
				ItemID:    &itemID,
				Name:      sg.Name,
				Quantity:  sg.Quantity,
				Unit:      sg.Unit,
				CreatedAt: now,
			})
			if err != nil {
				return fmt.Errorf("insert line for %s: %w", sg.Name, err)
			}
			added = append(added, line)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("shopping.AddRestockSuggestions: %w", err)
	}

	s.log.InfoContext(ctx, "restock suggestions added",
		slog.String("list_id", listID.String()),
		slog.Int("count", len(added)))

	return added, nil
}
