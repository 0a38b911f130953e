package resolver

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hearthhq/hearth-backend/internal/domain"
	"github.com/hearthhq/hearth-backend/internal/transport/graphql/model"
	"github.com/hearthhq/hearth-backend/pkg/ctxutil"
)

func TestUploadReceipt_DecodesBase64(t *testing.T) {
	t.Parallel()

	kitchenID := uuid.New()
	payload := []byte("fake-jpeg-bytes")

	mock := &mealplanServiceMock{
		UploadReceiptFunc: func(ctx context.Context, id uuid.UUID, data []byte, contentType string) (string, error) {
			require.Equal(t, kitchenID, id)
			require.Equal(t, payload, data)
			require.Equal(t, "image/jpeg", contentType)
			return "receipts/abc.jpg", nil
		},
	}

	resolver := &mutationResolver{&Resolver{mealplan: mock}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	key, err := resolver.UploadReceipt(ctx, model.UploadReceiptInput{
		KitchenID:   kitchenID,
		Data:        base64.StdEncoding.EncodeToString(payload),
		ContentType: "image/jpeg",
	})

	require.NoError(t, err)
	require.Equal(t, "receipts/abc.jpg", key)
}

func TestUploadReceipt_InvalidBase64(t *testing.T) {
	t.Parallel()

	resolver := &mutationResolver{&Resolver{mealplan: &mealplanServiceMock{}}}
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())

	_, err := resolver.UploadReceipt(ctx, model.UploadReceiptInput{
		KitchenID:   uuid.New(),
		Data:        "not base64 !!!",
		ContentType: "image/jpeg",
	})

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestMealPlanEntryRecipe_NilRecipeID(t *testing.T) {
	t.Parallel()

	resolver := &mealPlanEntryResolver{&Resolver{mealplan: &mealplanServiceMock{}}}

	result, err := resolver.Recipe(context.Background(), &domain.MealPlanEntry{})

	require.NoError(t, err)
	require.Nil(t, result)
}

func TestMealPlanEntryRecipe_LoadsLinkedRecipe(t *testing.T) {
	t.Parallel()

	recipeID := uuid.New()

	mock := &mealplanServiceMock{
		GetRecipeFunc: func(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
			require.Equal(t, recipeID, id)
			return &domain.Recipe{ID: recipeID, Title: "Shakshuka"}, nil
		},
	}

	resolver := &mealPlanEntryResolver{&Resolver{mealplan: mock}}

	result, err := resolver.Recipe(context.Background(), &domain.MealPlanEntry{RecipeID: &recipeID})

	require.NoError(t, err)
	require.Equal(t, "Shakshuka", result.Title)
}
