package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/potlucklabs/potluck/internal/recipes/domain"
	"github.com/potlucklabs/potluck/internal/recipes/store"
	"github.com/potlucklabs/potluck/pkg/idx"
	"github.com/potlucklabs/potluck/pkg/slogx"
)

// ErrInvalidRecipe covers every validation failure on recipe creation:
// missing fields, too-short instructions, and any database-level constraint
// the entity gate somehow missed. Callers see one error kind.
var ErrInvalidRecipe = errors.New("invalid recipe data")

type RecipeService struct {
	Store store.Store
}

type CreateRecipeParams struct {
	Title             string
	Instructions      string
	MinutesToComplete int // defaults to 0 when absent from the request
}

// Create validates and persists a recipe owned by ownerID.
func (s *RecipeService) Create(ctx context.Context, ownerID string, p CreateRecipeParams) (domain.Recipe, error) {
	log := slogx.FromContext(ctx)

	recipe := domain.Recipe{
		ID:                idx.New().String(),
		Title:             p.Title,
		Instructions:      p.Instructions,
		MinutesToComplete: p.MinutesToComplete,
		OwnerID:           ownerID,
	}

	// Entity validation is the primary gate; it runs before any store call.
	if err := recipe.Validate(); err != nil {
		log.Warn("recipe rejected by validation",
			slog.String("owner_id", ownerID),
			slog.Any("reason", err),
		)
		return domain.Recipe{}, ErrInvalidRecipe
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		return tx.Recipes().CreateRecipe(ctx, recipe)
	})
	if err != nil {
		// The database safety nets (CHECK, FK, NOT NULL) are normalized to
		// the same error kind as entity validation; the tx already rolled back.
		if errors.Is(err, store.ErrConstraint) || errors.Is(err, store.ErrAlreadyExists) {
			return domain.Recipe{}, ErrInvalidRecipe
		}
		log.Error("failed to create recipe",
			slog.String("owner_id", ownerID),
			slog.Any("error", err),
		)
		return domain.Recipe{}, err
	}

	log.Info("recipe created",
		slog.String("recipe_id", recipe.ID),
		slog.String("owner_id", ownerID),
	)

	return recipe, nil
}

// ListForOwner returns every recipe owned by ownerID, in insertion order.
func (s *RecipeService) ListForOwner(ctx context.Context, ownerID string) ([]domain.Recipe, error) {
	return s.Store.Recipes().ListRecipesByOwner(ctx, ownerID)
}
