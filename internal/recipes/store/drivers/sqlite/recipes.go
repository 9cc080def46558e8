package sqlite

import (
	"context"
	"time"

	"github.com/potlucklabs/potluck/internal/recipes/domain"
)

type recipesRepo struct {
	db dbtx
}

const recipeColumns = `id, title, instructions, minutes_to_complete, user_id, created_at, updated_at`

func (r *recipesRepo) CreateRecipe(ctx context.Context, rec domain.Recipe) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO recipes (id, title, instructions, minutes_to_complete, user_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Title, rec.Instructions, rec.MinutesToComplete, rec.OwnerID, now, now,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

func (r *recipesRepo) ListRecipesByOwner(ctx context.Context, ownerID string) ([]domain.Recipe, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+recipeColumns+` FROM recipes WHERE user_id = ? ORDER BY id`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []domain.Recipe
	for rows.Next() {
		var rec domain.Recipe
		if err := rows.Scan(
			&rec.ID,
			&rec.Title,
			&rec.Instructions,
			&rec.MinutesToComplete,
			&rec.OwnerID,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	return recipes, rows.Err()
}
