package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/rrogerthat/shoppinglist/internal/models"
	"github.com/rrogerthat/shoppinglist/internal/storage"
)

// ListRecipes returns every recipe ordered by insertion.
func (s *SQLiteStore) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, ingredients FROM recipes ORDER BY seq",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	recipes := []models.Recipe{}
	for rows.Next() {
		var (
			rec         models.Recipe
			ingredients string
		)
		if err := rows.Scan(&rec.ID, &rec.Name, &ingredients); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		if rec.Ingredients, err = decodeIngredients(ingredients); err != nil {
			return nil, fmt.Errorf("recipe %s: %w", rec.ID, err)
		}
		recipes = append(recipes, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}

	return recipes, nil
}

// GetRecipe retrieves a recipe by ID.
func (s *SQLiteStore) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	return getRecipe(ctx, s.db, id)
}

// CreateRecipe inserts a new recipe with a generated ID.
func (s *SQLiteStore) CreateRecipe(ctx context.Context, rec *models.Recipe) error {
	rec.ID = uuid.New().String()
	rec.Ingredients = models.CopyIngredients(rec.Ingredients)

	ingredients, err := json.Marshal(rec.Ingredients)
	if err != nil {
		return fmt.Errorf("failed to marshal ingredients: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO recipes (id, name, ingredients) VALUES (?, ?, ?)",
		rec.ID, rec.Name, string(ingredients),
	)
	if err != nil {
		return fmt.Errorf("failed to insert recipe: %w", err)
	}

	return nil
}

// UpdateRecipe applies the supplied fields inside a transaction.
func (s *SQLiteStore) UpdateRecipe(ctx context.Context, id string, in models.RecipeInput) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rec, err := getRecipe(ctx, tx, id)
	if err != nil {
		return err
	}
	in.Apply(rec)

	ingredients, err := json.Marshal(rec.Ingredients)
	if err != nil {
		return fmt.Errorf("failed to marshal ingredients: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE recipes SET name = ?, ingredients = ? WHERE id = ?",
		rec.Name, string(ingredients), id,
	)
	if err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteRecipe removes a recipe by ID.
func (s *SQLiteStore) DeleteRecipe(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM recipes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	return checkAffected(result, "recipe", id)
}

func getRecipe(ctx context.Context, q querier, id string) (*models.Recipe, error) {
	var (
		rec         models.Recipe
		ingredients string
	)
	err := q.QueryRowContext(ctx,
		"SELECT id, name, ingredients FROM recipes WHERE id = ?",
		id,
	).Scan(&rec.ID, &rec.Name, &ingredients)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("recipe %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	if rec.Ingredients, err = decodeIngredients(ingredients); err != nil {
		return nil, fmt.Errorf("recipe %s: %w", id, err)
	}

	return &rec, nil
}

func decodeIngredients(raw string) ([]string, error) {
	list := []string{}
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ingredients: %w", err)
	}
	return models.CopyIngredients(list), nil
}
