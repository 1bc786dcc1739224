package service

import (
	"context"
	"log/slog"

	"github.com/rrogerthat/shoppinglist/internal/models"
	"github.com/rrogerthat/shoppinglist/internal/storage"
)

const recipeResource = "recipe"

// RecipeService is the recipe collection. It follows the same contract
// as ShoppingListService.
type RecipeService struct {
	store storage.Store
}

// NewRecipeService creates a new RecipeService with the given storage backend.
func NewRecipeService(store storage.Store) *RecipeService {
	return &RecipeService{store: store}
}

// List returns every recipe in insertion order.
func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	recipes, err := s.store.ListRecipes(ctx)
	if err != nil {
		slog.Error("ListRecipes failed", "error", err)
		return nil, err
	}

	slog.Debug("ListRecipes successful", "count", len(recipes))
	return recipes, nil
}

// Get returns a single recipe.
func (s *RecipeService) Get(ctx context.Context, id string) (*models.Recipe, error) {
	rec, err := s.store.GetRecipe(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, recipeResource, id)
	}
	return rec, nil
}

// Create validates the input and appends a new recipe with a generated ID.
func (s *RecipeService) Create(ctx context.Context, in models.RecipeInput) (*models.Recipe, error) {
	if in.Name == nil || *in.Name == "" {
		return nil, missingField("name")
	}
	if in.Ingredients == nil {
		return nil, missingField("ingredients")
	}

	rec := &models.Recipe{}
	in.Apply(rec)

	if err := s.store.CreateRecipe(ctx, rec); err != nil {
		slog.Error("CreateRecipe failed", "error", err)
		return nil, err
	}

	slog.Info("Recipe created",
		"recipe_id", rec.ID,
		"name", rec.Name,
		"ingredients_count", len(rec.Ingredients),
	)
	return rec, nil
}

// Update overwrites the supplied fields of the recipe with the given ID.
func (s *RecipeService) Update(ctx context.Context, id string, in models.RecipeInput) error {
	if err := checkPathID(id, in.ID); err != nil {
		return err
	}
	if in.Name != nil && *in.Name == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}

	if err := s.store.UpdateRecipe(ctx, id, in); err != nil {
		return notFoundOr(err, recipeResource, id)
	}

	slog.Info("Recipe updated", "recipe_id", id)
	return nil
}

// Delete removes the recipe with the given ID.
func (s *RecipeService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteRecipe(ctx, id); err != nil {
		return notFoundOr(err, recipeResource, id)
	}

	slog.Info("Recipe deleted", "recipe_id", id)
	return nil
}
