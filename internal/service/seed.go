package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rrogerthat/shoppinglist/internal/models"
)

// Seed adds the sample shopping list and recipes used for demos.
func Seed(ctx context.Context, items *ShoppingListService, recipes *RecipeService) error {
	for _, name := range []string{"beans", "tomatoes", "peppers"} {
		if _, err := items.Create(ctx, models.ShoppingItemInput{Name: &name}); err != nil {
			return fmt.Errorf("failed to seed shopping item %q: %w", name, err)
		}
	}

	samples := []struct {
		name        string
		ingredients []string
	}{
		{"boiled white rice", []string{"1 cup white rice", "2 cups water", "pinch of salt"}},
		{"milkshake", []string{"2 tbsp cocoa", "2 cups vanilla ice cream", "1 cup milk"}},
	}
	for _, sample := range samples {
		_, err := recipes.Create(ctx, models.RecipeInput{
			Name:        &sample.name,
			Ingredients: &sample.ingredients,
		})
		if err != nil {
			return fmt.Errorf("failed to seed recipe %q: %w", sample.name, err)
		}
	}

	slog.Info("Sample data seeded", "shopping_items", 3, "recipes", len(samples))
	return nil
}
