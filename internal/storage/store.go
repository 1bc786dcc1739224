// Package storage provides abstractions for the collection backends.
package storage

import (
	"context"
	"errors"

	"github.com/rrogerthat/shoppinglist/internal/models"
)

// ErrNotFound is returned (wrapped) when no entity has the requested ID.
var ErrNotFound = errors.New("not found")

// Store defines the interface for shopping list and recipe storage.
// This abstraction allows swapping backends (in-memory, SQLite)
// without changing the service layer.
type Store interface {
	// ListShoppingItems returns all items in insertion order.
	// The result is never nil.
	ListShoppingItems(ctx context.Context) ([]models.ShoppingItem, error)

	// GetShoppingItem retrieves an item by its ID.
	GetShoppingItem(ctx context.Context, id string) (*models.ShoppingItem, error)

	// CreateShoppingItem appends a new item.
	// The item.ID field is populated by the store.
	CreateShoppingItem(ctx context.Context, item *models.ShoppingItem) error

	// UpdateShoppingItem applies the supplied fields of in to the item with
	// the given ID. Returns ErrNotFound if no such item exists.
	UpdateShoppingItem(ctx context.Context, id string, in models.ShoppingItemInput) error

	// DeleteShoppingItem removes an item, keeping the order of the rest.
	DeleteShoppingItem(ctx context.Context, id string) error

	// ListRecipes returns all recipes in insertion order.
	// The result is never nil.
	ListRecipes(ctx context.Context) ([]models.Recipe, error)

	// GetRecipe retrieves a recipe by its ID.
	GetRecipe(ctx context.Context, id string) (*models.Recipe, error)

	// CreateRecipe appends a new recipe.
	// The rec.ID field is populated by the store.
	CreateRecipe(ctx context.Context, rec *models.Recipe) error

	// UpdateRecipe applies the supplied fields of in to the recipe with
	// the given ID. Returns ErrNotFound if no such recipe exists.
	UpdateRecipe(ctx context.Context, id string, in models.RecipeInput) error

	// DeleteRecipe removes a recipe, keeping the order of the rest.
	DeleteRecipe(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
