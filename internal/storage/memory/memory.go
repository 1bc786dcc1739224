// Package memory provides the default in-process implementation of storage.Store.
// Each collection is an ordered slice guarded by its own lock; nothing survives
// a restart.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/rrogerthat/shoppinglist/internal/models"
	"github.com/rrogerthat/shoppinglist/internal/storage"
)

// Ensure MemoryStore implements storage.Store
var _ storage.Store = (*MemoryStore)(nil)

// MemoryStore implements storage.Store with in-memory slices.
type MemoryStore struct {
	itemsMu sync.RWMutex
	items   []models.ShoppingItem

	recipesMu sync.RWMutex
	recipes   []models.Recipe
}

// New creates an empty MemoryStore.
func New() *MemoryStore {
	return &MemoryStore{}
}

// Close is a no-op; the collections are dropped with the store.
func (s *MemoryStore) Close() error {
	return nil
}

// ListShoppingItems returns a copy of all items in insertion order.
func (s *MemoryStore) ListShoppingItems(ctx context.Context) ([]models.ShoppingItem, error) {
	s.itemsMu.RLock()
	defer s.itemsMu.RUnlock()

	out := make([]models.ShoppingItem, len(s.items))
	copy(out, s.items)
	return out, nil
}

// GetShoppingItem retrieves an item by ID.
func (s *MemoryStore) GetShoppingItem(ctx context.Context, id string) (*models.ShoppingItem, error) {
	s.itemsMu.RLock()
	defer s.itemsMu.RUnlock()

	i := s.itemIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("shopping item %s: %w", id, storage.ErrNotFound)
	}
	item := s.items[i]
	return &item, nil
}

// CreateShoppingItem assigns a fresh ID and appends the item.
func (s *MemoryStore) CreateShoppingItem(ctx context.Context, item *models.ShoppingItem) error {
	s.itemsMu.Lock()
	defer s.itemsMu.Unlock()

	item.ID = s.newItemID()
	s.items = append(s.items, *item)
	return nil
}

// UpdateShoppingItem overwrites the supplied fields in place.
func (s *MemoryStore) UpdateShoppingItem(ctx context.Context, id string, in models.ShoppingItemInput) error {
	s.itemsMu.Lock()
	defer s.itemsMu.Unlock()

	i := s.itemIndex(id)
	if i < 0 {
		return fmt.Errorf("shopping item %s: %w", id, storage.ErrNotFound)
	}
	in.Apply(&s.items[i])
	return nil
}

// DeleteShoppingItem removes the item with the given ID.
func (s *MemoryStore) DeleteShoppingItem(ctx context.Context, id string) error {
	s.itemsMu.Lock()
	defer s.itemsMu.Unlock()

	i := s.itemIndex(id)
	if i < 0 {
		return fmt.Errorf("shopping item %s: %w", id, storage.ErrNotFound)
	}
	s.items = slices.Delete(s.items, i, i+1)
	return nil
}

// ListRecipes returns a deep copy of all recipes in insertion order.
func (s *MemoryStore) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	s.recipesMu.RLock()
	defer s.recipesMu.RUnlock()

	out := make([]models.Recipe, len(s.recipes))
	for i, rec := range s.recipes {
		rec.Ingredients = models.CopyIngredients(rec.Ingredients)
		out[i] = rec
	}
	return out, nil
}

// GetRecipe retrieves a recipe by ID.
func (s *MemoryStore) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	s.recipesMu.RLock()
	defer s.recipesMu.RUnlock()

	i := s.recipeIndex(id)
	if i < 0 {
		return nil, fmt.Errorf("recipe %s: %w", id, storage.ErrNotFound)
	}
	rec := s.recipes[i]
	rec.Ingredients = models.CopyIngredients(rec.Ingredients)
	return &rec, nil
}

// CreateRecipe assigns a fresh ID and appends the recipe.
func (s *MemoryStore) CreateRecipe(ctx context.Context, rec *models.Recipe) error {
	s.recipesMu.Lock()
	defer s.recipesMu.Unlock()

	rec.ID = s.newRecipeID()
	rec.Ingredients = models.CopyIngredients(rec.Ingredients)

	stored := *rec
	// rec is handed back to the caller, so the stored copy gets its own slice.
	stored.Ingredients = models.CopyIngredients(rec.Ingredients)
	s.recipes = append(s.recipes, stored)
	return nil
}

// UpdateRecipe overwrites the supplied fields in place.
func (s *MemoryStore) UpdateRecipe(ctx context.Context, id string, in models.RecipeInput) error {
	s.recipesMu.Lock()
	defer s.recipesMu.Unlock()

	i := s.recipeIndex(id)
	if i < 0 {
		return fmt.Errorf("recipe %s: %w", id, storage.ErrNotFound)
	}
	in.Apply(&s.recipes[i])
	return nil
}

// DeleteRecipe removes the recipe with the given ID.
func (s *MemoryStore) DeleteRecipe(ctx context.Context, id string) error {
	s.recipesMu.Lock()
	defer s.recipesMu.Unlock()

	i := s.recipeIndex(id)
	if i < 0 {
		return fmt.Errorf("recipe %s: %w", id, storage.ErrNotFound)
	}
	s.recipes = slices.Delete(s.recipes, i, i+1)
	return nil
}

// itemIndex must be called with itemsMu held.
func (s *MemoryStore) itemIndex(id string) int {
	return slices.IndexFunc(s.items, func(item models.ShoppingItem) bool {
		return item.ID == id
	})
}

// recipeIndex must be called with recipesMu held.
func (s *MemoryStore) recipeIndex(id string) int {
	return slices.IndexFunc(s.recipes, func(rec models.Recipe) bool {
		return rec.ID == id
	})
}

// newItemID returns a UUID not already used in the collection.
// Must be called with itemsMu held.
func (s *MemoryStore) newItemID() string {
	for {
		id := uuid.New().String()
		if s.itemIndex(id) < 0 {
			return id
		}
	}
}

func (s *MemoryStore) newRecipeID() string {
	for {
		id := uuid.New().String()
		if s.recipeIndex(id) < 0 {
			return id
		}
	}
}
