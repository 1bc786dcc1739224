package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rrogerthat/shoppinglist/internal/models"
	"github.com/rrogerthat/shoppinglist/internal/storage"
)

const shoppingItemResource = "shopping list item"

// ShoppingListService is the shopping list collection: it validates input
// and delegates to the storage backend.
type ShoppingListService struct {
	store storage.Store
}

// NewShoppingListService creates a new ShoppingListService with the given storage backend.
func NewShoppingListService(store storage.Store) *ShoppingListService {
	return &ShoppingListService{store: store}
}

// List returns every item in insertion order.
func (s *ShoppingListService) List(ctx context.Context) ([]models.ShoppingItem, error) {
	items, err := s.store.ListShoppingItems(ctx)
	if err != nil {
		slog.Error("ListShoppingItems failed", "error", err)
		return nil, err
	}

	slog.Debug("ListShoppingItems successful", "count", len(items))
	return items, nil
}

// Get returns a single item.
func (s *ShoppingListService) Get(ctx context.Context, id string) (*models.ShoppingItem, error) {
	item, err := s.store.GetShoppingItem(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, shoppingItemResource, id)
	}
	return item, nil
}

// Create validates the input and appends a new item with a generated ID.
// Any ID in the input is ignored.
func (s *ShoppingListService) Create(ctx context.Context, in models.ShoppingItemInput) (*models.ShoppingItem, error) {
	if in.Name == nil || *in.Name == "" {
		return nil, missingField("name")
	}

	item := &models.ShoppingItem{}
	in.Apply(item)

	if err := s.store.CreateShoppingItem(ctx, item); err != nil {
		slog.Error("CreateShoppingItem failed", "error", err)
		return nil, err
	}

	slog.Info("Shopping item created", "item_id", item.ID, "name", item.Name)
	return item, nil
}

// Update overwrites the supplied fields of the item with the given ID.
func (s *ShoppingListService) Update(ctx context.Context, id string, in models.ShoppingItemInput) error {
	if err := checkPathID(id, in.ID); err != nil {
		return err
	}
	if in.Name != nil && *in.Name == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}

	if err := s.store.UpdateShoppingItem(ctx, id, in); err != nil {
		return notFoundOr(err, shoppingItemResource, id)
	}

	slog.Info("Shopping item updated", "item_id", id)
	return nil
}

// Delete removes the item with the given ID.
func (s *ShoppingListService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteShoppingItem(ctx, id); err != nil {
		return notFoundOr(err, shoppingItemResource, id)
	}

	slog.Info("Shopping item deleted", "item_id", id)
	return nil
}

// notFoundOr converts storage.ErrNotFound into a NotFoundError and logs
// anything else as a backend failure.
func notFoundOr(err error, resource, id string) error {
	if errors.Is(err, storage.ErrNotFound) {
		slog.Debug("Entity not found", "resource", resource, "id", id)
		return &NotFoundError{Resource: resource, ID: id}
	}
	slog.Error("Storage operation failed", "resource", resource, "id", id, "error", err)
	return fmt.Errorf("%s %s: %w", resource, id, err)
}
