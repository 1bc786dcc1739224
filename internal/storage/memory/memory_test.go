package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/rrogerthat/shoppinglist/internal/models"
	"github.com/rrogerthat/shoppinglist/internal/storage"
	"github.com/rrogerthat/shoppinglist/internal/storage/storagetest"
)

func TestMemoryStore(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		return New()
	})
}

func TestMemoryStore_ConcurrentCreates(t *testing.T) {
	store := New()
	ctx := context.Background()

	const workers = 8
	const perWorker = 25

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if err := store.CreateShoppingItem(ctx, &models.ShoppingItem{Name: "item"}); err != nil {
					t.Errorf("CreateShoppingItem failed: %v", err)
				}
			}
		}()
	}
	wg.Wait()

	items, err := store.ListShoppingItems(ctx)
	if err != nil {
		t.Fatalf("ListShoppingItems failed: %v", err)
	}
	if len(items) != workers*perWorker {
		t.Fatalf("expected %d items, got %d", workers*perWorker, len(items))
	}

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if seen[item.ID] {
			t.Fatalf("duplicate ID %s", item.ID)
		}
		seen[item.ID] = true
	}
}

func TestMemoryStore_ListReturnsCopy(t *testing.T) {
	store := New()
	ctx := context.Background()

	if err := store.CreateShoppingItem(ctx, &models.ShoppingItem{Name: "beans"}); err != nil {
		t.Fatalf("CreateShoppingItem failed: %v", err)
	}

	items, _ := store.ListShoppingItems(ctx)
	items[0].Name = "mutated"

	again, _ := store.ListShoppingItems(ctx)
	if again[0].Name != "beans" {
		t.Errorf("list result aliases stored state: got %q", again[0].Name)
	}
}
