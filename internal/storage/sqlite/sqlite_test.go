package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rrogerthat/shoppinglist/internal/models"
	"github.com/rrogerthat/shoppinglist/internal/storage"
	"github.com/rrogerthat/shoppinglist/internal/storage/storagetest"
)

func TestSQLiteStore(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Store {
		store, err := New(MemoryDSN)
		if err != nil {
			t.Fatalf("Failed to create store: %v", err)
		}
		t.Cleanup(func() { store.Close() })
		return store
	})
}

func TestSQLiteStore_FileDatabase(t *testing.T) {
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "shoppinglist-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "nested", "test.db")
	ctx := context.Background()

	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	rec := &models.Recipe{Name: "Soup", Ingredients: []string{"water", "salt"}}
	if err := store.CreateRecipe(ctx, rec); err != nil {
		t.Fatalf("CreateRecipe failed: %v", err)
	}
	store.Close()

	// Reopening runs the migrations again; they must be idempotent.
	reopened, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen store: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.GetRecipe(ctx, rec.ID)
	if err != nil {
		t.Fatalf("GetRecipe failed: %v", err)
	}
	if got.Name != "Soup" || len(got.Ingredients) != 2 {
		t.Errorf("unexpected recipe: %+v", got)
	}
}

func TestNew_EmptyPathUsesMemory(t *testing.T) {
	store, err := New("")
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	items, err := store.ListShoppingItems(context.Background())
	if err != nil {
		t.Fatalf("ListShoppingItems failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected fresh database, got %d items", len(items))
	}
}
