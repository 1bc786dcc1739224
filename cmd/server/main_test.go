package main

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/rrogerthat/shoppinglist/internal/config"
	"github.com/rrogerthat/shoppinglist/internal/storage/memory"
	"github.com/rrogerthat/shoppinglist/internal/storage/sqlite"
)

func TestOpenStore(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		store, err := openStore(&config.Config{Storage: config.StorageMemory})
		if err != nil {
			t.Fatalf("openStore failed: %v", err)
		}
		defer store.Close()
		if _, ok := store.(*memory.MemoryStore); !ok {
			t.Errorf("expected *memory.MemoryStore, got %T", store)
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		store, err := openStore(&config.Config{Storage: config.StorageSQLite})
		if err != nil {
			t.Fatalf("openStore failed: %v", err)
		}
		defer store.Close()
		if _, ok := store.(*sqlite.SQLiteStore); !ok {
			t.Errorf("expected *sqlite.SQLiteStore, got %T", store)
		}
		if _, err := store.ListRecipes(context.Background()); err != nil {
			t.Errorf("ListRecipes failed: %v", err)
		}
	})
}

func TestStaticFiles_Embedded(t *testing.T) {
	static, err := staticFiles("")
	if err != nil {
		t.Fatalf("staticFiles failed: %v", err)
	}
	if _, err := fs.Stat(static, "index.html"); err != nil {
		t.Errorf("embedded index.html missing: %v", err)
	}
}

func TestStaticFiles_Directory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.html"), []byte("hi"), 0644); err != nil {
		t.Fatalf("failed to write index.html: %v", err)
	}

	static, err := staticFiles(dir)
	if err != nil {
		t.Fatalf("staticFiles failed: %v", err)
	}
	data, err := fs.ReadFile(static, "index.html")
	if err != nil || string(data) != "hi" {
		t.Errorf("unexpected index.html: %q, %v", data, err)
	}
}

func TestStaticFiles_MissingDirectory(t *testing.T) {
	if _, err := staticFiles(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}
