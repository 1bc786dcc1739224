// Package storagetest holds a behavioral test suite shared by every
// storage.Store implementation.
package storagetest

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rrogerthat/shoppinglist/internal/models"
	"github.com/rrogerthat/shoppinglist/internal/storage"
)

// Run exercises store against the collection contract. newStore must
// return an empty store; it is called once per subtest.
func Run(t *testing.T, newStore func(t *testing.T) storage.Store) {
	t.Helper()
	ctx := context.Background()

	t.Run("empty collections list as empty slices", func(t *testing.T) {
		store := newStore(t)

		items, err := store.ListShoppingItems(ctx)
		if err != nil {
			t.Fatalf("ListShoppingItems failed: %v", err)
		}
		if items == nil || len(items) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", items)
		}

		recipes, err := store.ListRecipes(ctx)
		if err != nil {
			t.Fatalf("ListRecipes failed: %v", err)
		}
		if recipes == nil || len(recipes) != 0 {
			t.Errorf("expected empty non-nil slice, got %#v", recipes)
		}
	})

	t.Run("CreateShoppingItem assigns unique IDs and keeps order", func(t *testing.T) {
		store := newStore(t)

		names := []string{"beans", "tomatoes", "peppers"}
		seen := map[string]bool{}
		for _, name := range names {
			item := &models.ShoppingItem{Name: name}
			if err := store.CreateShoppingItem(ctx, item); err != nil {
				t.Fatalf("CreateShoppingItem failed: %v", err)
			}
			if item.ID == "" {
				t.Fatal("expected ID to be generated")
			}
			if seen[item.ID] {
				t.Fatalf("duplicate ID %s", item.ID)
			}
			seen[item.ID] = true
		}

		items, err := store.ListShoppingItems(ctx)
		if err != nil {
			t.Fatalf("ListShoppingItems failed: %v", err)
		}
		if len(items) != len(names) {
			t.Fatalf("expected %d items, got %d", len(names), len(items))
		}
		for i, name := range names {
			if items[i].Name != name {
				t.Errorf("position %d: expected %q, got %q", i, name, items[i].Name)
			}
		}
	})

	t.Run("shopping item round trip", func(t *testing.T) {
		store := newStore(t)

		item := &models.ShoppingItem{Name: "Broccoli", DueDate: "2024-05-01", Checked: true}
		if err := store.CreateShoppingItem(ctx, item); err != nil {
			t.Fatalf("CreateShoppingItem failed: %v", err)
		}

		got, err := store.GetShoppingItem(ctx, item.ID)
		if err != nil {
			t.Fatalf("GetShoppingItem failed: %v", err)
		}
		if *got != *item {
			t.Errorf("round trip mismatch: want %+v, got %+v", *item, *got)
		}
	})

	t.Run("UpdateShoppingItem changes only supplied fields", func(t *testing.T) {
		store := newStore(t)

		item := &models.ShoppingItem{Name: "milk", DueDate: "tomorrow"}
		if err := store.CreateShoppingItem(ctx, item); err != nil {
			t.Fatalf("CreateShoppingItem failed: %v", err)
		}

		checked := true
		if err := store.UpdateShoppingItem(ctx, item.ID, models.ShoppingItemInput{Checked: &checked}); err != nil {
			t.Fatalf("UpdateShoppingItem failed: %v", err)
		}

		got, err := store.GetShoppingItem(ctx, item.ID)
		if err != nil {
			t.Fatalf("GetShoppingItem failed: %v", err)
		}
		want := models.ShoppingItem{ID: item.ID, Name: "milk", DueDate: "tomorrow", Checked: true}
		if *got != want {
			t.Errorf("want %+v, got %+v", want, *got)
		}
	})

	t.Run("DeleteShoppingItem removes exactly one and keeps order", func(t *testing.T) {
		store := newStore(t)

		var ids []string
		for _, name := range []string{"a", "b", "c", "d"} {
			item := &models.ShoppingItem{Name: name}
			if err := store.CreateShoppingItem(ctx, item); err != nil {
				t.Fatalf("CreateShoppingItem failed: %v", err)
			}
			ids = append(ids, item.ID)
		}

		if err := store.DeleteShoppingItem(ctx, ids[1]); err != nil {
			t.Fatalf("DeleteShoppingItem failed: %v", err)
		}

		items, err := store.ListShoppingItems(ctx)
		if err != nil {
			t.Fatalf("ListShoppingItems failed: %v", err)
		}
		var got []string
		for _, item := range items {
			got = append(got, item.Name)
		}
		if want := []string{"a", "c", "d"}; !reflect.DeepEqual(got, want) {
			t.Errorf("want %v, got %v", want, got)
		}
	})

	t.Run("missing shopping item returns ErrNotFound", func(t *testing.T) {
		store := newStore(t)

		if _, err := store.GetShoppingItem(ctx, "nonexistent-id"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetShoppingItem: expected ErrNotFound, got %v", err)
		}
		name := "x"
		if err := store.UpdateShoppingItem(ctx, "nonexistent-id", models.ShoppingItemInput{Name: &name}); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("UpdateShoppingItem: expected ErrNotFound, got %v", err)
		}
		if err := store.DeleteShoppingItem(ctx, "nonexistent-id"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("DeleteShoppingItem: expected ErrNotFound, got %v", err)
		}
	})

	t.Run("recipe round trip keeps ingredient order", func(t *testing.T) {
		store := newStore(t)

		rec := &models.Recipe{Name: "Soup", Ingredients: []string{"water", "salt"}}
		if err := store.CreateRecipe(ctx, rec); err != nil {
			t.Fatalf("CreateRecipe failed: %v", err)
		}
		if rec.ID == "" {
			t.Fatal("expected ID to be generated")
		}

		got, err := store.GetRecipe(ctx, rec.ID)
		if err != nil {
			t.Fatalf("GetRecipe failed: %v", err)
		}
		if !reflect.DeepEqual(*got, *rec) {
			t.Errorf("round trip mismatch: want %+v, got %+v", *rec, *got)
		}
	})

	t.Run("recipe with no ingredients stores an empty list", func(t *testing.T) {
		store := newStore(t)

		rec := &models.Recipe{Name: "Air"}
		if err := store.CreateRecipe(ctx, rec); err != nil {
			t.Fatalf("CreateRecipe failed: %v", err)
		}

		got, err := store.GetRecipe(ctx, rec.ID)
		if err != nil {
			t.Fatalf("GetRecipe failed: %v", err)
		}
		if got.Ingredients == nil || len(got.Ingredients) != 0 {
			t.Errorf("expected empty non-nil ingredients, got %#v", got.Ingredients)
		}
	})

	t.Run("stored recipe does not alias caller slices", func(t *testing.T) {
		store := newStore(t)

		ingredients := []string{"milk", "ice cream"}
		rec := &models.Recipe{Name: "milkshake", Ingredients: ingredients}
		if err := store.CreateRecipe(ctx, rec); err != nil {
			t.Fatalf("CreateRecipe failed: %v", err)
		}
		ingredients[0] = "changed"
		rec.Ingredients[1] = "changed"

		got, err := store.GetRecipe(ctx, rec.ID)
		if err != nil {
			t.Fatalf("GetRecipe failed: %v", err)
		}
		if want := []string{"milk", "ice cream"}; !reflect.DeepEqual(got.Ingredients, want) {
			t.Errorf("want %v, got %v", want, got.Ingredients)
		}
	})

	t.Run("UpdateRecipe changes only supplied fields", func(t *testing.T) {
		store := newStore(t)

		rec := &models.Recipe{Name: "boiled white rice", Ingredients: []string{"1 cup white rice", "2 cups water"}}
		if err := store.CreateRecipe(ctx, rec); err != nil {
			t.Fatalf("CreateRecipe failed: %v", err)
		}

		name := "steamed rice"
		if err := store.UpdateRecipe(ctx, rec.ID, models.RecipeInput{Name: &name}); err != nil {
			t.Fatalf("UpdateRecipe failed: %v", err)
		}

		got, err := store.GetRecipe(ctx, rec.ID)
		if err != nil {
			t.Fatalf("GetRecipe failed: %v", err)
		}
		want := models.Recipe{ID: rec.ID, Name: "steamed rice", Ingredients: []string{"1 cup white rice", "2 cups water"}}
		if !reflect.DeepEqual(*got, want) {
			t.Errorf("want %+v, got %+v", want, *got)
		}

		ingredients := []string{"rice"}
		if err := store.UpdateRecipe(ctx, rec.ID, models.RecipeInput{Ingredients: &ingredients}); err != nil {
			t.Fatalf("UpdateRecipe failed: %v", err)
		}
		got, err = store.GetRecipe(ctx, rec.ID)
		if err != nil {
			t.Fatalf("GetRecipe failed: %v", err)
		}
		if got.Name != "steamed rice" || !reflect.DeepEqual(got.Ingredients, ingredients) {
			t.Errorf("unexpected recipe after ingredient update: %+v", *got)
		}
	})

	t.Run("DeleteRecipe removes exactly one and keeps order", func(t *testing.T) {
		store := newStore(t)

		var ids []string
		for _, name := range []string{"first", "second", "third"} {
			rec := &models.Recipe{Name: name, Ingredients: []string{}}
			if err := store.CreateRecipe(ctx, rec); err != nil {
				t.Fatalf("CreateRecipe failed: %v", err)
			}
			ids = append(ids, rec.ID)
		}

		if err := store.DeleteRecipe(ctx, ids[0]); err != nil {
			t.Fatalf("DeleteRecipe failed: %v", err)
		}

		recipes, err := store.ListRecipes(ctx)
		if err != nil {
			t.Fatalf("ListRecipes failed: %v", err)
		}
		if len(recipes) != 2 || recipes[0].ID != ids[1] || recipes[1].ID != ids[2] {
			t.Errorf("unexpected recipes after delete: %+v", recipes)
		}
	})

	t.Run("missing recipe returns ErrNotFound", func(t *testing.T) {
		store := newStore(t)

		if _, err := store.GetRecipe(ctx, "nonexistent-id"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetRecipe: expected ErrNotFound, got %v", err)
		}
		name := "x"
		if err := store.UpdateRecipe(ctx, "nonexistent-id", models.RecipeInput{Name: &name}); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("UpdateRecipe: expected ErrNotFound, got %v", err)
		}
		if err := store.DeleteRecipe(ctx, "nonexistent-id"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("DeleteRecipe: expected ErrNotFound, got %v", err)
		}
	})
}
