package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/rrogerthat/shoppinglist/internal/api"
	"github.com/rrogerthat/shoppinglist/internal/metrics"
	"github.com/rrogerthat/shoppinglist/internal/models"
	"github.com/rrogerthat/shoppinglist/internal/server"
	"github.com/rrogerthat/shoppinglist/internal/service"
	"github.com/rrogerthat/shoppinglist/internal/storage/memory"
)

// setupLiveServer starts the full router on a free local port.
func setupLiveServer(t *testing.T) (*server.Server, func()) {
	t.Helper()

	store := memory.New()
	handler := api.NewRouter(api.Deps{
		ShoppingList: service.NewShoppingListService(store),
		Recipes:      service.NewRecipeService(store),
		Metrics:      metrics.New(),
		Static: fstest.MapFS{
			"index.html": {Data: []byte("<h1>Shopping List</h1>")},
		},
	})

	srv := server.New("127.0.0.1:0", handler)
	if err := srv.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	cleanup := func() {
		srv.Stop(context.Background())
		store.Close()
	}
	return srv, cleanup
}

func send(t *testing.T, method, url, body string, out any) int {
	t.Helper()

	var req *http.Request
	var err error
	if body == "" {
		req, err = http.NewRequest(method, url, nil)
	} else {
		req, err = http.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("failed to decode %s %s response: %v", method, url, err)
		}
	}
	return resp.StatusCode
}

func TestLiveServer_ShoppingListAndRecipes(t *testing.T) {
	srv, cleanup := setupLiveServer(t)
	defer cleanup()
	base := "http://" + srv.Addr()

	var created models.ShoppingItem
	if status := send(t, http.MethodPost, base+"/shopping-list", `{"name":"Broccoli"}`, &created); status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	if created.ID == "" || created.Name != "Broccoli" {
		t.Fatalf("unexpected created item: %+v", created)
	}

	var items []models.ShoppingItem
	if status := send(t, http.MethodGet, base+"/shopping-list", "", &items); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if len(items) != 1 || items[0] != created {
		t.Errorf("expected list to hold %+v, got %+v", created, items)
	}

	var rec models.Recipe
	if status := send(t, http.MethodPost, base+"/recipes", `{"name":"Soup","ingredients":["water","salt"]}`, &rec); status != http.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	if status := send(t, http.MethodDelete, base+"/recipes/"+rec.ID, "", nil); status != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", status)
	}

	var recipes []models.Recipe
	if status := send(t, http.MethodGet, base+"/recipes", "", &recipes); status != http.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	for _, r := range recipes {
		if r.ID == rec.ID {
			t.Errorf("deleted recipe %s still listed", rec.ID)
		}
	}
}

func TestLiveServer_StopTwiceThenRestart(t *testing.T) {
	srv, cleanup := setupLiveServer(t)
	defer cleanup()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		t.Fatalf("first Stop failed: %v", err)
	}
	if err := srv.Stop(ctx); !errors.Is(err, server.ErrNotRunning) {
		t.Fatalf("expected ErrNotRunning on second Stop, got %v", err)
	}

	if err := srv.Start(ctx); err != nil {
		t.Fatalf("Start after Stop failed: %v", err)
	}
	var items []models.ShoppingItem
	if status := send(t, http.MethodGet, "http://"+srv.Addr()+"/shopping-list", "", &items); status != http.StatusOK {
		t.Fatalf("expected 200 after restart, got %d", status)
	}
}
