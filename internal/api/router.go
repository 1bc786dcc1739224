// Package api wires the shopping list and recipe collections to HTTP routes.
package api

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/rrogerthat/shoppinglist/internal/metrics"
	"github.com/rrogerthat/shoppinglist/internal/middleware"
	"github.com/rrogerthat/shoppinglist/internal/service"
)

// Deps holds everything the router dispatches to.
type Deps struct {
	ShoppingList *service.ShoppingListService
	Recipes      *service.RecipeService
	Metrics      *metrics.Metrics

	// Static is served at the root path. Nil disables it.
	Static fs.FS
}

// NewRouter builds the HTTP handler:
//
//	GET    /shopping-list        list items
//	POST   /shopping-list        create item
//	GET    /shopping-list/{id}   get item
//	PUT    /shopping-list/{id}   update item
//	DELETE /shopping-list/{id}   delete item
//
// and the same five routes under /recipes, plus /healthz, /metrics and
// the static landing page at /.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS)
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	r.Get("/healthz", handleHealth)

	r.Route("/shopping-list", func(r chi.Router) {
		h := &shoppingListHandler{svc: deps.ShoppingList}
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})

	r.Route("/recipes", func(r chi.Router) {
		h := &recipeHandler{svc: deps.Recipes}
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})

	if deps.Static != nil {
		r.Get("/*", http.FileServer(http.FS(deps.Static)).ServeHTTP)
	}

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
