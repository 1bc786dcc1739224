package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rrogerthat/shoppinglist/internal/models"
	"github.com/rrogerthat/shoppinglist/internal/service"
)

type recipeHandler struct {
	svc *service.RecipeService
}

func (h *recipeHandler) list(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recipes)
}

func (h *recipeHandler) get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *recipeHandler) create(w http.ResponseWriter, r *http.Request) {
	var in models.RecipeInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	rec, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (h *recipeHandler) update(w http.ResponseWriter, r *http.Request) {
	var in models.RecipeInput
	if err := decodePatch(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.svc.Update(r.Context(), chi.URLParam(r, "id"), in); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *recipeHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
