package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rrogerthat/shoppinglist/internal/models"
	"github.com/rrogerthat/shoppinglist/internal/service"
)

type shoppingListHandler struct {
	svc *service.ShoppingListService
}

func (h *shoppingListHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *shoppingListHandler) get(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *shoppingListHandler) create(w http.ResponseWriter, r *http.Request) {
	var in models.ShoppingItemInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, r, err)
		return
	}

	item, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *shoppingListHandler) update(w http.ResponseWriter, r *http.Request) {
	var in models.ShoppingItemInput
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

func (h *shoppingListHandler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
