package handler

import (
	"net/http"

	"github.com/mealline/menu-catalog/internal/domain/category"
)

// CreateCategory handles POST /api/v1/categories.
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var p category.Payload
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, r, err)
		return
	}

	c, err := h.categories.Create(r.Context(), p)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Category created successfully", c)
}

// UpdateCategory handles PATCH /api/v1/categories/{id}. The payload replaces
// the stored record wholesale.
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var p category.Payload
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, r, err)
		return
	}

	c, err := h.categories.Update(r.Context(), r.PathValue("id"), p)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Category updated successfully", c)
}

// GetCategory handles GET /api/v1/categories?id=...&name=...
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	c, err := h.categories.GetByIDOrName(r.Context(), q.Get("id"), q.Get("name"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Fetched category successfully", c)
}

// ListCategories handles GET /api/v1/categories/all.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.categories.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Fetched all categories successfully", cats)
}
