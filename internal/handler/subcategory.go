package handler

import (
	"net/http"

	"github.com/mealline/menu-catalog/internal/domain/subcategory"
)

// CreateSubCategory handles POST /api/v1/categories/{category_id}/sub_categories.
func (h *Handler) CreateSubCategory(w http.ResponseWriter, r *http.Request) {
	var p subcategory.Payload
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, r, err)
		return
	}

	sc, err := h.subCategories.Create(r.Context(), r.PathValue("category_id"), p)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Sub-category created successfully", sc)
}

// UpdateSubCategory handles PATCH /api/v1/categories/{category_id}/sub_categories/{id}.
func (h *Handler) UpdateSubCategory(w http.ResponseWriter, r *http.Request) {
	var p subcategory.Payload
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, r, err)
		return
	}

	sc, err := h.subCategories.Update(r.Context(), r.PathValue("id"), r.PathValue("category_id"), p)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Sub-category updated successfully", sc)
}

// GetSubCategory handles GET /api/v1/sub_categories?id=...&name=...
func (h *Handler) GetSubCategory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sc, err := h.subCategories.GetByIDOrName(r.Context(), q.Get("id"), q.Get("name"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Fetched sub-category successfully", sc)
}

// ListSubCategories handles GET /api/v1/sub_categories/all.
func (h *Handler) ListSubCategories(w http.ResponseWriter, r *http.Request) {
	subs, err := h.subCategories.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Fetched all sub-categories successfully", subs)
}

// ListSubCategoriesByCategory handles GET /api/v1/categories/{category_id}/sub_categories.
func (h *Handler) ListSubCategoriesByCategory(w http.ResponseWriter, r *http.Request) {
	subs, err := h.subCategories.ListByCategory(r.Context(), r.PathValue("category_id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Fetched all sub-categories successfully", subs)
}
