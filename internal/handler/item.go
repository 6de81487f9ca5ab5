package handler

import (
	"net/http"

	"github.com/mealline/menu-catalog/internal/domain/item"
)

// CreateItemUnderCategory handles POST /api/v1/categories/{category_id}/items.
func (h *Handler) CreateItemUnderCategory(w http.ResponseWriter, r *http.Request) {
	h.createItem(w, r, item.Parent{CategoryID: r.PathValue("category_id")})
}

// CreateItemUnderSubCategory handles POST /api/v1/sub_categories/{sub_category_id}/items.
func (h *Handler) CreateItemUnderSubCategory(w http.ResponseWriter, r *http.Request) {
	h.createItem(w, r, item.Parent{SubCategoryID: r.PathValue("sub_category_id")})
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request, parent item.Parent) {
	var p item.Payload
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, r, err)
		return
	}

	it, err := h.items.Create(r.Context(), parent, p)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Item created successfully", it)
}

// UpdateItemUnderCategory handles PATCH /api/v1/categories/{category_id}/items/{id}.
func (h *Handler) UpdateItemUnderCategory(w http.ResponseWriter, r *http.Request) {
	h.updateItem(w, r, item.Parent{CategoryID: r.PathValue("category_id")})
}

// UpdateItemUnderSubCategory handles PATCH /api/v1/sub_categories/{sub_category_id}/items/{id}.
func (h *Handler) UpdateItemUnderSubCategory(w http.ResponseWriter, r *http.Request) {
	h.updateItem(w, r, item.Parent{SubCategoryID: r.PathValue("sub_category_id")})
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request, parent item.Parent) {
	var p item.Payload
	if err := decodeJSON(r, &p); err != nil {
		respondError(w, r, err)
		return
	}

	it, err := h.items.Update(r.Context(), r.PathValue("id"), parent, p)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Item updated successfully", it)
}

// GetItem handles GET /api/v1/items?id=...&name=...
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	it, err := h.items.GetByIDOrName(r.Context(), q.Get("id"), q.Get("name"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Fetched item successfully", it)
}

// ListItems handles GET /api/v1/items/all.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Fetched all items successfully", items)
}

// ListItemsByCategory handles GET /api/v1/categories/{category_id}/items.
func (h *Handler) ListItemsByCategory(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.ListByCategory(r.Context(), r.PathValue("category_id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Fetched all items successfully", items)
}

// ListItemsBySubCategory handles GET /api/v1/sub_categories/{sub_category_id}/items.
func (h *Handler) ListItemsBySubCategory(w http.ResponseWriter, r *http.Request) {
	items, err := h.items.ListBySubCategory(r.Context(), r.PathValue("sub_category_id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respond(w, http.StatusOK, "Fetched all items successfully", items)
}
