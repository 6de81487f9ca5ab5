// Package handler exposes the catalog services over HTTP, mapping domain
// errors onto the API's status-code contract.
package handler

import (
	"net/http"

	"github.com/mealline/menu-catalog/internal/domain/category"
	"github.com/mealline/menu-catalog/internal/domain/item"
	"github.com/mealline/menu-catalog/internal/domain/subcategory"
)

// Handler holds the entity services behind the REST surface.
type Handler struct {
	categories    *category.Service
	subCategories *subcategory.Service
	items         *item.Service
}

// NewHandler constructs a Handler with the required entity services.
func NewHandler(
	categories *category.Service,
	subCategories *subcategory.Service,
	items *item.Service,
) *Handler {
	return &Handler{
		categories:    categories,
		subCategories: subCategories,
		items:         items,
	}
}

// Routes registers every API endpoint on mux. The "/all" literals must be
// registered alongside the "{id}"-style patterns; the mux prefers the more
// specific literal segment.
func (h *Handler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/healthcheck", h.Healthcheck)

	mux.HandleFunc("POST /api/v1/categories", h.CreateCategory)
	mux.HandleFunc("GET /api/v1/categories", h.GetCategory)
	mux.HandleFunc("GET /api/v1/categories/all", h.ListCategories)
	mux.HandleFunc("PATCH /api/v1/categories/{id}", h.UpdateCategory)

	mux.HandleFunc("POST /api/v1/categories/{category_id}/sub_categories", h.CreateSubCategory)
	mux.HandleFunc("GET /api/v1/sub_categories", h.GetSubCategory)
	mux.HandleFunc("GET /api/v1/sub_categories/all", h.ListSubCategories)
	mux.HandleFunc("GET /api/v1/categories/{category_id}/sub_categories", h.ListSubCategoriesByCategory)
	mux.HandleFunc("PATCH /api/v1/categories/{category_id}/sub_categories/{id}", h.UpdateSubCategory)

	mux.HandleFunc("POST /api/v1/categories/{category_id}/items", h.CreateItemUnderCategory)
	mux.HandleFunc("POST /api/v1/sub_categories/{sub_category_id}/items", h.CreateItemUnderSubCategory)
	mux.HandleFunc("GET /api/v1/items", h.GetItem)
	mux.HandleFunc("GET /api/v1/items/all", h.ListItems)
	mux.HandleFunc("GET /api/v1/categories/{category_id}/items", h.ListItemsByCategory)
	mux.HandleFunc("GET /api/v1/sub_categories/{sub_category_id}/items", h.ListItemsBySubCategory)
	mux.HandleFunc("PATCH /api/v1/categories/{category_id}/items/{id}", h.UpdateItemUnderCategory)
	mux.HandleFunc("PATCH /api/v1/sub_categories/{sub_category_id}/items/{id}", h.UpdateItemUnderSubCategory)
}

// Healthcheck reports that the API is up. Deeper checks live on /livez and
// /readyz.
func (h *Handler) Healthcheck(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, "Healthcheck OK!", nil)
}
