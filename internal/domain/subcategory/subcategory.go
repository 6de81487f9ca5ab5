// Package subcategory implements the middle level of the menu hierarchy.
package subcategory

import (
	"context"

	"github.com/shopspring/decimal"
)

// SubCategory groups items under a single owning category. Tax is set exactly
// when TaxApplicable is true.
type SubCategory struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Image         string           `json:"image"`
	Description   string           `json:"description"`
	CategoryID    string           `json:"category_id"`
	TaxApplicable bool             `json:"tax_applicable"`
	Tax           *decimal.Decimal `json:"tax,omitempty"`
}

// Repository defines persistence operations for sub-categories.
type Repository interface {
	GetByID(ctx context.Context, id string) (*SubCategory, error)
	GetByName(ctx context.Context, name string) (*SubCategory, error)
	GetByIDOrName(ctx context.Context, id, name string) (*SubCategory, error)
	List(ctx context.Context) ([]SubCategory, error)
	ListByCategory(ctx context.Context, categoryID string) ([]SubCategory, error)
	Insert(ctx context.Context, sc *SubCategory) error
	Update(ctx context.Context, sc *SubCategory) error
}
