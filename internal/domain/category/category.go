// Package category implements the top level of the menu hierarchy.
package category

import (
	"context"

	"github.com/shopspring/decimal"
)

// Category is a top-level menu grouping. Tax and TaxType are set exactly when
// TaxApplicable is true.
type Category struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Image         string           `json:"image"`
	Description   string           `json:"description"`
	TaxApplicable bool             `json:"tax_applicable"`
	Tax           *decimal.Decimal `json:"tax,omitempty"`
	TaxType       *string          `json:"tax_type,omitempty"`
}

// Repository defines persistence operations for categories.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Category, error)
	GetByName(ctx context.Context, name string) (*Category, error)
	GetByIDOrName(ctx context.Context, id, name string) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	Insert(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
}
