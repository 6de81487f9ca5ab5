// Package item implements the leaf level of the menu hierarchy, including the
// pricing rule that derives an item's total amount.
package item

import (
	"context"

	"github.com/shopspring/decimal"
)

// Item is a sellable catalog entry. It hangs off either a category or a
// sub-category; TotalAmt is always derived server-side from BaseAmt and
// Discount. Tax is set exactly when TaxApplicable is true.
type Item struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Image         string           `json:"image"`
	Description   string           `json:"description"`
	CategoryID    *string          `json:"category_id,omitempty"`
	SubCategoryID *string          `json:"sub_category_id,omitempty"`
	TaxApplicable bool             `json:"tax_applicable"`
	Tax           *decimal.Decimal `json:"tax,omitempty"`
	BaseAmt       decimal.Decimal  `json:"base_amt"`
	Discount      decimal.Decimal  `json:"discount"`
	TotalAmt      decimal.Decimal  `json:"total_amt"`
}

// Parent identifies the owning category or sub-category of an item. Exactly
// one field is set by the HTTP layer; the store keeps both columns.
type Parent struct {
	CategoryID    string
	SubCategoryID string
}

// Repository defines persistence operations for items.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Item, error)
	GetByName(ctx context.Context, name string) (*Item, error)
	GetByIDOrName(ctx context.Context, id, name string) (*Item, error)
	List(ctx context.Context) ([]Item, error)
	ListByCategory(ctx context.Context, categoryID string) ([]Item, error)
	ListBySubCategory(ctx context.Context, subCategoryID string) ([]Item, error)
	Insert(ctx context.Context, it *Item) error
	Update(ctx context.Context, it *Item) error
}
