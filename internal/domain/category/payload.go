package category

import (
	"github.com/shopspring/decimal"

	"github.com/mealline/menu-catalog/internal/domain/catalog"
)

// Payload is the client-supplied shape for creating or updating a category.
// Optional fields are pointers so that presence is explicit; updates are full
// replaces, so the same shape serves both operations.
type Payload struct {
	Name          string           `json:"name" validate:"required"`
	Image         string           `json:"image" validate:"required,url"`
	Description   string           `json:"description"`
	TaxApplicable *bool            `json:"tax_applicable" validate:"required"`
	Tax           *decimal.Decimal `json:"tax"`
	TaxType       *string          `json:"tax_type"`
}

// Validate checks the payload shape and the tax-presence rule in both
// directions: tax and tax_type must be present exactly when tax_applicable is
// true.
func (p *Payload) Validate() error {
	if err := catalog.Struct(p); err != nil {
		return err
	}
	applicable := *p.TaxApplicable
	if err := catalog.CheckTaxField(applicable, p.Tax != nil, "tax"); err != nil {
		return err
	}
	return catalog.CheckTaxField(applicable, p.TaxType != nil, "tax_type")
}

// project maps the payload onto a storage-ready Category. Tax fields are
// carried only when tax is applicable.
func (p *Payload) project(id string) *Category {
	c := &Category{
		ID:            id,
		Name:          p.Name,
		Image:         p.Image,
		Description:   p.Description,
		TaxApplicable: *p.TaxApplicable,
	}
	if c.TaxApplicable {
		c.Tax = p.Tax
		c.TaxType = p.TaxType
	}
	return c
}
