package item

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mealline/menu-catalog/internal/domain/catalog"
)

// Payload is the client-supplied shape for creating or updating an item.
// There is deliberately no total_amt field: a client-supplied total is
// dropped during decoding and recomputed on every write.
type Payload struct {
	Name          string           `json:"name" validate:"required"`
	Image         string           `json:"image" validate:"required,url"`
	Description   string           `json:"description"`
	TaxApplicable *bool            `json:"tax_applicable" validate:"required"`
	Tax           *decimal.Decimal `json:"tax"`
	BaseAmt       *decimal.Decimal `json:"base_amt" validate:"required"`
	Discount      *decimal.Decimal `json:"discount" validate:"required"`
}

// Validate checks the payload shape, the bidirectional tax-presence rule, and
// that both amounts are non-negative.
func (p *Payload) Validate() error {
	if err := catalog.Struct(p); err != nil {
		return err
	}
	if err := catalog.CheckTaxField(*p.TaxApplicable, p.Tax != nil, "tax"); err != nil {
		return err
	}
	if p.BaseAmt.IsNegative() {
		return &catalog.ValidationError{Field: "base_amt", Reason: "must not be negative"}
	}
	if p.Discount.IsNegative() {
		return &catalog.ValidationError{Field: "discount", Reason: "must not be negative"}
	}
	return nil
}

// project maps the payload onto a storage-ready Item, applying the pricing
// rule and attaching the parent reference.
func (p *Payload) project(id string, parent Parent) *Item {
	it := &Item{
		ID:            id,
		Name:          p.Name,
		Image:         p.Image,
		Description:   p.Description,
		TaxApplicable: *p.TaxApplicable,
		BaseAmt:       *p.BaseAmt,
		Discount:      *p.Discount,
		TotalAmt:      TotalAmount(*p.BaseAmt, *p.Discount),
	}
	if it.TaxApplicable {
		it.Tax = p.Tax
	}
	if parent.CategoryID != "" {
		it.CategoryID = &parent.CategoryID
	}
	if parent.SubCategoryID != "" {
		it.SubCategoryID = &parent.SubCategoryID
	}
	return it
}

// Service encapsulates item business logic.
type Service struct {
	repo Repository
}

// NewService creates an item Service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the payload, rejects duplicate names (item names are
// unique across the whole catalog, not per parent), computes the total, and
// inserts a new item under the given parent. The parent is not checked for
// existence.
func (s *Service) Create(ctx context.Context, parent Parent, p Payload) (*Item, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByName(ctx, p.Name)
	if err != nil && !errors.Is(err, catalog.ErrNotFound) {
		return nil, errors.Wrap(err, "check existing item")
	}
	if existing != nil {
		return nil, &catalog.AlreadyExistsError{Entity: "item", Name: p.Name}
	}

	it := p.project(uuid.New().String(), parent)
	if err := s.repo.Insert(ctx, it); err != nil {
		return nil, errors.Wrap(err, "insert item")
	}
	return it, nil
}

// Update replaces the item identified by id with the payload, recomputing the
// total amount.
func (s *Service) Update(ctx context.Context, id string, parent Parent, p Payload) (*Item, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "load item")
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	it := p.project(id, parent)
	if err := s.repo.Update(ctx, it); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "update item")
	}
	return it, nil
}

// GetByIDOrName returns the first item matching either parameter. At least
// one must be supplied.
func (s *Service) GetByIDOrName(ctx context.Context, id, name string) (*Item, error) {
	if id == "" && name == "" {
		return nil, catalog.ErrMissingLookup
	}
	it, err := s.repo.GetByIDOrName(ctx, id, name)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "get item")
	}
	return it, nil
}

// List returns all items.
func (s *Service) List(ctx context.Context) ([]Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list items")
	}
	return items, nil
}

// ListByCategory returns the items directly under categoryID.
func (s *Service) ListByCategory(ctx context.Context, categoryID string) ([]Item, error) {
	items, err := s.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "list items by category")
	}
	return items, nil
}

// ListBySubCategory returns the items under subCategoryID.
func (s *Service) ListBySubCategory(ctx context.Context, subCategoryID string) ([]Item, error) {
	items, err := s.repo.ListBySubCategory(ctx, subCategoryID)
	if err != nil {
		return nil, errors.Wrap(err, "list items by sub-category")
	}
	return items, nil
}
