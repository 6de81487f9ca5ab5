package subcategory

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mealline/menu-catalog/internal/domain/catalog"
)

// Payload is the client-supplied shape for creating or updating a
// sub-category. The owning category comes from the route, not the body.
type Payload struct {
	Name          string           `json:"name" validate:"required"`
	Image         string           `json:"image" validate:"required,url"`
	Description   string           `json:"description"`
	TaxApplicable *bool            `json:"tax_applicable" validate:"required"`
	Tax           *decimal.Decimal `json:"tax"`
}

// Validate checks the payload shape and the bidirectional tax-presence rule.
func (p *Payload) Validate() error {
	if err := catalog.Struct(p); err != nil {
		return err
	}
	return catalog.CheckTaxField(*p.TaxApplicable, p.Tax != nil, "tax")
}

func (p *Payload) project(id, categoryID string) *SubCategory {
	sc := &SubCategory{
		ID:            id,
		Name:          p.Name,
		Image:         p.Image,
		Description:   p.Description,
		CategoryID:    categoryID,
		TaxApplicable: *p.TaxApplicable,
	}
	if sc.TaxApplicable {
		sc.Tax = p.Tax
	}
	return sc
}

// Service encapsulates sub-category business logic.
type Service struct {
	repo Repository
}

// NewService creates a sub-category Service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the payload, rejects duplicate names, and inserts a new
// sub-category under categoryID. The referenced category is not checked for
// existence.
func (s *Service) Create(ctx context.Context, categoryID string, p Payload) (*SubCategory, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByName(ctx, p.Name)
	if err != nil && !errors.Is(err, catalog.ErrNotFound) {
		return nil, errors.Wrap(err, "check existing sub-category")
	}
	if existing != nil {
		return nil, &catalog.AlreadyExistsError{Entity: "sub-category", Name: p.Name}
	}

	sc := p.project(uuid.New().String(), categoryID)
	if err := s.repo.Insert(ctx, sc); err != nil {
		return nil, errors.Wrap(err, "insert sub-category")
	}
	return sc, nil
}

// Update replaces the sub-category identified by id with the payload.
func (s *Service) Update(ctx context.Context, id, categoryID string, p Payload) (*SubCategory, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "load sub-category")
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	sc := p.project(id, categoryID)
	if err := s.repo.Update(ctx, sc); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "update sub-category")
	}
	return sc, nil
}

// GetByIDOrName returns the first sub-category matching either parameter. At
// least one must be supplied.
func (s *Service) GetByIDOrName(ctx context.Context, id, name string) (*SubCategory, error) {
	if id == "" && name == "" {
		return nil, catalog.ErrMissingLookup
	}
	sc, err := s.repo.GetByIDOrName(ctx, id, name)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "get sub-category")
	}
	return sc, nil
}

// List returns all sub-categories.
func (s *Service) List(ctx context.Context) ([]SubCategory, error) {
	subs, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list sub-categories")
	}
	return subs, nil
}

// ListByCategory returns the sub-categories owned by categoryID. An unknown
// category yields an empty slice.
func (s *Service) ListByCategory(ctx context.Context, categoryID string) ([]SubCategory, error) {
	subs, err := s.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "list sub-categories by category")
	}
	return subs, nil
}
