package category

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/mealline/menu-catalog/internal/domain/catalog"
)

// Service encapsulates category business logic.
type Service struct {
	repo Repository
}

// NewService creates a category Service backed by the given repository.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the payload, rejects duplicate names, and inserts a new
// category. The name check and the insert are separate store calls, so two
// concurrent creates with the same name can both succeed.
func (s *Service) Create(ctx context.Context, p Payload) (*Category, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByName(ctx, p.Name)
	if err != nil && !errors.Is(err, catalog.ErrNotFound) {
		return nil, errors.Wrap(err, "check existing category")
	}
	if existing != nil {
		return nil, &catalog.AlreadyExistsError{Entity: "category", Name: p.Name}
	}

	c := p.project(uuid.New().String())
	if err := s.repo.Insert(ctx, c); err != nil {
		return nil, errors.Wrap(err, "insert category")
	}
	return c, nil
}

// Update replaces the category identified by id with the payload. The id must
// reference an existing category; unspecified optional fields become absent.
func (s *Service) Update(ctx context.Context, id string, p Payload) (*Category, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "load category")
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	c := p.project(id)
	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "update category")
	}
	return c, nil
}

// GetByIDOrName returns the first category matching either parameter. At
// least one must be supplied.
func (s *Service) GetByIDOrName(ctx context.Context, id, name string) (*Category, error) {
	if id == "" && name == "" {
		return nil, catalog.ErrMissingLookup
	}
	c, err := s.repo.GetByIDOrName(ctx, id, name)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, err
		}
		return nil, errors.Wrap(err, "get category")
	}
	return c, nil
}

// List returns all categories. An empty catalog yields an empty slice, not an
// error.
func (s *Service) List(ctx context.Context) ([]Category, error) {
	cats, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}
	return cats, nil
}
