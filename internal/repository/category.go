package repository

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mealline/menu-catalog/internal/domain/catalog"
	"github.com/mealline/menu-catalog/internal/domain/category"
)

const (
	categoryColumns = `id, name, image, description, tax_applicable, tax, tax_type`

	getCategoryByIDSQL = `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`

	getCategoryByNameSQL = `SELECT ` + categoryColumns + ` FROM categories WHERE name = $1`

	getCategoryByIDOrNameSQL = `SELECT ` + categoryColumns + ` FROM categories
		WHERE id = $1 OR name = $2 LIMIT 1`

	listCategoriesSQL = `SELECT ` + categoryColumns + ` FROM categories ORDER BY name`

	insertCategorySQL = `INSERT INTO categories (id, name, image, description, tax_applicable, tax, tax_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	updateCategorySQL = `UPDATE categories
		SET name = $2, image = $3, description = $4, tax_applicable = $5, tax = $6, tax_type = $7, updated_at = NOW()
		WHERE id = $1`
)

var _ category.Repository = (*CategoryRepository)(nil)

// CategoryRepository implements category.Repository backed by PostgreSQL.
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository returns a CategoryRepository that uses the given pool.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// GetByID returns a single category by its identifier.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*category.Category, error) {
	return r.getOne(ctx, getCategoryByIDSQL, id)
}

// GetByName returns a single category by its name.
func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*category.Category, error) {
	return r.getOne(ctx, getCategoryByNameSQL, name)
}

// GetByIDOrName returns the first category matching either value.
func (r *CategoryRepository) GetByIDOrName(ctx context.Context, id, name string) (*category.Category, error) {
	return r.getOne(ctx, getCategoryByIDOrNameSQL, id, name)
}

// List returns all categories ordered by name.
func (r *CategoryRepository) List(ctx context.Context) ([]category.Category, error) {
	rows, err := r.pool.Query(ctx, listCategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return pgx.CollectRows(rows, scanCategory)
}

// Insert persists a new category.
func (r *CategoryRepository) Insert(ctx context.Context, c *category.Category) error {
	_, err := r.pool.Exec(ctx, insertCategorySQL,
		c.ID, c.Name, c.Image, c.Description, c.TaxApplicable, c.Tax, c.TaxType,
	)
	if err != nil {
		return fmt.Errorf("inserting category %q: %w", c.ID, err)
	}
	return nil
}

// Update replaces the mutable fields of an existing category.
func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	tag, err := r.pool.Exec(ctx, updateCategorySQL,
		c.ID, c.Name, c.Image, c.Description, c.TaxApplicable, c.Tax, c.TaxType,
	)
	if err != nil {
		return fmt.Errorf("updating category %q: %w", c.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *CategoryRepository) getOne(ctx context.Context, sql string, args ...any) (*category.Category, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying category: %w", err)
	}

	c, err := pgx.CollectExactlyOneRow(rows, scanCategory)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrNotFound
		}
		return nil, fmt.Errorf("querying category: %w", err)
	}
	return &c, nil
}

func scanCategory(row pgx.CollectableRow) (category.Category, error) {
	var c category.Category
	err := row.Scan(
		&c.ID, &c.Name, &c.Image, &c.Description,
		&c.TaxApplicable, &c.Tax, &c.TaxType,
	)
	return c, err
}
