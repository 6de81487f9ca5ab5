package repository

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mealline/menu-catalog/internal/domain/catalog"
	"github.com/mealline/menu-catalog/internal/domain/subcategory"
)

const (
	subCategoryColumns = `id, name, image, description, category_id, tax_applicable, tax`

	getSubCategoryByIDSQL = `SELECT ` + subCategoryColumns + ` FROM sub_categories WHERE id = $1`

	getSubCategoryByNameSQL = `SELECT ` + subCategoryColumns + ` FROM sub_categories WHERE name = $1`

	getSubCategoryByIDOrNameSQL = `SELECT ` + subCategoryColumns + ` FROM sub_categories
		WHERE id = $1 OR name = $2 LIMIT 1`

	listSubCategoriesSQL = `SELECT ` + subCategoryColumns + ` FROM sub_categories ORDER BY name`

	listSubCategoriesByCategorySQL = `SELECT ` + subCategoryColumns + ` FROM sub_categories
		WHERE category_id = $1 ORDER BY name`

	insertSubCategorySQL = `INSERT INTO sub_categories (id, name, image, description, category_id, tax_applicable, tax)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	updateSubCategorySQL = `UPDATE sub_categories
		SET name = $2, image = $3, description = $4, category_id = $5, tax_applicable = $6, tax = $7, updated_at = NOW()
		WHERE id = $1`
)

var _ subcategory.Repository = (*SubCategoryRepository)(nil)

// SubCategoryRepository implements subcategory.Repository backed by PostgreSQL.
type SubCategoryRepository struct {
	pool *pgxpool.Pool
}

// NewSubCategoryRepository returns a SubCategoryRepository that uses the given pool.
func NewSubCategoryRepository(pool *pgxpool.Pool) *SubCategoryRepository {
	return &SubCategoryRepository{pool: pool}
}

// GetByID returns a single sub-category by its identifier.
func (r *SubCategoryRepository) GetByID(ctx context.Context, id string) (*subcategory.SubCategory, error) {
	return r.getOne(ctx, getSubCategoryByIDSQL, id)
}

// GetByName returns a single sub-category by its name.
func (r *SubCategoryRepository) GetByName(ctx context.Context, name string) (*subcategory.SubCategory, error) {
	return r.getOne(ctx, getSubCategoryByNameSQL, name)
}

// GetByIDOrName returns the first sub-category matching either value.
func (r *SubCategoryRepository) GetByIDOrName(ctx context.Context, id, name string) (*subcategory.SubCategory, error) {
	return r.getOne(ctx, getSubCategoryByIDOrNameSQL, id, name)
}

// List returns all sub-categories ordered by name.
func (r *SubCategoryRepository) List(ctx context.Context) ([]subcategory.SubCategory, error) {
	rows, err := r.pool.Query(ctx, listSubCategoriesSQL)
	if err != nil {
		return nil, fmt.Errorf("listing sub-categories: %w", err)
	}
	return pgx.CollectRows(rows, scanSubCategory)
}

// ListByCategory returns the sub-categories owned by the given category.
func (r *SubCategoryRepository) ListByCategory(ctx context.Context, categoryID string) ([]subcategory.SubCategory, error) {
	rows, err := r.pool.Query(ctx, listSubCategoriesByCategorySQL, categoryID)
	if err != nil {
		return nil, fmt.Errorf("listing sub-categories for category %q: %w", categoryID, err)
	}
	return pgx.CollectRows(rows, scanSubCategory)
}

// Insert persists a new sub-category.
func (r *SubCategoryRepository) Insert(ctx context.Context, sc *subcategory.SubCategory) error {
	_, err := r.pool.Exec(ctx, insertSubCategorySQL,
		sc.ID, sc.Name, sc.Image, sc.Description, sc.CategoryID, sc.TaxApplicable, sc.Tax,
	)
	if err != nil {
		return fmt.Errorf("inserting sub-category %q: %w", sc.ID, err)
	}
	return nil
}

// Update replaces the mutable fields of an existing sub-category.
func (r *SubCategoryRepository) Update(ctx context.Context, sc *subcategory.SubCategory) error {
	tag, err := r.pool.Exec(ctx, updateSubCategorySQL,
		sc.ID, sc.Name, sc.Image, sc.Description, sc.CategoryID, sc.TaxApplicable, sc.Tax,
	)
	if err != nil {
		return fmt.Errorf("updating sub-category %q: %w", sc.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *SubCategoryRepository) getOne(ctx context.Context, sql string, args ...any) (*subcategory.SubCategory, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying sub-category: %w", err)
	}

	sc, err := pgx.CollectExactlyOneRow(rows, scanSubCategory)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrNotFound
		}
		return nil, fmt.Errorf("querying sub-category: %w", err)
	}
	return &sc, nil
}

func scanSubCategory(row pgx.CollectableRow) (subcategory.SubCategory, error) {
	var sc subcategory.SubCategory
	err := row.Scan(
		&sc.ID, &sc.Name, &sc.Image, &sc.Description,
		&sc.CategoryID, &sc.TaxApplicable, &sc.Tax,
	)
	return sc, err
}
