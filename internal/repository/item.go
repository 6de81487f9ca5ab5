package repository

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mealline/menu-catalog/internal/domain/catalog"
	"github.com/mealline/menu-catalog/internal/domain/item"
)

const (
	itemColumns = `id, name, image, description, category_id, sub_category_id,
		tax_applicable, tax, base_amt, discount, total_amt`

	getItemByIDSQL = `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	getItemByNameSQL = `SELECT ` + itemColumns + ` FROM items WHERE name = $1`

	getItemByIDOrNameSQL = `SELECT ` + itemColumns + ` FROM items
		WHERE id = $1 OR name = $2 LIMIT 1`

	listItemsSQL = `SELECT ` + itemColumns + ` FROM items ORDER BY name`

	listItemsByCategorySQL = `SELECT ` + itemColumns + ` FROM items
		WHERE category_id = $1 ORDER BY name`

	listItemsBySubCategorySQL = `SELECT ` + itemColumns + ` FROM items
		WHERE sub_category_id = $1 ORDER BY name`

	insertItemSQL = `INSERT INTO items (id, name, image, description, category_id, sub_category_id,
		tax_applicable, tax, base_amt, discount, total_amt)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	updateItemSQL = `UPDATE items
		SET name = $2, image = $3, description = $4, category_id = $5, sub_category_id = $6,
			tax_applicable = $7, tax = $8, base_amt = $9, discount = $10, total_amt = $11, updated_at = NOW()
		WHERE id = $1`
)

var _ item.Repository = (*ItemRepository)(nil)

// ItemRepository implements item.Repository backed by PostgreSQL.
type ItemRepository struct {
	pool *pgxpool.Pool
}

// NewItemRepository returns an ItemRepository that uses the given pool.
func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

// GetByID returns a single item by its identifier.
func (r *ItemRepository) GetByID(ctx context.Context, id string) (*item.Item, error) {
	return r.getOne(ctx, getItemByIDSQL, id)
}

// GetByName returns a single item by its name.
func (r *ItemRepository) GetByName(ctx context.Context, name string) (*item.Item, error) {
	return r.getOne(ctx, getItemByNameSQL, name)
}

// GetByIDOrName returns the first item matching either value.
func (r *ItemRepository) GetByIDOrName(ctx context.Context, id, name string) (*item.Item, error) {
	return r.getOne(ctx, getItemByIDOrNameSQL, id, name)
}

// List returns all items ordered by name.
func (r *ItemRepository) List(ctx context.Context) ([]item.Item, error) {
	rows, err := r.pool.Query(ctx, listItemsSQL)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	return pgx.CollectRows(rows, scanItem)
}

// ListByCategory returns the items directly under the given category.
func (r *ItemRepository) ListByCategory(ctx context.Context, categoryID string) ([]item.Item, error) {
	rows, err := r.pool.Query(ctx, listItemsByCategorySQL, categoryID)
	if err != nil {
		return nil, fmt.Errorf("listing items for category %q: %w", categoryID, err)
	}
	return pgx.CollectRows(rows, scanItem)
}

// ListBySubCategory returns the items under the given sub-category.
func (r *ItemRepository) ListBySubCategory(ctx context.Context, subCategoryID string) ([]item.Item, error) {
	rows, err := r.pool.Query(ctx, listItemsBySubCategorySQL, subCategoryID)
	if err != nil {
		return nil, fmt.Errorf("listing items for sub-category %q: %w", subCategoryID, err)
	}
	return pgx.CollectRows(rows, scanItem)
}

// Insert persists a new item.
func (r *ItemRepository) Insert(ctx context.Context, it *item.Item) error {
	_, err := r.pool.Exec(ctx, insertItemSQL,
		it.ID, it.Name, it.Image, it.Description, it.CategoryID, it.SubCategoryID,
		it.TaxApplicable, it.Tax, it.BaseAmt, it.Discount, it.TotalAmt,
	)
	if err != nil {
		return fmt.Errorf("inserting item %q: %w", it.ID, err)
	}
	return nil
}

// Update replaces the mutable fields of an existing item.
func (r *ItemRepository) Update(ctx context.Context, it *item.Item) error {
	tag, err := r.pool.Exec(ctx, updateItemSQL,
		it.ID, it.Name, it.Image, it.Description, it.CategoryID, it.SubCategoryID,
		it.TaxApplicable, it.Tax, it.BaseAmt, it.Discount, it.TotalAmt,
	)
	if err != nil {
		return fmt.Errorf("updating item %q: %w", it.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

func (r *ItemRepository) getOne(ctx context.Context, sql string, args ...any) (*item.Item, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying item: %w", err)
	}

	it, err := pgx.CollectExactlyOneRow(rows, scanItem)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrNotFound
		}
		return nil, fmt.Errorf("querying item: %w", err)
	}
	return &it, nil
}

func scanItem(row pgx.CollectableRow) (item.Item, error) {
	var it item.Item
	err := row.Scan(
		&it.ID, &it.Name, &it.Image, &it.Description,
		&it.CategoryID, &it.SubCategoryID,
		&it.TaxApplicable, &it.Tax, &it.BaseAmt, &it.Discount, &it.TotalAmt,
	)
	return it, err
}
