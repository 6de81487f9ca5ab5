// Command seed-db populates the database with a demo menu: a few categories,
// their sub-categories, and items. Entities that already exist are skipped,
// so the command is safe to re-run.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/mealline/menu-catalog/internal/domain/catalog"
	"github.com/mealline/menu-catalog/internal/domain/category"
	"github.com/mealline/menu-catalog/internal/domain/item"
	"github.com/mealline/menu-catalog/internal/domain/subcategory"
	"github.com/mealline/menu-catalog/internal/repository"
)

type seedItem struct {
	name     string
	desc     string
	baseAmt  string
	discount string
	tax      string // empty means tax not applicable
}

type seedSubCategory struct {
	name  string
	desc  string
	tax   string
	items []seedItem
}

type seedCategory struct {
	name    string
	desc    string
	tax     string
	taxType string
	subs    []seedSubCategory
	items   []seedItem
}

var demoMenu = []seedCategory{
	{
		name: "Appetizers", desc: "Small plates to start with", tax: "5", taxType: "GST",
		items: []seedItem{
			{name: "Garlic Bread", desc: "Toasted baguette with garlic butter", baseAmt: "4.50", discount: "0"},
			{name: "Bruschetta", desc: "Tomato and basil on grilled bread", baseAmt: "6.00", discount: "1.00"},
		},
	},
	{
		name: "Beverages", desc: "Hot and cold drinks",
		subs: []seedSubCategory{
			{
				name: "Hot Beverages", desc: "Served hot", tax: "12",
				items: []seedItem{
					{name: "Espresso", desc: "Double shot", baseAmt: "3.00", discount: "0", tax: "12"},
					{name: "Masala Chai", desc: "Spiced milk tea", baseAmt: "2.50", discount: "0.50", tax: "12"},
				},
			},
			{
				name: "Cold Beverages", desc: "Served chilled",
				items: []seedItem{
					{name: "Fresh Lime Soda", desc: "Sweet or salted", baseAmt: "2.00", discount: "0"},
				},
			},
		},
	},
	{
		name: "Desserts", desc: "To finish",
		items: []seedItem{
			{name: "Tiramisu", desc: "Classic, house-made", baseAmt: "7.50", discount: "0"},
		},
	},
}

const placeholderImage = "https://images.mealline.dev/menu/placeholder.jpg"

func main() {
	var databaseURL string
	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, databaseURL); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("seed completed successfully")
}

func run(ctx context.Context, databaseURL string) error {
	slog.Info("connecting to database")

	pool, err := repository.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	slog.Info("running migrations")

	if err := repository.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	categories := category.NewService(repository.NewCategoryRepository(pool))
	subCategories := subcategory.NewService(repository.NewSubCategoryRepository(pool))
	items := item.NewService(repository.NewItemRepository(pool))

	// Each category tree is independent, so seed them concurrently. Within a
	// tree the order matters: the category ID is needed before its children.
	g, ctx := errgroup.WithContext(ctx)
	for _, sc := range demoMenu {
		g.Go(func() error {
			return seedCategoryTree(ctx, categories, subCategories, items, sc)
		})
	}
	return g.Wait()
}

func seedCategoryTree(
	ctx context.Context,
	categories *category.Service,
	subCategories *subcategory.Service,
	items *item.Service,
	sc seedCategory,
) error {
	applicable := sc.tax != ""
	p := category.Payload{
		Name:          sc.name,
		Image:         placeholderImage,
		Description:   sc.desc,
		TaxApplicable: &applicable,
	}
	if applicable {
		p.Tax = decPtr(sc.tax)
		p.TaxType = &sc.taxType
	}

	created, err := categories.Create(ctx, p)
	if err != nil {
		var dup *catalog.AlreadyExistsError
		if !errors.As(err, &dup) {
			return errors.Wrapf(err, "seed category %s", sc.name)
		}
		slog.Info("category exists, resolving", slog.String("name", sc.name))
		created, err = categories.GetByIDOrName(ctx, "", sc.name)
		if err != nil {
			return errors.Wrapf(err, "resolve category %s", sc.name)
		}
	}
	slog.Info("seeded category", slog.String("id", created.ID), slog.String("name", created.Name))

	for _, it := range sc.items {
		if err := seedOneItem(ctx, items, item.Parent{CategoryID: created.ID}, it); err != nil {
			return err
		}
	}

	for _, sub := range sc.subs {
		if err := seedSubCategoryTree(ctx, subCategories, items, created.ID, sub); err != nil {
			return err
		}
	}
	return nil
}

func seedSubCategoryTree(
	ctx context.Context,
	subCategories *subcategory.Service,
	items *item.Service,
	categoryID string,
	sub seedSubCategory,
) error {
	applicable := sub.tax != ""
	p := subcategory.Payload{
		Name:          sub.name,
		Image:         placeholderImage,
		Description:   sub.desc,
		TaxApplicable: &applicable,
	}
	if applicable {
		p.Tax = decPtr(sub.tax)
	}

	created, err := subCategories.Create(ctx, categoryID, p)
	if err != nil {
		var dup *catalog.AlreadyExistsError
		if !errors.As(err, &dup) {
			return errors.Wrapf(err, "seed sub-category %s", sub.name)
		}
		slog.Info("sub-category exists, resolving", slog.String("name", sub.name))
		created, err = subCategories.GetByIDOrName(ctx, "", sub.name)
		if err != nil {
			return errors.Wrapf(err, "resolve sub-category %s", sub.name)
		}
	}
	slog.Info("seeded sub-category", slog.String("id", created.ID), slog.String("name", created.Name))

	for _, it := range sub.items {
		if err := seedOneItem(ctx, items, item.Parent{SubCategoryID: created.ID}, it); err != nil {
			return err
		}
	}
	return nil
}

func seedOneItem(ctx context.Context, items *item.Service, parent item.Parent, si seedItem) error {
	applicable := si.tax != ""
	p := item.Payload{
		Name:          si.name,
		Image:         placeholderImage,
		Description:   si.desc,
		TaxApplicable: &applicable,
		BaseAmt:       decPtr(si.baseAmt),
		Discount:      decPtr(si.discount),
	}
	if applicable {
		p.Tax = decPtr(si.tax)
	}

	created, err := items.Create(ctx, parent, p)
	if err != nil {
		var dup *catalog.AlreadyExistsError
		if errors.As(err, &dup) {
			slog.Info("item exists, skipping", slog.String("name", si.name))
			return nil
		}
		return errors.Wrapf(err, "seed item %s", si.name)
	}

	slog.Info("seeded item",
		slog.String("id", created.ID),
		slog.String("name", created.Name),
		slog.String("total_amt", created.TotalAmt.String()),
	)
	return nil
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
