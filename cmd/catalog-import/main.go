// Command catalog-import bulk-loads items from gzipped JSON-lines files.
// Each line is an item payload plus its parent reference:
//
//	{"name":"Espresso","image":"https://...","description":"...",
//	 "tax_applicable":true,"tax":12,"base_amt":3.0,"discount":0,
//	 "category_id":"..."} // or "sub_category_id"
//
// Rows go through the same validation and pricing as the API, so a bad row
// is rejected, not silently stored.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/go-faster/errors"
	pgzip "github.com/klauspost/pgzip"

	"github.com/mealline/menu-catalog/internal/domain/catalog"
	"github.com/mealline/menu-catalog/internal/domain/item"
	"github.com/mealline/menu-catalog/internal/repository"
)

const (
	bloomCapacity = 1_000_000
	bloomFPR      = 0.001
	progressEvery = 10_000
)

// importRow is one line of the input file: an item payload plus the parent
// reference that the API normally takes from the route.
type importRow struct {
	item.Payload
	CategoryID    string `json:"category_id"`
	SubCategoryID string `json:"sub_category_id"`
}

// importStats counts row outcomes for the final summary.
type importStats struct {
	created   int
	duplicate int
	invalid   int
}

func main() {
	var databaseURL string
	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		slog.Error("usage: catalog-import [--database-url URL] file.jsonl.gz ...")
		os.Exit(1)
	}

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, databaseURL, files); err != nil {
		slog.Error("catalog import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("catalog import completed successfully")
}

func run(ctx context.Context, databaseURL string, files []string) error {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			return errors.Wrapf(err, "check file %s", f)
		}
	}

	slog.Info("connecting to database")

	pool, err := repository.NewPool(ctx, databaseURL)
	if err != nil {
		return errors.Wrap(err, "connect to database")
	}
	defer pool.Close()

	if err := repository.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	items := item.NewService(repository.NewItemRepository(pool))

	// Names already seen in this run are dropped before hitting the store.
	// A bloom false positive only causes a skipped row, never a bad insert.
	seen := bloom.NewWithEstimates(bloomCapacity, bloomFPR)

	var stats importStats
	for _, f := range files {
		if err := importFile(ctx, items, seen, f, &stats); err != nil {
			return errors.Wrapf(err, "import %s", f)
		}
	}

	slog.Info("import summary",
		slog.Int("created", stats.created),
		slog.Int("duplicate", stats.duplicate),
		slog.Int("invalid", stats.invalid),
	)
	return nil
}

func importFile(ctx context.Context, items *item.Service, seen *bloom.BloomFilter, path string, stats *importStats) error {
	slog.Info("importing file", slog.String("path", path))

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open file")
	}
	defer f.Close()

	gz, err := pgzip.NewReader(f)
	if err != nil {
		return errors.Wrap(err, "open gzip reader")
	}
	defer gz.Close()

	scanner := bufio.NewScanner(gz)
	scanner.Buffer(make([]byte, 0, 1<<20), 1<<20)

	var line int
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line++

		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var row importRow
		if err := json.Unmarshal(raw, &row); err != nil {
			slog.Warn("skipping malformed row", slog.String("path", path), slog.Int("line", line))
			stats.invalid++
			continue
		}

		if seen.TestOrAddString(row.Name) {
			stats.duplicate++
			continue
		}

		parent := item.Parent{
			CategoryID:    row.CategoryID,
			SubCategoryID: row.SubCategoryID,
		}
		_, err := items.Create(ctx, parent, row.Payload)
		switch {
		case err == nil:
			stats.created++
		case isDuplicate(err):
			stats.duplicate++
		case isInvalid(err):
			slog.Warn("skipping invalid row",
				slog.String("path", path),
				slog.Int("line", line),
				slog.String("reason", err.Error()),
			)
			stats.invalid++
		default:
			return errors.Wrapf(err, "line %d", line)
		}

		if line%progressEvery == 0 {
			slog.Info("import progress", slog.String("path", path), slog.Int("lines", line))
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "read file")
	}

	slog.Info("file done", slog.String("path", path), slog.Int("lines", line))
	return nil
}

func isDuplicate(err error) bool {
	var dup *catalog.AlreadyExistsError
	return errors.As(err, &dup)
}

func isInvalid(err error) bool {
	var verr *catalog.ValidationError
	return errors.As(err, &verr)
}
