package catalog

import (
	"context"
	"math"

	"github.com/ludotrove/catalog/internal/ports"
)

// Reference resolution: foreign keys supplied by a client must denote live
// rows before any mutation is applied. A value that is not a positive
// integral number cannot address a row and reports the same NotFound as an
// unknown id would.

func resolvePublisher(ctx context.Context, repo ports.CatalogRepository, v any) (uint, error) {
	id, ok := refID(v)
	if !ok {
		return 0, ErrPublisherNotFound
	}
	if _, err := repo.GetPublisher(ctx, id); err != nil {
		return 0, notFoundAs(err, ErrPublisherNotFound)
	}
	return id, nil
}

func resolveCategory(ctx context.Context, repo ports.CatalogRepository, v any) (uint, error) {
	id, ok := refID(v)
	if !ok {
		return 0, ErrCategoryNotFound
	}
	if _, err := repo.GetCategory(ctx, id); err != nil {
		return 0, notFoundAs(err, ErrCategoryNotFound)
	}
	return id, nil
}

// refID narrows a decoded JSON value to a usable primary key. JSON numbers
// arrive as float64.
func refID(v any) (uint, bool) {
	f, ok := v.(float64)
	if !ok || f <= 0 || f != math.Trunc(f) {
		return 0, false
	}
	return uint(f), true
}
