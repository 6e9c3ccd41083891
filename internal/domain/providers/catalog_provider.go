package providers

import (
	"context"

	"github.com/ankorline/yachtcharterdiscovery/backend/internal/domain/entities"
)

// CatalogProvider fetches the raw record batch from the upstream catalog feed
type CatalogProvider interface {
	// FetchBatch returns the raw yacht batch. A non-success upstream status
	// is an error; an unrecognized payload shape is an empty batch.
	FetchBatch(ctx context.Context) ([]entities.RawYacht, error)
}

// ImageProvider guarantees a usable display image for every catalog entry
type ImageProvider interface {
	// Pool resolves the fallback image pool, memoized for the lifetime of
	// the process. It never fails: lookup errors degrade to a built-in list.
	Pool(ctx context.Context) []string

	// Resolve picks the display image for one record. seed is the record's
	// position in the fetched batch; selection from the pool is
	// deterministic per seed.
	Resolve(rawURL *string, seed int, pool []string) string
}
