package services

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/ankorline/yachtcharterdiscovery/backend/internal/domain/entities"
	"github.com/ankorline/yachtcharterdiscovery/backend/internal/domain/providers"
	"github.com/ankorline/yachtcharterdiscovery/backend/internal/infrastructure/observability"
	apperrors "github.com/ankorline/yachtcharterdiscovery/backend/pkg/errors"
)

// CatalogService loads the remote catalog and normalizes every raw record
// into a canonical yacht. It implements repositories.YachtRepository; each
// call produces a fresh, independent list.
type CatalogService struct {
	catalog providers.CatalogProvider
	images  providers.ImageProvider
	metrics *observability.Metrics
}

// NewCatalogService creates a catalog service
func NewCatalogService(catalog providers.CatalogProvider, images providers.ImageProvider, metrics *observability.Metrics) *CatalogService {
	return &CatalogService{
		catalog: catalog,
		images:  images,
		metrics: metrics,
	}
}

// List fetches the raw batch and the image pool concurrently, joins both,
// and normalizes the batch. Only a catalog fetch failure propagates; image
// pool resolution degrades internally.
func (s *CatalogService) List(ctx context.Context) ([]*entities.Yacht, error) {
	var (
		batch    []entities.RawYacht
		fetchErr error
		pool     []string
	)

	start := time.Now()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		batch, fetchErr = s.catalog.FetchBatch(ctx)
	}()
	go func() {
		defer wg.Done()
		pool = s.images.Pool(ctx)
	}()
	wg.Wait()

	if s.metrics != nil {
		outcome := "success"
		if fetchErr != nil {
			outcome = "error"
		}
		observability.RecordCatalogFetch(ctx, s.metrics, outcome, time.Since(start))
	}
	if fetchErr != nil {
		return nil, fetchErr
	}

	yachts := make([]*entities.Yacht, 0, len(batch))
	seen := make(map[string]struct{}, len(batch))
	for i := range batch {
		yacht := normalizeYacht(&batch[i], i, pool, s.images)
		if _, dup := seen[yacht.Slug]; dup {
			yacht.Slug = yacht.Slug + "-" + strconv.Itoa(i)
		}
		seen[yacht.Slug] = struct{}{}
		yachts = append(yachts, yacht)
	}

	return yachts, nil
}

// GetBySlug loads the catalog and returns the matching entry. A lookup miss
// is a normal not found outcome, distinct from a transport failure.
func (s *CatalogService) GetBySlug(ctx context.Context, slug string) (*entities.Yacht, error) {
	yachts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, yacht := range yachts {
		if yacht.Slug == slug {
			return yacht, nil
		}
	}
	return nil, apperrors.NewNotFoundError("yacht not found: " + slug)
}

// normalizeYacht maps one raw record to its canonical form. Every absent
// field maps to a defined default or placeholder; nothing here can fail.
func normalizeYacht(raw *entities.RawYacht, index int, pool []string, images providers.ImageProvider) *entities.Yacht {
	location := "Worldwide"
	if v := coalesce(raw.Location, raw.Region, raw.Type); v != nil {
		location = *v
	}

	badge := ""
	if raw.IsSpecialActive != nil && *raw.IsSpecialActive {
		badge = "New Listing"
	}

	return &entities.Yacht{
		Slug:         slugFor(raw, index),
		Name:         raw.Name,
		Location:     location,
		Region:       deref(coalesce(raw.Region, raw.Type)),
		Tagline:      deref(raw.SpecialDescription),
		Description:  deref(raw.SpecialDescription),
		PriceFrom:    FormatCurrency(raw.WeeklyLowRetail, raw.Currency),
		ImageURL:     images.Resolve(raw.URL, index, pool),
		Guests:       nonNegative(firstInt(raw.MaxPassengers, raw.MaxPassengersCruising)),
		Cabins:       nonNegative(firstInt(raw.Bedrooms)),
		Length:       ParseLength(raw.Length),
		Badge:        badge,
		Amenities:    ParseAmenities(raw.Toys),
		Crew:         raw.MaxCrew,
		Range:        deref(raw.Range),
		Speed:        deref(raw.Speed),
		Shipyard:     deref(raw.Shipyard),
		Availability: ParseAvailability(raw.IsSpecialActive, raw.AcceptsWeeklyCharters),
	}
}

// slugFor derives the record key: id, else unique name, else batch position
func slugFor(raw *entities.RawYacht, index int) string {
	if raw.ID != nil && *raw.ID != "" {
		return string(*raw.ID)
	}
	if raw.UniqueName != nil && *raw.UniqueName != "" {
		return *raw.UniqueName
	}
	return strconv.Itoa(index)
}

func coalesce(values ...*string) *string {
	for _, v := range values {
		if v != nil {
			return v
		}
	}
	return nil
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func firstInt(values ...*int) int {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return 0
}

func nonNegative(value int) int {
	if value < 0 {
		return 0
	}
	return value
}
