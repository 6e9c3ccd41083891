package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankorline/yachtcharterdiscovery/backend/internal/domain/entities"
	apperrors "github.com/ankorline/yachtcharterdiscovery/backend/pkg/errors"
)

// stubCatalogProvider implements providers.CatalogProvider for testing
type stubCatalogProvider struct {
	batch []entities.RawYacht
	err   error
}

func (s *stubCatalogProvider) FetchBatch(ctx context.Context) ([]entities.RawYacht, error) {
	return s.batch, s.err
}

func idPtr(s string) *entities.ID {
	id := entities.ID(s)
	return &id
}

func newCatalogService(batch []entities.RawYacht) *CatalogService {
	images := newImageService(&stubImageSearcher{err: errors.New("offline")}, false)
	return NewCatalogService(&stubCatalogProvider{batch: batch}, images, nil)
}

func TestCatalogService_List_NormalizesAurora(t *testing.T) {
	service := newCatalogService([]entities.RawYacht{
		{
			Name:            "Aurora",
			Length:          strPtr("24.6"),
			WeeklyLowRetail: strPtr("165000"),
			Currency:        strPtr("EUR"),
			IsSpecialActive: boolPtr(true),
		},
	})

	yachts, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, yachts, 1)

	aurora := yachts[0]
	assert.Equal(t, "0", aurora.Slug)
	assert.Equal(t, "Aurora", aurora.Name)
	assert.Equal(t, "25m", aurora.Length)
	assert.Equal(t, "€165,000", aurora.PriceFrom)
	assert.Equal(t, entities.AvailabilityInquiry, aurora.Availability)
	assert.Equal(t, "New Listing", aurora.Badge)
	assert.Equal(t, "Worldwide", aurora.Location)
	assert.Equal(t, fallbackImagePool[0], aurora.ImageURL)
}

func TestCatalogService_List_AllFieldsAbsent(t *testing.T) {
	service := newCatalogService([]entities.RawYacht{{Name: "Bare"}})

	yachts, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, yachts, 1)

	bare := yachts[0]
	assert.Equal(t, "0", bare.Slug)
	assert.Equal(t, "Worldwide", bare.Location)
	assert.Equal(t, Placeholder, bare.PriceFrom)
	assert.Equal(t, Placeholder, bare.Length)
	assert.Equal(t, 0, bare.Guests)
	assert.Equal(t, 0, bare.Cabins)
	assert.Nil(t, bare.Amenities)
	assert.Nil(t, bare.Crew)
	assert.Equal(t, entities.AvailabilityAvailable, bare.Availability)
	assert.NotEmpty(t, bare.ImageURL)
}

func TestCatalogService_List_FieldPrecedence(t *testing.T) {
	service := newCatalogService([]entities.RawYacht{
		{
			ID:                    idPtr("y-1"),
			UniqueName:            strPtr("aurora-ii"),
			Name:                  "Aurora II",
			Region:                strPtr("Mediterranean"),
			Type:                  strPtr("Motor"),
			MaxPassengersCruising: intPtr(8),
			Bedrooms:              intPtr(4),
			MaxCrew:               intPtr(6),
			Toys:                  strPtr("Jetski; Seabob"),
		},
	})

	yachts, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, yachts, 1)

	yacht := yachts[0]
	assert.Equal(t, "y-1", yacht.Slug)
	assert.Equal(t, "Mediterranean", yacht.Location)
	assert.Equal(t, "Mediterranean", yacht.Region)
	assert.Equal(t, 8, yacht.Guests)
	assert.Equal(t, 4, yacht.Cabins)
	require.NotNil(t, yacht.Crew)
	assert.Equal(t, 6, *yacht.Crew)
	assert.Equal(t, []string{"Jetski", "Seabob"}, yacht.Amenities)
}

func TestCatalogService_List_SlugFallsBackToUniqueName(t *testing.T) {
	service := newCatalogService([]entities.RawYacht{
		{UniqueName: strPtr("calypso"), Name: "Calypso"},
	})

	yachts, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, yachts, 1)
	assert.Equal(t, "calypso", yachts[0].Slug)
}

func TestCatalogService_List_DuplicateSlugsGetDisambiguated(t *testing.T) {
	service := newCatalogService([]entities.RawYacht{
		{ID: idPtr("dup"), Name: "First"},
		{ID: idPtr("dup"), Name: "Second"},
	})

	yachts, err := service.List(context.Background())
	require.NoError(t, err)
	require.Len(t, yachts, 2)

	assert.Equal(t, "dup", yachts[0].Slug)
	assert.Equal(t, "dup-1", yachts[1].Slug)
}

func TestCatalogService_List_PropagatesFetchError(t *testing.T) {
	images := newImageService(&stubImageSearcher{urls: []string{"https://img.test/0"}}, false)
	service := NewCatalogService(
		&stubCatalogProvider{err: apperrors.NewExternalError("catalog request failed", errors.New("timeout"))},
		images,
		nil,
	)

	yachts, err := service.List(context.Background())

	assert.Nil(t, yachts)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeExternal, appErr.Type)
}

func TestCatalogService_List_FreshListPerCall(t *testing.T) {
	service := newCatalogService([]entities.RawYacht{{Name: "Aurora"}})

	first, err := service.List(context.Background())
	require.NoError(t, err)
	second, err := service.List(context.Background())
	require.NoError(t, err)

	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.NotSame(t, first[0], second[0])
}

func TestCatalogService_GetBySlug(t *testing.T) {
	service := newCatalogService([]entities.RawYacht{
		{UniqueName: strPtr("aurora"), Name: "Aurora"},
	})

	t.Run("match", func(t *testing.T) {
		yacht, err := service.GetBySlug(context.Background(), "aurora")
		require.NoError(t, err)
		assert.Equal(t, "Aurora", yacht.Name)
	})

	t.Run("miss is not found", func(t *testing.T) {
		_, err := service.GetBySlug(context.Background(), "ghost")
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})
}
