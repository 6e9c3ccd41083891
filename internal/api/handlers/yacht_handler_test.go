package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankorline/yachtcharterdiscovery/backend/internal/application/services"
	"github.com/ankorline/yachtcharterdiscovery/backend/internal/domain/entities"
	apperrors "github.com/ankorline/yachtcharterdiscovery/backend/pkg/errors"
)

// stubYachtRepository implements repositories.YachtRepository for testing
type stubYachtRepository struct {
	yachts []*entities.Yacht
	err    error
}

func (s *stubYachtRepository) List(ctx context.Context) ([]*entities.Yacht, error) {
	return s.yachts, s.err
}

func (s *stubYachtRepository) GetBySlug(ctx context.Context, slug string) (*entities.Yacht, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, yacht := range s.yachts {
		if yacht.Slug == slug {
			return yacht, nil
		}
	}
	return nil, apperrors.NewNotFoundError("yacht not found: " + slug)
}

func testFleet() []*entities.Yacht {
	return []*entities.Yacht{
		{Slug: "aurora", Name: "Aurora", Location: "Mediterranean", PriceFrom: "€165,000", Length: "25m", Guests: 10},
		{Slug: "borealis", Name: "Borealis", Location: "Caribbean", PriceFrom: "$80,000", Length: "120", Guests: 8},
	}
}

func newHandler(repo *stubYachtRepository) *YachtHandler {
	return NewYachtHandler(repo, services.NewQueryEngine())
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestYachtHandler_ListYachts_Default(t *testing.T) {
	handler := newHandler(&stubYachtRepository{yachts: testFleet()})

	req := httptest.NewRequest(http.MethodGet, "/api/yachts", nil)
	rec := httptest.NewRecorder()
	handler.ListYachts(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(2), body["count"])
	assert.Equal(t, float64(2), body["total"])
	require.Len(t, body["yachts"], 2)
}

func TestYachtHandler_ListYachts_AppliesFilters(t *testing.T) {
	handler := newHandler(&stubYachtRepository{yachts: testFleet()})

	req := httptest.NewRequest(http.MethodGet, "/api/yachts?q=caribbean&sort=price-desc", nil)
	rec := httptest.NewRecorder()
	handler.ListYachts(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["count"])
	assert.Equal(t, float64(2), body["total"])
}

func TestYachtHandler_ListYachts_PriceRange(t *testing.T) {
	handler := newHandler(&stubYachtRepository{yachts: testFleet()})

	req := httptest.NewRequest(http.MethodGet, "/api/yachts?minPrice=165000&maxPrice=165000", nil)
	rec := httptest.NewRecorder()
	handler.ListYachts(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["count"])
}

func TestYachtHandler_ListYachts_TableView(t *testing.T) {
	handler := newHandler(&stubYachtRepository{yachts: testFleet()})

	req := httptest.NewRequest(http.MethodGet, "/api/yachts?view=table", nil)
	rec := httptest.NewRecorder()
	handler.ListYachts(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	rows, ok := body["rows"].([]interface{})
	require.True(t, ok)
	require.Len(t, rows, 2)

	first := rows[0].(map[string]interface{})
	assert.Equal(t, "/yachts/aurora", first["href"])
	assert.NotNil(t, body["count"])
	_, hasYachts := body["yachts"]
	assert.False(t, hasYachts)
}

func TestYachtHandler_ListYachts_InvalidRangeParam(t *testing.T) {
	handler := newHandler(&stubYachtRepository{yachts: testFleet()})

	req := httptest.NewRequest(http.MethodGet, "/api/yachts?minPrice=lots", nil)
	rec := httptest.NewRecorder()
	handler.ListYachts(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body["error"], "minPrice")
}

func TestYachtHandler_ListYachts_UpstreamFailure(t *testing.T) {
	handler := newHandler(&stubYachtRepository{
		err: apperrors.NewExternalError("catalog request failed", nil),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/yachts", nil)
	rec := httptest.NewRecorder()
	handler.ListYachts(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "fleet unavailable", body["error"])
}

func TestYachtHandler_GetYacht_Found(t *testing.T) {
	handler := newHandler(&stubYachtRepository{yachts: testFleet()})

	req := httptest.NewRequest(http.MethodGet, "/api/yachts/aurora", nil)
	req.SetPathValue("slug", "aurora")
	rec := httptest.NewRecorder()
	handler.GetYacht(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	yacht, ok := body["yacht"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Aurora", yacht["name"])
	assert.Equal(t, "82 ft", body["lengthFeet"])
}

func TestYachtHandler_GetYacht_NotFound(t *testing.T) {
	handler := newHandler(&stubYachtRepository{yachts: testFleet()})

	req := httptest.NewRequest(http.MethodGet, "/api/yachts/ghost", nil)
	req.SetPathValue("slug", "ghost")
	rec := httptest.NewRecorder()
	handler.GetYacht(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestYachtHandler_GetYacht_MissingSlug(t *testing.T) {
	handler := newHandler(&stubYachtRepository{yachts: testFleet()})

	req := httptest.NewRequest(http.MethodGet, "/api/yachts/", nil)
	rec := httptest.NewRecorder()
	handler.GetYacht(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestYachtHandler_GetYacht_CrewLabel(t *testing.T) {
	crew := 6
	handler := newHandler(&stubYachtRepository{yachts: []*entities.Yacht{
		{Slug: "aurora", Name: "Aurora", Length: "25m", Crew: &crew},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/yachts/aurora", nil)
	req.SetPathValue("slug", "aurora")
	rec := httptest.NewRecorder()
	handler.GetYacht(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "6 crew", body["crewLabel"])
}
