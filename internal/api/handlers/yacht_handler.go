package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ankorline/yachtcharterdiscovery/backend/internal/application/services"
	"github.com/ankorline/yachtcharterdiscovery/backend/internal/domain/entities"
	"github.com/ankorline/yachtcharterdiscovery/backend/internal/domain/repositories"
	apperrors "github.com/ankorline/yachtcharterdiscovery/backend/pkg/errors"
)

// YachtHandler handles yacht catalog HTTP requests
type YachtHandler struct {
	yachtRepo repositories.YachtRepository
	engine    *services.QueryEngine
}

// NewYachtHandler creates a new yacht handler
func NewYachtHandler(yachtRepo repositories.YachtRepository, engine *services.QueryEngine) *YachtHandler {
	return &YachtHandler{
		yachtRepo: yachtRepo,
		engine:    engine,
	}
}

// ListYachts handles GET /api/yachts
func (h *YachtHandler) ListYachts(w http.ResponseWriter, r *http.Request) {
	state, err := queryStateFromRequest(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	yachts, err := h.yachtRepo.List(r.Context())
	if err != nil {
		writeAppError(w, err)
		return
	}

	matched := h.engine.Apply(yachts, state)

	if r.URL.Query().Get("view") == "table" {
		respondWithJSON(w, http.StatusOK, map[string]interface{}{
			"rows":  h.engine.TableRows(matched),
			"count": len(matched),
			"total": len(yachts),
		})
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"yachts": matched,
		"count":  len(matched),
		"total":  len(yachts),
	})
}

// GetYacht handles GET /api/yachts/{slug}
func (h *YachtHandler) GetYacht(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		respondWithError(w, http.StatusBadRequest, "yacht slug is required")
		return
	}

	yacht, err := h.yachtRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		writeAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"yacht":      yacht,
		"lengthFeet": services.FormatFeet(yacht.Length),
		"crewLabel":  crewLabel(yacht.Crew),
	})
}

func crewLabel(crew *int) string {
	if crew == nil {
		return services.Placeholder
	}
	return strconv.Itoa(*crew) + " crew"
}

// queryStateFromRequest builds the engine's query state from URL
// parameters, starting from the catalog defaults
func queryStateFromRequest(r *http.Request) (entities.QueryState, error) {
	state := entities.DefaultQueryState()
	params := r.URL.Query()

	state.Query = params.Get("q")
	if sort := params.Get("sort"); sort != "" {
		state.Sort = entities.SortKey(sort)
	}

	var err error
	if state.Price.Min, err = rangeParam(params, "minPrice", state.Price.Min); err != nil {
		return state, err
	}
	if state.Price.Max, err = rangeParam(params, "maxPrice", state.Price.Max); err != nil {
		return state, err
	}
	if state.Guests.Min, err = rangeParam(params, "minGuests", state.Guests.Min); err != nil {
		return state, err
	}
	if state.Guests.Max, err = rangeParam(params, "maxGuests", state.Guests.Max); err != nil {
		return state, err
	}
	if state.LengthFeet.Min, err = rangeParam(params, "minLength", state.LengthFeet.Min); err != nil {
		return state, err
	}
	if state.LengthFeet.Max, err = rangeParam(params, "maxLength", state.LengthFeet.Max); err != nil {
		return state, err
	}

	return state, nil
}

func rangeParam(params url.Values, key string, fallback float64) (float64, error) {
	raw := params.Get(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	return value, nil
}

// writeAppError maps application errors onto HTTP statuses. Upstream
// catalog failures surface as a generic fleet-unavailable notice.
func writeAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case apperrors.ErrorTypeNotFound:
			respondWithError(w, http.StatusNotFound, appErr.Message)
		case apperrors.ErrorTypeValidation:
			respondWithError(w, http.StatusBadRequest, appErr.Message)
		case apperrors.ErrorTypeExternal:
			respondWithError(w, http.StatusBadGateway, "fleet unavailable")
		default:
			respondWithError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}
	respondWithError(w, http.StatusInternalServerError, "internal server error")
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}
