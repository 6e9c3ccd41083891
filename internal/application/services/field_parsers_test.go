package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ankorline/yachtcharterdiscovery/backend/internal/domain/entities"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }

func TestParseLength(t *testing.T) {
	tests := []struct {
		name     string
		input    *string
		expected string
	}{
		{name: "missing value yields placeholder", input: nil, expected: "—"},
		{name: "decimal meters round up", input: strPtr("24.6"), expected: "25m"},
		{name: "decimal meters round down", input: strPtr("24.4"), expected: "24m"},
		{name: "integer meters", input: strPtr("30"), expected: "30m"},
		{name: "surrounding whitespace tolerated", input: strPtr(" 30 "), expected: "30m"},
		{name: "preformatted value passes through", input: strPtr("42m"), expected: "42m"},
		{name: "prose passes through", input: strPtr("twenty"), expected: "twenty"},
		{name: "empty string passes through", input: strPtr(""), expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLength(tt.input))
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   *string
		code     *string
		expected string
	}{
		{name: "missing amount yields placeholder", amount: nil, code: strPtr("EUR"), expected: "—"},
		{name: "euro amount with grouping", amount: strPtr("165000"), code: strPtr("EUR"), expected: "€165,000"},
		{name: "missing code falls back to USD", amount: strPtr("1000"), code: nil, expected: "$1,000"},
		{name: "blank code falls back to USD", amount: strPtr("1000"), code: strPtr("  "), expected: "$1,000"},
		{name: "unknown code falls back to USD", amount: strPtr("1000"), code: strPtr("ZZZ"), expected: "$1,000"},
		{name: "fractions round away", amount: strPtr("1234.56"), code: strPtr("USD"), expected: "$1,235"},
		{name: "non-numeric amount passes through", amount: strPtr("on request"), code: strPtr("EUR"), expected: "on request"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.amount, tt.code))
		})
	}
}

func TestParseAvailability(t *testing.T) {
	tests := []struct {
		name            string
		specialActive   *bool
		acceptsCharters *bool
		expected        entities.AvailabilityStatus
	}{
		{name: "active special wins over accepting charters", specialActive: boolPtr(true), acceptsCharters: boolPtr(true), expected: entities.AvailabilityInquiry},
		{name: "active special wins over declined charters", specialActive: boolPtr(true), acceptsCharters: boolPtr(false), expected: entities.AvailabilityInquiry},
		{name: "explicit charter refusal means booked", specialActive: boolPtr(false), acceptsCharters: boolPtr(false), expected: entities.AvailabilityBooked},
		{name: "absent special with refusal means booked", specialActive: nil, acceptsCharters: boolPtr(false), expected: entities.AvailabilityBooked},
		{name: "absent flags mean available", specialActive: nil, acceptsCharters: nil, expected: entities.AvailabilityAvailable},
		{name: "inactive special and accepting means available", specialActive: boolPtr(false), acceptsCharters: boolPtr(true), expected: entities.AvailabilityAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseAvailability(tt.specialActive, tt.acceptsCharters))
		})
	}
}

func TestParseAmenities(t *testing.T) {
	t.Run("missing value stays nil", func(t *testing.T) {
		assert.Nil(t, ParseAmenities(nil))
	})

	t.Run("empty string stays nil", func(t *testing.T) {
		assert.Nil(t, ParseAmenities(strPtr("")))
	})

	t.Run("splits trims and preserves order", func(t *testing.T) {
		input := strPtr("Jacuzzi; WiFi ;;Jet Ski; ")
		assert.Equal(t, []string{"Jacuzzi", "WiFi", "Jet Ski"}, ParseAmenities(input))
	})

	t.Run("single amenity", func(t *testing.T) {
		assert.Equal(t, []string{"Tender"}, ParseAmenities(strPtr("Tender")))
	})
}
