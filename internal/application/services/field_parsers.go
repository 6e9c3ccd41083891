package services

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/ankorline/yachtcharterdiscovery/backend/internal/domain/entities"
)

// Placeholder is shown wherever a display field has no usable value
const Placeholder = "—"

var pricePrinter = message.NewPrinter(language.AmericanEnglish)

// ParseLength formats a bare numeric meter value as "<N>m", rounded to the
// nearest integer. Missing input yields the placeholder; anything that does
// not parse as a number passes through unchanged so preformatted values
// like "42m" survive.
func ParseLength(value *string) string {
	if value == nil {
		return Placeholder
	}
	numeric, err := strconv.ParseFloat(strings.TrimSpace(*value), 64)
	if err != nil {
		return *value
	}
	return strconv.Itoa(int(math.Round(numeric))) + "m"
}

// FormatCurrency renders a weekly rate as a localized currency string with
// no fraction digits. A missing amount yields the placeholder, a
// non-numeric amount passes through unchanged, and a blank or unknown
// currency code falls back to USD.
func FormatCurrency(amount *string, code *string) string {
	if amount == nil {
		return Placeholder
	}
	numeric, err := strconv.ParseFloat(strings.TrimSpace(*amount), 64)
	if err != nil {
		return *amount
	}

	unit := currency.USD
	if code != nil {
		if trimmed := strings.TrimSpace(*code); trimmed != "" {
			if parsed, err := currency.ParseISO(trimmed); err == nil {
				unit = parsed
			}
		}
	}

	symbol := pricePrinter.Sprintf("%v", currency.Symbol(unit))
	return symbol + pricePrinter.Sprintf("%v", number.Decimal(math.Round(numeric), number.MaxFractionDigits(0)))
}

// ParseAvailability derives charter availability from the raw flags. An
// active special always wins over the charter-acceptance flag; only an
// explicit false on acceptsWeeklyCharters marks a listing booked.
func ParseAvailability(specialActive, acceptsWeeklyCharters *bool) entities.AvailabilityStatus {
	if specialActive != nil && *specialActive {
		return entities.AvailabilityInquiry
	}
	if acceptsWeeklyCharters != nil && !*acceptsWeeklyCharters {
		return entities.AvailabilityBooked
	}
	return entities.AvailabilityAvailable
}

// ParseAmenities splits a semicolon-joined amenity string, trimming tokens
// and preserving order. A nil result means "no amenities supplied", which
// callers render as available-upon-request rather than an empty tag row.
func ParseAmenities(value *string) []string {
	if value == nil || *value == "" {
		return nil
	}
	parts := strings.Split(*value, ";")
	amenities := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			amenities = append(amenities, trimmed)
		}
	}
	return amenities
}
