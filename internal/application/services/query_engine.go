package services

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ankorline/yachtcharterdiscovery/backend/internal/domain/entities"
)

const feetPerMeter = 3.28084

var (
	nonPriceChars = regexp.MustCompile(`[^\d.]`)
	meterValue    = regexp.MustCompile(`(?i)([\d.]+)\s*m`)
	bareNumber    = regexp.MustCompile(`([\d.]+)`)
)

// QueryEngine produces the filtered, ordered view of a normalized catalog
// for a given query state. Every method is pure and side-effect free, so
// the engine is safe to drive from every keystroke of a search box.
type QueryEngine struct{}

// NewQueryEngine creates a query engine
func NewQueryEngine() *QueryEngine {
	return &QueryEngine{}
}

// Apply filters and then sorts the catalog. The input slice is not mutated.
func (e *QueryEngine) Apply(yachts []*entities.Yacht, state entities.QueryState) []*entities.Yacht {
	return e.Sort(e.Filter(yachts, state), state.Sort)
}

// Filter keeps entries satisfying every active constraint: all three
// ranges (inclusive on both ends) and, when present, the free-text query.
func (e *QueryEngine) Filter(yachts []*entities.Yacht, state entities.QueryState) []*entities.Yacht {
	query := strings.ToLower(strings.TrimSpace(state.Query))

	filtered := make([]*entities.Yacht, 0, len(yachts))
	for _, yacht := range yachts {
		if !state.Price.Contains(PriceValue(yacht.PriceFrom)) {
			continue
		}
		if !state.Guests.Contains(float64(yacht.Guests)) {
			continue
		}
		if !state.LengthFeet.Contains(LengthFeet(yacht.Length)) {
			continue
		}
		if query != "" && !strings.Contains(searchHaystack(yacht), query) {
			continue
		}
		filtered = append(filtered, yacht)
	}
	return filtered
}

// Sort orders the yachts by the given key, name ascending when the key is
// unknown. Sorting is stable and returns a new slice.
func (e *QueryEngine) Sort(yachts []*entities.Yacht, key entities.SortKey) []*entities.Yacht {
	sorted := make([]*entities.Yacht, len(yachts))
	copy(sorted, yachts)

	// collators carry internal buffers, so build one per call
	collator := collate.New(language.English)

	var less func(a, b *entities.Yacht) bool
	switch key {
	case entities.SortNameDesc:
		less = func(a, b *entities.Yacht) bool { return collator.CompareString(b.Name, a.Name) < 0 }
	case entities.SortPriceAsc:
		less = func(a, b *entities.Yacht) bool { return PriceValue(a.PriceFrom) < PriceValue(b.PriceFrom) }
	case entities.SortPriceDesc:
		less = func(a, b *entities.Yacht) bool { return PriceValue(b.PriceFrom) < PriceValue(a.PriceFrom) }
	case entities.SortLengthAsc:
		less = func(a, b *entities.Yacht) bool { return LengthFeet(a.Length) < LengthFeet(b.Length) }
	case entities.SortLengthDesc:
		less = func(a, b *entities.Yacht) bool { return LengthFeet(b.Length) < LengthFeet(a.Length) }
	case entities.SortCapacityAsc:
		less = func(a, b *entities.Yacht) bool { return a.Guests < b.Guests }
	case entities.SortCapacityDesc:
		less = func(a, b *entities.Yacht) bool { return b.Guests < a.Guests }
	default:
		less = func(a, b *entities.Yacht) bool { return collator.CompareString(a.Name, b.Name) < 0 }
	}

	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })
	return sorted
}

var rowStatuses = []entities.AvailabilityStatus{
	entities.AvailabilityAvailable,
	entities.AvailabilityInquiry,
	entities.AvailabilityBooked,
}

// TableRows materializes sorted entries for table presentation. Cabin and
// availability fallbacks apply only here, never to the canonical entity.
func (e *QueryEngine) TableRows(yachts []*entities.Yacht) []entities.YachtRow {
	rows := make([]entities.YachtRow, 0, len(yachts))
	for i, yacht := range yachts {
		slug := yacht.Slug
		if slug == "" {
			slug = yacht.Name + "-" + strconv.Itoa(i)
		}

		cabins := yacht.Cabins
		if cabins == 0 {
			cabins = cabinEstimate(yacht.Guests)
		}

		availability := yacht.Availability
		if availability == "" {
			availability = rowStatuses[i%len(rowStatuses)]
		}

		location := yacht.Location
		if location == "" {
			location = Placeholder
		}

		rows = append(rows, entities.YachtRow{
			ID:           slug,
			Slug:         slug,
			Href:         "/yachts/" + slug,
			Name:         yacht.Name,
			Location:     location,
			Length:       yacht.Length,
			Guests:       yacht.Guests,
			Cabins:       cabins,
			PriceFrom:    yacht.PriceFrom,
			Availability: availability,
			Category:     yacht.Region,
		})
	}
	return rows
}

// cabinEstimate approximates a cabin count from guest capacity, never
// going below the two cabins every charter yacht carries
func cabinEstimate(guests int) int {
	estimate := int(math.Round(float64(guests) / 2))
	if estimate < 2 {
		return 2
	}
	return estimate
}

// PriceValue derives the numeric weekly price from a formatted price
// string, stripping everything but digits and the decimal point.
// Unparseable values count as 0.
func PriceValue(priceFrom string) float64 {
	numeric, err := strconv.ParseFloat(nonPriceChars.ReplaceAllString(priceFrom, ""), 64)
	if err != nil {
		return 0
	}
	return numeric
}

// LengthFeet derives a length in feet. This is the single conversion path
// for filtering, sorting, and display: a meter-suffixed number converts at
// 3.28084 ft/m, a bare number is taken as feet, anything else is 0.
func LengthFeet(length string) float64 {
	if length == "" {
		return 0
	}
	if m := meterValue.FindStringSubmatch(length); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v * feetPerMeter
		}
		return 0
	}
	if m := bareNumber.FindStringSubmatch(length); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v
		}
	}
	return 0
}

// FormatFeet renders a length for detail display, passing the original
// value through when no number is embedded in it.
func FormatFeet(length string) string {
	if length == "" || length == Placeholder {
		return Placeholder
	}
	feet := LengthFeet(length)
	if feet == 0 {
		return length
	}
	return strconv.Itoa(int(math.Round(feet))) + " ft"
}

// searchHaystack is the lowercased free-text match target for one yacht
func searchHaystack(yacht *entities.Yacht) string {
	parts := []string{
		yacht.Name,
		yacht.Location,
		yacht.Tagline,
		yacht.Length,
		yacht.PriceFrom,
		strconv.Itoa(yacht.Guests),
	}
	if yacht.BuildYear != nil {
		parts = append(parts, strconv.Itoa(*yacht.BuildYear))
	}

	joined := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			joined = append(joined, part)
		}
	}
	return strings.ToLower(strings.Join(joined, " "))
}
