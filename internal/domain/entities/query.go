package entities

// SortKey selects the ordering applied after filtering
type SortKey string

const (
	SortNameAsc      SortKey = "name-asc"
	SortNameDesc     SortKey = "name-desc"
	SortPriceAsc     SortKey = "price-asc"
	SortPriceDesc    SortKey = "price-desc"
	SortLengthAsc    SortKey = "length-asc"
	SortLengthDesc   SortKey = "length-desc"
	SortCapacityAsc  SortKey = "capacity-asc"
	SortCapacityDesc SortKey = "capacity-desc"
)

// Range is a numeric interval, inclusive on both ends
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies within the range
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// QueryState holds the transient, user-driven filter/sort/search parameters.
// It is never persisted.
type QueryState struct {
	Query      string  `json:"query"`
	Price      Range   `json:"price"`
	Guests     Range   `json:"guests"`
	LengthFeet Range   `json:"lengthFeet"`
	Sort       SortKey `json:"sort"`
}

// DefaultQueryState returns the ranges and sort key the catalog UI starts
// from: effectively unconstrained for the fleet being listed.
func DefaultQueryState() QueryState {
	return QueryState{
		Price:      Range{Min: 0, Max: 250000},
		Guests:     Range{Min: 0, Max: 20},
		LengthFeet: Range{Min: 0, Max: 250},
		Sort:       SortNameAsc,
	}
}
