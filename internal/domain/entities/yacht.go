package entities

import "encoding/json"

// AvailabilityStatus is the charter availability of a yacht
type AvailabilityStatus string

const (
	AvailabilityAvailable AvailabilityStatus = "available"
	AvailabilityInquiry   AvailabilityStatus = "inquiry"
	AvailabilityBooked    AvailabilityStatus = "booked"
)

// ID accepts either a JSON string or a JSON number; the upstream feed emits both.
type ID string

// UnmarshalJSON implements json.Unmarshaler
func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// RawYacht is a yacht entry exactly as returned by the upstream catalog feed.
// Only the name is guaranteed present; everything else is optional.
type RawYacht struct {
	ID                    *ID     `json:"id,omitempty"`
	UniqueName            *string `json:"uniqueName,omitempty"`
	Name                  string  `json:"name"`
	Type                  *string `json:"type,omitempty"`
	Region                *string `json:"region,omitempty"`
	Location              *string `json:"location,omitempty"`
	Length                *string `json:"length,omitempty"`
	MaxPassengers         *int    `json:"maxPassengers,omitempty"`
	MaxPassengersCruising *int    `json:"maxPassengersCruising,omitempty"`
	Bedrooms              *int    `json:"bedrooms,omitempty"`
	MaxCrew               *int    `json:"maxCrew,omitempty"`
	URL                   *string `json:"url,omitempty"`
	WeeklyLowRetail       *string `json:"weeklyLowRetail,omitempty"`
	Currency              *string `json:"currency,omitempty"`
	Toys                  *string `json:"toys,omitempty"`
	IsSpecialActive       *bool   `json:"isSpecialActive,omitempty"`
	AcceptsWeeklyCharters *bool   `json:"acceptsWeeklyCharters,omitempty"`
	SpecialDescription    *string `json:"specialDescription,omitempty"`
	Shipyard              *string `json:"shipyard,omitempty"`
	Range                 *string `json:"range,omitempty"`
	Speed                 *string `json:"speed,omitempty"`
}

// Yacht is the normalized, display-ready yacht record used by all querying
// and rendering logic. Instances are immutable once constructed and are
// recomputed on every catalog fetch.
type Yacht struct {
	Slug         string             `json:"slug"`
	Name         string             `json:"name"`
	Location     string             `json:"location"`
	Region       string             `json:"region,omitempty"`
	Tagline      string             `json:"tagline,omitempty"`
	Description  string             `json:"description,omitempty"`
	PriceFrom    string             `json:"priceFrom"`
	ImageURL     string             `json:"imageUrl"`
	Guests       int                `json:"guests"`
	Cabins       int                `json:"cabins"`
	Length       string             `json:"length"`
	BuildYear    *int               `json:"buildYear,omitempty"`
	Badge        string             `json:"badge,omitempty"`
	Amenities    []string           `json:"amenities,omitempty"`
	Crew         *int               `json:"crew,omitempty"`
	Range        string             `json:"range,omitempty"`
	Speed        string             `json:"speed,omitempty"`
	Shipyard     string             `json:"shipyard,omitempty"`
	Availability AvailabilityStatus `json:"availability,omitempty"`
}

// YachtRow is the table-view materialization of a yacht. Cabin and
// availability fallbacks are applied here, never on the canonical entity.
type YachtRow struct {
	ID           string             `json:"id"`
	Slug         string             `json:"slug"`
	Href         string             `json:"href"`
	Name         string             `json:"name"`
	Location     string             `json:"location"`
	Length       string             `json:"length"`
	Guests       int                `json:"guests"`
	Cabins       int                `json:"cabins"`
	PriceFrom    string             `json:"priceFrom"`
	Availability AvailabilityStatus `json:"availability"`
	Category     string             `json:"category,omitempty"`
}
