package coffeeconnect

import (
	"encoding/json"
	"strings"
)

// PriceLevelNotAvailable is rendered when the places provider reports
// no price level for a shop.
const PriceLevelNotAvailable = "Not available"

// Shop is the reshaped view of a third-party place record. It is never
// persisted; every lookup rebuilds it from the provider response.
type Shop struct {
	PlaceId      string          `json:"place_id"`
	Name         string          `json:"name"`
	Address      string          `json:"address"`
	Phone        *string         `json:"phone"`
	Website      *string         `json:"website"`
	Location     Location        `json:"location"`
	Rating       float64         `json:"rating"`
	ReviewCount  int             `json:"review_count"`
	PriceLevel   string          `json:"price_level"`
	Photos       []string        `json:"photos"`
	Types        []string        `json:"types"`
	OpeningHours json.RawMessage `json:"opening_hours"`
	Reviews      json.RawMessage `json:"reviews"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FormatPriceLevel renders the provider's 0-4 price level as a run of
// currency symbols. Absent level maps to PriceLevelNotAvailable.
func FormatPriceLevel(level *int) string {
	if level == nil {
		return PriceLevelNotAvailable
	}
	return strings.Repeat("$", *level)
}
