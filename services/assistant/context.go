package assistant

import (
	"fmt"
	"strings"

	"suitpax/catalog"
)

// maxContextEntries caps how many records of each catalog make it into the
// prompt, to bound prompt size.
const maxContextEntries = 5

// BuildTravelContext renders a bounded snapshot of the flight and hotel
// catalogs as a single text block. The model is instructed to recommend only
// inventory from this snapshot. Output is deterministic for a given catalog
// state.
func BuildTravelContext() string {
	flights := catalog.Flights()
	if len(flights) > maxContextEntries {
		flights = flights[:maxContextEntries]
	}
	flightParts := make([]string, 0, len(flights))
	for _, f := range flights {
		stops := "Direct"
		if f.Stops > 0 {
			stops = fmt.Sprintf("%d stop(s)", f.Stops)
		}
		flightParts = append(flightParts, fmt.Sprintf("%s %s: %s to %s, %s-%s (%s), %d %s, %s, %s",
			f.Airline, f.FlightNumber, f.From, f.To, f.Departure, f.Arrival, f.Duration,
			f.Price, f.Currency, stops, f.Aircraft))
	}

	hotels := catalog.Hotels()
	if len(hotels) > maxContextEntries {
		hotels = hotels[:maxContextEntries]
	}
	hotelParts := make([]string, 0, len(hotels))
	for _, h := range hotels {
		hotelParts = append(hotelParts, fmt.Sprintf("%s in %s: %d %s/night, %.1f★, amenities: %s, location: %s",
			h.Name, h.City, h.PricePerNight, h.Currency, h.Rating,
			strings.Join(h.Amenities, ", "), h.Location))
	}

	return fmt.Sprintf("Available flights: %s. Available hotels: %s.",
		strings.Join(flightParts, "; "), strings.Join(hotelParts, "; "))
}
