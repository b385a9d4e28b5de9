package catalog

import (
	"sort"
	"strings"

	"suitpax/models"
)

// Flights returns the full static flight catalog.
func Flights() []models.Flight {
	return flights
}

// Hotels returns the full static hotel catalog.
func Hotels() []models.Hotel {
	return hotels
}

// Cities returns the full static destination catalog.
func Cities() []models.City {
	return cities
}

// FlightFilter narrows the flight catalog. Zero values mean "no constraint".
type FlightFilter struct {
	From       string // substring match on origin, case-insensitive
	To         string // substring match on destination, case-insensitive
	MaxPrice   int
	DirectOnly bool
	SortBy     string // "price", "departure" or "duration"
}

// HotelFilter narrows the hotel catalog. Zero values mean "no constraint".
type HotelFilter struct {
	City      string // substring match, case-insensitive
	MinRating float64
	MaxPrice  int
	SortBy    string // "price" or "rating"
}

// FilterFlights returns catalog flights matching the filter, sorted as requested.
func FilterFlights(f FlightFilter) []models.Flight {
	out := make([]models.Flight, 0, len(flights))
	from := strings.ToLower(f.From)
	to := strings.ToLower(f.To)
	for _, fl := range flights {
		if from != "" && !strings.Contains(strings.ToLower(fl.From), from) {
			continue
		}
		if to != "" && !strings.Contains(strings.ToLower(fl.To), to) {
			continue
		}
		if f.MaxPrice > 0 && fl.Price > f.MaxPrice {
			continue
		}
		if f.DirectOnly && fl.Stops != 0 {
			continue
		}
		out = append(out, fl)
	}

	switch f.SortBy {
	case "price":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "departure":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Departure < out[j].Departure })
	case "duration":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Duration < out[j].Duration })
	}
	return out
}

// FilterHotels returns catalog hotels matching the filter, sorted as requested.
func FilterHotels(f HotelFilter) []models.Hotel {
	out := make([]models.Hotel, 0, len(hotels))
	city := strings.ToLower(f.City)
	for _, h := range hotels {
		if city != "" && !strings.Contains(strings.ToLower(h.City), city) {
			continue
		}
		if f.MinRating > 0 && h.Rating < f.MinRating {
			continue
		}
		if f.MaxPrice > 0 && h.PricePerNight > f.MaxPrice {
			continue
		}
		out = append(out, h)
	}

	switch f.SortBy {
	case "price":
		sort.SliceStable(out, func(i, j int) bool { return out[i].PricePerNight < out[j].PricePerNight })
	case "rating":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}

// DetectCityMention returns the first known city contained in the message,
// with the first letter capitalized, or "" if none is mentioned.
func DetectCityMention(message string) string {
	lower := strings.ToLower(message)
	for _, city := range knownCities {
		if strings.Contains(lower, city) {
			return strings.ToUpper(city[:1]) + city[1:]
		}
	}
	return ""
}

// RelevantFlights returns up to limit flights departing from or arriving at
// the given city.
func RelevantFlights(city string, limit int) []models.Flight {
	lower := strings.ToLower(city)
	var out []models.Flight
	for _, fl := range flights {
		if strings.Contains(strings.ToLower(fl.From), lower) || strings.Contains(strings.ToLower(fl.To), lower) {
			out = append(out, fl)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
