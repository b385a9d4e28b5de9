package catalog

import "suitpax/models"

// flights is the static flight inventory, loaded once at process start and
// never mutated.
var flights = []models.Flight{
	{
		ID:           "BA456",
		Airline:      "British Airways",
		FlightNumber: "BA 456",
		From:         "Madrid (MAD)",
		To:           "London Heathrow (LHR)",
		Departure:    "08:30",
		Arrival:      "10:15",
		Duration:     "2h 45m",
		Price:        245,
		Currency:     "EUR",
		Stops:        0,
		Aircraft:     "Airbus A320",
	},
	{
		ID:           "IB3170",
		Airline:      "Iberia",
		FlightNumber: "IB 3170",
		From:         "Madrid (MAD)",
		To:           "London Heathrow (LHR)",
		Departure:    "14:20",
		Arrival:      "16:05",
		Duration:     "2h 45m",
		Price:        198,
		Currency:     "EUR",
		Stops:        0,
		Aircraft:     "Airbus A321",
	},
	{
		ID:           "AF1801",
		Airline:      "Air France",
		FlightNumber: "AF 1801",
		From:         "Madrid (MAD)",
		To:           "Paris Charles de Gaulle (CDG)",
		Departure:    "11:15",
		Arrival:      "13:30",
		Duration:     "2h 15m",
		Price:        156,
		Currency:     "EUR",
		Stops:        0,
		Aircraft:     "Boeing 737",
	},
	{
		ID:           "LH1110",
		Airline:      "Lufthansa",
		FlightNumber: "LH 1110",
		From:         "Madrid (MAD)",
		To:           "Frankfurt (FRA)",
		Departure:    "16:45",
		Arrival:      "19:20",
		Duration:     "2h 35m",
		Price:        289,
		Currency:     "EUR",
		Stops:        0,
		Aircraft:     "Airbus A319",
	},
	{
		ID:           "BA2570",
		Airline:      "British Airways",
		FlightNumber: "BA 2570",
		From:         "London Heathrow (LHR)",
		To:           "Madrid (MAD)",
		Departure:    "12:30",
		Arrival:      "16:15",
		Duration:     "2h 45m",
		Price:        267,
		Currency:     "EUR",
		Stops:        0,
		Aircraft:     "Boeing 787",
	},
}
