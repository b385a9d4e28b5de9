package catalog

import "suitpax/models"

// knownCities is the closed set of city names the assistant can detect in a
// free-form message, in priority order.
var knownCities = []string{
	"madrid", "london", "paris", "frankfurt", "barcelona", "rome",
	"amsterdam", "berlin", "milan", "zurich", "vienna", "brussels",
	"lisbon", "dublin", "copenhagen", "stockholm", "oslo", "helsinki",
}

// cities is the static destination catalog, loaded once at process start and
// never mutated.
var cities = []models.City{
	{
		Name:              "London",
		Country:           "United Kingdom",
		Continent:         "Europe",
		BusinessHub:       true,
		Description:       "Global financial center with world-class business infrastructure",
		PopularRoutes:     []string{"Madrid", "Paris", "Frankfurt", "Amsterdam", "Dublin"},
		AverageHotelPrice: 320,
		Currency:          "GBP",
		Timezone:          "GMT",
		BusinessDistricts: []string{"City of London", "Canary Wharf", "Westminster"},
	},
	{
		Name:              "Paris",
		Country:           "France",
		Continent:         "Europe",
		BusinessHub:       true,
		Description:       "European business capital with luxury and sophistication",
		PopularRoutes:     []string{"London", "Madrid", "Frankfurt", "Milan", "Brussels"},
		AverageHotelPrice: 280,
		Currency:          "EUR",
		Timezone:          "CET",
		BusinessDistricts: []string{"La Défense", "8th Arrondissement", "1st Arrondissement"},
	},
	{
		Name:              "Frankfurt",
		Country:           "Germany",
		Continent:         "Europe",
		BusinessHub:       true,
		Description:       "European financial hub and major business center",
		PopularRoutes:     []string{"London", "Paris", "Madrid", "Zurich", "Amsterdam"},
		AverageHotelPrice: 250,
		Currency:          "EUR",
		Timezone:          "CET",
		BusinessDistricts: []string{"Bankenviertel", "Westend", "Niederrad"},
	},
	{
		Name:              "Madrid",
		Country:           "Spain",
		Continent:         "Europe",
		BusinessHub:       true,
		Description:       "Spain's business capital with growing international presence",
		PopularRoutes:     []string{"London", "Paris", "Frankfurt", "Barcelona", "Lisbon"},
		AverageHotelPrice: 180,
		Currency:          "EUR",
		Timezone:          "CET",
		BusinessDistricts: []string{"Salamanca", "Chamberí", "AZCA"},
	},
	{
		Name:              "Amsterdam",
		Country:           "Netherlands",
		Continent:         "Europe",
		BusinessHub:       true,
		Description:       "European tech hub with innovative business ecosystem",
		PopularRoutes:     []string{"London", "Frankfurt", "Paris", "Brussels", "Copenhagen"},
		AverageHotelPrice: 220,
		Currency:          "EUR",
		Timezone:          "CET",
		BusinessDistricts: []string{"Zuidas", "City Center", "Noord"},
	},
	{
		Name:              "Milan",
		Country:           "Italy",
		Continent:         "Europe",
		BusinessHub:       true,
		Description:       "Italy's economic powerhouse and fashion capital",
		PopularRoutes:     []string{"Paris", "Frankfurt", "London", "Zurich", "Barcelona"},
		AverageHotelPrice: 200,
		Currency:          "EUR",
		Timezone:          "CET",
		BusinessDistricts: []string{"Porta Nuova", "Brera", "Quadrilatero"},
	},
	{
		Name:              "Zurich",
		Country:           "Switzerland",
		Continent:         "Europe",
		BusinessHub:       true,
		Description:       "Global financial center with premium business services",
		PopularRoutes:     []string{"Frankfurt", "London", "Paris", "Milan", "Vienna"},
		AverageHotelPrice: 380,
		Currency:          "CHF",
		Timezone:          "CET",
		BusinessDistricts: []string{"Paradeplatz", "Oerlikon", "Altstetten"},
	},
	{
		Name:              "Barcelona",
		Country:           "Spain",
		Continent:         "Europe",
		BusinessHub:       true,
		Description:       "Mediterranean business hub with vibrant startup scene",
		PopularRoutes:     []string{"Madrid", "Paris", "Milan", "London", "Frankfurt"},
		AverageHotelPrice: 160,
		Currency:          "EUR",
		Timezone:          "CET",
		BusinessDistricts: []string{"22@", "Eixample", "Diagonal"},
	},
	{
		Name:              "Dublin",
		Country:           "Ireland",
		Continent:         "Europe",
		BusinessHub:       true,
		Description:       "European tech capital with favorable business environment",
		PopularRoutes:     []string{"London", "Frankfurt", "Paris", "Amsterdam", "Brussels"},
		AverageHotelPrice: 200,
		Currency:          "EUR",
		Timezone:          "GMT",
		BusinessDistricts: []string{"IFSC", "Grand Canal Dock", "City Centre"},
	},
	{
		Name:              "Brussels",
		Country:           "Belgium",
		Continent:         "Europe",
		BusinessHub:       true,
		Description:       "European Union capital and international business center",
		PopularRoutes:     []string{"London", "Paris", "Frankfurt", "Amsterdam", "Luxembourg"},
		AverageHotelPrice: 180,
		Currency:          "EUR",
		Timezone:          "CET",
		BusinessDistricts: []string{"European Quarter", "Louise", "City Center"},
	},
}
