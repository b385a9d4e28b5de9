package models

// Flight is a single bookable flight option from the static catalog.
type Flight struct {
	ID           string `json:"id"`
	Airline      string `json:"airline"`
	FlightNumber string `json:"flightNumber"`
	From         string `json:"from"`
	To           string `json:"to"`
	Departure    string `json:"departure"` // local time, "HH:MM"
	Arrival      string `json:"arrival"`
	Duration     string `json:"duration"` // e.g. "2h 45m"
	Price        int    `json:"price"`
	Currency     string `json:"currency"`
	Stops        int    `json:"stops"`
	Aircraft     string `json:"aircraft"`
}

// Hotel is a single hotel option from the static catalog.
type Hotel struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Location      string   `json:"location"`
	City          string   `json:"city"`
	Rating        float64  `json:"rating"`
	PricePerNight int      `json:"pricePerNight"`
	Currency      string   `json:"currency"`
	Amenities     []string `json:"amenities"`
	Description   string   `json:"description"`
}

// City is a business-travel destination profile.
type City struct {
	Name              string   `json:"name"`
	Country           string   `json:"country"`
	Continent         string   `json:"continent"`
	BusinessHub       bool     `json:"businessHub"`
	Description       string   `json:"description"`
	PopularRoutes     []string `json:"popularRoutes"`
	AverageHotelPrice int      `json:"averageHotelPrice"`
	Currency          string   `json:"currency"`
	Timezone          string   `json:"timezone"`
	BusinessDistricts []string `json:"businessDistricts"`
}
