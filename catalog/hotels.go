package catalog

import "suitpax/models"

// hotels is the static hotel inventory, loaded once at process start and
// never mutated.
var hotels = []models.Hotel{
	{
		ID:            "marriott-london",
		Name:          "London Marriott Hotel County Hall",
		Location:      "Westminster Bridge Road, London",
		City:          "London",
		Rating:        4.5,
		PricePerNight: 320,
		Currency:      "EUR",
		Amenities:     []string{"WiFi", "Gym", "Restaurant", "Bar", "Room Service", "Concierge"},
		Description:   "Luxury hotel with Thames views in central London",
	},
	{
		ID:            "hilton-london",
		Name:          "Hilton London Park Lane",
		Location:      "Park Lane, Mayfair, London",
		City:          "London",
		Rating:        4.3,
		PricePerNight: 285,
		Currency:      "EUR",
		Amenities:     []string{"WiFi", "Gym", "Restaurant", "Bar", "Spa", "Business Center"},
		Description:   "Elegant hotel in the heart of Mayfair",
	},
	{
		ID:            "ritz-madrid",
		Name:          "Hotel Ritz Madrid",
		Location:      "Plaza de la Lealtad, Madrid",
		City:          "Madrid",
		Rating:        5.0,
		PricePerNight: 450,
		Currency:      "EUR",
		Amenities:     []string{"WiFi", "Spa", "Restaurant", "Bar", "Gym", "Concierge", "Valet Parking"},
		Description:   "Iconic luxury hotel in the Golden Triangle of Art",
	},
	{
		ID:            "westin-madrid",
		Name:          "The Westin Palace Madrid",
		Location:      "Plaza de las Cortes, Madrid",
		City:          "Madrid",
		Rating:        4.6,
		PricePerNight: 380,
		Currency:      "EUR",
		Amenities:     []string{"WiFi", "Restaurant", "Bar", "Gym", "Business Center", "Room Service"},
		Description:   "Historic palace hotel near the Prado Museum",
	},
	{
		ID:            "marriott-paris",
		Name:          "Paris Marriott Champs Elysees Hotel",
		Location:      "Champs-Élysées, Paris",
		City:          "Paris",
		Rating:        4.4,
		PricePerNight: 395,
		Currency:      "EUR",
		Amenities:     []string{"WiFi", "Restaurant", "Bar", "Gym", "Spa", "Concierge"},
		Description:   "Sophisticated hotel on the famous Champs-Élysées",
	},
}
