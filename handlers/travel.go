package handlers

import (
	"net/http"
	"strconv"

	"suitpax/catalog"

	"github.com/gin-gonic/gin"
)

// GetFlightsHandler handles GET /api/travel/flights with optional query
// filters: from, to, maxPrice, direct, sortBy (price|departure|duration).
func GetFlightsHandler(c *gin.Context) {
	filter := catalog.FlightFilter{
		From:   c.Query("from"),
		To:     c.Query("to"),
		SortBy: c.Query("sortBy"),
	}
	if v := c.Query("maxPrice"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			filter.MaxPrice = p
		}
	}
	if c.Query("direct") == "true" {
		filter.DirectOnly = true
	}

	flights := catalog.FilterFlights(filter)
	c.JSON(http.StatusOK, gin.H{"flights": flights, "count": len(flights)})
}

// GetHotelsHandler handles GET /api/travel/hotels with optional query
// filters: city, minRating, maxPrice, sortBy (price|rating).
func GetHotelsHandler(c *gin.Context) {
	filter := catalog.HotelFilter{
		City:   c.Query("city"),
		SortBy: c.Query("sortBy"),
	}
	if v := c.Query("minRating"); v != "" {
		if r, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinRating = r
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			filter.MaxPrice = p
		}
	}

	hotels := catalog.FilterHotels(filter)
	c.JSON(http.StatusOK, gin.H{"hotels": hotels, "count": len(hotels)})
}

// GetCitiesHandler handles GET /api/travel/cities.
func GetCitiesHandler(c *gin.Context) {
	cities := catalog.Cities()
	c.JSON(http.StatusOK, gin.H{"cities": cities, "count": len(cities)})
}
