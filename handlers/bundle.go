package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Assistant endpoints.
	ChatHandler gin.HandlerFunc

	// Travel catalog endpoints.
	GetFlightsHandler gin.HandlerFunc
	GetHotelsHandler  gin.HandlerFunc
	GetCitiesHandler  gin.HandlerFunc

	// Document endpoints.
	ExtractDocumentHandler gin.HandlerFunc
}
