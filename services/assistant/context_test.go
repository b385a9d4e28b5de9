package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTravelContextIsStable(t *testing.T) {
	first := BuildTravelContext()
	second := BuildTravelContext()
	assert.Equal(t, first, second)
}

func TestBuildTravelContextContent(t *testing.T) {
	ctx := BuildTravelContext()

	assert.True(t, strings.HasPrefix(ctx, "Available flights: "))
	assert.Contains(t, ctx, "Available hotels: ")

	// Catalog entries surface with their key details.
	assert.Contains(t, ctx, "British Airways BA 456: Madrid (MAD) to London Heathrow (LHR)")
	assert.Contains(t, ctx, "245 EUR")
	assert.Contains(t, ctx, "Direct")
	assert.Contains(t, ctx, "Hotel Ritz Madrid in Madrid: 450 EUR/night")
	assert.Contains(t, ctx, "amenities: WiFi")
}

func TestBuildTravelContextBounded(t *testing.T) {
	ctx := BuildTravelContext()
	// At most 5 flights and 5 hotels; with "; " delimiters that is at most
	// 4 separators per catalog section.
	assert.LessOrEqual(t, strings.Count(ctx, "; "), 8)
}
