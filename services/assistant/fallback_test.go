package assistant

import (
	"testing"

	"suitpax/models"

	"github.com/stretchr/testify/assert"
)

func TestFallbackMadridLondonFreeTier(t *testing.T) {
	reply := FallbackRespond("Find flights from Madrid to London", models.PlanFree)

	assert.Contains(t, reply, "British Airways")
	assert.Contains(t, reply, "Iberia")
	assert.Contains(t, reply, "Upgrade to Suitpax AI Pro")
	assert.NotContains(t, reply, "Pro Travel Analytics")
}

func TestFallbackMadridLondonBusinessTier(t *testing.T) {
	reply := FallbackRespond("Find flights from Madrid to London", models.PlanBusiness)

	assert.Contains(t, reply, "**Business Plan**")
	assert.Contains(t, reply, "British Airways")
	assert.Contains(t, reply, "Iberia")
	assert.Contains(t, reply, "Pro Travel Analytics")
	assert.NotContains(t, reply, "Upgrade to Suitpax AI Pro")
}

func TestFallbackRouteMatchIsCaseInsensitive(t *testing.T) {
	reply := FallbackRespond("MADRID to LONDON next week please", models.PlanFree)
	assert.Contains(t, reply, "British Airways")
}

func TestFallbackGenericBranch(t *testing.T) {
	free := FallbackRespond("what can you do?", models.PlanFree)
	assert.Contains(t, free, "Welcome to Suitpax AI")
	assert.Contains(t, free, "Upgrade to Suitpax AI Pro")
	assert.NotContains(t, free, "Your Pro Capabilities")

	enterprise := FallbackRespond("what can you do?", models.PlanEnterprise)
	assert.Contains(t, enterprise, "**Enterprise Plan**")
	assert.Contains(t, enterprise, "Your Pro Capabilities")
	assert.NotContains(t, enterprise, "Upgrade to Suitpax AI Pro")
}

func TestFallbackNeverEmpty(t *testing.T) {
	messages := []string{"", "x", "Madrid", "London", "flights from madrid to london", "random question"}
	tiers := []models.PlanTier{models.PlanFree, models.PlanStarter, models.PlanBusiness, models.PlanEnterprise}

	for _, msg := range messages {
		for _, tier := range tiers {
			reply := FallbackRespond(msg, tier)
			assert.NotEmpty(t, reply, "message %q tier %s", msg, tier)

			if tier.IsPro() {
				assert.NotContains(t, reply, "Upgrade to Suitpax AI Pro", "pro reply must not advertise an upgrade")
			} else {
				assert.Contains(t, reply, "Upgrade to Suitpax AI Pro", "free reply must advertise the upgrade")
			}
		}
	}
}

func TestFallbackSingleCityDoesNotTriggerItinerary(t *testing.T) {
	reply := FallbackRespond("hotels in Madrid please", models.PlanFree)
	assert.Contains(t, reply, "Welcome to Suitpax AI")
	assert.NotContains(t, reply, "Iberia IB 3170")
}
