package assistant

import (
	"strings"

	"suitpax/models"
)

// Canned texts used when the external model cannot be reached. The responder
// mirrors the prompt composer's tier structure so the user-visible contract
// stays the same whether or not the model call succeeded.

const madridLondonItinerary = `**Madrid to London Flights**

Here are the best options for your route:

- **British Airways BA 456**: Madrid (MAD) to London Heathrow (LHR), 08:30-10:15 (2h 45m), 245 EUR, Direct
- **Iberia IB 3170**: Madrid (MAD) to London Heathrow (LHR), 14:20-16:05 (2h 45m), 198 EUR, Direct

**Recommended Hotels in London**

- **London Marriott Hotel County Hall**: 320 EUR/night, 4.5 rating, Westminster Bridge Road
- **Hilton London Park Lane**: 285 EUR/night, 4.3 rating, Mayfair

**Travel Tips**

- Morning departures avoid Heathrow peak congestion
- Both flights are direct with business-friendly arrival times`

const proAnalyticsBlock = `

**Pro Travel Analytics**

- Iberia IB 3170 is 47 EUR cheaper than the average for this route
- Booking 14+ days ahead typically saves a further 12% on Madrid-London fares
- Tuesday and Wednesday departures show the lowest corporate fares
- Your route qualifies for corporate rate access on both carriers`

const welcomeBlock = `**Welcome to Suitpax AI**

I'm Zia, your business travel assistant. I can help you with:

- Flight searches on major European business routes
- Hotel recommendations in key destination cities
- Basic expense tracking guidance
- Itinerary planning for business trips

Try asking about flights from Madrid to London, or hotels in your destination city.`

const upgradeSuffix = `

**Upgrade to Suitpax AI Pro for:**

- Advanced AI capabilities
- Unlimited document processing
- Priority support
- Advanced analytics and reporting`

// FallbackRespond produces a deterministic, tier-aware reply without any
// network access. It never returns an empty string and never fails.
func FallbackRespond(message string, plan models.PlanTier) string {
	lower := strings.ToLower(message)

	var body string
	if strings.Contains(lower, "madrid") && strings.Contains(lower, "london") {
		body = madridLondonItinerary
		if plan.IsPro() {
			body += proAnalyticsBlock
		}
	} else {
		body = welcomeBlock
		if plan.IsPro() {
			if perks := profileFor(plan).offlinePerks; perks != "" {
				body += "\n\n**Your Pro Capabilities**\n\n" + perks
			}
		}
	}

	if plan.IsPro() {
		return "**" + plan.Display() + " Plan**\n\n" + body
	}
	return body + upgradeSuffix
}
