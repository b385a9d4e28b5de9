package assistant

import (
	"fmt"
	"strings"

	"suitpax/models"
)

// systemPromptBase is the assistant's fixed identity and tone rules.
const systemPromptBase = `You are Zia, Suitpax's AI business travel assistant. You help employees find flights, book hotels, and manage travel expenses efficiently.

PERSONALITY:
- Professional, efficient, and helpful
- Proactive in suggesting solutions
- Detail-oriented for business needs

RESPONSE STYLE:
- Never use emoji
- Use bold headings and bullet points for structured information
- Keep responses concise and actionable
- Always offer next steps

DATA RULES:
- Recommend ONLY flights and hotels from the provided travel data
- Never invent inventory, prices, or availability`

// tierProfile pairs the per-tier system-prompt block with the capabilities
// text the offline responder advertises. Both prompt composition and the
// fallback responder read from this one table so the tier wording cannot
// drift between the two paths.
type tierProfile struct {
	promptBlock  string
	offlinePerks string
}

var tierProfiles = map[models.PlanTier]tierProfile{
	models.PlanFree: {
		promptBlock: `FREE TIER LIMITATIONS:
- Provide basic flight and hotel information only
- Limit responses to essential details
- Mention relevant Pro features the user is missing, without being pushy`,
	},
	models.PlanStarter: {
		promptBlock: `STARTER PLAN FEATURES:
- AI-powered flight and hotel search
- Basic expense tracking guidance
- Document OCR processing (10/month)
- Basic travel insights`,
		offlinePerks: `- AI-powered flight and hotel search
- Basic expense tracking
- Document processing (10/month)`,
	},
	models.PlanBusiness: {
		promptBlock: `BUSINESS PLAN FEATURES:
- Everything in Starter
- Advanced AI travel optimization
- Unlimited document processing
- Advanced analytics and reporting
- Corporate rate access and travel policy compliance
- Multi-currency support and carbon footprint tracking`,
		offlinePerks: `- Advanced AI travel optimization
- Unlimited document processing
- Advanced analytics and reporting
- Corporate rate access`,
	},
	models.PlanEnterprise: {
		promptBlock: `ENTERPRISE PLAN FEATURES:
- Everything in Business
- Custom AI training and predictive analytics
- API access and custom integrations
- Dedicated account manager
- Custom reporting dashboards and advanced compliance tools`,
		offlinePerks: `- Custom AI training and predictive analytics
- API access and custom integrations
- Dedicated account manager
- Custom reporting dashboards`,
	},
}

// profileFor is total over the tier space: unrecognized tiers get the free block.
func profileFor(plan models.PlanTier) tierProfile {
	if p, ok := tierProfiles[plan]; ok {
		return p
	}
	return tierProfiles[models.PlanFree]
}

// ComposePrompt builds the system/user prompt pair and the tier-dependent
// generation parameters. It is a pure function of its inputs.
func ComposePrompt(message string, plan models.PlanTier, travelContext string, limits GenerationLimits) (PromptBundle, GenerationParams) {
	system := systemPromptBase + "\n\n" + profileFor(plan).promptBlock

	var b strings.Builder
	if plan.IsPro() {
		fmt.Fprintf(&b, "[PRO USER - %s]\n\n", strings.ToUpper(string(plan)))
	} else {
		b.WriteString("[FREE USER]\n\n")
	}
	b.WriteString(message)
	if travelContext != "" {
		b.WriteString("\n\nTravel data: ")
		b.WriteString(travelContext)
	}
	if plan.IsPro() {
		b.WriteString("\n\nProvide comprehensive Pro-level assistance.")
	} else {
		b.WriteString("\n\nProvide basic assistance and highlight Pro features where relevant.")
	}

	params := GenerationParams{MaxTokens: limits.FreeMaxTokens, Temperature: limits.FreeTemperature}
	if plan.IsPro() {
		params = GenerationParams{MaxTokens: limits.ProMaxTokens, Temperature: limits.ProTemperature}
	}

	return PromptBundle{System: system, User: b.String()}, params
}
