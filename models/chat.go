package models

import "strings"

// PlanTier is the subscription tier a chat request runs under.
type PlanTier string

const (
	PlanFree       PlanTier = "free"
	PlanStarter    PlanTier = "starter"
	PlanBusiness   PlanTier = "business"
	PlanEnterprise PlanTier = "enterprise"
)

// ParsePlanTier resolves a raw plan string to a known tier. Anything
// unrecognized (including empty) resolves to the free tier.
func ParsePlanTier(raw string) PlanTier {
	switch PlanTier(strings.ToLower(strings.TrimSpace(raw))) {
	case PlanStarter:
		return PlanStarter
	case PlanBusiness:
		return PlanBusiness
	case PlanEnterprise:
		return PlanEnterprise
	default:
		return PlanFree
	}
}

// IsPro reports whether the tier is any paid tier.
func (p PlanTier) IsPro() bool {
	return p != PlanFree
}

// Display returns the tier name with a capitalized first letter, e.g. "Business".
func (p PlanTier) Display() string {
	s := string(p)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ChatRequest is the payload coming from the frontend into /api/chat.
type ChatRequest struct {
	Message string `json:"message"`         // user's message (typed or voice-to-text)
	Plan    string `json:"plan,omitempty"`  // "free", "starter", "business" or "enterprise"
	IsPro   bool   `json:"isPro,omitempty"` // convenience flag sent by the UI; derived from Plan server-side
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	Response string `json:"response"` // natural-language assistant reply
}
