package assistant

import (
	"strings"
	"testing"

	"suitpax/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLimits = GenerationLimits{
	FreeMaxTokens:   4000,
	ProMaxTokens:    20000,
	FreeTemperature: 0.3,
	ProTemperature:  0.7,
}

func TestComposePromptIsPure(t *testing.T) {
	ctx := BuildTravelContext()
	first, firstParams := ComposePrompt("flights to London", models.PlanBusiness, ctx, testLimits)
	second, secondParams := ComposePrompt("flights to London", models.PlanBusiness, ctx, testLimits)

	assert.Equal(t, first, second)
	assert.Equal(t, firstParams, secondParams)
}

func TestComposePromptTierBanners(t *testing.T) {
	tests := []struct {
		plan       models.PlanTier
		wantBanner string
	}{
		{models.PlanFree, "[FREE USER]"},
		{models.PlanStarter, "[PRO USER - STARTER]"},
		{models.PlanBusiness, "[PRO USER - BUSINESS]"},
		{models.PlanEnterprise, "[PRO USER - ENTERPRISE]"},
	}

	for _, tt := range tests {
		t.Run(string(tt.plan), func(t *testing.T) {
			bundle, _ := ComposePrompt("hello", tt.plan, "ctx", testLimits)
			assert.True(t, strings.HasPrefix(bundle.User, tt.wantBanner),
				"user prompt should start with %q, got %q", tt.wantBanner, bundle.User)
		})
	}
}

func TestComposePromptSystemBlocks(t *testing.T) {
	free, _ := ComposePrompt("hello", models.PlanFree, "", testLimits)
	assert.Contains(t, free.System, "You are Zia")
	assert.Contains(t, free.System, "FREE TIER LIMITATIONS")

	business, _ := ComposePrompt("hello", models.PlanBusiness, "", testLimits)
	assert.Contains(t, business.System, "BUSINESS PLAN FEATURES")
	assert.NotContains(t, business.System, "FREE TIER LIMITATIONS")

	// An unrecognized tier is treated as free.
	unknown, _ := ComposePrompt("hello", models.PlanTier("platinum"), "", testLimits)
	assert.Contains(t, unknown.System, "FREE TIER LIMITATIONS")
}

func TestComposePromptContextInclusion(t *testing.T) {
	withCtx, _ := ComposePrompt("hello", models.PlanFree, "Available flights: none.", testLimits)
	assert.Contains(t, withCtx.User, "Travel data: Available flights: none.")

	withoutCtx, _ := ComposePrompt("hello", models.PlanFree, "", testLimits)
	assert.NotContains(t, withoutCtx.User, "Travel data:")
}

func TestComposePromptClosingInstruction(t *testing.T) {
	pro, _ := ComposePrompt("hello", models.PlanEnterprise, "", testLimits)
	assert.Contains(t, pro.User, "comprehensive Pro-level assistance")

	free, _ := ComposePrompt("hello", models.PlanFree, "", testLimits)
	assert.Contains(t, free.User, "highlight Pro features")
}

func TestComposePromptGenerationParams(t *testing.T) {
	_, freeParams := ComposePrompt("hello", models.PlanFree, "", testLimits)
	require.Equal(t, int32(4000), freeParams.MaxTokens)
	require.Equal(t, float32(0.3), freeParams.Temperature)

	_, proParams := ComposePrompt("hello", models.PlanStarter, "", testLimits)
	require.Equal(t, int32(20000), proParams.MaxTokens)
	require.Equal(t, float32(0.7), proParams.Temperature)
}

func TestTierProfilesCoverEveryTier(t *testing.T) {
	for _, plan := range []models.PlanTier{models.PlanFree, models.PlanStarter, models.PlanBusiness, models.PlanEnterprise} {
		assert.NotEmpty(t, profileFor(plan).promptBlock, "tier %s has no prompt block", plan)
	}
}
