package assistant

import (
	"context"

	"suitpax/models"
)

// AssistantService produces an assistant reply for a single chat request.
// The pipeline is stateless: nothing is remembered across calls beyond what
// the caller re-sends.
type AssistantService interface {
	Chat(ctx context.Context, message string, plan models.PlanTier) (string, error)
}

// ModelInvoker is the boundary to the external text-generation API.
type ModelInvoker interface {
	// Enabled reports whether the invoker was constructed with a usable
	// credential. A disabled invoker never receives requests.
	Enabled() bool
	Generate(ctx context.Context, bundle PromptBundle, params GenerationParams) (string, error)
}

// PromptBundle is the composed pair of prompts sent to the model.
type PromptBundle struct {
	System string
	User   string
}

// GenerationParams are the per-request sampling settings.
type GenerationParams struct {
	MaxTokens   int32
	Temperature float32
}

// GenerationLimits holds the configured tier-dependent generation settings.
type GenerationLimits struct {
	FreeMaxTokens   int32
	ProMaxTokens    int32
	FreeTemperature float32
	ProTemperature  float32
}

// DefaultAssistantService is the production implementation.
type DefaultAssistantService struct {
	Invoker          ModelInvoker
	Limits           GenerationLimits
	MaxMessageLength int
}
