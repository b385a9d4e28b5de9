package assistant

import (
	"context"
	"fmt"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiInvoker talks to the Gemini text-generation API. A missing API key
// yields a disabled invoker rather than a startup failure; callers check
// Enabled() and route to the fallback responder.
type GeminiInvoker struct {
	client *genai.Client
	model  string
}

// NewGeminiInvoker builds the invoker once at process start. An empty apiKey
// is not an error: it returns a disabled invoker.
func NewGeminiInvoker(ctx context.Context, apiKey, model string) (*GeminiInvoker, error) {
	if apiKey == "" {
		return &GeminiInvoker{}, nil
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiInvoker{client: client, model: model}, nil
}

func (g *GeminiInvoker) Enabled() bool {
	return g != nil && g.client != nil
}

// Generate sends the prompt bundle and returns the first text part of the
// first candidate. One attempt, no retries; a slow upstream call holds the
// request open for as long as the transport allows.
func (g *GeminiInvoker) Generate(ctx context.Context, bundle PromptBundle, params GenerationParams) (string, error) {
	if !g.Enabled() {
		return "", ErrInvokerDisabled
	}

	model := g.client.GenerativeModel(g.model)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(bundle.System)}}
	model.SetMaxOutputTokens(params.MaxTokens)
	model.SetTemperature(params.Temperature)

	resp, err := model.GenerateContent(ctx, genai.Text(bundle.User))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrUnexpectedShape
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text), nil
		}
	}
	return "", ErrUnexpectedShape
}
