package assistant

import (
	"context"

	"suitpax/metrics"
	"suitpax/models"
	"suitpax/utils"

	"go.uber.org/zap"
)

// NewDefaultAssistantService wires the production pipeline.
func NewDefaultAssistantService(invoker ModelInvoker, limits GenerationLimits, maxMessageLength int) *DefaultAssistantService {
	return &DefaultAssistantService{
		Invoker:          invoker,
		Limits:           limits,
		MaxMessageLength: maxMessageLength,
	}
}

// Chat runs the full pipeline: validate, build context, compose prompts,
// invoke the model. Any model failure is absorbed here: the three actionable
// error classes get their fixed sentence, everything else gets the fallback
// responder. The returned error is non-nil only for validation failures.
func (s *DefaultAssistantService) Chat(ctx context.Context, message string, plan models.PlanTier) (string, error) {
	logger := utils.GetLogger()

	msg, err := ValidateMessage(message, s.MaxMessageLength)
	if err != nil {
		return "", err
	}

	travelContext := BuildTravelContext()
	bundle, params := ComposePrompt(msg, plan, travelContext, s.Limits)

	if s.Invoker == nil || !s.Invoker.Enabled() {
		logger.Debug("Model invoker disabled, using fallback responder", zap.String("plan", string(plan)))
		metrics.ChatRequestsTotal.WithLabelValues(string(plan), metrics.SourceFallback).Inc()
		return FallbackRespond(msg, plan), nil
	}

	reply, err := s.Invoker.Generate(ctx, bundle, params)
	if err != nil {
		class := ClassifyModelError(err)
		logger.Warn("Model call failed",
			zap.String("class", class.String()),
			zap.String("plan", string(plan)),
			zap.Error(err))
		metrics.ModelCallFailures.WithLabelValues(class.String()).Inc()

		if fixed := class.UserMessage(); fixed != "" {
			metrics.ChatRequestsTotal.WithLabelValues(string(plan), metrics.SourceError).Inc()
			return fixed, nil
		}
		metrics.ChatRequestsTotal.WithLabelValues(string(plan), metrics.SourceFallback).Inc()
		return FallbackRespond(msg, plan), nil
	}

	metrics.ChatRequestsTotal.WithLabelValues(string(plan), metrics.SourceModel).Inc()
	return reply, nil
}
