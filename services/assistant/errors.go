package assistant

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/api/googleapi"
)

var (
	// ErrUnexpectedShape is returned when the model reply contains no text block.
	ErrUnexpectedShape = errors.New("model response contained no text content")
	// ErrInvokerDisabled is returned by an invoker constructed without a credential.
	ErrInvokerDisabled = errors.New("model invoker is not configured")
)

// ErrorClass is the closed set of external-call failure classes.
type ErrorClass int

const (
	ClassUnknown ErrorClass = iota
	ClassAuthentication
	ClassRateLimit
	ClassTimeout
	ClassBadRequest
)

func (e ErrorClass) String() string {
	switch e {
	case ClassAuthentication:
		return "authentication"
	case ClassRateLimit:
		return "rate_limit"
	case ClassTimeout:
		return "timeout"
	case ClassBadRequest:
		return "bad_request"
	default:
		return "unknown"
	}
}

// classMessages are the fixed user-facing sentences for the specifically
// actionable classes. Every other class gets the full fallback response
// instead of a terse error line.
var classMessages = map[ErrorClass]string{
	ClassAuthentication: "I'm having trouble authenticating with my AI provider right now. Please try again later or contact support if this persists.",
	ClassRateLimit:      "I'm handling a lot of requests at the moment. Please wait a few seconds and try again.",
	ClassTimeout:        "My AI provider is taking too long to respond. Please try again in a moment.",
}

// UserMessage returns the fixed sentence for the class, or "" when the class
// should be answered by the fallback responder.
func (e ErrorClass) UserMessage() string {
	return classMessages[e]
}

// ClassifyModelError maps an external-call failure to an ErrorClass. It
// prefers structured signals (HTTP status on the API error, context
// cancellation) and only falls back to substring matching on the error text.
func ClassifyModelError(err error) ErrorClass {
	if err == nil {
		return ClassUnknown
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ClassTimeout
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 401, 403:
			return ClassAuthentication
		case 429:
			return ClassRateLimit
		case 400:
			return ClassBadRequest
		case 408, 504:
			return ClassTimeout
		}
	}

	// Last resort: match on the error text.
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "401") || strings.Contains(msg, "authentication") || strings.Contains(msg, "unauthenticated"):
		return ClassAuthentication
	case strings.Contains(msg, "429") || strings.Contains(msg, "rate_limit") || strings.Contains(msg, "rate limit") || strings.Contains(msg, "quota"):
		return ClassRateLimit
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline"):
		return ClassTimeout
	}
	return ClassUnknown
}
