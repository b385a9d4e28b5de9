package assistant

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// DefaultMaxMessageLength bounds the trimmed user message.
const DefaultMaxMessageLength = 1000

var (
	// ErrEmptyMessage is returned when the message is absent or blank after trimming.
	ErrEmptyMessage = errors.New("message is required")
	// ErrMessageTooLong is returned when the trimmed message exceeds the limit.
	ErrMessageTooLong = errors.New("message exceeds maximum length")
)

// ValidateMessage trims the raw message and enforces the length bounds. It
// runs before any downstream work so the external model is never contacted
// with invalid input.
func ValidateMessage(raw string, maxLen int) (string, error) {
	if maxLen <= 0 {
		maxLen = DefaultMaxMessageLength
	}
	msg := strings.TrimSpace(raw)
	if msg == "" {
		return "", ErrEmptyMessage
	}
	if utf8.RuneCountInString(msg) > maxLen {
		return "", ErrMessageTooLong
	}
	return msg, nil
}
