package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"suitpax/services/assistant"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	// A service with no invoker answers every valid request from the
	// fallback responder, which is exactly the offline contract.
	svc := assistant.NewDefaultAssistantService(nil, assistant.GenerationLimits{
		FreeMaxTokens:   4000,
		ProMaxTokens:    20000,
		FreeTemperature: 0.3,
		ProTemperature:  0.7,
	}, assistant.DefaultMaxMessageLength)

	r := gin.New()
	h := NewChatHandler(svc)
	r.POST("/api/chat", h.HandleChat)
	return r
}

func postChat(t *testing.T, r *gin.Engine, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func TestChatEndpointFallbackReply(t *testing.T) {
	r := newChatRouter()

	w, resp := postChat(t, r, `{"message":"Find flights from Madrid to London","plan":"free"}`)
	require.Equal(t, http.StatusOK, w.Code)

	text, _ := resp["response"].(string)
	assert.Contains(t, text, "British Airways")
	assert.Contains(t, text, "Iberia")
	assert.Contains(t, text, "Upgrade to Suitpax AI Pro")
}

func TestChatEndpointBusinessPlan(t *testing.T) {
	r := newChatRouter()

	w, resp := postChat(t, r, `{"message":"Find flights from Madrid to London","isPro":true,"plan":"business"}`)
	require.Equal(t, http.StatusOK, w.Code)

	text, _ := resp["response"].(string)
	assert.Contains(t, text, "**Business Plan**")
	assert.Contains(t, text, "Pro Travel Analytics")
	assert.NotContains(t, text, "Upgrade to Suitpax AI Pro")
}

func TestChatEndpointEmptyMessage(t *testing.T) {
	r := newChatRouter()

	w, resp := postChat(t, r, `{"message":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Even error payloads carry a displayable response string.
	text, _ := resp["response"].(string)
	assert.NotEmpty(t, text)
	assert.NotEmpty(t, resp["error"])
}

func TestChatEndpointMessageTooLong(t *testing.T) {
	r := newChatRouter()

	body, err := json.Marshal(map[string]string{"message": strings.Repeat("a", 1001)})
	require.NoError(t, err)

	w, resp := postChat(t, r, string(body))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	text, _ := resp["response"].(string)
	assert.Contains(t, text, "1000")
}

func TestChatEndpointMalformedBody(t *testing.T) {
	r := newChatRouter()

	w, resp := postChat(t, r, `{"message":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	text, _ := resp["response"].(string)
	assert.NotEmpty(t, text)
}

func TestChatEndpointUnknownPlanTreatedAsFree(t *testing.T) {
	r := newChatRouter()

	w, resp := postChat(t, r, `{"message":"what can you do?","plan":"platinum"}`)
	require.Equal(t, http.StatusOK, w.Code)

	text, _ := resp["response"].(string)
	assert.Contains(t, text, "Upgrade to Suitpax AI Pro")
}
