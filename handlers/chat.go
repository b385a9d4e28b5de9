package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"suitpax/metrics"
	"suitpax/models"
	"suitpax/services/assistant"
	"suitpax/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler serves the assistant chat endpoint.
type ChatHandler struct {
	Service assistant.AssistantService
}

func NewChatHandler(svc assistant.AssistantService) *ChatHandler {
	return &ChatHandler{Service: svc}
}

// HandleChat handles POST /api/chat. Validation failures return 400 with a
// user-displayable apology in the response field; model failures never
// surface here because the service absorbs them. Only a malformed body or an
// unexpected internal fault produces a non-200 beyond that.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid chat request body", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body",
			"I apologize, but I couldn't read your message. Please try again.")
		return
	}

	// Plan is the source of truth; the isPro flag the UI sends is derived.
	plan := models.ParsePlanTier(req.Plan)

	start := time.Now()
	reply, err := h.Service.Chat(c.Request.Context(), req.Message, plan)
	metrics.ChatRequestDuration.WithLabelValues(string(plan)).Observe(time.Since(start).Seconds())

	if err != nil {
		switch {
		case errors.Is(err, assistant.ErrEmptyMessage):
			utils.JSONError(c, http.StatusBadRequest, "Message is required",
				"Please type a message so I can help with your travel plans.")
		case errors.Is(err, assistant.ErrMessageTooLong):
			utils.JSONError(c, http.StatusBadRequest, "Message too long",
				fmt.Sprintf("I apologize, but your message is too long. Please keep it under %d characters.", assistant.DefaultMaxMessageLength))
		default:
			logger.Error("Unexpected chat pipeline error", zap.Error(err))
			c.JSON(http.StatusInternalServerError, utils.ErrorResponse{
				Error:    "Internal error",
				Details:  err.Error(),
				Response: "I apologize, but something went wrong on my end. Please try again in a moment.",
			})
		}
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Response: reply})
}
