package handler

import (
	"net/http"

	"github.com/rockviolet/WanderLanka/internal/planner"
	"github.com/rockviolet/WanderLanka/pkg/logger"
	"github.com/rockviolet/WanderLanka/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CompletionClient is the completion-service client wired up in main
var CompletionClient *planner.Client

// ChatRequest carries the conversation so far
type ChatRequest struct {
	Messages []planner.Message `json:"messages"`
}

// Chat forwards a travel-assistant conversation to the completion
// service with the fixed system prompt prepended
func Chat(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("chat", "message")

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if len(req.Messages) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "messages are required"})
	}

	conversation := make([]planner.Message, 0, len(req.Messages)+1)
	conversation = append(conversation, planner.Message{
		Role:    "system",
		Content: planner.ChatSystemPrompt,
	})
	conversation = append(conversation, req.Messages...)

	content, err := CompletionClient.Chat(c.Request().Context(), conversation)
	if err != nil {
		log.Error("Chat completion failed", zap.Error(err))
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "Failed to generate response"})
	}

	return c.JSON(http.StatusOK, echo.Map{"content": content})
}
