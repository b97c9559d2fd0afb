package chathandler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"cosmic-watch/services/astro-api/internal/domain/chat"
	"cosmic-watch/services/astro-api/internal/infrastructure/logger"
	chatrequests "cosmic-watch/services/astro-api/internal/interfaces/httpserver/requests/chat"
	chatresponses "cosmic-watch/services/astro-api/internal/interfaces/httpserver/responses/chat"
	"cosmic-watch/services/astro-api/internal/utils/platformerrors"
)

const missingAsteroidPrompt = "Please provide an asteroid name and I'll pull up its briefing — try Bennu, Apophis or Ceres."

// ChatHandler exposes the conversational endpoints. Upstream failures are
// absorbed by the chat service; the only hard errors surfaced here are a
// missing chat message (400) and model-test exhaustion (500).
type ChatHandler struct {
	chatService *chat.Service
	log         zerolog.Logger
}

func NewChatHandler(chatService *chat.Service) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		log:         logger.Component("chathandler"),
	}
}

// Chat handles POST /chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatrequests.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		platformerrors.WriteValidationError(c, "message is required")
		return
	}

	reply := h.chatService.Chat(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, chatresponses.ChatResponse{
		Response:  reply.Text,
		Success:   reply.Success,
		Model:     reply.Model,
		Tokens:    reply.Tokens,
		Error:     reply.ErrorMsg,
		Timestamp: time.Now(),
	})
}

// AsteroidInfo handles POST /asteroid-info. A missing name is answered with a
// prompt-for-input payload, not an error status.
func (h *ChatHandler) AsteroidInfo(c *gin.Context) {
	var req chatrequests.AsteroidInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AsteroidName == "" {
		c.JSON(http.StatusOK, chatresponses.AsteroidInfoResponse{
			Response: missingAsteroidPrompt,
			Success:  false,
		})
		return
	}

	reply := h.chatService.AsteroidInfo(c.Request.Context(), req.AsteroidName)
	resp := chatresponses.AsteroidInfoResponse{
		Response: reply.Text,
		Success:  reply.Success,
		Asteroid: req.AsteroidName,
		Model:    reply.Model,
	}
	if reply.FromCatalog {
		resp.Note = reply.ErrorMsg
	}
	c.JSON(http.StatusOK, resp)
}

// Echo handles POST /echo. Pure local transform, no upstream call.
func (h *ChatHandler) Echo(c *gin.Context) {
	var req chatrequests.EchoRequest
	_ = c.ShouldBindJSON(&req)

	c.JSON(http.StatusOK, chatresponses.EchoResponse{
		Response: h.chatService.Echo(req.Message),
		Model:    h.chatService.ActiveModel(),
		Status:   "ok",
	})
}

// TestModel handles GET /test-gemini. The only endpoint that can answer 500:
// when every fallback candidate fails.
func (h *ChatHandler) TestModel(c *gin.Context) {
	result, err := h.chatService.TestModel(c.Request.Context())
	if err != nil {
		h.log.Error().Strs("tried", result.TriedModels).Msg("all model candidates failed")
		c.JSON(http.StatusInternalServerError, chatresponses.ModelTestFailure{
			Error:       "all models exhausted",
			TriedModels: result.TriedModels,
		})
		return
	}

	c.JSON(http.StatusOK, chatresponses.ModelTestResponse{
		Success:  true,
		Message:  "model responded",
		Model:    result.Model,
		Response: result.Response,
	})
}

// QuickTest handles GET /quick-test. Never returns a non-2xx status.
func (h *ChatHandler) QuickTest(c *gin.Context) {
	result := h.chatService.QuickTest(c.Request.Context())
	c.JSON(http.StatusOK, chatresponses.QuickTestResponse{
		Success:        result.Success,
		Status:         result.Status,
		Response:       result.Response,
		ResponseTimeMS: result.ResponseTime.Milliseconds(),
	})
}
