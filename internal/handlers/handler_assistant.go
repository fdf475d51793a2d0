package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_companion_app/internal/apperrors"
	portssvc "github.com/SscSPs/currency_companion_app/internal/core/ports/services"
	"github.com/SscSPs/currency_companion_app/internal/dto"
	"github.com/SscSPs/currency_companion_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// assistantHandler handles HTTP requests for help bot conversations.
type assistantHandler struct {
	assistantService portssvc.AssistantSvcFacade
}

// newAssistantHandler creates a new assistantHandler.
func newAssistantHandler(as portssvc.AssistantSvcFacade) *assistantHandler {
	return &assistantHandler{
		assistantService: as,
	}
}

// RegisterAssistantRoutes registers routes related to the help bot.
func RegisterAssistantRoutes(rg *gin.RouterGroup, assistantService portssvc.AssistantSvcFacade) {
	h := newAssistantHandler(assistantService)

	sessions := rg.Group("/assistant/sessions")
	{
		sessions.POST("", h.startSession)
		sessionRoutes := sessions.Group("/:sessionID")
		{
			sessionRoutes.GET("/messages", h.listMessages)
			sessionRoutes.POST("/messages", h.sendMessage)
			sessionRoutes.GET("/stream", h.streamMessages)
		}
	}
}

// startSession godoc
// @Summary Start a help bot session
// @Description Creates a conversation seeded with the bot's welcome message
// @Tags assistant
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Failure 500 {object} map[string]string "Failed to start session"
// @Router /assistant/sessions [post]
func (h *assistantHandler) startSession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	session, messages, err := h.assistantService.StartSession(c.Request.Context())
	if err != nil {
		logger.Error("Failed to start assistant session", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start session"})
		return
	}

	logger.Info("Assistant session started", slog.String("session_id", session.ID))
	c.JSON(http.StatusCreated, dto.ToSessionResponse(session, messages))
}

// listMessages godoc
// @Summary List session messages
// @Description Returns every message of the session in the order it was appended
// @Tags assistant
// @Produce json
// @Param sessionID path string true "Session ID"
// @Success 200 {array} dto.MessageResponse
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 500 {object} map[string]string "Failed to list messages"
// @Router /assistant/sessions/{sessionID}/messages [get]
func (h *assistantHandler) listMessages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID := c.Param("sessionID")
	logger = logger.With(slog.String("session_id", sessionID))

	messages, err := h.assistantService.ListMessages(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Session not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		} else {
			logger.Error("Failed to list messages from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list messages"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListMessageResponse(messages))
}

// sendMessage godoc
// @Summary Send a message to the help bot
// @Description Appends the user's message. The bot's reply is appended after a short typing delay.
// @Tags assistant
// @Accept json
// @Produce json
// @Param sessionID path string true "Session ID"
// @Param message body dto.SendMessageRequest true "Message text"
// @Success 202 {object} dto.MessageResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 500 {object} map[string]string "Failed to send message"
// @Router /assistant/sessions/{sessionID}/messages [post]
func (h *assistantHandler) sendMessage(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID := c.Param("sessionID")
	logger = logger.With(slog.String("session_id", sessionID))

	var req dto.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SendMessage", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	message, err := h.assistantService.SendMessage(c.Request.Context(), sessionID, req.Text)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Message sent to unknown session")
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		} else {
			logger.Error("Failed to send message in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		}
		return
	}

	logger.Info("User message accepted", slog.String("message_id", message.ID))
	c.JSON(http.StatusAccepted, dto.ToMessageResponse(message))
}
