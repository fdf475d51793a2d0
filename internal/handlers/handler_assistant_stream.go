package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/currency_companion_app/internal/apperrors"
	"github.com/SscSPs/currency_companion_app/internal/dto"
	"github.com/SscSPs/currency_companion_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	streamWriteWait  = 10 * time.Second
	streamPingPeriod = 30 * time.Second
)

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origins are enforced by the CORS middleware
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// streamMessages godoc
// @Summary Stream session messages
// @Description Upgrades to a websocket and pushes every message appended to the session, including delayed bot replies
// @Tags assistant
// @Param sessionID path string true "Session ID"
// @Success 101 {object} dto.StreamEvent
// @Failure 404 {object} map[string]string "Session not found"
// @Router /assistant/sessions/{sessionID}/stream [get]
func (h *assistantHandler) streamMessages(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	sessionID := c.Param("sessionID")
	logger = logger.With(slog.String("session_id", sessionID))

	// Subscribe before upgrading so unknown sessions still get a JSON error
	updates, err := h.assistantService.Subscribe(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		} else {
			logger.Error("Failed to subscribe to session", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open stream"})
		}
		return
	}
	defer h.assistantService.Unsubscribe(sessionID, updates)

	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("Websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()
	logger.Info("Assistant stream opened")

	// The read loop only exists to notice the client going away
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(streamPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-updates:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			event := dto.StreamEvent{Type: dto.StreamEventMessage, Payload: dto.ToMessageResponse(&msg)}
			if err := conn.WriteJSON(event); err != nil {
				logger.Debug("Websocket write failed", slog.String("error", err.Error()))
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			logger.Info("Assistant stream closed by client")
			return
		}
	}
}
