package dto

import (
	"time"

	"github.com/SscSPs/currency_companion_app/internal/core/domain"
)

// SendMessageRequest defines the body of a message sent to the help bot.
type SendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

// MessageResponse defines the data returned for a chat message.
type MessageResponse struct {
	ID        string        `json:"id"`
	SessionID string        `json:"sessionId"`
	Text      string        `json:"text"`
	Sender    domain.Sender `json:"sender"`
	Timestamp time.Time     `json:"timestamp"`
}

// SessionResponse defines the data returned when a session is created.
type SessionResponse struct {
	SessionID string            `json:"sessionId"`
	CreatedAt time.Time         `json:"createdAt"`
	Messages  []MessageResponse `json:"messages"`
}

// StreamEvent is the envelope written to websocket subscribers.
type StreamEvent struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// StreamEventMessage is the event type carrying a MessageResponse payload.
const StreamEventMessage = "message"

// ToMessageResponse converts a domain.Message to MessageResponse DTO
func ToMessageResponse(msg *domain.Message) MessageResponse {
	return MessageResponse{
		ID:        msg.ID,
		SessionID: msg.SessionID,
		Text:      msg.Text,
		Sender:    msg.Sender,
		Timestamp: msg.Timestamp,
	}
}

// ToListMessageResponse converts a slice of domain.Message to a slice of MessageResponse DTOs
func ToListMessageResponse(messages []domain.Message) []MessageResponse {
	res := make([]MessageResponse, len(messages))
	for i, msg := range messages {
		res[i] = ToMessageResponse(&msg)
	}
	return res
}

// ToSessionResponse builds a SessionResponse from a session and its opening messages.
func ToSessionResponse(session *domain.Session, messages []domain.Message) SessionResponse {
	return SessionResponse{
		SessionID: session.ID,
		CreatedAt: session.CreatedAt,
		Messages:  ToListMessageResponse(messages),
	}
}
