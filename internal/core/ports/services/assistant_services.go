package services

import (
	"context"

	"github.com/SscSPs/currency_companion_app/internal/core/domain"
)

// AssistantReaderSvc defines read operations for help bot conversations
type AssistantReaderSvc interface {
	// ListMessages returns the messages of a session in order.
	ListMessages(ctx context.Context, sessionID string) ([]domain.Message, error)
}

// AssistantWriterSvc defines write operations for help bot conversations
type AssistantWriterSvc interface {
	// StartSession creates a session seeded with the welcome message.
	StartSession(ctx context.Context) (*domain.Session, []domain.Message, error)

	// SendMessage appends the user's message and schedules the bot's reply.
	SendMessage(ctx context.Context, sessionID string, text string) (*domain.Message, error)
}

// AssistantStreamSvc lets callers follow new messages as they are appended
type AssistantStreamSvc interface {
	// Subscribe returns a channel receiving every message appended to the session from now on.
	Subscribe(ctx context.Context, sessionID string) (<-chan domain.Message, error)

	// Unsubscribe stops delivery and closes the channel returned by Subscribe.
	Unsubscribe(sessionID string, ch <-chan domain.Message)
}

// AssistantSvcFacade combines all assistant service interfaces
type AssistantSvcFacade interface {
	AssistantReaderSvc
	AssistantWriterSvc
	AssistantStreamSvc
}
