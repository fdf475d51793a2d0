package repositories

import (
	"context"

	"github.com/SscSPs/currency_companion_app/internal/core/domain"
)

// SessionReader defines read operations for assistant sessions
type SessionReader interface {
	// FindSessionByID retrieves a session, returning apperrors.ErrNotFound if it does not exist.
	FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error)
}

// SessionWriter defines write operations for assistant sessions
type SessionWriter interface {
	// SaveSession persists a new session.
	SaveSession(ctx context.Context, session domain.Session) error
}

// MessageReader defines read operations for chat messages
type MessageReader interface {
	// ListMessagesBySession returns the messages of a session in the order they were appended.
	ListMessagesBySession(ctx context.Context, sessionID string) ([]domain.Message, error)
}

// MessageWriter defines write operations for chat messages
type MessageWriter interface {
	// AppendMessage adds a message to the end of its session's log.
	AppendMessage(ctx context.Context, message domain.Message) error
}

// MessageRepositoryFacade combines all assistant conversation repository interfaces
type MessageRepositoryFacade interface {
	SessionReader
	SessionWriter
	MessageReader
	MessageWriter
}
