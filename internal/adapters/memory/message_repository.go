package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/currency_companion_app/internal/apperrors"
	"github.com/SscSPs/currency_companion_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_companion_app/internal/core/ports/repositories"
)

// MessageRepository keeps assistant sessions and their messages in process memory.
type MessageRepository struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
	messages map[string][]domain.Message
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{
		sessions: make(map[string]domain.Session),
		messages: make(map[string][]domain.Message),
	}
}

var _ portsrepo.MessageRepositoryFacade = (*MessageRepository)(nil)

func (r *MessageRepository) SaveSession(ctx context.Context, session domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return fmt.Errorf("%w: session %s already exists", apperrors.ErrValidation, session.ID)
	}
	r.sessions[session.ID] = session
	return nil
}

func (r *MessageRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: session %s", apperrors.ErrNotFound, sessionID)
	}
	return &session, nil
}

func (r *MessageRepository) AppendMessage(ctx context.Context, message domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[message.SessionID]; !ok {
		return fmt.Errorf("%w: session %s", apperrors.ErrNotFound, message.SessionID)
	}
	r.messages[message.SessionID] = append(r.messages[message.SessionID], message)
	return nil
}

// ListMessagesBySession returns a copy so callers never share the backing array.
func (r *MessageRepository) ListMessagesBySession(ctx context.Context, sessionID string) ([]domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return nil, fmt.Errorf("%w: session %s", apperrors.ErrNotFound, sessionID)
	}
	msgs := r.messages[sessionID]
	out := make([]domain.Message, len(msgs))
	copy(out, msgs)
	return out, nil
}
