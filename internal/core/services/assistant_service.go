package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/currency_companion_app/internal/apperrors"
	"github.com/SscSPs/currency_companion_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_companion_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_companion_app/internal/core/ports/services"
	"github.com/google/uuid"
)

// DefaultReplyDelay paces bot replies to look like typing.
const DefaultReplyDelay = time.Second

const subscriberBufferSize = 16

// assistantService runs help bot conversations on top of the response matcher.
type assistantService struct {
	BaseService
	messageRepo portsrepo.MessageRepositoryFacade
	matcher     *ResponseMatcher
	replyDelay  time.Duration
	now         func() time.Time

	// appendMu keeps the stored log and the published stream in the same order.
	appendMu sync.Mutex

	subsMu      sync.RWMutex
	subscribers map[string]map[chan domain.Message]struct{}
}

// AssistantOption is a functional option for configuring the assistant service
type AssistantOption func(*assistantService)

// WithReplyDelay sets how long the bot "types" before replying. Zero replies synchronously.
func WithReplyDelay(delay time.Duration) AssistantOption {
	return func(s *assistantService) {
		s.replyDelay = delay
	}
}

// WithResponseMatcher replaces the default keyword table
func WithResponseMatcher(matcher *ResponseMatcher) AssistantOption {
	return func(s *assistantService) {
		s.matcher = matcher
	}
}

// WithAssistantClock overrides the clock used to timestamp messages
func WithAssistantClock(now func() time.Time) AssistantOption {
	return func(s *assistantService) {
		s.now = now
	}
}

// NewAssistantService creates the help bot service.
func NewAssistantService(messageRepo portsrepo.MessageRepositoryFacade, options ...AssistantOption) portssvc.AssistantSvcFacade {
	svc := &assistantService{
		messageRepo: messageRepo,
		matcher:     NewDefaultResponseMatcher(),
		replyDelay:  DefaultReplyDelay,
		now:         time.Now,
		subscribers: make(map[string]map[chan domain.Message]struct{}),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AssistantSvcFacade = (*assistantService)(nil)

func (s *assistantService) StartSession(ctx context.Context) (*domain.Session, []domain.Message, error) {
	session := domain.Session{
		ID:        uuid.NewString(),
		CreatedAt: s.now(),
	}
	if err := s.messageRepo.SaveSession(ctx, session); err != nil {
		return nil, nil, fmt.Errorf("failed to create session in service: %w", err)
	}

	welcome, err := s.appendMessage(ctx, session.ID, domain.SenderBot, WelcomeMessage)
	if err != nil {
		return nil, nil, err
	}

	s.LogInfo(ctx, "Assistant session started", slog.String("session_id", session.ID))
	return &session, []domain.Message{*welcome}, nil
}

func (s *assistantService) SendMessage(ctx context.Context, sessionID string, text string) (*domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: message text cannot be blank", apperrors.ErrValidation)
	}
	if _, err := s.messageRepo.FindSessionByID(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to find session in service: %w", err)
	}

	userMsg, err := s.appendMessage(ctx, sessionID, domain.SenderUser, text)
	if err != nil {
		return nil, err
	}

	reply := s.matcher.Reply(text)
	// the reply outlives the request that triggered it
	replyCtx := context.WithoutCancel(ctx)
	if s.replyDelay <= 0 {
		s.deliverReply(replyCtx, sessionID, reply)
	} else {
		time.AfterFunc(s.replyDelay, func() {
			s.deliverReply(replyCtx, sessionID, reply)
		})
	}
	return userMsg, nil
}

func (s *assistantService) deliverReply(ctx context.Context, sessionID, reply string) {
	if _, err := s.appendMessage(ctx, sessionID, domain.SenderBot, reply); err != nil {
		s.LogError(ctx, err, "Failed to deliver bot reply", slog.String("session_id", sessionID))
	}
}

func (s *assistantService) appendMessage(ctx context.Context, sessionID string, sender domain.Sender, text string) (*domain.Message, error) {
	s.appendMu.Lock()
	defer s.appendMu.Unlock()

	msg := domain.Message{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Text:      text,
		Sender:    sender,
		Timestamp: s.now(),
	}
	if err := s.messageRepo.AppendMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to append %s message in service: %w", sender, err)
	}
	s.publish(ctx, msg)
	return &msg, nil
}

func (s *assistantService) ListMessages(ctx context.Context, sessionID string) ([]domain.Message, error) {
	if _, err := s.messageRepo.FindSessionByID(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to find session in service: %w", err)
	}
	messages, err := s.messageRepo.ListMessagesBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages in service: %w", err)
	}
	if messages == nil {
		return []domain.Message{}, nil
	}
	return messages, nil
}

func (s *assistantService) Subscribe(ctx context.Context, sessionID string) (<-chan domain.Message, error) {
	if _, err := s.messageRepo.FindSessionByID(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("failed to find session in service: %w", err)
	}

	ch := make(chan domain.Message, subscriberBufferSize)
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	if s.subscribers[sessionID] == nil {
		s.subscribers[sessionID] = make(map[chan domain.Message]struct{})
	}
	s.subscribers[sessionID][ch] = struct{}{}
	return ch, nil
}

func (s *assistantService) Unsubscribe(sessionID string, ch <-chan domain.Message) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for sub := range s.subscribers[sessionID] {
		if (<-chan domain.Message)(sub) == ch {
			delete(s.subscribers[sessionID], sub)
			close(sub)
		}
	}
	if len(s.subscribers[sessionID]) == 0 {
		delete(s.subscribers, sessionID)
	}
}

// publish never blocks; a subscriber that is not keeping up misses messages.
func (s *assistantService) publish(ctx context.Context, msg domain.Message) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	for sub := range s.subscribers[msg.SessionID] {
		select {
		case sub <- msg:
		default:
			s.LogWarn(ctx, "Dropping message for slow subscriber",
				slog.String("session_id", msg.SessionID),
				slog.String("message_id", msg.ID))
		}
	}
}
