package services_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/currency_companion_app/internal/adapters/memory"
	"github.com/SscSPs/currency_companion_app/internal/apperrors"
	"github.com/SscSPs/currency_companion_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_companion_app/internal/core/ports/services"
	"github.com/SscSPs/currency_companion_app/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type AssistantServiceTestSuite struct {
	suite.Suite
	service portssvc.AssistantSvcFacade
}

func (suite *AssistantServiceTestSuite) SetupTest() {
	suite.service = services.NewAssistantService(memory.NewMessageRepository(),
		services.WithReplyDelay(0),
		services.WithAssistantClock(func() time.Time { return testNow }))
}

func (suite *AssistantServiceTestSuite) TestStartSession_SeedsWelcome() {
	session, messages, err := suite.service.StartSession(context.Background())

	suite.Require().NoError(err)
	suite.NotEmpty(session.ID)
	suite.Require().Len(messages, 1)
	suite.Equal(domain.SenderBot, messages[0].Sender)
	suite.Equal(services.WelcomeMessage, messages[0].Text)
	suite.Equal(testNow, messages[0].Timestamp)
}

func (suite *AssistantServiceTestSuite) TestSendMessage_AppendsUserThenBot() {
	ctx := context.Background()
	session, _, err := suite.service.StartSession(ctx)
	suite.Require().NoError(err)

	userMsg, err := suite.service.SendMessage(ctx, session.ID, "How accurate are the rates?")
	suite.Require().NoError(err)
	suite.Equal(domain.SenderUser, userMsg.Sender)

	messages, err := suite.service.ListMessages(ctx, session.ID)
	suite.Require().NoError(err)
	suite.Require().Len(messages, 3)
	suite.Equal(domain.SenderBot, messages[0].Sender)
	suite.Equal(domain.SenderUser, messages[1].Sender)
	suite.Equal(domain.SenderBot, messages[2].Sender)
	suite.Contains(messages[2].Text, "reliable financial data providers")
}

func (suite *AssistantServiceTestSuite) TestSendMessage_BlankRejected() {
	ctx := context.Background()
	session, _, _ := suite.service.StartSession(ctx)

	_, err := suite.service.SendMessage(ctx, session.ID, "  \t ")

	suite.ErrorIs(err, apperrors.ErrValidation)
	messages, _ := suite.service.ListMessages(ctx, session.ID)
	suite.Len(messages, 1)
}

func (suite *AssistantServiceTestSuite) TestSendMessage_UnknownSession() {
	_, err := suite.service.SendMessage(context.Background(), "missing", "hello")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.ListMessages(context.Background(), "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.Subscribe(context.Background(), "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AssistantServiceTestSuite) TestSubscribe_ReceivesDelayedReply() {
	ctx := context.Background()
	svc := services.NewAssistantService(memory.NewMessageRepository(), services.WithReplyDelay(200*time.Millisecond))
	session, _, err := svc.StartSession(ctx)
	suite.Require().NoError(err)

	updates, err := svc.Subscribe(ctx, session.ID)
	suite.Require().NoError(err)

	_, err = svc.SendMessage(ctx, session.ID, "thanks!")
	suite.Require().NoError(err)

	first := receive(suite, updates)
	suite.Equal(domain.SenderUser, first.Sender)

	// the reply is not stored until the typing delay has passed
	messages, _ := svc.ListMessages(ctx, session.ID)
	suite.Len(messages, 2)

	second := receive(suite, updates)
	suite.Equal(domain.SenderBot, second.Sender)
	suite.Equal("You're welcome! Is there anything else I can help you with?", second.Text)

	svc.Unsubscribe(session.ID, updates)
	_, open := <-updates
	suite.False(open)
}

func (suite *AssistantServiceTestSuite) TestSubscribe_StreamMatchesStoredOrder() {
	ctx := context.Background()
	session, _, err := suite.service.StartSession(ctx)
	suite.Require().NoError(err)

	updates, err := suite.service.Subscribe(ctx, session.ID)
	suite.Require().NoError(err)
	defer suite.service.Unsubscribe(session.ID, updates)

	const senders = 6
	var wg sync.WaitGroup
	for i := 0; i < senders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := suite.service.SendMessage(ctx, session.ID, fmt.Sprintf("hello %d", i))
			suite.NoError(err)
		}(i)
	}
	wg.Wait()

	stored, err := suite.service.ListMessages(ctx, session.ID)
	suite.Require().NoError(err)
	suite.Require().Len(stored, 1+2*senders)

	for _, want := range stored[1:] {
		got := receive(suite, updates)
		suite.Equal(want.ID, got.ID)
	}
}

func receive(suite *AssistantServiceTestSuite, ch <-chan domain.Message) domain.Message {
	select {
	case msg := <-ch:
		return msg
	case <-time.After(2 * time.Second):
		suite.FailNow("timed out waiting for message")
	}
	return domain.Message{}
}

func TestAssistantService(t *testing.T) {
	suite.Run(t, new(AssistantServiceTestSuite))
}
