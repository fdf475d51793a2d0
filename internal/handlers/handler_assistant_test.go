package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/currency_companion_app/internal/adapters/memory"
	"github.com/SscSPs/currency_companion_app/internal/apperrors"
	"github.com/SscSPs/currency_companion_app/internal/core/domain"
	"github.com/SscSPs/currency_companion_app/internal/core/services"
	"github.com/SscSPs/currency_companion_app/internal/dto"
	"github.com/SscSPs/currency_companion_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AssistantHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockAssistantService *MockAssistantService
}

func (suite *AssistantHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockAssistantService = new(MockAssistantService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterAssistantRoutes(v1, suite.mockAssistantService)
}

func (suite *AssistantHandlerTestSuite) serve(method, url, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, url, nil)
	} else {
		req, _ = http.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AssistantHandlerTestSuite) TestStartSession() {
	session := &domain.Session{ID: "s1", CreatedAt: time.Now()}
	welcome := []domain.Message{{ID: "m1", SessionID: "s1", Text: services.WelcomeMessage, Sender: domain.SenderBot}}
	suite.mockAssistantService.On("StartSession", mock.Anything).Return(session, welcome, nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/assistant/sessions", "")

	suite.Equal(http.StatusCreated, w.Code)
	var body dto.SessionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("s1", body.SessionID)
	suite.Require().Len(body.Messages, 1)
	suite.Equal(domain.SenderBot, body.Messages[0].Sender)
}

func (suite *AssistantHandlerTestSuite) TestSendMessage() {
	accepted := &domain.Message{ID: "m2", SessionID: "s1", Text: "hello", Sender: domain.SenderUser}
	suite.mockAssistantService.On("SendMessage", mock.Anything, "s1", "hello").Return(accepted, nil).Once()
	suite.mockAssistantService.On("SendMessage", mock.Anything, "s1", "   ").
		Return(nil, fmt.Errorf("%w: message text cannot be blank", apperrors.ErrValidation)).Once()
	suite.mockAssistantService.On("SendMessage", mock.Anything, "nope", "hello").
		Return(nil, fmt.Errorf("lookup: %w", apperrors.ErrNotFound)).Once()

	w := suite.serve(http.MethodPost, "/api/v1/assistant/sessions/s1/messages", `{"text":"hello"}`)
	suite.Equal(http.StatusAccepted, w.Code)
	var body dto.MessageResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(domain.SenderUser, body.Sender)

	suite.Equal(http.StatusBadRequest, suite.serve(http.MethodPost, "/api/v1/assistant/sessions/s1/messages", `{"text":"   "}`).Code)
	suite.Equal(http.StatusNotFound, suite.serve(http.MethodPost, "/api/v1/assistant/sessions/nope/messages", `{"text":"hello"}`).Code)
	suite.Equal(http.StatusBadRequest, suite.serve(http.MethodPost, "/api/v1/assistant/sessions/s1/messages", `{}`).Code)
	suite.mockAssistantService.AssertExpectations(suite.T())
}

func (suite *AssistantHandlerTestSuite) TestListMessages_UnknownSession() {
	suite.mockAssistantService.On("ListMessages", mock.Anything, "nope").
		Return(nil, fmt.Errorf("lookup: %w", apperrors.ErrNotFound)).Once()

	suite.Equal(http.StatusNotFound, suite.serve(http.MethodGet, "/api/v1/assistant/sessions/nope/messages", "").Code)
}

func (suite *AssistantHandlerTestSuite) TestStream_UnknownSession() {
	suite.mockAssistantService.On("Subscribe", mock.Anything, "nope").
		Return(nil, fmt.Errorf("lookup: %w", apperrors.ErrNotFound)).Once()

	suite.Equal(http.StatusNotFound, suite.serve(http.MethodGet, "/api/v1/assistant/sessions/nope/stream", "").Code)
}

func TestAssistantHandler(t *testing.T) {
	suite.Run(t, new(AssistantHandlerTestSuite))
}

// TestAssistantStream_DeliversUserMessageAndReply drives a real assistant over a websocket.
func TestAssistantStream_DeliversUserMessageAndReply(t *testing.T) {
	gin.SetMode(gin.TestMode)
	assistant := services.NewAssistantService(memory.NewMessageRepository(), services.WithReplyDelay(0))

	router := gin.New()
	handlers.RegisterAssistantRoutes(router.Group("/api/v1"), assistant)
	srv := httptest.NewServer(router)
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/assistant/sessions", "application/json", nil)
	require.NoError(t, err)
	var session dto.SessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&session))
	resp.Body.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/v1/assistant/sessions/" + session.SessionID + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	resp, err = http.Post(srv.URL+"/api/v1/assistant/sessions/"+session.SessionID+"/messages",
		"application/json", strings.NewReader(`{"text":"How do I convert currency?"}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	readMessage := func() dto.MessageResponse {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var event struct {
			Type    string              `json:"type"`
			Payload dto.MessageResponse `json:"payload"`
		}
		require.NoError(t, conn.ReadJSON(&event))
		require.Equal(t, dto.StreamEventMessage, event.Type)
		return event.Payload
	}

	first := readMessage()
	second := readMessage()
	require.Equal(t, domain.SenderUser, first.Sender)
	require.Equal(t, "How do I convert currency?", first.Text)
	require.Equal(t, domain.SenderBot, second.Sender)
	require.Contains(t, second.Text, "To convert currency")
}
