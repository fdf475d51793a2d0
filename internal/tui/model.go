// Package tui is the terminal client: a converter, the help bot and the settings
// panel on top of the same services the HTTP API exposes.
package tui

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/SscSPs/currency_companion_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_companion_app/internal/core/ports/services"
	"github.com/SscSPs/currency_companion_app/internal/core/services"
	"github.com/SscSPs/currency_companion_app/internal/middleware"
	"github.com/SscSPs/currency_companion_app/internal/utils"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type tab int

const (
	tabConvert tab = iota
	tabHelpBot
	tabSettings
)

var tabNames = []string{"Convert", "Help Bot", "Settings"}

const (
	defaultFrom = "USD"
	defaultTo   = "EUR"
)

// Model is the bubbletea model for the whole client.
type Model struct {
	svc        *portssvc.ServiceContainer
	matcher    *services.ResponseMatcher
	replyDelay time.Duration
	logger     *slog.Logger
	now        func() time.Time
	keys       keyMap

	activeTab tab
	width     int
	height    int

	// rates
	rates domain.RateSnapshot
	codes []string

	// converter
	amount     textinput.Model
	from       string
	to         string
	conversion *domain.Conversion
	convertErr string

	// help bot
	chatInput      textinput.Model
	messages       []domain.Message
	pendingReplies int
	nextMessageID  int

	// settings
	settings       domain.SettingsFlags
	settingsCursor int
	confirmClear   bool
	status         string
	statusErr      bool
}

// Option configures a Model.
type Option func(*Model)

// WithReplyDelay sets the help bot typing delay.
func WithReplyDelay(delay time.Duration) Option {
	return func(m *Model) {
		m.replyDelay = delay
	}
}

// WithLogger routes client and service logs to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// New creates the client model over svc.
func New(svc *portssvc.ServiceContainer, options ...Option) Model {
	amount := textinput.New()
	amount.Placeholder = "Enter amount"
	amount.Prompt = ""
	amount.CharLimit = 24
	amount.Focus()

	chat := textinput.New()
	chat.Placeholder = "Ask me anything about currencies..."
	chat.Prompt = "> "
	chat.CharLimit = 280

	m := Model{
		svc:        svc,
		matcher:    services.NewDefaultResponseMatcher(),
		replyDelay: services.DefaultReplyDelay,
		logger:     slog.Default(),
		now:        time.Now,
		keys:       defaultKeyMap(),
		rates:      domain.RateSnapshot{Status: domain.RateStatusLoading},
		codes:      popularCodes(),
		amount:     amount,
		from:       defaultFrom,
		to:         defaultTo,
		chatInput:  chat,
		settings:   domain.DefaultSettings(),
	}
	for _, option := range options {
		option(&m)
	}
	m.messages = []domain.Message{m.newMessage(domain.SenderBot, services.WelcomeMessage)}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		fetchRatesCmd(m.ctx(), m.svc.Rates, true),
		loadSettingsCmd(m.ctx(), m.svc.Settings),
		textinput.Blink,
	)
}

// ctx carries the client logger into service calls.
func (m Model) ctx() context.Context {
	return middleware.WithLogger(context.Background(), m.logger)
}

func (m *Model) newMessage(sender domain.Sender, text string) domain.Message {
	m.nextMessageID++
	return domain.Message{
		ID:        "local-" + strconv.Itoa(m.nextMessageID),
		Text:      text,
		Sender:    sender,
		Timestamp: m.now(),
	}
}

func popularCodes() []string {
	popular := utils.PopularCurrencies()
	codes := make([]string, len(popular))
	for i, c := range popular {
		codes[i] = c.Code
	}
	return codes
}
