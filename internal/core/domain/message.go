package domain

import "time"

// Sender identifies who authored a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is a single entry in an assistant conversation. Messages are append-only.
type Message struct {
	ID        string
	SessionID string
	Text      string
	Sender    Sender
	Timestamp time.Time
}

// Session is one conversation with the help bot.
type Session struct {
	ID        string
	CreatedAt time.Time
}
