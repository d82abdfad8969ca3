package domain

import "time"

// Message is one line of a mock conversation transcript.
type Message struct {
	ID        string
	SenderID  string
	Content   string
	Timestamp time.Time
}

// Conversation summarises a mock thread with one peer for the messaging
// sidebar.
type Conversation struct {
	PeerID      string
	PeerName    string
	PeerAvatar  string
	LastMessage string
	UpdatedAt   time.Time
	Unread      int
}
