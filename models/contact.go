package models

import "time"

// ContactInfo is the restaurant's static contact record. It is loaded once
// from config at startup and treated as read-only by the assistant.
type ContactInfo struct {
	Address string
	Phone   string
	Hours   []string // one display line per entry
}

// Message is one entry in a chat session's history. Messages are append-only:
// created once, never mutated, kept in memory for the session only.
type Message struct {
	ID        string
	Text      string
	Sender    string // "user" or "bot"
	Timestamp time.Time
}

const (
	SenderUser = "user"
	SenderBot  = "bot"
)
