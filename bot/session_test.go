package bot

import (
	"testing"

	"jalwa-telegram/models"
)

func TestSessionStoreAppendHistory(t *testing.T) {
	s := newSessionStore()
	const chatID int64 = 42

	if h := s.History(chatID); h != nil {
		t.Fatalf("fresh chat should have no history, got %d messages", len(h))
	}

	first := s.Append(chatID, models.SenderUser, "hello")
	second := s.Append(chatID, models.SenderBot, "Hello! Welcome to Jalwa.")

	if first.ID == "" || second.ID == "" {
		t.Error("messages must get ids")
	}
	if first.ID == second.ID {
		t.Error("message ids must be unique")
	}
	if first.Sender != models.SenderUser || second.Sender != models.SenderBot {
		t.Errorf("senders wrong: %s, %s", first.Sender, second.Sender)
	}

	h := s.History(chatID)
	if len(h) != 2 {
		t.Fatalf("history length = %d, want 2", len(h))
	}
	if h[0].Text != "hello" || h[1].Text != "Hello! Welcome to Jalwa." {
		t.Errorf("history order wrong: %q, %q", h[0].Text, h[1].Text)
	}

	// History returns a copy: mutating it must not touch the store.
	h[0].Text = "mutated"
	if s.History(chatID)[0].Text != "hello" {
		t.Error("history copy leaked into the store")
	}
}

func TestSessionStoreIsolationAndReset(t *testing.T) {
	s := newSessionStore()
	s.Append(1, models.SenderUser, "chat one")
	s.Append(2, models.SenderUser, "chat two")

	if len(s.History(1)) != 1 || len(s.History(2)) != 1 {
		t.Fatal("chats must not share history")
	}

	s.Reset(1)
	if s.History(1) != nil {
		t.Error("reset chat should have no history")
	}
	if len(s.History(2)) != 1 {
		t.Error("reset must not affect other chats")
	}
}
