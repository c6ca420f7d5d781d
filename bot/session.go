package bot

import (
	"sync"
	"time"

	"jalwa-telegram/models"

	"github.com/google/uuid"
)

// session holds one chat's conversation history. Messages are append-only
// and live only as long as the process: the assistant keeps no multi-turn
// state, so there is nothing worth persisting.
type session struct {
	Messages []models.Message
}

type sessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*session
}

func newSessionStore() *sessionStore {
	return &sessionStore{sessions: make(map[int64]*session)}
}

// Append records a message for the chat and returns it with id and
// timestamp filled in.
func (s *sessionStore) Append(chatID int64, sender, text string) models.Message {
	msg := models.Message{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now(),
	}
	s.mu.Lock()
	sess := s.sessions[chatID]
	if sess == nil {
		sess = &session{}
		s.sessions[chatID] = sess
	}
	sess.Messages = append(sess.Messages, msg)
	s.mu.Unlock()
	return msg
}

// History returns a copy of the chat's messages in arrival order.
func (s *sessionStore) History(chatID int64) []models.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess := s.sessions[chatID]
	if sess == nil {
		return nil
	}
	out := make([]models.Message, len(sess.Messages))
	copy(out, sess.Messages)
	return out
}

// Reset drops the chat's history (used on /start).
func (s *sessionStore) Reset(chatID int64) {
	s.mu.Lock()
	delete(s.sessions, chatID)
	s.mu.Unlock()
}
