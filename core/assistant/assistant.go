// Package assistant holds the AI-chat session: an ordered message log over a
// pluggable remote-model client, with availability driven by health checks.
package assistant

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/eduhub/core"
)

var (
	// errors
	ErrUnavailable = errors.New("AI Assistant is currently unavailable. Please try again later.")
	ErrNothingSent = errors.New("no user message to retry")
)

// Chat roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const defaultHealthCheckInterval = 5 * time.Minute

type (
	// Client talks to the remote language-model API.
	Client interface {
		SendMessage(ctx context.Context, message string, chatCtx interface{}) (string, error)
		CheckHealth(ctx context.Context) bool
	}

	ChatMessage struct {
		ID        string    `json:"id"`
		Content   string    `json:"content"`
		Role      string    `json:"role"`
		Timestamp time.Time `json:"timestamp"`
	}

	Session struct {
		client Client
		logger core.Logger

		mutex     sync.RWMutex
		messages  []ChatMessage
		available bool
	}
)

func NewSession(client Client, logger core.Logger) *Session {
	return &Session{client: client, logger: logger}
}

func (s *Session) Available() bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.available
}

// CheckHealth refreshes availability from the remote service.
func (s *Session) CheckHealth(ctx context.Context) bool {
	healthy := s.client.CheckHealth(ctx)
	s.mutex.Lock()
	s.available = healthy
	s.mutex.Unlock()
	return healthy
}

// RunHealthChecks re-checks availability periodically until ctx is cancelled.
func (s *Session) RunHealthChecks(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultHealthCheckInterval
	}
	s.CheckHealth(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.CheckHealth(ctx)
		}
	}
}

func (s *Session) Messages() []ChatMessage {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return append([]ChatMessage(nil), s.messages...)
}

// SendMessage records the user message and the assistant's reply. Remote
// failures are surfaced as a chat message of the form "Error: …" rather than
// an error; the caller can retry via RetryLast. Only an unavailable session
// refuses to send.
func (s *Session) SendMessage(ctx context.Context, content string, chatCtx interface{}) (ChatMessage, error) {
	if !s.Available() {
		return ChatMessage{}, ErrUnavailable
	}

	s.append(ChatMessage{
		ID:        uuid.New().String(),
		Content:   content,
		Role:      RoleUser,
		Timestamp: time.Now().UTC(),
	})

	response, err := s.client.SendMessage(ctx, content, chatCtx)
	if err != nil {
		s.logger.Error("AI chat failed: "+err.Error(), err)
		response = "Error: " + err.Error()
	}
	reply := ChatMessage{
		ID:        uuid.New().String(),
		Content:   response,
		Role:      RoleAssistant,
		Timestamp: time.Now().UTC(),
	}
	s.append(reply)
	return reply, nil
}

// RetryLast drops the trailing assistant reply and re-sends the most recent
// user message.
func (s *Session) RetryLast(ctx context.Context) (ChatMessage, error) {
	s.mutex.Lock()
	var lastUser *ChatMessage
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].Role == RoleUser {
			lastUser = &s.messages[i]
			break
		}
	}
	if lastUser == nil {
		s.mutex.Unlock()
		return ChatMessage{}, ErrNothingSent
	}
	content := lastUser.Content
	if last := len(s.messages) - 1; s.messages[last].Role == RoleAssistant {
		s.messages = s.messages[:last]
	}
	s.mutex.Unlock()

	return s.SendMessage(ctx, content, nil)
}

func (s *Session) Clear() {
	s.mutex.Lock()
	s.messages = nil
	s.mutex.Unlock()
}

func (s *Session) Delete(id string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for i, msg := range s.messages {
		if msg.ID == id {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return
		}
	}
}

func (s *Session) append(msg ChatMessage) {
	s.mutex.Lock()
	s.messages = append(s.messages, msg)
	s.mutex.Unlock()
}
