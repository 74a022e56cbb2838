package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"svyato-bot/internal/order"
	"svyato-bot/pkg/redis"
)

// Session is the per-chat conversation snapshot: the current step, the choice
// ledger and the add-on selections, plus the transient sub-selection fields
// the multi-step pickers need (quest name, service being configured).
type Session struct {
	ChatID    int64          `json:"chat_id"`
	Step      string         `json:"step"`
	Ledger    order.Ledger   `json:"ledger"`
	Services  order.Services `json:"services"`
	City      string         `json:"city"`
	Quest     string         `json:"quest"`
	Service   string         `json:"service"`
	Removing  bool           `json:"removing"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewSession returns a fresh session positioned at city selection.
func NewSession(chatID int64) *Session {
	return &Session{ChatID: chatID, Step: StepCity}
}

// SessionStore persists sessions in Redis and keeps an in-process copy as a
// fallback, so an unreachable store degrades durability but never stops the
// conversation.
type SessionStore struct {
	redis  *redis.Client
	logger *zap.Logger

	mu    sync.RWMutex
	local map[int64]*Session
}

func NewSessionStore(redisClient *redis.Client, logger *zap.Logger) *SessionStore {
	return &SessionStore{
		redis:  redisClient,
		logger: logger,
		local:  make(map[int64]*Session),
	}
}

// Get loads the chat's session. A missing key yields a fresh session; a Redis
// failure falls back to the in-memory copy.
func (s *SessionStore) Get(ctx context.Context, chatID int64) *Session {
	data, err := s.redis.Get(ctx, sessionKey(chatID))
	if err != nil {
		if !errors.Is(err, redis.ErrNotFound) {
			s.logger.Warn("Session load failed, using in-memory state",
				zap.Int64("chat_id", chatID),
				zap.Error(err))
			if cached := s.getLocal(chatID); cached != nil {
				return cached
			}
		}
		return NewSession(chatID)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		s.logger.Warn("Session snapshot corrupted, starting over",
			zap.Int64("chat_id", chatID),
			zap.Error(err))
		return NewSession(chatID)
	}
	session.ChatID = chatID
	if session.Step == "" {
		session.Step = StepCity
	}

	s.setLocal(&session)
	return &session
}

// Save persists the session. On Redis failure the in-memory copy still holds
// the latest state.
func (s *SessionStore) Save(ctx context.Context, session *Session) error {
	session.UpdatedAt = time.Now()
	s.setLocal(session)

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.redis.Set(ctx, sessionKey(session.ChatID), data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Clear discards the chat's session everywhere.
func (s *SessionStore) Clear(ctx context.Context, chatID int64) error {
	s.mu.Lock()
	delete(s.local, chatID)
	s.mu.Unlock()

	if err := s.redis.Del(ctx, sessionKey(chatID)); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *SessionStore) getLocal(chatID int64) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.local[chatID]
}

func (s *SessionStore) setLocal(session *Session) {
	s.mu.Lock()
	s.local[session.ChatID] = session
	s.mu.Unlock()
}

func sessionKey(chatID int64) string {
	return fmt.Sprintf("session:%d", chatID)
}
