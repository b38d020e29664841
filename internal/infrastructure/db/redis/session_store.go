package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKey = "session:current_user"
	sessionTTL = 24 * time.Hour
)

// SessionStore keeps the current-session pointer in Redis so the recognized
// identity survives process restarts. The TTL matches the token lifetime, so
// a session that is never refreshed lapses together with its token.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Set(ctx context.Context, userID string) error {
	if err := s.client.Set(ctx, sessionKey, userID, sessionTTL).Err(); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

// Get returns the current session's user id, or "" when no session exists.
func (s *SessionStore) Get(ctx context.Context) (string, error) {
	userID, err := s.client.Get(ctx, sessionKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("get session: %w", err)
	}
	return userID, nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
