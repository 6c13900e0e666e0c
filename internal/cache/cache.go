// Package cache stores issued session tokens in redis so that a token
// can be looked up by username while it is still live.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type SessionStore struct {
	rdb *redis.Client
}

func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

// SaveToken stores the token under the username with the token's own
// TTL, replacing any previous session.
func (s *SessionStore) SaveToken(ctx context.Context, username, token string, ttl time.Duration) error {
	key := fmt.Sprintf("session:%s", username)
	return s.rdb.Set(ctx, key, token, ttl).Err()
}

// GetToken returns the live token for a username, or an error when no
// session exists.
func (s *SessionStore) GetToken(ctx context.Context, username string) (string, error) {
	key := fmt.Sprintf("session:%s", username)
	token, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("session not found")
		}
		return "", err
	}
	return token, nil
}

// DropToken removes the session for a username, if any.
func (s *SessionStore) DropToken(ctx context.Context, username string) error {
	key := fmt.Sprintf("session:%s", username)
	return s.rdb.Del(ctx, key).Err()
}
