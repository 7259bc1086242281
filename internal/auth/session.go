package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/projectpulse/project-pulse-backend/internal/auth/domain"
)

const (
	// SessionCookie is the cookie carrying the session id.
	SessionCookie = "session_id"

	sessionKeyPrefix = "session:" // Key for session data: session:{session_id}
)

// SessionStore keeps server-side sessions in Redis. Deleting the key is an
// immediate, server-side logout; an expired or missing key reads as no
// session.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a new SessionStore with the given session lifetime.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client: client,
		ttl:    ttl,
	}
}

// Create issues a fresh session id bound to the identity.
func (s *SessionStore) Create(ctx context.Context, identity *domain.Identity) (string, error) {
	data, err := json.Marshal(identity)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session identity: %w", err)
	}

	sid := uuid.New().String()
	if err := s.client.Set(ctx, s.sessionKey(sid), data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return sid, nil
}

// Get returns the identity bound to the session id, or ErrNoSession.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*domain.Identity, error) {
	data, err := s.client.Get(ctx, s.sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, domain.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var identity domain.Identity
	if err := json.Unmarshal([]byte(data), &identity); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session identity: %w", err)
	}
	return &identity, nil
}

// Delete invalidates the session server-side.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.sessionKey(sessionID)).Err()
}

// TTL returns the configured session lifetime.
func (s *SessionStore) TTL() time.Duration {
	return s.ttl
}

// Ping reports whether the session backend is reachable.
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *SessionStore) sessionKey(sid string) string {
	return sessionKeyPrefix + sid
}
