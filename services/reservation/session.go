package reservation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"shortlet/models"

	"github.com/go-redis/redis/v8"
)

// SessionTTL bounds how long an unfinished reservation attempt survives.
const SessionTTL = 30 * time.Minute

// ErrSessionNotFound means the session expired or never existed.
var ErrSessionNotFound = NewSessionError("reservation session not found or expired")

// SessionStore persists reservation sessions between workflow steps. The
// submit lock makes the duplicate-submit guard atomic across handler
// instances: the Loading flag alone is a read-check-write over Redis.
type SessionStore interface {
	Save(ctx context.Context, session *models.ReservationSession, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*models.ReservationSession, error)
	Delete(ctx context.Context, sessionID string) error
	AcquireSubmitLock(ctx context.Context, sessionID string, ttl time.Duration) (bool, error)
	ReleaseSubmitLock(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions in Redis, JSON-encoded, TTL-scoped.
type RedisSessionStore struct {
	Client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.ReservationSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return NewSessionError("failed to marshal reservation session")
	}
	if err := s.Client.Set(ctx, sessionKey(session.SessionID), data, ttl).Err(); err != nil {
		return NewSessionError("failed to store reservation session")
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.ReservationSession, error) {
	data, err := s.Client.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, NewSessionError("failed to load reservation session")
	}
	var session models.ReservationSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, NewSessionError("failed to parse reservation session")
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, sessionKey(sessionID)).Err()
}

// AcquireSubmitLock takes the per-session submit lock via SETNX. It returns
// false when another submit already holds it; the TTL guards against a
// crashed holder leaking the lock forever.
func (s *RedisSessionStore) AcquireSubmitLock(ctx context.Context, sessionID string, ttl time.Duration) (bool, error) {
	ok, err := s.Client.SetNX(ctx, submitLockKey(sessionID), "1", ttl).Result()
	if err != nil {
		return false, NewSessionError("failed to acquire submit lock")
	}
	return ok, nil
}

func (s *RedisSessionStore) ReleaseSubmitLock(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, submitLockKey(sessionID)).Err()
}

func sessionKey(sessionID string) string {
	return "reservation:" + sessionID
}

func submitLockKey(sessionID string) string {
	return "reservation:submit-lock:" + sessionID
}
