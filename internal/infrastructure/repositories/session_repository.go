package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/you/profilecms/domain"
)

// SessionRepositoryImpl implements domain.SessionRepository using Redis.
// Keys carry both the user id and the token hash, so revocation and
// liveness checks always match on the (user, token) pair.
type SessionRepositoryImpl struct {
	client *redis.Client
	prefix string
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(client *redis.Client) domain.SessionRepository {
	return &SessionRepositoryImpl{
		client: client,
		prefix: "session:",
	}
}

func (r *SessionRepositoryImpl) key(userID uint, token string) string {
	return fmt.Sprintf("%s%d:%s", r.prefix, userID, domain.HashToken(token))
}

// Create implements domain.SessionRepository. The Redis TTL mirrors the
// session expiry, so expired sessions vanish without a sweep.
func (r *SessionRepositoryImpl) Create(ctx context.Context, session *domain.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session expiry must be in the future")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	key := r.prefix + fmt.Sprintf("%d:%s", session.UserID, session.TokenHash)
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSessionStoreUnavailable, err)
	}
	return nil
}

// Revoke implements domain.SessionRepository. Deleting a key that does not
// exist is not an error; logout stays idempotent.
func (r *SessionRepositoryImpl) Revoke(ctx context.Context, userID uint, token string) error {
	if err := r.client.Del(ctx, r.key(userID, token)).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSessionStoreUnavailable, err)
	}
	return nil
}

// IsLive implements domain.SessionRepository. A missing or expired session
// is (false, nil); only store outages surface as an error, so callers can
// tell "revoked" apart from "degraded" and fail closed on the latter.
func (r *SessionRepositoryImpl) IsLive(ctx context.Context, userID uint, token string) (bool, error) {
	data, err := r.client.Get(ctx, r.key(userID, token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", domain.ErrSessionStoreUnavailable, err)
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return false, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	// Redis TTL normally handles expiry; the embedded timestamp is the
	// authoritative check either way.
	if session.ExpiresAt.Before(time.Now()) {
		r.client.Del(ctx, r.key(userID, token))
		return false, nil
	}

	return session.UserID == userID, nil
}
