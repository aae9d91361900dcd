package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/eduhub-platform/backend/internal/domain"
)

const (
	cookieSessionPrefix = "session:"
	refreshTokenPrefix  = "refresh:"
	userRefreshPrefix   = "user_refresh:"
)

// cookieSessionRecord is the JSON shape the session collaborator writes.
type cookieSessionRecord struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// RedisSessionRepository implements SessionRepository on Redis. Cookie
// session records are written by the external session layer; refresh
// tokens are written here and rotate on every refresh.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewRedisSessionRepository creates a new RedisSessionRepository
func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

// GetCookieSession resolves a session cookie value to an identity.
// Returns (nil, nil) when no session record exists.
func (r *RedisSessionRepository) GetCookieSession(ctx context.Context, sessionID string) (*domain.Identity, error) {
	raw, err := r.client.Get(ctx, cookieSessionPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session record: %w", err)
	}

	var record cookieSessionRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return nil, fmt.Errorf("failed to decode session record: %w", err)
	}

	return &domain.Identity{
		ID:    record.UserID,
		Email: record.Email,
		Role:  domain.Role(record.Role),
	}, nil
}

// SaveRefreshToken stores a refresh token against a user id with a TTL
func (r *RedisSessionRepository) SaveRefreshToken(ctx context.Context, token, userID string, ttl time.Duration) error {
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, refreshTokenPrefix+token, userID, ttl)
	pipe.SAdd(ctx, userRefreshPrefix+userID, token)
	pipe.Expire(ctx, userRefreshPrefix+userID, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

// GetRefreshUserID resolves a refresh token to its user id.
// Returns "" with no error when the token is unknown or expired.
func (r *RedisSessionRepository) GetRefreshUserID(ctx context.Context, token string) (string, error) {
	userID, err := r.client.Get(ctx, refreshTokenPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read refresh token: %w", err)
	}
	return userID, nil
}

// DeleteRefreshToken invalidates one refresh token
func (r *RedisSessionRepository) DeleteRefreshToken(ctx context.Context, token string) error {
	userID, err := r.GetRefreshUserID(ctx, token)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, refreshTokenPrefix+token)
	if userID != "" {
		pipe.SRem(ctx, userRefreshPrefix+userID, token)
	}
	_, err = pipe.Exec(ctx)
	return err
}

// DeleteUserRefreshTokens invalidates every refresh token for a user
func (r *RedisSessionRepository) DeleteUserRefreshTokens(ctx context.Context, userID string) error {
	tokens, err := r.client.SMembers(ctx, userRefreshPrefix+userID).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to list refresh tokens: %w", err)
	}

	pipe := r.client.TxPipeline()
	for _, token := range tokens {
		pipe.Del(ctx, refreshTokenPrefix+token)
	}
	pipe.Del(ctx, userRefreshPrefix+userID)
	_, err = pipe.Exec(ctx)
	return err
}
