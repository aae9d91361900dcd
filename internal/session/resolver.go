package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eduhub-platform/backend/internal/domain"
	"github.com/eduhub-platform/backend/internal/repository"
	"github.com/eduhub-platform/backend/internal/token"
	"github.com/eduhub-platform/backend/pkg/telemetry"
)

// SessionCookie is the cookie carrying the external session id.
const SessionCookie = "sid"

var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrNotFound               = errors.New("identity not found")
	ErrUserInactive           = errors.New("user is inactive")

	// ErrTokenExpired is surfaced unchanged from token verification so the
	// transport layer can report expiry distinctly from a missing credential.
	ErrTokenExpired = token.ErrTokenExpired
)

// Config holds token lifetimes for the resolver's refresh flow.
type Config struct {
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// Resolver determines the caller's identity for a request from either the
// external cookie session or a bearer token, and can mint a fresh token
// pair from the identity's current stored record.
type Resolver struct {
	tokens   *token.Service
	sessions repository.SessionRepository
	users    repository.UserRepository
	config   Config
}

// NewResolver creates a session resolver.
func NewResolver(tokens *token.Service, sessions repository.SessionRepository, users repository.UserRepository, cfg Config) *Resolver {
	if cfg.AccessTokenTTL == 0 {
		cfg.AccessTokenTTL = 15 * time.Minute
	}
	if cfg.RefreshTokenTTL == 0 {
		cfg.RefreshTokenTTL = 7 * 24 * time.Hour
	}
	return &Resolver{
		tokens:   tokens,
		sessions: sessions,
		users:    users,
		config:   cfg,
	}
}

// Resolve inspects the request's credentials and returns the caller's
// identity. A cookie session costs one session-store lookup; a bearer
// token costs none. Fails with ErrAuthenticationRequired when no usable
// credential is present, ErrTokenExpired when the bearer token is past
// its expiry.
func (r *Resolver) Resolve(c *gin.Context) (domain.Identity, domain.CredentialSource, error) {
	if sid, err := c.Cookie(SessionCookie); err == nil && sid != "" {
		identity, err := r.sessions.GetCookieSession(c.Request.Context(), sid)
		if err != nil {
			return domain.Identity{}, "", err
		}
		if identity != nil {
			return *identity, domain.SourceCookieSession, nil
		}
	}

	bearer := bearerToken(c.GetHeader("Authorization"))
	if bearer == "" {
		return domain.Identity{}, "", ErrAuthenticationRequired
	}

	claims, err := r.tokens.Verify(bearer)
	if err != nil {
		if errors.Is(err, token.ErrTokenExpired) {
			return domain.Identity{}, "", ErrTokenExpired
		}
		return domain.Identity{}, "", ErrAuthenticationRequired
	}

	return claims.Identity(), domain.SourceBearerToken, nil
}

// Refresh exchanges a refresh token for a new token pair. The identity's
// record is re-read from the store by id, so the new access token carries
// the current role and email even when they changed after the old token
// was issued. The refresh token rotates: the presented one is deleted and
// a new one stored. Previously issued access tokens stay valid until
// their own expiry.
func (r *Resolver) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, *domain.User, error) {
	ctx, span := telemetry.StartSpan(ctx, "session.refresh")
	defer span.End()

	userID, err := r.sessions.GetRefreshUserID(ctx, refreshToken)
	if err != nil {
		return nil, nil, err
	}
	if userID == "" {
		return nil, nil, ErrAuthenticationRequired
	}

	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrNotFound
	}
	if !user.IsActive {
		return nil, nil, ErrUserInactive
	}

	// Retire the presented token before minting its replacement. If the
	// rotation fails halfway the caller re-authenticates; the store never
	// holds a live token that was never handed out.
	if err := r.sessions.DeleteRefreshToken(ctx, refreshToken); err != nil {
		return nil, nil, err
	}

	pair, err := r.IssuePair(ctx, user.Identity())
	if err != nil {
		return nil, nil, err
	}

	return pair, user, nil
}

// IssuePair mints an access token for the identity plus a fresh opaque
// refresh token, and stores the refresh token in the session store.
func (r *Resolver) IssuePair(ctx context.Context, identity domain.Identity) (*domain.TokenPair, error) {
	accessToken, err := r.tokens.Issue(identity, r.config.AccessTokenTTL)
	if err != nil {
		return nil, err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}
	refreshToken := base64.URLEncoding.EncodeToString(raw)

	if err := r.sessions.SaveRefreshToken(ctx, refreshToken, identity.ID, r.config.RefreshTokenTTL); err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(r.config.AccessTokenTTL.Seconds()),
	}, nil
}

// Revoke invalidates one refresh token; unknown tokens are a no-op.
func (r *Resolver) Revoke(ctx context.Context, refreshToken string) error {
	return r.sessions.DeleteRefreshToken(ctx, refreshToken)
}

// RevokeAll invalidates every refresh token held by a user.
func (r *Resolver) RevokeAll(ctx context.Context, userID string) error {
	return r.sessions.DeleteUserRefreshTokens(ctx, userID)
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}
