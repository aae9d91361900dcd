package repository

import (
	"context"
	"time"

	"github.com/eduhub-platform/backend/internal/domain"
)

// UserRepository is the identity half of the persistent store. Lookups
// return (nil, nil) when the row does not exist.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, limit, skip int) ([]*domain.User, int64, error)
}

// PostFilter narrows a post listing. Zero values mean "no constraint";
// Search matches title and excerpt case-insensitively.
type PostFilter struct {
	Category      string
	Search        string
	PublishedOnly bool
	Limit         int
	Skip          int
}

// PostRepository is the document half of the persistent store.
type PostRepository interface {
	Find(ctx context.Context, filter PostFilter) ([]domain.Post, error)
	Count(ctx context.Context, filter PostFilter) (int64, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Post, error)
	ExistsBySlug(ctx context.Context, slug string) (bool, error)
	Insert(ctx context.Context, post *domain.Post) error
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
}

// SessionRepository fronts the externally managed credential store. Cookie
// sessions are written by the session collaborator; this repository only
// reads them. Refresh tokens are owned by the auth service and rotate on
// every refresh.
type SessionRepository interface {
	GetCookieSession(ctx context.Context, sessionID string) (*domain.Identity, error)
	SaveRefreshToken(ctx context.Context, token, userID string, ttl time.Duration) error
	GetRefreshUserID(ctx context.Context, token string) (string, error)
	DeleteRefreshToken(ctx context.Context, token string) error
	DeleteUserRefreshTokens(ctx context.Context, userID string) error
}
