package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eduhub-platform/backend/internal/domain"
	"github.com/eduhub-platform/backend/internal/token"
)

// mockUserRepository is an in-memory UserRepository
type mockUserRepository struct {
	users map[string]*domain.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*domain.User)}
}

func (r *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *mockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.users[id], nil
}

func (r *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *mockUserRepository) Update(ctx context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *mockUserRepository) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	if u, ok := r.users[id]; ok {
		u.Role = role
	}
	return nil
}

func (r *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, _ := r.GetByEmail(ctx, email)
	return u != nil, nil
}

func (r *mockUserRepository) List(ctx context.Context, limit, skip int) ([]*domain.User, int64, error) {
	var users []*domain.User
	for _, u := range r.users {
		users = append(users, u)
	}
	return users, int64(len(users)), nil
}

// mockSessionRepository is an in-memory SessionRepository
type mockSessionRepository struct {
	cookieSessions map[string]*domain.Identity
	refreshTokens  map[string]string
	deleteErr      error
}

func newMockSessionRepository() *mockSessionRepository {
	return &mockSessionRepository{
		cookieSessions: make(map[string]*domain.Identity),
		refreshTokens:  make(map[string]string),
	}
}

func (r *mockSessionRepository) GetCookieSession(ctx context.Context, sessionID string) (*domain.Identity, error) {
	return r.cookieSessions[sessionID], nil
}

func (r *mockSessionRepository) SaveRefreshToken(ctx context.Context, tok, userID string, ttl time.Duration) error {
	r.refreshTokens[tok] = userID
	return nil
}

func (r *mockSessionRepository) GetRefreshUserID(ctx context.Context, tok string) (string, error) {
	return r.refreshTokens[tok], nil
}

func (r *mockSessionRepository) DeleteRefreshToken(ctx context.Context, tok string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.refreshTokens, tok)
	return nil
}

func (r *mockSessionRepository) DeleteUserRefreshTokens(ctx context.Context, userID string) error {
	for tok, uid := range r.refreshTokens {
		if uid == userID {
			delete(r.refreshTokens, tok)
		}
	}
	return nil
}

func newTestResolver() (*Resolver, *mockUserRepository, *mockSessionRepository) {
	users := newMockUserRepository()
	sessions := newMockSessionRepository()
	tokens := token.NewService("test-secret-key", "eduhub")
	resolver := NewResolver(tokens, sessions, users, Config{
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	})
	return resolver, users, sessions
}

func newTestContext(t *testing.T) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	return c
}

func TestResolver_Resolve_CookieSession(t *testing.T) {
	resolver, _, sessions := newTestResolver()
	sessions.cookieSessions["sid-1"] = &domain.Identity{
		ID:    "user-1",
		Email: "a@b.com",
		Role:  domain.RoleStudent,
	}

	c := newTestContext(t)
	c.Request.AddCookie(&http.Cookie{Name: SessionCookie, Value: "sid-1"})

	identity, source, err := resolver.Resolve(c)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if source != domain.SourceCookieSession {
		t.Errorf("source = %q, want cookie", source)
	}
	if identity.ID != "user-1" {
		t.Errorf("identity.ID = %q, want user-1", identity.ID)
	}
}

func TestResolver_Resolve_BearerToken(t *testing.T) {
	resolver, _, _ := newTestResolver()
	tokens := token.NewService("test-secret-key", "eduhub")

	accessToken, err := tokens.Issue(domain.Identity{ID: "user-2", Email: "b@c.com", Role: domain.RoleAdmin}, time.Minute)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	c := newTestContext(t)
	c.Request.Header.Set("Authorization", "Bearer "+accessToken)

	identity, source, err := resolver.Resolve(c)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if source != domain.SourceBearerToken {
		t.Errorf("source = %q, want bearer", source)
	}
	if identity.Role != domain.RoleAdmin {
		t.Errorf("identity.Role = %q, want admin", identity.Role)
	}
}

func TestResolver_Resolve_NoCredential(t *testing.T) {
	resolver, _, _ := newTestResolver()

	c := newTestContext(t)
	if _, _, err := resolver.Resolve(c); err != ErrAuthenticationRequired {
		t.Errorf("Resolve() error = %v, want %v", err, ErrAuthenticationRequired)
	}
}

func TestResolver_Resolve_InvalidBearer(t *testing.T) {
	resolver, _, _ := newTestResolver()

	c := newTestContext(t)
	c.Request.Header.Set("Authorization", "Bearer not-a-token")

	if _, _, err := resolver.Resolve(c); err != ErrAuthenticationRequired {
		t.Errorf("Resolve() error = %v, want %v", err, ErrAuthenticationRequired)
	}
}

func TestResolver_Refresh_CarriesCurrentRole(t *testing.T) {
	resolver, users, sessions := newTestResolver()
	users.users["user-1"] = &domain.User{
		ID:       "user-1",
		Email:    "a@b.com",
		Role:     domain.RoleStudent,
		IsActive: true,
	}
	sessions.refreshTokens["refresh-1"] = "user-1"

	// Role changed after the original token was issued.
	users.users["user-1"].Role = domain.RoleAdmin

	pair, user, err := resolver.Refresh(context.Background(), "refresh-1")
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Errorf("user.Role = %q, want admin", user.Role)
	}

	claims, err := token.NewService("test-secret-key", "eduhub").Verify(pair.AccessToken)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.Role != domain.RoleAdmin {
		t.Errorf("claims.Role = %q, want admin", claims.Role)
	}
}

func TestResolver_Refresh_RotatesToken(t *testing.T) {
	resolver, users, sessions := newTestResolver()
	users.users["user-1"] = &domain.User{ID: "user-1", Email: "a@b.com", Role: domain.RoleStudent, IsActive: true}
	sessions.refreshTokens["refresh-1"] = "user-1"

	pair, _, err := resolver.Refresh(context.Background(), "refresh-1")
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	if _, ok := sessions.refreshTokens["refresh-1"]; ok {
		t.Error("old refresh token was not invalidated")
	}
	if _, ok := sessions.refreshTokens[pair.RefreshToken]; !ok {
		t.Error("new refresh token was not stored")
	}

	// Replaying the old token must fail.
	if _, _, err := resolver.Refresh(context.Background(), "refresh-1"); err != ErrAuthenticationRequired {
		t.Errorf("Refresh(old) error = %v, want %v", err, ErrAuthenticationRequired)
	}
}

func TestResolver_Refresh_DeleteFailureStoresNothing(t *testing.T) {
	resolver, users, sessions := newTestResolver()
	users.users["user-1"] = &domain.User{ID: "user-1", Email: "a@b.com", Role: domain.RoleStudent, IsActive: true}
	sessions.refreshTokens["refresh-1"] = "user-1"
	sessions.deleteErr = errors.New("redis unavailable")

	if _, _, err := resolver.Refresh(context.Background(), "refresh-1"); err == nil {
		t.Fatal("Refresh() should fail when the old token cannot be retired")
	}

	// A failed rotation must not leave behind a token the caller never saw.
	if len(sessions.refreshTokens) != 1 {
		t.Errorf("stored tokens = %d, want only the original", len(sessions.refreshTokens))
	}
	if _, ok := sessions.refreshTokens["refresh-1"]; !ok {
		t.Error("original refresh token should remain untouched")
	}
}

func TestResolver_Refresh_UserGone(t *testing.T) {
	resolver, _, sessions := newTestResolver()
	sessions.refreshTokens["refresh-1"] = "deleted-user"

	if _, _, err := resolver.Refresh(context.Background(), "refresh-1"); err != ErrNotFound {
		t.Errorf("Refresh() error = %v, want %v", err, ErrNotFound)
	}
}
