package domain

import "time"

// Role classifies an identity for access control.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Valid reports whether the role is a known value.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleAdmin
}

// User is the persisted account record backing an identity.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the authenticated caller for the duration of one request.
// It is read once from a credential or the store and never mutated afterwards.
type Identity struct {
	ID    string
	Email string
	Role  Role
}

// Identity projects the access-control view of a user.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Email: u.Email, Role: u.Role}
}

// CredentialSource records which credential resolved an identity.
type CredentialSource string

const (
	SourceCookieSession CredentialSource = "cookie"
	SourceBearerToken   CredentialSource = "bearer"
)

// TokenPair holds an issued access token and its rotating refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}
