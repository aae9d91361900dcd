package dto

import (
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// MinPasswordLength is the platform-wide minimum password length.
const MinPasswordLength = 6

// RegisterRequest represents the request to register a new account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

// ValidateEmail validates the email format
func (r *RegisterRequest) ValidateEmail() (bool, string) {
	email := strings.TrimSpace(strings.ToLower(r.Email))
	if !emailPattern.MatchString(email) {
		return false, "Invalid email format"
	}
	r.Email = email
	return true, ""
}

// ValidatePassword validates the password strength
func (r *RegisterRequest) ValidatePassword() (bool, string) {
	if len(r.Password) < MinPasswordLength {
		return false, "Password must be at least 6 characters"
	}
	return true, ""
}

// LoginRequest represents the request to authenticate
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest carries a refresh token for the refresh and logout flows
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateProfileRequest represents the request to update the caller's profile
type UpdateProfileRequest struct {
	Name string `json:"name"`
}

// Validate validates the UpdateProfileRequest
func (r *UpdateProfileRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.Name) == "" {
		return false, "Name is required"
	}
	if len(r.Name) > 255 {
		return false, "Name is too long"
	}
	return true, ""
}

// UserResponse is the public representation of an account
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// AuthResponse is returned by register, login and refresh
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in"`
	User         UserResponse `json:"user"`
}
