package dto

import "github.com/eduhub-platform/backend/internal/domain"

// UpdateRoleRequest represents the request to change an account's role
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// Validate validates the UpdateRoleRequest
func (r *UpdateRoleRequest) Validate() (bool, string) {
	if !domain.Role(r.Role).Valid() {
		return false, "Role must be student or admin"
	}
	return true, ""
}
