package service

import (
	"context"
	"errors"
	"testing"

	"github.com/eduhub-platform/backend/internal/domain"
	"github.com/eduhub-platform/backend/internal/dto"
	"github.com/eduhub-platform/backend/internal/query"
)

func TestUserService_List(t *testing.T) {
	users := newMockUserRepository()
	users.add(&domain.User{ID: "u1", Email: "alice@example.com", Role: domain.RoleStudent, IsActive: true})
	users.add(&domain.User{ID: "u2", Email: "bob@example.com", Role: domain.RoleAdmin, IsActive: true})

	svc := NewUserService(users)

	out, total, err := svc.List(context.Background(), query.Descriptor{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
	if len(out) != 2 {
		t.Errorf("len(out) = %d, want 2", len(out))
	}
}

func TestUserService_UpdateRole(t *testing.T) {
	users := newMockUserRepository()
	users.add(&domain.User{ID: "u1", Email: "alice@example.com", Role: domain.RoleStudent, IsActive: true})

	svc := NewUserService(users)

	resp, err := svc.UpdateRole(context.Background(), "u1", &dto.UpdateRoleRequest{Role: "admin"})
	if err != nil {
		t.Fatalf("UpdateRole() error = %v", err)
	}
	if resp.Role != string(domain.RoleAdmin) {
		t.Errorf("role = %q, want admin", resp.Role)
	}

	stored, _ := users.GetByID(context.Background(), "u1")
	if stored.Role != domain.RoleAdmin {
		t.Errorf("persisted role = %q, want admin", stored.Role)
	}
}

func TestUserService_UpdateRole_UnknownUser(t *testing.T) {
	svc := NewUserService(newMockUserRepository())

	_, err := svc.UpdateRole(context.Background(), "missing", &dto.UpdateRoleRequest{Role: "admin"})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("UpdateRole(missing) error = %v, want ErrUserNotFound", err)
	}
}
