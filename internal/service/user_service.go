package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/eduhub-platform/backend/internal/domain"
	"github.com/eduhub-platform/backend/internal/dto"
	"github.com/eduhub-platform/backend/internal/query"
	"github.com/eduhub-platform/backend/internal/repository"
	"github.com/eduhub-platform/backend/pkg/telemetry"
)

// UserService defines the administrative interface over user accounts
type UserService interface {
	// List returns a page of accounts with the matching total
	List(ctx context.Context, q query.Descriptor) ([]dto.UserResponse, int64, error)
	// UpdateRole changes one account's role. Sessions issued before the
	// change keep working; the new role takes effect on the next refresh.
	UpdateRole(ctx context.Context, id string, req *dto.UpdateRoleRequest) (*dto.UserResponse, error)
}

// userService implements UserService
type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// List returns a page of accounts
func (s *userService) List(ctx context.Context, q query.Descriptor) ([]dto.UserResponse, int64, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.user.list")
	defer span.End()

	span.SetAttributes(
		attribute.Int("page", q.Page),
		attribute.Int("limit", q.Limit),
	)

	users, total, err := s.userRepo.List(ctx, q.Limit, q.Skip)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}

	span.SetStatus(codes.Ok, "")
	return out, total, nil
}

// UpdateRole changes one account's role
func (s *userService) UpdateRole(ctx context.Context, id string, req *dto.UpdateRoleRequest) (*dto.UserResponse, error) {
	ctx, span := telemetry.StartSpan(ctx, "service.user.update_role")
	defer span.End()

	role := domain.Role(req.Role)
	span.SetAttributes(
		attribute.String("user_id", id),
		attribute.String("role", req.Role),
	)

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := s.userRepo.UpdateRole(ctx, id, role); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	user.Role = role

	span.SetStatus(codes.Ok, "")
	resp := toUserResponse(user)
	return &resp, nil
}
