package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/auth"
	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
)

type userService struct {
	deps
}

func NewUserService(d deps) UserService {
	return &userService{deps: d}
}

func (s *userService) List(ctx context.Context, page repositories.Page) ([]*models.User, error) {
	users, err := s.repo.User().List(ctx, nil, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetByID returns 404 for a missing user before checking ownership.
func (s *userService) GetByID(ctx context.Context, id uint, caller *models.User) (*models.User, error) {
	user, err := s.repo.User().GetByID(ctx, nil, id)
	if err != nil {
		return nil, notFoundOr(err, ErrUserNotFound, "get user")
	}

	if !canManageUser(caller, id) {
		return nil, NewPermissionError(caller.ID, id, "user", "read", "not self or admin")
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id uint, req *UpdateUserRequest, caller *models.User) (*models.User, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	var updated *models.User
	err := s.withTx(ctx, func(tx *gorm.DB) error {
		user, err := s.repo.User().GetByID(ctx, tx, id)
		if err != nil {
			return notFoundOr(err, ErrUserNotFound, "get user")
		}

		if !canManageUser(caller, id) {
			return NewPermissionError(caller.ID, id, "user", "update", "not self or admin")
		}
		if req.Role != nil && *req.Role != user.Role && !caller.Role.IsAdmin() {
			return NewPermissionError(caller.ID, id, "user", "change role", "only admins can change roles")
		}

		updates, err := s.buildUserUpdates(ctx, tx, user, req)
		if err != nil {
			return err
		}

		if err := s.repo.User().Update(ctx, tx, id, updates); err != nil {
			if repositories.IsDuplicateError(err) {
				return ErrEmailTaken
			}
			return notFoundOr(err, ErrUserNotFound, "update user")
		}

		updated, err = s.repo.User().GetByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("User updated", "user_id", id, "by", caller.ID)
	return updated, nil
}

// buildUserUpdates copies only the fields present. Passwords are re-hashed.
func (s *userService) buildUserUpdates(ctx context.Context, tx *gorm.DB, user *models.User, req *UpdateUserRequest) (map[string]any, error) {
	updates := map[string]any{}

	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if email != user.Email {
			taken, err := s.repo.User().ExistsByEmail(ctx, tx, email)
			if err != nil {
				return nil, fmt.Errorf("failed to check email: %w", err)
			}
			if taken {
				return nil, ErrEmailTaken
			}
		}
		updates["email"] = email
	}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.Batch != nil {
		updates["batch"] = *req.Batch
	}
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		updates["hashed_password"] = hashed
	}
	return updates, nil
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.User().Delete(ctx, nil, id); err != nil {
		return notFoundOr(err, ErrUserNotFound, "delete user")
	}

	s.logger.Info("User deleted", "user_id", id)
	s.invalidateStats(ctx)
	return nil
}

func canManageUser(caller *models.User, targetID uint) bool {
	return caller.Role.IsAdmin() || caller.ID == targetID
}
