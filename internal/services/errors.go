package services

import (
	"errors"
	"fmt"

	"github.com/SAP-F-2025/course-service/internal/validator"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrCourseNotFound     = fmt.Errorf("course %w", ErrNotFound)
	ErrModuleNotFound     = fmt.Errorf("module %w", ErrNotFound)
	ErrLessonNotFound     = fmt.Errorf("lesson %w", ErrNotFound)
	ErrQuizNotFound       = fmt.Errorf("quiz %w", ErrNotFound)
	ErrAssignmentNotFound = fmt.Errorf("assignment %w", ErrNotFound)
	ErrSubmissionNotFound = fmt.Errorf("submission %w", ErrNotFound)

	ErrValidationFailed = validator.ErrValidationFailed

	ErrDuplicate  = errors.New("already exists")
	ErrEmailTaken = fmt.Errorf("email already registered: %w", ErrDuplicate)

	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = fmt.Errorf("incorrect username or password: %w", ErrUnauthorized)
	ErrInvalidToken       = fmt.Errorf("could not validate credentials: %w", ErrUnauthorized)

	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("conflict")
)

// PermissionError describes a refused action. It matches ErrForbidden.
type PermissionError struct {
	UserID   uint
	Resource string
	ID       uint
	Action   string
	Reason   string
}

func NewPermissionError(userID uint, id uint, resource, action, reason string) *PermissionError {
	return &PermissionError{
		UserID:   userID,
		Resource: resource,
		ID:       id,
		Action:   action,
		Reason:   reason,
	}
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("user %d cannot %s %s %d: %s", e.UserID, e.Action, e.Resource, e.ID, e.Reason)
}

func (e *PermissionError) Is(target error) bool {
	return target == ErrForbidden
}
