package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/events"
	"github.com/SAP-F-2025/course-service/internal/models"
)

type communityService struct {
	deps
}

func NewCommunityService(d deps) CommunityService {
	return &communityService{deps: d}
}

// ===== NOTIFICATIONS =====

func (s *communityService) CreateNotification(ctx context.Context, req *CreateNotificationRequest) (*models.Notification, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	notification := &models.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: *req.Message,
	}
	err := s.withTx(ctx, func(tx *gorm.DB) error {
		found, err := s.repo.User().ExistsByID(ctx, tx, req.UserID)
		if err := requireExists(found, err, ErrUserNotFound, "user"); err != nil {
			return err
		}
		if err := s.repo.Notification().Create(ctx, tx, notification); err != nil {
			return writeErr(err, "create notification")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Notification created", "notification_id", notification.ID, "user_id", notification.UserID)
	s.publish(ctx, events.NotificationCreated, events.NotificationCreatedData{
		NotificationID: notification.ID,
		UserID:         notification.UserID,
		Title:          notification.Title,
	})
	return notification, nil
}

func (s *communityService) ListNotifications(ctx context.Context, userID uint) ([]*models.Notification, error) {
	rows, err := s.repo.Notification().ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return rows, nil
}

// ===== FORUM =====

func (s *communityService) PostMessage(ctx context.Context, req *CreateForumRequest, userID uint) (*models.Forum, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	message := &models.Forum{
		CourseID: req.CourseID,
		UserID:   userID,
		Message:  req.Message,
	}
	err := s.withTx(ctx, func(tx *gorm.DB) error {
		found, err := s.repo.Course().ExistsByID(ctx, tx, req.CourseID)
		if err := requireExists(found, err, ErrCourseNotFound, "course"); err != nil {
			return err
		}
		if err := s.repo.Forum().Create(ctx, tx, message); err != nil {
			return writeErr(err, "post forum message")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Forum message posted", "message_id", message.ID, "course_id", message.CourseID, "user_id", userID)
	return message, nil
}

// ListMessages returns a course's messages oldest first.
func (s *communityService) ListMessages(ctx context.Context, courseID uint) ([]*models.Forum, error) {
	found, err := s.repo.Course().ExistsByID(ctx, nil, courseID)
	if err := requireExists(found, err, ErrCourseNotFound, "course"); err != nil {
		return nil, err
	}

	rows, err := s.repo.Forum().ListByCourse(ctx, nil, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list forum messages: %w", err)
	}
	return rows, nil
}
