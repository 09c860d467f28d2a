package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
)

// ===== ENROLLMENTS =====

type EnrollmentPostgreSQL struct {
	base
}

func NewEnrollmentPostgreSQL(db *gorm.DB) repositories.EnrollmentRepository {
	return &EnrollmentPostgreSQL{base{db: db}}
}

func (r *EnrollmentPostgreSQL) Create(ctx context.Context, tx *gorm.DB, enrollment *models.Enrollment) error {
	if err := r.getDB(ctx, tx).Create(enrollment).Error; err != nil {
		return fmt.Errorf("failed to create enrollment: %w", err)
	}
	return nil
}

func (r *EnrollmentPostgreSQL) GetByStudentAndCourse(ctx context.Context, tx *gorm.DB, studentID, courseID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.getDB(ctx, tx).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		First(&enrollment).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get enrollment: %w", err)
	}
	return &enrollment, nil
}

func (r *EnrollmentPostgreSQL) ListByStudent(ctx context.Context, tx *gorm.DB, studentID uint) ([]*models.Enrollment, error) {
	var rows []*models.Enrollment
	if err := r.getDB(ctx, tx).Where("student_id = ?", studentID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	return rows, nil
}

// ===== NOTIFICATIONS =====

type NotificationPostgreSQL struct {
	base
}

func NewNotificationPostgreSQL(db *gorm.DB) repositories.NotificationRepository {
	return &NotificationPostgreSQL{base{db: db}}
}

func (r *NotificationPostgreSQL) Create(ctx context.Context, tx *gorm.DB, notification *models.Notification) error {
	if err := r.getDB(ctx, tx).Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

func (r *NotificationPostgreSQL) ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]*models.Notification, error) {
	var rows []*models.Notification
	if err := r.getDB(ctx, tx).Where("user_id = ?", userID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return rows, nil
}

// ===== FORUM =====

type ForumPostgreSQL struct {
	base
}

func NewForumPostgreSQL(db *gorm.DB) repositories.ForumRepository {
	return &ForumPostgreSQL{base{db: db}}
}

func (r *ForumPostgreSQL) Create(ctx context.Context, tx *gorm.DB, message *models.Forum) error {
	if err := r.getDB(ctx, tx).Create(message).Error; err != nil {
		return fmt.Errorf("failed to create forum message: %w", err)
	}
	return nil
}

func (r *ForumPostgreSQL) ListByCourse(ctx context.Context, tx *gorm.DB, courseID uint) ([]*models.Forum, error) {
	var rows []*models.Forum
	if err := r.getDB(ctx, tx).Where("course_id = ?", courseID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list forum messages: %w", err)
	}
	return rows, nil
}

// ===== PAYMENTS =====

type PaymentPostgreSQL struct {
	base
}

func NewPaymentPostgreSQL(db *gorm.DB) repositories.PaymentRepository {
	return &PaymentPostgreSQL{base{db: db}}
}

func (r *PaymentPostgreSQL) Create(ctx context.Context, tx *gorm.DB, payment *models.Payment) error {
	if err := r.getDB(ctx, tx).Create(payment).Error; err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

func (r *PaymentPostgreSQL) ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]*models.Payment, error) {
	var rows []*models.Payment
	if err := r.getDB(ctx, tx).Where("user_id = ?", userID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return rows, nil
}
