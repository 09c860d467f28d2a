package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
)

type ProgressPostgreSQL struct {
	base
}

func NewProgressPostgreSQL(db *gorm.DB) repositories.ProgressRepository {
	return &ProgressPostgreSQL{base{db: db}}
}

func (r *ProgressPostgreSQL) GetByUserAndLesson(ctx context.Context, tx *gorm.DB, userID, lessonID uint) (*models.LessonProgress, error) {
	var progress models.LessonProgress
	err := r.getDB(ctx, tx).
		Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		First(&progress).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson progress: %w", err)
	}
	return &progress, nil
}

func (r *ProgressPostgreSQL) Create(ctx context.Context, tx *gorm.DB, progress *models.LessonProgress) error {
	if err := r.getDB(ctx, tx).Create(progress).Error; err != nil {
		return fmt.Errorf("failed to create lesson progress: %w", err)
	}
	return nil
}

func (r *ProgressPostgreSQL) Update(ctx context.Context, tx *gorm.DB, progress *models.LessonProgress) error {
	err := r.getDB(ctx, tx).
		Model(progress).
		Select("completed", "last_accessed").
		Updates(progress).Error
	if err != nil {
		return fmt.Errorf("failed to update lesson progress: %w", err)
	}
	return nil
}

func (r *ProgressPostgreSQL) ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]*models.LessonProgress, error) {
	var rows []*models.LessonProgress
	if err := r.getDB(ctx, tx).Where("user_id = ?", userID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list lesson progress: %w", err)
	}
	return rows, nil
}

type CertificatePostgreSQL struct {
	base
}

func NewCertificatePostgreSQL(db *gorm.DB) repositories.CertificateRepository {
	return &CertificatePostgreSQL{base{db: db}}
}

func (r *CertificatePostgreSQL) GetByUserAndCourse(ctx context.Context, tx *gorm.DB, userID, courseID uint) (*models.Certificate, error) {
	var certificate models.Certificate
	err := r.getDB(ctx, tx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&certificate).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get certificate: %w", err)
	}
	return &certificate, nil
}

func (r *CertificatePostgreSQL) Create(ctx context.Context, tx *gorm.DB, certificate *models.Certificate) error {
	if err := r.getDB(ctx, tx).Create(certificate).Error; err != nil {
		return fmt.Errorf("failed to create certificate: %w", err)
	}
	return nil
}

func (r *CertificatePostgreSQL) ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]*models.Certificate, error) {
	var rows []*models.Certificate
	if err := r.getDB(ctx, tx).Where("user_id = ?", userID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}
	return rows, nil
}
