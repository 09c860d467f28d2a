package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
)

type reportRepository struct {
	base
}

func NewReportRepository(db *gorm.DB) repositories.ReportRepository {
	return &reportRepository{base{db: db}}
}

// ===== COUNTS =====

func (r *reportRepository) CountUsers(ctx context.Context, tx *gorm.DB) (int64, error) {
	var count int64
	if err := r.getDB(ctx, tx).Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to get total users: %w", err)
	}
	return count, nil
}

func (r *reportRepository) CountCourses(ctx context.Context, tx *gorm.DB) (int64, error) {
	var count int64
	if err := r.getDB(ctx, tx).Model(&models.Course{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to get total courses: %w", err)
	}
	return count, nil
}

// ===== EXPORT ROWS =====

func (r *reportRepository) UserRows(ctx context.Context, tx *gorm.DB) ([]repositories.UserReportRow, error) {
	var rows []repositories.UserReportRow
	err := r.getDB(ctx, tx).
		Model(&models.User{}).
		Select("id, name, email, role, batch, created_at").
		Order("id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get user report rows: %w", err)
	}
	return rows, nil
}

func (r *reportRepository) CourseRows(ctx context.Context, tx *gorm.DB) ([]repositories.CourseReportRow, error) {
	var rows []repositories.CourseReportRow
	err := r.getDB(ctx, tx).
		Table("courses").
		Select(`courses.id AS id, courses.title AS title,
			(SELECT COUNT(*) FROM modules WHERE modules.course_id = courses.id) AS modules,
			(SELECT COUNT(*) FROM enrollments WHERE enrollments.course_id = courses.id) AS enrollments`).
		Order("courses.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get course report rows: %w", err)
	}
	return rows, nil
}
