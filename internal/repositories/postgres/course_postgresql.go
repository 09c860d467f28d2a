package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
)

// CoursePostgreSQL stores courses together with their modules and lessons.
type CoursePostgreSQL struct {
	base
}

func NewCoursePostgreSQL(db *gorm.DB) repositories.CourseRepository {
	return &CoursePostgreSQL{base{db: db}}
}

// ===== COURSES =====

func (r *CoursePostgreSQL) Create(ctx context.Context, tx *gorm.DB, course *models.Course) error {
	if err := r.getDB(ctx, tx).Create(course).Error; err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

func (r *CoursePostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Course, error) {
	var course models.Course
	if err := r.getDB(ctx, tx).First(&course, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get course %d: %w", id, err)
	}
	return &course, nil
}

func (r *CoursePostgreSQL) List(ctx context.Context, tx *gorm.DB, page repositories.Page) ([]*models.Course, error) {
	var courses []*models.Course
	if err := paginate(r.getDB(ctx, tx), page).Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

func (r *CoursePostgreSQL) Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]any) error {
	if err := updateByID(r.getDB(ctx, tx), &models.Course{}, id, updates); err != nil {
		return fmt.Errorf("failed to update course %d: %w", id, err)
	}
	return nil
}

func (r *CoursePostgreSQL) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	if err := deleteByID(r.getDB(ctx, tx), &models.Course{}, id); err != nil {
		return fmt.Errorf("failed to delete course %d: %w", id, err)
	}
	return nil
}

func (r *CoursePostgreSQL) ExistsByID(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	found, err := exists(r.getDB(ctx, tx), &models.Course{}, id)
	if err != nil {
		return false, fmt.Errorf("failed to check course existence: %w", err)
	}
	return found, nil
}

// ===== MODULES =====

func (r *CoursePostgreSQL) CreateModule(ctx context.Context, tx *gorm.DB, module *models.Module) error {
	if err := r.getDB(ctx, tx).Create(module).Error; err != nil {
		return fmt.Errorf("failed to create module: %w", err)
	}
	return nil
}

func (r *CoursePostgreSQL) GetModule(ctx context.Context, tx *gorm.DB, id uint) (*models.Module, error) {
	var module models.Module
	if err := r.getDB(ctx, tx).First(&module, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get module %d: %w", id, err)
	}
	return &module, nil
}

func (r *CoursePostgreSQL) ListModules(ctx context.Context, tx *gorm.DB, courseID uint) ([]*models.Module, error) {
	var modules []*models.Module
	if err := r.getDB(ctx, tx).Where("course_id = ?", courseID).Order("id ASC").Find(&modules).Error; err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}
	return modules, nil
}

func (r *CoursePostgreSQL) ModuleExists(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	found, err := exists(r.getDB(ctx, tx), &models.Module{}, id)
	if err != nil {
		return false, fmt.Errorf("failed to check module existence: %w", err)
	}
	return found, nil
}

// ===== LESSONS =====

func (r *CoursePostgreSQL) CreateLesson(ctx context.Context, tx *gorm.DB, lesson *models.Lesson) error {
	if err := r.getDB(ctx, tx).Create(lesson).Error; err != nil {
		return fmt.Errorf("failed to create lesson: %w", err)
	}
	return nil
}

func (r *CoursePostgreSQL) GetLesson(ctx context.Context, tx *gorm.DB, id uint) (*models.Lesson, error) {
	var lesson models.Lesson
	if err := r.getDB(ctx, tx).First(&lesson, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get lesson %d: %w", id, err)
	}
	return &lesson, nil
}

func (r *CoursePostgreSQL) ListLessons(ctx context.Context, tx *gorm.DB, moduleID uint) ([]*models.Lesson, error) {
	var lessons []*models.Lesson
	if err := r.getDB(ctx, tx).Where("module_id = ?", moduleID).Order("id ASC").Find(&lessons).Error; err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}
	return lessons, nil
}

func (r *CoursePostgreSQL) LessonExists(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	found, err := exists(r.getDB(ctx, tx), &models.Lesson{}, id)
	if err != nil {
		return false, fmt.Errorf("failed to check lesson existence: %w", err)
	}
	return found, nil
}
