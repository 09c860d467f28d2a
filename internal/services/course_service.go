package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
)

type courseService struct {
	deps
}

func NewCourseService(d deps) CourseService {
	return &courseService{deps: d}
}

// ===== COURSES =====

func (s *courseService) Create(ctx context.Context, req *CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	course := &models.Course{
		Title:       strings.TrimSpace(req.Title),
		Description: *req.Description,
		SyllabusURL: req.SyllabusURL,
	}
	if err := s.repo.Course().Create(ctx, nil, course); err != nil {
		return nil, writeErr(err, "create course")
	}

	s.logger.Info("Course created", "course_id", course.ID, "title", course.Title)
	s.invalidateStats(ctx)
	return course, nil
}

func (s *courseService) GetByID(ctx context.Context, id uint) (*models.Course, error) {
	course, err := s.repo.Course().GetByID(ctx, nil, id)
	if err != nil {
		return nil, notFoundOr(err, ErrCourseNotFound, "get course")
	}
	return course, nil
}

func (s *courseService) List(ctx context.Context, page repositories.Page) ([]*models.Course, error) {
	courses, err := s.repo.Course().List(ctx, nil, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

func (s *courseService) Update(ctx context.Context, id uint, req *UpdateCourseRequest) (*models.Course, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.SyllabusURL != nil {
		updates["syllabus_url"] = *req.SyllabusURL
	}

	var course *models.Course
	err := s.withTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.Course().Update(ctx, tx, id, updates); err != nil {
			return notFoundOr(err, ErrCourseNotFound, "update course")
		}
		var err error
		course, err = s.repo.Course().GetByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Course updated", "course_id", id)
	return course, nil
}

// Delete removes the course with its modules, lessons, enrollments and assignments.
func (s *courseService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Course().Delete(ctx, nil, id); err != nil {
		return notFoundOr(err, ErrCourseNotFound, "delete course")
	}

	s.logger.Info("Course deleted", "course_id", id)
	s.invalidateStats(ctx)
	return nil
}

// ===== MODULES & LESSONS =====

func (s *courseService) CreateModule(ctx context.Context, req *CreateModuleRequest) (*models.Module, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	module := &models.Module{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		CourseID:    req.CourseID,
	}
	err := s.withTx(ctx, func(tx *gorm.DB) error {
		found, err := s.repo.Course().ExistsByID(ctx, tx, req.CourseID)
		if err := requireExists(found, err, ErrCourseNotFound, "course"); err != nil {
			return err
		}
		if err := s.repo.Course().CreateModule(ctx, tx, module); err != nil {
			return writeErr(err, "create module")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Module created", "module_id", module.ID, "course_id", module.CourseID)
	return module, nil
}

func (s *courseService) ListModules(ctx context.Context, courseID uint) ([]*models.Module, error) {
	found, err := s.repo.Course().ExistsByID(ctx, nil, courseID)
	if err := requireExists(found, err, ErrCourseNotFound, "course"); err != nil {
		return nil, err
	}

	modules, err := s.repo.Course().ListModules(ctx, nil, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}
	return modules, nil
}

func (s *courseService) CreateLesson(ctx context.Context, req *CreateLessonRequest) (*models.Lesson, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	lesson := &models.Lesson{
		Title:       strings.TrimSpace(req.Title),
		Content:     *req.Content,
		ContentType: req.ContentType,
		ModuleID:    req.ModuleID,
	}
	err := s.withTx(ctx, func(tx *gorm.DB) error {
		found, err := s.repo.Course().ModuleExists(ctx, tx, req.ModuleID)
		if err := requireExists(found, err, ErrModuleNotFound, "module"); err != nil {
			return err
		}
		if err := s.repo.Course().CreateLesson(ctx, tx, lesson); err != nil {
			return writeErr(err, "create lesson")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Lesson created", "lesson_id", lesson.ID, "module_id", lesson.ModuleID)
	return lesson, nil
}

func (s *courseService) GetLesson(ctx context.Context, id uint) (*models.Lesson, error) {
	lesson, err := s.repo.Course().GetLesson(ctx, nil, id)
	if err != nil {
		return nil, notFoundOr(err, ErrLessonNotFound, "get lesson")
	}
	return lesson, nil
}

func (s *courseService) ListLessons(ctx context.Context, moduleID uint) ([]*models.Lesson, error) {
	found, err := s.repo.Course().ModuleExists(ctx, nil, moduleID)
	if err := requireExists(found, err, ErrModuleNotFound, "module"); err != nil {
		return nil, err
	}

	lessons, err := s.repo.Course().ListLessons(ctx, nil, moduleID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}
	return lessons, nil
}

// ===== ENROLLMENT =====

func (s *courseService) Enroll(ctx context.Context, courseID, studentID uint) (*models.Enrollment, error) {
	var enrollment *models.Enrollment
	err := s.withTx(ctx, func(tx *gorm.DB) error {
		found, err := s.repo.Course().ExistsByID(ctx, tx, courseID)
		if err := requireExists(found, err, ErrCourseNotFound, "course"); err != nil {
			return err
		}

		existing, err := s.repo.Enrollment().GetByStudentAndCourse(ctx, tx, studentID, courseID)
		if err == nil {
			enrollment = existing
			return nil
		}
		if !repositories.IsNotFoundError(err) {
			return fmt.Errorf("failed to check enrollment: %w", err)
		}

		enrollment = &models.Enrollment{StudentID: studentID, CourseID: courseID}
		if err := s.repo.Enrollment().Create(ctx, tx, enrollment); err != nil {
			return writeErr(err, "enroll")
		}
		return nil
	})

	// a concurrent request won the unique index; return its row
	if errors.Is(err, ErrDuplicate) {
		existing, getErr := s.repo.Enrollment().GetByStudentAndCourse(ctx, nil, studentID, courseID)
		if getErr == nil {
			return existing, nil
		}
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("Student enrolled", "course_id", courseID, "student_id", studentID, "enrollment_id", enrollment.ID)
	return enrollment, nil
}
