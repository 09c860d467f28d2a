package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/models"
)

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 1000
)

// Page is an offset window over rows ordered by id.
type Page struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// Normalize clamps the window to sane bounds.
func (p Page) Normalize() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

// Every method takes an optional tx; nil means the repository's own connection.

type UserRepository interface {
	Create(ctx context.Context, tx *gorm.DB, user *models.User) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*models.User, error)
	List(ctx context.Context, tx *gorm.DB, page Page) ([]*models.User, error)
	Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]any) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	ExistsByID(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
	ExistsByEmail(ctx context.Context, tx *gorm.DB, email string) (bool, error)
}

type CourseRepository interface {
	Create(ctx context.Context, tx *gorm.DB, course *models.Course) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Course, error)
	List(ctx context.Context, tx *gorm.DB, page Page) ([]*models.Course, error)
	Update(ctx context.Context, tx *gorm.DB, id uint, updates map[string]any) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	ExistsByID(ctx context.Context, tx *gorm.DB, id uint) (bool, error)

	CreateModule(ctx context.Context, tx *gorm.DB, module *models.Module) error
	GetModule(ctx context.Context, tx *gorm.DB, id uint) (*models.Module, error)
	ListModules(ctx context.Context, tx *gorm.DB, courseID uint) ([]*models.Module, error)
	ModuleExists(ctx context.Context, tx *gorm.DB, id uint) (bool, error)

	CreateLesson(ctx context.Context, tx *gorm.DB, lesson *models.Lesson) error
	GetLesson(ctx context.Context, tx *gorm.DB, id uint) (*models.Lesson, error)
	ListLessons(ctx context.Context, tx *gorm.DB, moduleID uint) ([]*models.Lesson, error)
	LessonExists(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
}

type EnrollmentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, enrollment *models.Enrollment) error
	GetByStudentAndCourse(ctx context.Context, tx *gorm.DB, studentID, courseID uint) (*models.Enrollment, error)
	ListByStudent(ctx context.Context, tx *gorm.DB, studentID uint) ([]*models.Enrollment, error)
}

type QuizRepository interface {
	Create(ctx context.Context, tx *gorm.DB, quiz *models.Quiz) error
	CreateQuestion(ctx context.Context, tx *gorm.DB, question *models.Question) error
	CreateOption(ctx context.Context, tx *gorm.DB, option *models.QuizOption) error
	// GetByID loads the quiz with its questions and their options.
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Quiz, error)
	ExistsByID(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
}

type AssignmentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, assignment *models.Assignment) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Assignment, error)
	ExistsByID(ctx context.Context, tx *gorm.DB, id uint) (bool, error)
}

type SubmissionRepository interface {
	Create(ctx context.Context, tx *gorm.DB, submission *models.Submission) error
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Submission, error)
	UpdateGrade(ctx context.Context, tx *gorm.DB, id uint, score float64, feedback *string) error
}

type ProgressRepository interface {
	GetByUserAndLesson(ctx context.Context, tx *gorm.DB, userID, lessonID uint) (*models.LessonProgress, error)
	Create(ctx context.Context, tx *gorm.DB, progress *models.LessonProgress) error
	Update(ctx context.Context, tx *gorm.DB, progress *models.LessonProgress) error
	ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]*models.LessonProgress, error)
}

type CertificateRepository interface {
	GetByUserAndCourse(ctx context.Context, tx *gorm.DB, userID, courseID uint) (*models.Certificate, error)
	Create(ctx context.Context, tx *gorm.DB, certificate *models.Certificate) error
	ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]*models.Certificate, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, notification *models.Notification) error
	ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]*models.Notification, error)
}

type ForumRepository interface {
	Create(ctx context.Context, tx *gorm.DB, message *models.Forum) error
	ListByCourse(ctx context.Context, tx *gorm.DB, courseID uint) ([]*models.Forum, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, tx *gorm.DB, payment *models.Payment) error
	ListByUser(ctx context.Context, tx *gorm.DB, userID uint) ([]*models.Payment, error)
}

// ReportRepository backs the admin reports.
type ReportRepository interface {
	CountUsers(ctx context.Context, tx *gorm.DB) (int64, error)
	CountCourses(ctx context.Context, tx *gorm.DB) (int64, error)
	UserRows(ctx context.Context, tx *gorm.DB) ([]UserReportRow, error)
	CourseRows(ctx context.Context, tx *gorm.DB) ([]CourseReportRow, error)
}

type UserReportRow struct {
	ID        uint
	Name      string
	Email     string
	Role      string
	Batch     *string
	CreatedAt time.Time
}

type CourseReportRow struct {
	ID          uint
	Title       string
	Modules     int64
	Enrollments int64
}
