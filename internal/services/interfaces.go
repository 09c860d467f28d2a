package services

import (
	"context"
	"io"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
	"github.com/SAP-F-2025/course-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

type SignupRequest = validator.SignupRequest
type LoginRequest = validator.LoginRequest
type TokenResponse = validator.TokenResponse
type UpdateUserRequest = validator.UserUpdateRequest

type CreateCourseRequest = validator.CourseCreateRequest
type UpdateCourseRequest = validator.CourseUpdateRequest
type CreateModuleRequest = validator.ModuleCreateRequest
type CreateLessonRequest = validator.LessonCreateRequest

type CreateQuizRequest = validator.QuizCreateRequest
type QuestionRequestItem = validator.QuestionRequest
type CreateAssignmentRequest = validator.AssignmentCreateRequest
type CreateSubmissionRequest = validator.SubmissionCreateRequest
type GradeRequest = validator.GradeRequest

type ProgressRequest = validator.ProgressUpdateRequest

type CreateNotificationRequest = validator.NotificationCreateRequest
type CreateForumRequest = validator.ForumCreateRequest

type PaymentRequest = validator.PaymentRequest

// ===== SERVICE INTERFACES =====

type AuthService interface {
	Signup(ctx context.Context, req *SignupRequest) (*models.User, error)
	Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error)
	// Authenticate resolves a bearer token to a live user.
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

type UserService interface {
	List(ctx context.Context, page repositories.Page) ([]*models.User, error)
	GetByID(ctx context.Context, id uint, caller *models.User) (*models.User, error)
	Update(ctx context.Context, id uint, req *UpdateUserRequest, caller *models.User) (*models.User, error)
	Delete(ctx context.Context, id uint) error
}

type CourseService interface {
	Create(ctx context.Context, req *CreateCourseRequest) (*models.Course, error)
	GetByID(ctx context.Context, id uint) (*models.Course, error)
	List(ctx context.Context, page repositories.Page) ([]*models.Course, error)
	Update(ctx context.Context, id uint, req *UpdateCourseRequest) (*models.Course, error)
	Delete(ctx context.Context, id uint) error

	CreateModule(ctx context.Context, req *CreateModuleRequest) (*models.Module, error)
	ListModules(ctx context.Context, courseID uint) ([]*models.Module, error)

	CreateLesson(ctx context.Context, req *CreateLessonRequest) (*models.Lesson, error)
	GetLesson(ctx context.Context, id uint) (*models.Lesson, error)
	ListLessons(ctx context.Context, moduleID uint) ([]*models.Lesson, error)

	// Enroll is idempotent per (student, course).
	Enroll(ctx context.Context, courseID, studentID uint) (*models.Enrollment, error)
}

type AssessmentService interface {
	// CreateQuiz inserts the quiz, its questions and their options atomically.
	CreateQuiz(ctx context.Context, moduleID uint, req *CreateQuizRequest) (*models.Quiz, error)
	GetQuiz(ctx context.Context, id uint) (*models.Quiz, error)

	CreateAssignment(ctx context.Context, courseID uint, req *CreateAssignmentRequest) (*models.Assignment, error)
	GetAssignment(ctx context.Context, id uint) (*models.Assignment, error)

	Submit(ctx context.Context, req *CreateSubmissionRequest, userID uint) (*models.Submission, error)
	GetSubmission(ctx context.Context, id uint, caller *models.User) (*models.Submission, error)
	Grade(ctx context.Context, id uint, req *GradeRequest, graderID uint) (*models.Submission, error)
}

type TrackingService interface {
	// UpdateProgress upserts the (user, lesson) row.
	UpdateProgress(ctx context.Context, userID, lessonID uint, req *ProgressRequest) (*models.LessonProgress, error)
	ListProgress(ctx context.Context, userID uint) ([]*models.LessonProgress, error)
	// IssueCertificate returns the existing certificate when one was already issued.
	IssueCertificate(ctx context.Context, userID, courseID uint) (*models.Certificate, error)
	ListCertificates(ctx context.Context, userID uint) ([]*models.Certificate, error)
}

type CommunityService interface {
	CreateNotification(ctx context.Context, req *CreateNotificationRequest) (*models.Notification, error)
	ListNotifications(ctx context.Context, userID uint) ([]*models.Notification, error)
	PostMessage(ctx context.Context, req *CreateForumRequest, userID uint) (*models.Forum, error)
	ListMessages(ctx context.Context, courseID uint) ([]*models.Forum, error)
}

type AdminService interface {
	RecordPayment(ctx context.Context, req *PaymentRequest, userID uint) (*models.Payment, error)
	ListPayments(ctx context.Context, userID uint) ([]*models.Payment, error)
	CountUsers(ctx context.Context) (int64, error)
	CountCourses(ctx context.Context) (int64, error)
	// ExportReport writes an XLSX workbook with Users and Courses sheets.
	ExportReport(ctx context.Context, w io.Writer) error
}

type ServiceManager interface {
	Auth() AuthService
	User() UserService
	Course() CourseService
	Assessment() AssessmentService
	Tracking() TrackingService
	Community() CommunityService
	Admin() AdminService

	Initialize(ctx context.Context) error
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
