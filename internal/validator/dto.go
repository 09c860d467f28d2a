package validator

import (
	"time"

	"github.com/SAP-F-2025/course-service/internal/models"
)

// ===== AUTH & USERS =====

type SignupRequest struct {
	Name     string           `json:"name" validate:"required,not_blank,max=100"`
	Email    string           `json:"email" validate:"required,email,max=255"`
	Password string           `json:"password" validate:"required,max_bytes=72"`
	Role     *models.UserRole `json:"role" validate:"omitempty,user_role"`
	Batch    *string          `json:"batch" validate:"omitempty,max=100"`
}

// LoginRequest is bound from the form-encoded token endpoint.
type LoginRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// UserUpdateRequest applies only the fields present.
type UserUpdateRequest struct {
	Name     *string          `json:"name" validate:"omitempty,not_blank,max=100"`
	Email    *string          `json:"email" validate:"omitempty,email,max=255"`
	Password *string          `json:"password" validate:"omitempty,min=1,max_bytes=72"`
	Role     *models.UserRole `json:"role" validate:"omitempty,user_role"`
	Batch    *string          `json:"batch" validate:"omitempty,max=100"`
}

// ===== COURSES =====

type CourseCreateRequest struct {
	Title       string  `json:"title" validate:"required,not_blank,max=200"`
	Description *string `json:"description" validate:"required"`
	SyllabusURL *string `json:"syllabus_url" validate:"omitempty,max=500"`
}

type CourseUpdateRequest struct {
	Title       *string `json:"title" validate:"omitempty,not_blank,max=200"`
	Description *string `json:"description"`
	SyllabusURL *string `json:"syllabus_url" validate:"omitempty,max=500"`
}

type ModuleCreateRequest struct {
	Title       string  `json:"title" validate:"required,not_blank,max=200"`
	Description *string `json:"description"`
	CourseID    uint    `json:"course_id" validate:"required"`
}

type LessonCreateRequest struct {
	Title       string  `json:"title" validate:"required,not_blank,max=200"`
	Content     *string `json:"content" validate:"required"`
	ContentType *string `json:"content_type" validate:"omitempty,max=50"`
	ModuleID    uint    `json:"module_id" validate:"required"`
}

// ===== ASSESSMENTS =====

type QuizOptionRequest struct {
	Text      string `json:"text" validate:"required,max=500"`
	IsCorrect *bool  `json:"is_correct" validate:"required"`
}

type QuestionRequest struct {
	Text         string              `json:"text" validate:"required,not_blank"`
	QuestionType models.QuestionType `json:"question_type" validate:"required,question_type"`
	Points       *int                `json:"points" validate:"omitempty,gte=0"`
	Options      []QuizOptionRequest `json:"options" validate:"omitempty,dive"`
}

// QuizCreateRequest carries the whole quiz tree. ModuleID comes from the path
// and overrides any body value.
type QuizCreateRequest struct {
	Title       string            `json:"title" validate:"required,not_blank,max=200"`
	Description *string           `json:"description"`
	ModuleID    uint              `json:"module_id"`
	Questions   []QuestionRequest `json:"questions" validate:"omitempty,dive"`
}

type AssignmentCreateRequest struct {
	Title       string     `json:"title" validate:"required,not_blank,max=200"`
	Description *string    `json:"description" validate:"required"`
	DueDate     *time.Time `json:"due_date"`
	CourseID    uint       `json:"course_id"`
}

type SubmissionCreateRequest struct {
	Content      *string `json:"content"`
	AssignmentID *uint   `json:"assignment_id"`
	QuizID       *uint   `json:"quiz_id"`
}

type GradeRequest struct {
	Score    *float64 `json:"score" validate:"required,gte=0"`
	Feedback *string  `json:"feedback"`
}

// ===== TRACKING =====

type ProgressUpdateRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

// ===== COMMUNITY =====

type NotificationCreateRequest struct {
	UserID  uint    `json:"user_id" validate:"required"`
	Title   string  `json:"title" validate:"required,not_blank,max=200"`
	Message *string `json:"message" validate:"required"`
}

type ForumCreateRequest struct {
	CourseID uint   `json:"course_id" validate:"required"`
	Message  string `json:"message" validate:"required,not_blank"`
}

// ===== PAYMENTS & REPORTS =====

// PaymentRequest ignores any client supplied transaction id; the server assigns one.
type PaymentRequest struct {
	Amount   *float64 `json:"amount" validate:"required,gt=0"`
	Currency string   `json:"currency" validate:"omitempty,len=3,alpha"`
}

type UserCountResponse struct {
	TotalUsers int64 `json:"total_users"`
}

type CourseCountResponse struct {
	TotalCourses int64 `json:"total_courses"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
