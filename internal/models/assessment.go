package models

import "time"

type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionText           QuestionType = "text"
)

const DefaultQuestionPoints = 1

type Quiz struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Title       string  `json:"title" gorm:"not null;size:200"`
	Description *string `json:"description" gorm:"type:text"`
	ModuleID    uint    `json:"module_id" gorm:"not null;index"`

	Questions   []Question   `json:"questions" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
	Submissions []Submission `json:"-" gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE"`
}

type Question struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	QuizID       uint         `json:"quiz_id" gorm:"not null;index"`
	Text         string       `json:"text" gorm:"type:text;not null"`
	QuestionType QuestionType `json:"question_type" gorm:"not null;size:30"`
	Points       int          `json:"points" gorm:"not null"`

	Options []QuizOption `json:"options" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

type QuizOption struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	QuestionID uint   `json:"question_id" gorm:"not null;index"`
	Text       string `json:"text" gorm:"not null;size:500"`
	IsCorrect  bool   `json:"is_correct" gorm:"not null;default:false"`
}

type Assignment struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	CourseID    uint       `json:"course_id" gorm:"not null;index"`
	Title       string     `json:"title" gorm:"not null;size:200"`
	Description string     `json:"description" gorm:"type:text"`
	DueDate     *time.Time `json:"due_date"`

	Submissions []Submission `json:"-" gorm:"foreignKey:AssignmentID;constraint:OnDelete:CASCADE"`
}

// Submission answers exactly one assignment or one quiz.
type Submission struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;index"`
	AssignmentID *uint     `json:"assignment_id" gorm:"index"`
	QuizID       *uint     `json:"quiz_id" gorm:"index"`
	Content      *string   `json:"content" gorm:"type:text"`
	Score        *float64  `json:"score"`
	Feedback     *string   `json:"feedback" gorm:"type:text"`
	SubmittedAt  time.Time `json:"submitted_at" gorm:"autoCreateTime"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

func (Question) TableName() string {
	return "questions"
}

func (QuizOption) TableName() string {
	return "quiz_options"
}

func (Assignment) TableName() string {
	return "assignments"
}

func (Submission) TableName() string {
	return "submissions"
}
