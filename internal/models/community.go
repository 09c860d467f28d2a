package models

import "time"

// Enrollment pairs one student with one course; the pair is unique.
type Enrollment struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	StudentID uint `json:"user_id" gorm:"not null;uniqueIndex:idx_enrollment_student_course"`
	CourseID  uint `json:"course_id" gorm:"not null;uniqueIndex:idx_enrollment_student_course;index"`
}

type Notification struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Title     string    `json:"title" gorm:"not null;size:200"`
	Message   string    `json:"message" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

// Forum is a single message on a course's flat message board.
type Forum struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CourseID  uint      `json:"course_id" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
}

func (Enrollment) TableName() string {
	return "enrollments"
}

func (Notification) TableName() string {
	return "notifications"
}

func (Forum) TableName() string {
	return "forums"
}
