package models

import "time"

type LessonProgress struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	UserID       uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_progress_user_lesson"`
	LessonID     uint      `json:"lesson_id" gorm:"not null;uniqueIndex:idx_progress_user_lesson;index"`
	Completed    bool      `json:"completed" gorm:"not null;default:false"`
	LastAccessed time.Time `json:"last_accessed"`
}

type Certificate struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_certificate_user_course"`
	CourseID       uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_certificate_user_course;index"`
	IssuedAt       time.Time `json:"issued_at" gorm:"autoCreateTime"`
	CertificateURL string    `json:"certificate_url" gorm:"not null;size:500"`
}

func (LessonProgress) TableName() string {
	return "lesson_progress"
}

func (Certificate) TableName() string {
	return "certificates"
}
