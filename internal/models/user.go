package models

import (
	"time"
)

type UserRole string
type Role = UserRole

const (
	RoleAdmin   UserRole = "admin"
	RoleTeacher UserRole = "teacher"
	RoleStudent UserRole = "student"
	RoleGuest   UserRole = "guest"
)

var AllRoles = []UserRole{RoleAdmin, RoleTeacher, RoleStudent, RoleGuest}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent, RoleGuest:
		return true
	}
	return false
}

// Satisfies reports whether a caller holding r passes a check for required.
// Admin passes every single-role check.
func (r UserRole) Satisfies(required UserRole) bool {
	return r == required || r == RoleAdmin
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"not null;size:100"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	HashedPassword string    `json:"-" gorm:"not null;size:255"`
	Role           UserRole  `json:"role" gorm:"not null;size:20;default:student;index"`
	Batch          *string   `json:"batch" gorm:"size:100"`
	CreatedAt      time.Time `json:"created_at"`

	// Owned rows, removed with the user
	Enrollments    []Enrollment     `json:"-" gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE"`
	Notifications  []Notification   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ForumMessages  []Forum          `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Submissions    []Submission     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	LessonProgress []LessonProgress `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Certificates   []Certificate    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Payments       []Payment        `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (User) TableName() string {
	return "users"
}
