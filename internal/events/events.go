package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EventSource  = "course-service"
	EventVersion = "1.0"
)

type EventType string

const (
	UserRegistered      EventType = "user.registered"
	NotificationCreated EventType = "notification.created"
	SubmissionGraded    EventType = "submission.graded"
	CertificateIssued   EventType = "certificate.issued"
	PaymentCompleted    EventType = "payment.completed"
)

var AllEventTypes = []EventType{
	UserRegistered,
	NotificationCreated,
	SubmissionGraded,
	CertificateIssued,
	PaymentCompleted,
}

type Event struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// NewEvent stamps a fresh id, source and timestamp on data.
func NewEvent(eventType EventType, data any) *Event {
	return &Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Source:    EventSource,
		Version:   EventVersion,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

// EventPublisher delivers domain events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event *Event) error
	Close() error
}

// Payloads

type UserRegisteredData struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type NotificationCreatedData struct {
	NotificationID uint   `json:"notification_id"`
	UserID         uint   `json:"user_id"`
	Title          string `json:"title"`
}

type SubmissionGradedData struct {
	SubmissionID uint    `json:"submission_id"`
	UserID       uint    `json:"user_id"`
	Score        float64 `json:"score"`
	GradedBy     uint    `json:"graded_by"`
}

type CertificateIssuedData struct {
	CertificateID  uint   `json:"certificate_id"`
	UserID         uint   `json:"user_id"`
	CourseID       uint   `json:"course_id"`
	CertificateURL string `json:"certificate_url"`
}

type PaymentCompletedData struct {
	PaymentID     uint    `json:"payment_id"`
	UserID        uint    `json:"user_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	TransactionID string  `json:"transaction_id"`
}
