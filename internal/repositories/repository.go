package repositories

import "context"

// Repository groups every entity repository behind one handle.
type Repository interface {
	User() UserRepository
	Course() CourseRepository
	Enrollment() EnrollmentRepository

	Quiz() QuizRepository
	Assignment() AssignmentRepository
	Submission() SubmissionRepository

	Progress() ProgressRepository
	Certificate() CertificateRepository

	Notification() NotificationRepository
	Forum() ForumRepository
	Payment() PaymentRepository

	Report() ReportRepository

	// Health check
	Ping(ctx context.Context) error

	// Close connections
	Close() error
}
