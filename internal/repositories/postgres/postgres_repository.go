package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/repositories"
)

// GormRepository implements repositories.Repository on any gorm dialect.
type GormRepository struct {
	db *gorm.DB

	user         repositories.UserRepository
	course       repositories.CourseRepository
	enrollment   repositories.EnrollmentRepository
	quiz         repositories.QuizRepository
	assignment   repositories.AssignmentRepository
	submission   repositories.SubmissionRepository
	progress     repositories.ProgressRepository
	certificate  repositories.CertificateRepository
	notification repositories.NotificationRepository
	forum        repositories.ForumRepository
	payment      repositories.PaymentRepository
	report       repositories.ReportRepository
}

func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{
		db:           db,
		user:         NewUserPostgreSQL(db),
		course:       NewCoursePostgreSQL(db),
		enrollment:   NewEnrollmentPostgreSQL(db),
		quiz:         NewQuizPostgreSQL(db),
		assignment:   NewAssignmentPostgreSQL(db),
		submission:   NewSubmissionPostgreSQL(db),
		progress:     NewProgressPostgreSQL(db),
		certificate:  NewCertificatePostgreSQL(db),
		notification: NewNotificationPostgreSQL(db),
		forum:        NewForumPostgreSQL(db),
		payment:      NewPaymentPostgreSQL(db),
		report:       NewReportRepository(db),
	}
}

func (r *GormRepository) User() repositories.UserRepository                 { return r.user }
func (r *GormRepository) Course() repositories.CourseRepository             { return r.course }
func (r *GormRepository) Enrollment() repositories.EnrollmentRepository     { return r.enrollment }
func (r *GormRepository) Quiz() repositories.QuizRepository                 { return r.quiz }
func (r *GormRepository) Assignment() repositories.AssignmentRepository     { return r.assignment }
func (r *GormRepository) Submission() repositories.SubmissionRepository     { return r.submission }
func (r *GormRepository) Progress() repositories.ProgressRepository         { return r.progress }
func (r *GormRepository) Certificate() repositories.CertificateRepository   { return r.certificate }
func (r *GormRepository) Notification() repositories.NotificationRepository { return r.notification }
func (r *GormRepository) Forum() repositories.ForumRepository               { return r.forum }
func (r *GormRepository) Payment() repositories.PaymentRepository           { return r.payment }
func (r *GormRepository) Report() repositories.ReportRepository             { return r.report }

// Ping checks the database connection.
func (r *GormRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (r *GormRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
