package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/events"
	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
)

type trackingService struct {
	deps
	certificateBaseURL string
}

func NewTrackingService(d deps, certificateBaseURL string) TrackingService {
	return &trackingService{deps: d, certificateBaseURL: strings.TrimRight(certificateBaseURL, "/")}
}

// ===== LESSON PROGRESS =====

func (s *trackingService) UpdateProgress(ctx context.Context, userID, lessonID uint, req *ProgressRequest) (*models.LessonProgress, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	progress, err := s.upsertProgress(ctx, userID, lessonID, *req.Completed)
	if errors.Is(err, ErrDuplicate) {
		// lost the insert race; the row exists now
		progress, err = s.upsertProgress(ctx, userID, lessonID, *req.Completed)
	}
	if err != nil {
		return nil, err
	}

	s.logger.Info("Lesson progress updated", "user_id", userID, "lesson_id", lessonID, "completed", progress.Completed)
	return progress, nil
}

func (s *trackingService) upsertProgress(ctx context.Context, userID, lessonID uint, completed bool) (*models.LessonProgress, error) {
	var progress *models.LessonProgress
	err := s.withTx(ctx, func(tx *gorm.DB) error {
		found, err := s.repo.Course().LessonExists(ctx, tx, lessonID)
		if err := requireExists(found, err, ErrLessonNotFound, "lesson"); err != nil {
			return err
		}

		now := time.Now().UTC()
		existing, err := s.repo.Progress().GetByUserAndLesson(ctx, tx, userID, lessonID)
		switch {
		case err == nil:
			existing.Completed = completed
			existing.LastAccessed = now
			if err := s.repo.Progress().Update(ctx, tx, existing); err != nil {
				return fmt.Errorf("failed to update progress: %w", err)
			}
			progress = existing
			return nil
		case !repositories.IsNotFoundError(err):
			return fmt.Errorf("failed to get progress: %w", err)
		}

		progress = &models.LessonProgress{
			UserID:       userID,
			LessonID:     lessonID,
			Completed:    completed,
			LastAccessed: now,
		}
		if err := s.repo.Progress().Create(ctx, tx, progress); err != nil {
			return writeErr(err, "create progress")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return progress, nil
}

func (s *trackingService) ListProgress(ctx context.Context, userID uint) ([]*models.LessonProgress, error) {
	rows, err := s.repo.Progress().ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress: %w", err)
	}
	return rows, nil
}

// ===== CERTIFICATES =====

func (s *trackingService) IssueCertificate(ctx context.Context, userID, courseID uint) (*models.Certificate, error) {
	certificate, created, err := s.issueCertificate(ctx, userID, courseID)
	if errors.Is(err, ErrDuplicate) {
		certificate, created, err = s.issueCertificate(ctx, userID, courseID)
	}
	if err != nil {
		return nil, err
	}

	if created {
		s.logger.Info("Certificate issued", "certificate_id", certificate.ID, "user_id", userID, "course_id", courseID)
		s.publish(ctx, events.CertificateIssued, events.CertificateIssuedData{
			CertificateID:  certificate.ID,
			UserID:         userID,
			CourseID:       courseID,
			CertificateURL: certificate.CertificateURL,
		})
	}
	return certificate, nil
}

func (s *trackingService) issueCertificate(ctx context.Context, userID, courseID uint) (*models.Certificate, bool, error) {
	var (
		certificate *models.Certificate
		created     bool
	)
	err := s.withTx(ctx, func(tx *gorm.DB) error {
		found, err := s.repo.Course().ExistsByID(ctx, tx, courseID)
		if err := requireExists(found, err, ErrCourseNotFound, "course"); err != nil {
			return err
		}

		existing, err := s.repo.Certificate().GetByUserAndCourse(ctx, tx, userID, courseID)
		if err == nil {
			certificate = existing
			return nil
		}
		if !repositories.IsNotFoundError(err) {
			return fmt.Errorf("failed to get certificate: %w", err)
		}

		certificate = &models.Certificate{
			UserID:         userID,
			CourseID:       courseID,
			CertificateURL: s.certificateURL(userID, courseID),
		}
		if err := s.repo.Certificate().Create(ctx, tx, certificate); err != nil {
			return writeErr(err, "issue certificate")
		}
		created = true
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return certificate, created, nil
}

func (s *trackingService) certificateURL(userID, courseID uint) string {
	return fmt.Sprintf("%s/%d/%d", s.certificateBaseURL, userID, courseID)
}

func (s *trackingService) ListCertificates(ctx context.Context, userID uint) ([]*models.Certificate, error) {
	rows, err := s.repo.Certificate().ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}
	return rows, nil
}
