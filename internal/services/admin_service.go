package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/SAP-F-2025/course-service/internal/cache"
	"github.com/SAP-F-2025/course-service/internal/events"
	"github.com/SAP-F-2025/course-service/internal/models"
)

const (
	statsKeyUsers   = "total_users"
	statsKeyCourses = "total_courses"

	sheetUsers   = "Users"
	sheetCourses = "Courses"
)

type adminService struct {
	deps
}

func NewAdminService(d deps) AdminService {
	return &adminService{deps: d}
}

// ===== PAYMENTS =====

func (s *adminService) RecordPayment(ctx context.Context, req *PaymentRequest, userID uint) (*models.Payment, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = models.DefaultCurrency
	}

	payment := &models.Payment{
		UserID:        userID,
		Amount:        *req.Amount,
		Currency:      currency,
		Status:        models.PaymentCompleted,
		TransactionID: uuid.NewString(),
	}
	if err := s.repo.Payment().Create(ctx, nil, payment); err != nil {
		return nil, writeErr(err, "record payment")
	}

	s.logger.Info("Payment recorded",
		"payment_id", payment.ID,
		"user_id", userID,
		"amount", payment.Amount,
		"currency", payment.Currency)
	s.publish(ctx, events.PaymentCompleted, events.PaymentCompletedData{
		PaymentID:     payment.ID,
		UserID:        userID,
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		TransactionID: payment.TransactionID,
	})
	return payment, nil
}

func (s *adminService) ListPayments(ctx context.Context, userID uint) ([]*models.Payment, error) {
	rows, err := s.repo.Payment().ListByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return rows, nil
}

// ===== REPORTS =====

func (s *adminService) CountUsers(ctx context.Context) (int64, error) {
	return s.cachedCount(ctx, statsKeyUsers, func() (int64, error) {
		return s.repo.Report().CountUsers(ctx, nil)
	})
}

func (s *adminService) CountCourses(ctx context.Context) (int64, error) {
	return s.cachedCount(ctx, statsKeyCourses, func() (int64, error) {
		return s.repo.Report().CountCourses(ctx, nil)
	})
}

func (s *adminService) cachedCount(ctx context.Context, key string, count func() (int64, error)) (int64, error) {
	fetch := func() (int64, error) {
		n, err := count()
		if err != nil {
			return 0, fmt.Errorf("failed to count %s: %w", key, err)
		}
		return n, nil
	}
	if s.cache == nil {
		return fetch()
	}
	return cache.CacheOrExecute(ctx, s.cache.Stats, key, cache.StatsCacheConfig.TTL, fetch)
}

func (s *adminService) ExportReport(ctx context.Context, w io.Writer) error {
	users, err := s.repo.Report().UserRows(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to load user rows: %w", err)
	}
	courses, err := s.repo.Report().CourseRows(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to load course rows: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("Failed to close workbook", "error", err)
		}
	}()

	// the default sheet becomes Users
	if err := f.SetSheetName(f.GetSheetName(0), sheetUsers); err != nil {
		return fmt.Errorf("failed to name users sheet: %w", err)
	}
	if err := writeRow(f, sheetUsers, 1, []any{"ID", "Name", "Email", "Role", "Batch", "Created At"}); err != nil {
		return err
	}
	for i, u := range users {
		batch := ""
		if u.Batch != nil {
			batch = *u.Batch
		}
		row := []any{u.ID, u.Name, u.Email, u.Role, batch, u.CreatedAt.UTC().Format("2006-01-02 15:04:05")}
		if err := writeRow(f, sheetUsers, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(sheetCourses); err != nil {
		return fmt.Errorf("failed to create courses sheet: %w", err)
	}
	if err := writeRow(f, sheetCourses, 1, []any{"ID", "Title", "Modules", "Enrollments"}); err != nil {
		return err
	}
	for i, c := range courses {
		if err := writeRow(f, sheetCourses, i+2, []any{c.ID, c.Title, c.Modules, c.Enrollments}); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	s.logger.Info("Report exported", "users", len(users), "courses", len(courses))
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("invalid cell: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}
