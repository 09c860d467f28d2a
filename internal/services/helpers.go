package services

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/cache"
	"github.com/SAP-F-2025/course-service/internal/events"
	"github.com/SAP-F-2025/course-service/internal/repositories"
	"github.com/SAP-F-2025/course-service/internal/validator"
)

// deps is embedded by every service.
type deps struct {
	repo      repositories.Repository
	db        *gorm.DB
	logger    *slog.Logger
	validator *validator.Validator
	events    events.EventPublisher
	cache     *cache.CacheManager
}

// withTx executes fn within one transaction.
func (d *deps) withTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.db.WithContext(ctx).Transaction(fn)
}

// publish sends an event after commit. Failures are logged, never returned.
func (d *deps) publish(ctx context.Context, eventType events.EventType, data any) {
	if d.events == nil {
		return
	}
	event := events.NewEvent(eventType, data)
	if err := d.events.Publish(ctx, event); err != nil {
		d.logger.Error("Failed to publish event", "type", eventType, "event_id", event.ID, "error", err)
	}
}

func (d *deps) invalidateStats(ctx context.Context) {
	if d.cache != nil {
		cache.InvalidateStats(ctx, d.cache)
	}
}

// notFoundOr maps a repository miss onto sentinel and wraps anything else.
func notFoundOr(err error, sentinel error, action string) error {
	if repositories.IsNotFoundError(err) {
		return sentinel
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}

// writeErr classifies a failed insert or update.
func writeErr(err error, action string) error {
	switch {
	case repositories.IsDuplicateError(err):
		return fmt.Errorf("%s: %w", action, ErrDuplicate)
	case repositories.IsForeignKeyError(err):
		return fmt.Errorf("%s: referenced row does not exist: %w", action, ErrNotFound)
	default:
		return fmt.Errorf("failed to %s: %w", action, err)
	}
}

// requireExists turns a false existence check into sentinel.
func requireExists(found bool, err error, sentinel error, what string) error {
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", what, err)
	}
	if !found {
		return sentinel
	}
	return nil
}
