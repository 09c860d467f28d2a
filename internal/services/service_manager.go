package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/auth"
	"github.com/SAP-F-2025/course-service/internal/cache"
	"github.com/SAP-F-2025/course-service/internal/events"
	"github.com/SAP-F-2025/course-service/internal/repositories"
	"github.com/SAP-F-2025/course-service/internal/validator"
)

// ServiceManagerConfig holds the settings services need beyond their dependencies.
type ServiceManagerConfig struct {
	CertificateBaseURL string
}

// serviceManager implements ServiceManager interface
type serviceManager struct {
	deps
	jwt    *auth.JWTManager
	config ServiceManagerConfig

	authService       AuthService
	userService       UserService
	courseService     CourseService
	assessmentService AssessmentService
	trackingService   TrackingService
	communityService  CommunityService
	adminService      AdminService

	initialized bool
	shutdown    bool
	mu          sync.RWMutex
}

// NewServiceManager wires every service over the shared dependencies. publisher
// and cacheManager may be nil.
func NewServiceManager(
	db *gorm.DB,
	repo repositories.Repository,
	logger *slog.Logger,
	v *validator.Validator,
	publisher events.EventPublisher,
	cacheManager *cache.CacheManager,
	jwt *auth.JWTManager,
	config ServiceManagerConfig,
) ServiceManager {
	return &serviceManager{
		deps: deps{
			repo:      repo,
			db:        db,
			logger:    logger,
			validator: v,
			events:    publisher,
			cache:     cacheManager,
		},
		jwt:    jwt,
		config: config,
	}
}

// Initialize sets up all services and their dependencies
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.logger.Info("Initializing service manager")

	sm.authService = NewAuthService(sm.deps, sm.jwt)
	sm.userService = NewUserService(sm.deps)
	sm.courseService = NewCourseService(sm.deps)
	sm.assessmentService = NewAssessmentService(sm.deps)
	sm.trackingService = NewTrackingService(sm.deps, sm.config.CertificateBaseURL)
	sm.communityService = NewCommunityService(sm.deps)
	sm.adminService = NewAdminService(sm.deps)

	if err := sm.repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	sm.initialized = true
	sm.logger.Info("Service manager initialized successfully")
	return nil
}

func (sm *serviceManager) mustBeInitialized() {
	if !sm.initialized {
		panic("service manager not initialized")
	}
}

// Service getters
func (sm *serviceManager) Auth() AuthService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.authService
}

func (sm *serviceManager) User() UserService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.userService
}

func (sm *serviceManager) Course() CourseService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.courseService
}

func (sm *serviceManager) Assessment() AssessmentService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.assessmentService
}

func (sm *serviceManager) Tracking() TrackingService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.trackingService
}

func (sm *serviceManager) Community() CommunityService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.communityService
}

func (sm *serviceManager) Admin() AdminService {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	sm.mustBeInitialized()
	return sm.adminService
}

// Health and lifecycle
func (sm *serviceManager) HealthCheck(ctx context.Context) error {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.initialized {
		return fmt.Errorf("service manager not initialized")
	}
	if sm.shutdown {
		return fmt.Errorf("service manager is shut down")
	}

	if err := sm.repo.Ping(ctx); err != nil {
		return fmt.Errorf("repository health check failed: %w", err)
	}

	// redis is optional; a missing cache only degrades the report counters
	if sm.cache != nil {
		if err := sm.cache.HealthCheck(ctx); err != nil && !errors.Is(err, cache.ErrCacheNotAvailable) {
			sm.logger.Warn("Cache health check failed", "error", err)
		}
	}
	return nil
}

func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.shutdown {
		return nil
	}

	sm.logger.Info("Shutting down service manager")

	var errs []error
	if sm.events != nil {
		if err := sm.events.Close(); err != nil {
			sm.logger.Error("Failed to close event publisher", "error", err)
			errs = append(errs, err)
		}
	}
	if sm.cache != nil {
		if err := sm.cache.Close(); err != nil {
			sm.logger.Error("Failed to close cache", "error", err)
			errs = append(errs, err)
		}
	}
	if err := sm.repo.Close(); err != nil {
		sm.logger.Error("Failed to close repository", "error", err)
		errs = append(errs, err)
	}

	sm.shutdown = true
	sm.logger.Info("Service manager shut down completed")
	return errors.Join(errs...)
}
