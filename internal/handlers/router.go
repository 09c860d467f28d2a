package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/services"
	"github.com/SAP-F-2025/course-service/internal/utils"
)

const serviceName = "course-service"

type HandlerManager struct {
	serviceManager    services.ServiceManager
	logger            utils.Logger
	authHandler       *AuthHandler
	userHandler       *UserHandler
	courseHandler     *CourseHandler
	assessmentHandler *AssessmentHandler
	trackingHandler   *TrackingHandler
	communityHandler  *CommunityHandler
	adminHandler      *AdminHandler
	authMiddleware    *AuthMiddleware
}

func NewHandlerManager(serviceManager services.ServiceManager, logger utils.Logger) *HandlerManager {
	return &HandlerManager{
		serviceManager:    serviceManager,
		logger:            logger,
		authHandler:       NewAuthHandler(serviceManager.Auth(), logger),
		userHandler:       NewUserHandler(serviceManager.User(), logger),
		courseHandler:     NewCourseHandler(serviceManager.Course(), logger),
		assessmentHandler: NewAssessmentHandler(serviceManager.Assessment(), logger),
		trackingHandler:   NewTrackingHandler(serviceManager.Tracking(), logger),
		communityHandler:  NewCommunityHandler(serviceManager.Community(), logger),
		adminHandler:      NewAdminHandler(serviceManager.Admin(), logger),
		authMiddleware:    NewAuthMiddleware(serviceManager.Auth(), logger),
	}
}

// collection registers a group root with and without the trailing slash so
// neither form is answered with a redirect.
func collection(g *gin.RouterGroup, method string, handlers ...gin.HandlerFunc) {
	g.Handle(method, "", handlers...)
	g.Handle(method, "/", handlers...)
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	requireTeacher := hm.authMiddleware.RequireRoleMiddleware(models.RoleTeacher)
	requireAdmin := hm.authMiddleware.RequireAdmin()

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Course Management System API"})
	})
	router.GET("/health", hm.health)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", hm.authHandler.Signup)
		authGroup.POST("/token", hm.authHandler.Login)
	}

	// Everything below needs a bearer token
	api := router.Group("")
	api.Use(hm.authMiddleware.RequireAuth())

	users := api.Group("/users")
	{
		collection(users, http.MethodGet, requireAdmin, hm.userHandler.ListUsers)
		users.GET("/me", hm.userHandler.GetMe)
		users.GET("/:id", hm.userHandler.GetUser)
		users.PUT("/:id", hm.userHandler.UpdateUser)
		users.DELETE("/:id", requireAdmin, hm.userHandler.DeleteUser)
	}

	courses := api.Group("/courses")
	{
		collection(courses, http.MethodPost, requireTeacher, hm.courseHandler.CreateCourse)
		collection(courses, http.MethodGet, hm.courseHandler.ListCourses)
		courses.POST("/modules", requireTeacher, hm.courseHandler.CreateModule)
		courses.POST("/lessons", requireTeacher, hm.courseHandler.CreateLesson)
		courses.GET("/:id", hm.courseHandler.GetCourse)
		courses.PUT("/:id", requireTeacher, hm.courseHandler.UpdateCourse)
		courses.DELETE("/:id", requireTeacher, hm.courseHandler.DeleteCourse)
		courses.GET("/:id/modules", hm.courseHandler.ListModules)
		courses.POST("/:id/enroll", hm.courseHandler.Enroll)
	}

	lessons := api.Group("/lessons")
	{
		lessons.GET("/module/:module_id", hm.courseHandler.ListLessons)
		lessons.GET("/:id", hm.courseHandler.GetLesson)
	}

	assessments := api.Group("/assessments")
	{
		assessments.POST("/modules/:module_id/quizzes", requireTeacher, hm.assessmentHandler.CreateQuiz)
		assessments.GET("/quizzes/:quiz_id", hm.assessmentHandler.GetQuiz)
		assessments.POST("/courses/:course_id/assignments", requireTeacher, hm.assessmentHandler.CreateAssignment)
		assessments.GET("/assignments/:id", hm.assessmentHandler.GetAssignment)
		assessments.POST("/submissions", hm.assessmentHandler.Submit)
		assessments.GET("/submissions/:id", hm.assessmentHandler.GetSubmission)
		assessments.PUT("/submissions/:id/grade", requireTeacher, hm.assessmentHandler.GradeSubmission)
	}

	tracking := api.Group("/tracking")
	{
		tracking.POST("/progress", hm.trackingHandler.UpdateProgress)
		tracking.GET("/progress", hm.trackingHandler.ListProgress)
		tracking.POST("/certificates/issue", hm.trackingHandler.IssueCertificate)
		tracking.GET("/certificates", hm.trackingHandler.ListCertificates)
	}

	notifications := api.Group("/notifications")
	{
		collection(notifications, http.MethodPost, hm.communityHandler.CreateNotification)
		notifications.GET("/me", hm.communityHandler.ListMyNotifications)
	}

	forum := api.Group("/forum")
	{
		collection(forum, http.MethodPost, hm.communityHandler.PostMessage)
		forum.GET("/course/:course_id", hm.communityHandler.ListMessages)
	}

	admin := api.Group("/admin")
	{
		admin.POST("/payments", hm.adminHandler.RecordPayment)
		admin.GET("/payments/me", hm.adminHandler.ListMyPayments)

		reports := admin.Group("/reports", requireAdmin)
		reports.GET("/users", hm.adminHandler.CountUsers)
		reports.GET("/courses", hm.adminHandler.CountCourses)
		reports.GET("/export", hm.adminHandler.ExportReport)
	}
}

func (hm *HandlerManager) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := hm.serviceManager.HealthCheck(ctx); err != nil {
		utils.FromContext(c.Request.Context(), hm.logger).Error("Health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": serviceName,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
	})
}
