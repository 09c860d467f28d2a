package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/course-service/internal/services"
	"github.com/SAP-F-2025/course-service/internal/utils"
)

type TrackingHandler struct {
	BaseHandler
	trackingService services.TrackingService
}

func NewTrackingHandler(trackingService services.TrackingService, logger utils.Logger) *TrackingHandler {
	return &TrackingHandler{
		BaseHandler:     NewBaseHandler(logger),
		trackingService: trackingService,
	}
}

// UpdateProgress upserts the caller's progress on a lesson
// @Summary Update lesson progress
// @Tags tracking
// @Accept json
// @Produce json
// @Param lesson_id query uint true "Lesson ID"
// @Param progress body services.ProgressRequest true "Completion flag"
// @Success 200 {object} models.LessonProgress
// @Failure 404 {object} ErrorResponse
// @Router /tracking/progress [post]
func (h *TrackingHandler) UpdateProgress(c *gin.Context) {
	lessonID, ok := h.parseIDQuery(c, "lesson_id")
	if !ok {
		return
	}
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req services.ProgressRequest
	if !h.bindJSON(c, &req) {
		return
	}

	progress, err := h.trackingService.UpdateProgress(c.Request.Context(), user.ID, lessonID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, progress)
}

// ListProgress returns the caller's progress rows
// @Summary List own progress
// @Tags tracking
// @Produce json
// @Success 200 {array} models.LessonProgress
// @Router /tracking/progress [get]
func (h *TrackingHandler) ListProgress(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	rows, err := h.trackingService.ListProgress(c.Request.Context(), user.ID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// IssueCertificate issues, or returns the already issued, certificate for a course
// @Summary Issue certificate
// @Tags tracking
// @Produce json
// @Param course_id query uint true "Course ID"
// @Success 200 {object} models.Certificate
// @Failure 404 {object} ErrorResponse
// @Router /tracking/certificates/issue [post]
func (h *TrackingHandler) IssueCertificate(c *gin.Context) {
	courseID, ok := h.parseIDQuery(c, "course_id")
	if !ok {
		return
	}
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	h.LogRequest(c, "Issuing certificate", "course_id", courseID, "user_id", user.ID)

	certificate, err := h.trackingService.IssueCertificate(c.Request.Context(), user.ID, courseID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, certificate)
}

// ListCertificates returns the caller's certificates
// @Summary List own certificates
// @Tags tracking
// @Produce json
// @Success 200 {array} models.Certificate
// @Router /tracking/certificates [get]
func (h *TrackingHandler) ListCertificates(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	rows, err := h.trackingService.ListCertificates(c.Request.Context(), user.ID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
