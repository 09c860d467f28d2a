package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/course-service/internal/services"
	"github.com/SAP-F-2025/course-service/internal/utils"
)

// CommunityHandler serves notifications and the course forum.
type CommunityHandler struct {
	BaseHandler
	communityService services.CommunityService
}

func NewCommunityHandler(communityService services.CommunityService, logger utils.Logger) *CommunityHandler {
	return &CommunityHandler{
		BaseHandler:      NewBaseHandler(logger),
		communityService: communityService,
	}
}

// CreateNotification
// @Summary Create notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param notification body services.CreateNotificationRequest true "Recipient and message"
// @Success 200 {object} models.Notification
// @Failure 404 {object} ErrorResponse
// @Router /notifications [post]
func (h *CommunityHandler) CreateNotification(c *gin.Context) {
	var req services.CreateNotificationRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Creating notification", "recipient_id", req.UserID)

	notification, err := h.communityService.CreateNotification(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, notification)
}

// ListMyNotifications
// @Summary List own notifications
// @Tags notifications
// @Produce json
// @Success 200 {array} models.Notification
// @Router /notifications/me [get]
func (h *CommunityHandler) ListMyNotifications(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	rows, err := h.communityService.ListNotifications(c.Request.Context(), user.ID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// PostMessage
// @Summary Post forum message
// @Tags forum
// @Accept json
// @Produce json
// @Param message body services.CreateForumRequest true "Course and message"
// @Success 200 {object} models.Forum
// @Failure 404 {object} ErrorResponse
// @Router /forum [post]
func (h *CommunityHandler) PostMessage(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req services.CreateForumRequest
	if !h.bindJSON(c, &req) {
		return
	}

	message, err := h.communityService.PostMessage(c.Request.Context(), &req, user.ID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, message)
}

// ListMessages
// @Summary List course forum messages
// @Tags forum
// @Produce json
// @Param course_id path uint true "Course ID"
// @Success 200 {array} models.Forum
// @Failure 404 {object} ErrorResponse
// @Router /forum/course/{course_id} [get]
func (h *CommunityHandler) ListMessages(c *gin.Context) {
	courseID, ok := h.parseIDParam(c, "course_id")
	if !ok {
		return
	}

	rows, err := h.communityService.ListMessages(c.Request.Context(), courseID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}
