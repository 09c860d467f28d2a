package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/course-service/internal/services"
	"github.com/SAP-F-2025/course-service/internal/utils"
	"github.com/SAP-F-2025/course-service/internal/validator"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminHandler struct {
	BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(adminService services.AdminService, logger utils.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  NewBaseHandler(logger),
		adminService: adminService,
	}
}

// RecordPayment records a completed payment by the caller
// @Summary Record payment
// @Tags admin
// @Accept json
// @Produce json
// @Param payment body services.PaymentRequest true "Amount and currency"
// @Success 200 {object} models.Payment
// @Failure 400 {object} ErrorResponse
// @Router /admin/payments [post]
func (h *AdminHandler) RecordPayment(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req services.PaymentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	payment, err := h.adminService.RecordPayment(c.Request.Context(), &req, user.ID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

// ListMyPayments
// @Summary List own payments
// @Tags admin
// @Produce json
// @Success 200 {array} models.Payment
// @Router /admin/payments/me [get]
func (h *AdminHandler) ListMyPayments(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	rows, err := h.adminService.ListPayments(c.Request.Context(), user.ID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// CountUsers
// @Summary Total users
// @Tags admin
// @Produce json
// @Success 200 {object} validator.UserCountResponse
// @Router /admin/reports/users [get]
func (h *AdminHandler) CountUsers(c *gin.Context) {
	n, err := h.adminService.CountUsers(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, validator.UserCountResponse{TotalUsers: n})
}

// CountCourses
// @Summary Total courses
// @Tags admin
// @Produce json
// @Success 200 {object} validator.CourseCountResponse
// @Router /admin/reports/courses [get]
func (h *AdminHandler) CountCourses(c *gin.Context) {
	n, err := h.adminService.CountCourses(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, validator.CourseCountResponse{TotalCourses: n})
}

// ExportReport streams the users and courses workbook
// @Summary Export report
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /admin/reports/export [get]
func (h *AdminHandler) ExportReport(c *gin.Context) {
	h.LogRequest(c, "Exporting report")

	// buffer first so a failure can still produce a JSON error
	var buf bytes.Buffer
	if err := h.adminService.ExportReport(c.Request.Context(), &buf); err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("report-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
