package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/course-service/internal/services"
	"github.com/SAP-F-2025/course-service/internal/utils"
)

type AssessmentHandler struct {
	BaseHandler
	assessmentService services.AssessmentService
}

func NewAssessmentHandler(assessmentService services.AssessmentService, logger utils.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		BaseHandler:       NewBaseHandler(logger),
		assessmentService: assessmentService,
	}
}

// CreateQuiz creates a quiz with its questions and options in one transaction
// @Summary Create quiz
// @Tags assessments
// @Accept json
// @Produce json
// @Param module_id path uint true "Module ID"
// @Param quiz body services.CreateQuizRequest true "Quiz tree"
// @Success 200 {object} models.Quiz
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /assessments/modules/{module_id}/quizzes [post]
func (h *AssessmentHandler) CreateQuiz(c *gin.Context) {
	moduleID, ok := h.parseIDParam(c, "module_id")
	if !ok {
		return
	}

	var req services.CreateQuizRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Creating quiz", "module_id", moduleID, "questions", len(req.Questions))

	quiz, err := h.assessmentService.CreateQuiz(c.Request.Context(), moduleID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

// GetQuiz retrieves a quiz with questions and options
// @Summary Get quiz
// @Tags assessments
// @Produce json
// @Param quiz_id path uint true "Quiz ID"
// @Success 200 {object} models.Quiz
// @Failure 404 {object} ErrorResponse
// @Router /assessments/quizzes/{quiz_id} [get]
func (h *AssessmentHandler) GetQuiz(c *gin.Context) {
	id, ok := h.parseIDParam(c, "quiz_id")
	if !ok {
		return
	}

	quiz, err := h.assessmentService.GetQuiz(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, quiz)
}

// CreateAssignment adds an assignment to a course
// @Summary Create assignment
// @Tags assessments
// @Accept json
// @Produce json
// @Param course_id path uint true "Course ID"
// @Param assignment body services.CreateAssignmentRequest true "Assignment data"
// @Success 200 {object} models.Assignment
// @Failure 404 {object} ErrorResponse
// @Router /assessments/courses/{course_id}/assignments [post]
func (h *AssessmentHandler) CreateAssignment(c *gin.Context) {
	courseID, ok := h.parseIDParam(c, "course_id")
	if !ok {
		return
	}

	var req services.CreateAssignmentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Creating assignment", "course_id", courseID)

	assignment, err := h.assessmentService.CreateAssignment(c.Request.Context(), courseID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// GetAssignment retrieves an assignment by ID
// @Summary Get assignment
// @Tags assessments
// @Produce json
// @Param id path uint true "Assignment ID"
// @Success 200 {object} models.Assignment
// @Failure 404 {object} ErrorResponse
// @Router /assessments/assignments/{id} [get]
func (h *AssessmentHandler) GetAssignment(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	assignment, err := h.assessmentService.GetAssignment(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// Submit records the caller's work for an assignment or a quiz
// @Summary Submit work
// @Tags assessments
// @Accept json
// @Produce json
// @Param submission body services.CreateSubmissionRequest true "Exactly one of assignment_id or quiz_id"
// @Success 200 {object} models.Submission
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /assessments/submissions [post]
func (h *AssessmentHandler) Submit(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req services.CreateSubmissionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Submitting work", "user_id", user.ID)

	submission, err := h.assessmentService.Submit(c.Request.Context(), &req, user.ID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}

// GetSubmission retrieves a submission for its submitter or a teacher
// @Summary Get submission
// @Tags assessments
// @Produce json
// @Param id path uint true "Submission ID"
// @Success 200 {object} models.Submission
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /assessments/submissions/{id} [get]
func (h *AssessmentHandler) GetSubmission(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	submission, err := h.assessmentService.GetSubmission(c.Request.Context(), id, user)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}

// GradeSubmission sets score and feedback
// @Summary Grade submission
// @Tags assessments
// @Accept json
// @Produce json
// @Param id path uint true "Submission ID"
// @Param grade body services.GradeRequest true "Score and feedback"
// @Success 200 {object} models.Submission
// @Failure 404 {object} ErrorResponse
// @Router /assessments/submissions/{id}/grade [put]
func (h *AssessmentHandler) GradeSubmission(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req services.GradeRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Grading submission", "submission_id", id)

	submission, err := h.assessmentService.Grade(c.Request.Context(), id, &req, user.ID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}
