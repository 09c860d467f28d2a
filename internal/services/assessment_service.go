package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/SAP-F-2025/course-service/internal/events"
	"github.com/SAP-F-2025/course-service/internal/models"
)

type assessmentService struct {
	deps
}

func NewAssessmentService(d deps) AssessmentService {
	return &assessmentService{deps: d}
}

// ===== QUIZZES =====

func (s *assessmentService) CreateQuiz(ctx context.Context, moduleID uint, req *CreateQuizRequest) (*models.Quiz, error) {
	req.ModuleID = moduleID
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	var quiz *models.Quiz
	err := s.withTx(ctx, func(tx *gorm.DB) error {
		found, err := s.repo.Course().ModuleExists(ctx, tx, moduleID)
		if err := requireExists(found, err, ErrModuleNotFound, "module"); err != nil {
			return err
		}

		row := &models.Quiz{
			Title:       strings.TrimSpace(req.Title),
			Description: req.Description,
			ModuleID:    moduleID,
		}
		if err := s.repo.Quiz().Create(ctx, tx, row); err != nil {
			return writeErr(err, "create quiz")
		}

		if err := s.createQuestions(ctx, tx, row.ID, req.Questions); err != nil {
			return err
		}

		quiz, err = s.repo.Quiz().GetByID(ctx, tx, row.ID)
		if err != nil {
			return fmt.Errorf("failed to reload quiz: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Quiz created", "quiz_id", quiz.ID, "module_id", moduleID, "questions", len(quiz.Questions))
	return quiz, nil
}

// createQuestions inserts each question followed by its options, inside tx.
func (s *assessmentService) createQuestions(ctx context.Context, tx *gorm.DB, quizID uint, questions []QuestionRequestItem) error {
	for i := range questions {
		q := &questions[i]
		points := models.DefaultQuestionPoints
		if q.Points != nil {
			points = *q.Points
		}

		question := &models.Question{
			QuizID:       quizID,
			Text:         q.Text,
			QuestionType: q.QuestionType,
			Points:       points,
		}
		if err := s.repo.Quiz().CreateQuestion(ctx, tx, question); err != nil {
			return writeErr(err, fmt.Sprintf("create question %d", i))
		}

		for j, o := range q.Options {
			option := &models.QuizOption{
				QuestionID: question.ID,
				Text:       o.Text,
				IsCorrect:  *o.IsCorrect,
			}
			if err := s.repo.Quiz().CreateOption(ctx, tx, option); err != nil {
				return writeErr(err, fmt.Sprintf("create option %d of question %d", j, i))
			}
		}
	}
	return nil
}

func (s *assessmentService) GetQuiz(ctx context.Context, id uint) (*models.Quiz, error) {
	quiz, err := s.repo.Quiz().GetByID(ctx, nil, id)
	if err != nil {
		return nil, notFoundOr(err, ErrQuizNotFound, "get quiz")
	}
	return quiz, nil
}

// ===== ASSIGNMENTS =====

func (s *assessmentService) CreateAssignment(ctx context.Context, courseID uint, req *CreateAssignmentRequest) (*models.Assignment, error) {
	req.CourseID = courseID
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	assignment := &models.Assignment{
		CourseID:    courseID,
		Title:       strings.TrimSpace(req.Title),
		Description: *req.Description,
		DueDate:     req.DueDate,
	}
	err := s.withTx(ctx, func(tx *gorm.DB) error {
		found, err := s.repo.Course().ExistsByID(ctx, tx, courseID)
		if err := requireExists(found, err, ErrCourseNotFound, "course"); err != nil {
			return err
		}
		if err := s.repo.Assignment().Create(ctx, tx, assignment); err != nil {
			return writeErr(err, "create assignment")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Assignment created", "assignment_id", assignment.ID, "course_id", courseID)
	return assignment, nil
}

func (s *assessmentService) GetAssignment(ctx context.Context, id uint) (*models.Assignment, error) {
	assignment, err := s.repo.Assignment().GetByID(ctx, nil, id)
	if err != nil {
		return nil, notFoundOr(err, ErrAssignmentNotFound, "get assignment")
	}
	return assignment, nil
}

// ===== SUBMISSIONS =====

func (s *assessmentService) Submit(ctx context.Context, req *CreateSubmissionRequest, userID uint) (*models.Submission, error) {
	if err := s.validator.ValidateSubmissionCreate(req); err != nil {
		return nil, err
	}

	submission := &models.Submission{
		UserID:       userID,
		AssignmentID: req.AssignmentID,
		QuizID:       req.QuizID,
		Content:      req.Content,
	}
	err := s.withTx(ctx, func(tx *gorm.DB) error {
		if req.AssignmentID != nil {
			found, err := s.repo.Assignment().ExistsByID(ctx, tx, *req.AssignmentID)
			if err := requireExists(found, err, ErrAssignmentNotFound, "assignment"); err != nil {
				return err
			}
		} else {
			found, err := s.repo.Quiz().ExistsByID(ctx, tx, *req.QuizID)
			if err := requireExists(found, err, ErrQuizNotFound, "quiz"); err != nil {
				return err
			}
		}

		if err := s.repo.Submission().Create(ctx, tx, submission); err != nil {
			return writeErr(err, "create submission")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Work submitted", "submission_id", submission.ID, "user_id", userID)
	return submission, nil
}

// GetSubmission is visible to its submitter and to teachers.
func (s *assessmentService) GetSubmission(ctx context.Context, id uint, caller *models.User) (*models.Submission, error) {
	submission, err := s.repo.Submission().GetByID(ctx, nil, id)
	if err != nil {
		return nil, notFoundOr(err, ErrSubmissionNotFound, "get submission")
	}

	if submission.UserID != caller.ID && !caller.Role.Satisfies(models.RoleTeacher) {
		return nil, NewPermissionError(caller.ID, id, "submission", "read", "not submitter or teacher")
	}
	return submission, nil
}

func (s *assessmentService) Grade(ctx context.Context, id uint, req *GradeRequest, graderID uint) (*models.Submission, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	var submission *models.Submission
	err := s.withTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.Submission().UpdateGrade(ctx, tx, id, *req.Score, req.Feedback); err != nil {
			return notFoundOr(err, ErrSubmissionNotFound, "grade submission")
		}
		var err error
		submission, err = s.repo.Submission().GetByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Submission graded", "submission_id", id, "score", *req.Score, "grader_id", graderID)
	s.publish(ctx, events.SubmissionGraded, events.SubmissionGradedData{
		SubmissionID: submission.ID,
		UserID:       submission.UserID,
		Score:        *req.Score,
		GradedBy:     graderID,
	})
	return submission, nil
}
