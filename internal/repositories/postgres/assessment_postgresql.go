package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/SAP-F-2025/course-service/internal/models"
	"github.com/SAP-F-2025/course-service/internal/repositories"
)

// ===== QUIZZES =====

type QuizPostgreSQL struct {
	base
}

func NewQuizPostgreSQL(db *gorm.DB) repositories.QuizRepository {
	return &QuizPostgreSQL{base{db: db}}
}

// Create inserts only the quiz row; questions and options are inserted separately.
func (r *QuizPostgreSQL) Create(ctx context.Context, tx *gorm.DB, quiz *models.Quiz) error {
	if err := r.getDB(ctx, tx).Omit(clause.Associations).Create(quiz).Error; err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}
	return nil
}

func (r *QuizPostgreSQL) CreateQuestion(ctx context.Context, tx *gorm.DB, question *models.Question) error {
	if err := r.getDB(ctx, tx).Omit(clause.Associations).Create(question).Error; err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

func (r *QuizPostgreSQL) CreateOption(ctx context.Context, tx *gorm.DB, option *models.QuizOption) error {
	if err := r.getDB(ctx, tx).Create(option).Error; err != nil {
		return fmt.Errorf("failed to create quiz option: %w", err)
	}
	return nil
}

func (r *QuizPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.getDB(ctx, tx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("id ASC")
		}).
		First(&quiz, id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz %d: %w", id, err)
	}
	return &quiz, nil
}

func (r *QuizPostgreSQL) ExistsByID(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	found, err := exists(r.getDB(ctx, tx), &models.Quiz{}, id)
	if err != nil {
		return false, fmt.Errorf("failed to check quiz existence: %w", err)
	}
	return found, nil
}

// ===== ASSIGNMENTS =====

type AssignmentPostgreSQL struct {
	base
}

func NewAssignmentPostgreSQL(db *gorm.DB) repositories.AssignmentRepository {
	return &AssignmentPostgreSQL{base{db: db}}
}

func (r *AssignmentPostgreSQL) Create(ctx context.Context, tx *gorm.DB, assignment *models.Assignment) error {
	if err := r.getDB(ctx, tx).Create(assignment).Error; err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	return nil
}

func (r *AssignmentPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := r.getDB(ctx, tx).First(&assignment, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get assignment %d: %w", id, err)
	}
	return &assignment, nil
}

func (r *AssignmentPostgreSQL) ExistsByID(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	found, err := exists(r.getDB(ctx, tx), &models.Assignment{}, id)
	if err != nil {
		return false, fmt.Errorf("failed to check assignment existence: %w", err)
	}
	return found, nil
}

// ===== SUBMISSIONS =====

type SubmissionPostgreSQL struct {
	base
}

func NewSubmissionPostgreSQL(db *gorm.DB) repositories.SubmissionRepository {
	return &SubmissionPostgreSQL{base{db: db}}
}

func (r *SubmissionPostgreSQL) Create(ctx context.Context, tx *gorm.DB, submission *models.Submission) error {
	if err := r.getDB(ctx, tx).Create(submission).Error; err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

func (r *SubmissionPostgreSQL) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Submission, error) {
	var submission models.Submission
	if err := r.getDB(ctx, tx).First(&submission, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get submission %d: %w", id, err)
	}
	return &submission, nil
}

func (r *SubmissionPostgreSQL) UpdateGrade(ctx context.Context, tx *gorm.DB, id uint, score float64, feedback *string) error {
	updates := map[string]any{
		"score":    score,
		"feedback": feedback,
	}
	if err := updateByID(r.getDB(ctx, tx), &models.Submission{}, id, updates); err != nil {
		return fmt.Errorf("failed to grade submission %d: %w", id, err)
	}
	return nil
}
