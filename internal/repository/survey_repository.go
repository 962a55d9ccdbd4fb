package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/alhuda-academy/admissions-api/internal/models"
)

// SurveyRepository persists survey responses across the parent, staff and
// student audiences.
type SurveyRepository struct {
	db *sqlx.DB
}

func NewSurveyRepository(db *sqlx.DB) *SurveyRepository {
	return &SurveyRepository{db: db}
}

const surveyColumns = `id, audience, name, answers, suggestions, submitted_at`

func (r *SurveyRepository) Create(ctx context.Context, survey *models.Survey) error {
	if survey.ID == "" {
		survey.ID = uuid.NewString()
	}
	if survey.SubmittedAt.IsZero() {
		survey.SubmittedAt = time.Now().UTC()
	}
	const query = `INSERT INTO surveys (` + surveyColumns + `)
	VALUES (:id, :audience, :name, :answers, :suggestions, :submitted_at)`
	if _, err := r.db.NamedExecContext(ctx, query, survey); err != nil {
		return fmt.Errorf("create survey: %w", err)
	}
	return nil
}

func (r *SurveyRepository) List(ctx context.Context, audience models.SurveyAudience) ([]models.Survey, error) {
	query := `SELECT ` + surveyColumns + ` FROM surveys WHERE audience = $1 ORDER BY submitted_at DESC`
	var surveys []models.Survey
	if err := r.db.SelectContext(ctx, &surveys, query, audience); err != nil {
		return nil, fmt.Errorf("list surveys: %w", err)
	}
	return surveys, nil
}

func (r *SurveyRepository) FindByID(ctx context.Context, id string) (*models.Survey, error) {
	query := `SELECT ` + surveyColumns + ` FROM surveys WHERE id = $1`
	var survey models.Survey
	if err := r.db.GetContext(ctx, &survey, query, id); err != nil {
		return nil, err
	}
	return &survey, nil
}

func (r *SurveyRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM surveys WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete survey: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete survey: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
