package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alhuda-academy/admissions-api/internal/models"
)

func newRenrollMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestRenrollRepositoryFindByIdentity(t *testing.T) {
	db, mock, cleanup := newRenrollMock(t)
	defer cleanup()
	repo := NewRenrollRepository(db)

	rows := sqlmock.NewRows([]string{"id", "child_first_name", "child_last_name", "father_email", "current_step", "is_completed", "submitted_at"}).
		AddRow("rf-1", "Amina", "Khan", "omar@example.com", 1, false, time.Now())
	mock.ExpectQuery("FROM renroll_forms\\s+WHERE father_email").
		WithArgs("omar@example.com", "Amina", "Khan").
		WillReturnRows(rows)

	form, err := repo.FindByIdentity(context.Background(), "omar@example.com", "Amina", "Khan")
	require.NoError(t, err)
	assert.Equal(t, "rf-1", form.ID)
	assert.Equal(t, 1, form.CurrentStep)
	assert.False(t, form.IsCompleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRenrollRepositoryFindByIdentityNoRows(t *testing.T) {
	db, mock, cleanup := newRenrollMock(t)
	defer cleanup()
	repo := NewRenrollRepository(db)

	mock.ExpectQuery("FROM renroll_forms\\s+WHERE father_email").
		WithArgs("nobody@example.com", "Bilal", "Khan").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByIdentity(context.Background(), "nobody@example.com", "Bilal", "Khan")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRenrollRepositoryCreateAssignsID(t *testing.T) {
	db, mock, cleanup := newRenrollMock(t)
	defer cleanup()
	repo := NewRenrollRepository(db)

	mock.ExpectExec("INSERT INTO renroll_forms").
		WillReturnResult(sqlmock.NewResult(1, 1))

	form := &models.RenrollForm{
		ChildFirstName: "Amina",
		ChildLastName:  "Khan",
		FatherEmail:    "omar@example.com",
	}
	err := repo.Create(context.Background(), form)
	require.NoError(t, err)
	assert.NotEmpty(t, form.ID)
	assert.False(t, form.SubmittedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRenrollRepositoryUpdateRefreshesSubmittedAt(t *testing.T) {
	db, mock, cleanup := newRenrollMock(t)
	defer cleanup()
	repo := NewRenrollRepository(db)

	mock.ExpectExec("UPDATE renroll_forms SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	form := &models.RenrollForm{
		ID:             "rf-1",
		ChildFirstName: "Amina",
		ChildLastName:  "Khan",
		FatherEmail:    "omar@example.com",
		SubmittedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	err := repo.Update(context.Background(), form)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), form.SubmittedAt, time.Minute)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRenrollRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRenrollMock(t)
	defer cleanup()
	repo := NewRenrollRepository(db)

	mock.ExpectExec("DELETE FROM renroll_forms").
		WithArgs("rf-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "rf-1")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
