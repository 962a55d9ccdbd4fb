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

func newRegistrationMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestRegistrationRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRegistrationMock(t)
	defer cleanup()
	repo := NewRegistrationRepository(db)

	mock.ExpectExec("INSERT INTO student_registrations").
		WillReturnResult(sqlmock.NewResult(1, 1))

	reg := &models.StudentRegistration{
		EnrollmentID: "ENR-001",
		FirstName:    "Amina",
		LastName:     "Khan",
		Gender:       "female",
		DateOfBirth:  time.Date(2015, 4, 2, 0, 0, 0, 0, time.UTC),
		GradeLevel:   "4",
	}
	err := repo.Create(context.Background(), reg)
	require.NoError(t, err)
	assert.NotEmpty(t, reg.ID)
	assert.False(t, reg.SubmittedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrationRepositoryFindByEnrollmentID(t *testing.T) {
	db, mock, cleanup := newRegistrationMock(t)
	defer cleanup()
	repo := NewRegistrationRepository(db)

	rows := sqlmock.NewRows([]string{"id", "enrollment_id", "first_name", "last_name", "grade_level", "submitted_at"}).
		AddRow("reg-1", "ENR-001", "Amina", "Khan", "4", time.Now())
	mock.ExpectQuery("FROM student_registrations WHERE enrollment_id").
		WithArgs("ENR-001").
		WillReturnRows(rows)

	reg, err := repo.FindByEnrollmentID(context.Background(), "ENR-001")
	require.NoError(t, err)
	assert.Equal(t, "reg-1", reg.ID)
	assert.Equal(t, "Amina", reg.FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrationRepositoryFindByIDNoRows(t *testing.T) {
	db, mock, cleanup := newRegistrationMock(t)
	defer cleanup()
	repo := NewRegistrationRepository(db)

	mock.ExpectQuery("FROM student_registrations WHERE id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrationRepositoryDeleteMissing(t *testing.T) {
	db, mock, cleanup := newRegistrationMock(t)
	defer cleanup()
	repo := NewRegistrationRepository(db)

	mock.ExpectExec("DELETE FROM student_registrations").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
