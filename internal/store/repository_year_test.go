package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/festivize/festivize/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearRepository_ListYears(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewYearRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT year, is_closed FROM years ORDER BY year DESC")).
		WillReturnRows(sqlmock.NewRows([]string{"year", "is_closed"}).
			AddRow(2025, false).
			AddRow(2024, true))

	years, err := repo.ListYears(context.Background())
	require.NoError(t, err)

	require.Len(t, years, 2)
	assert.Equal(t, 2025, years[0].Year)
	assert.True(t, years[1].IsClosed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestYearRepository_CreateYear(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewYearRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO years (year,is_closed) VALUES ($1,$2)")).
		WithArgs(2026, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	year, err := repo.CreateYear(context.Background(), 2026)
	require.NoError(t, err)

	assert.Equal(t, 2026, year.Year)
	assert.False(t, year.IsClosed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestYearRepository_CreateYear_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewYearRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO years")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := repo.CreateYear(context.Background(), 2026)
	assert.ErrorIs(t, err, ErrYearAlreadyExists)
}

func TestYearRepository_UpdateYearStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewYearRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("UPDATE years SET is_closed = $1 WHERE year = $2")).
		WithArgs(true, 2024).
		WillReturnResult(sqlmock.NewResult(0, 1))

	year, err := repo.UpdateYearStatus(context.Background(), 2024, true)
	require.NoError(t, err)

	assert.Equal(t, 2024, year.Year)
	assert.True(t, year.IsClosed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestYearRepository_UpdateYearStatus_UnknownYear(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewYearRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("UPDATE years")).
		WithArgs(true, 1999).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateYearStatus(context.Background(), 1999, true)
	assert.ErrorIs(t, err, ErrYearNotFound)
}

func TestYearRepository_GetYear(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewYearRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT year, is_closed FROM years WHERE year = $1")).
		WithArgs(2024).
		WillReturnRows(sqlmock.NewRows([]string{"year", "is_closed"}).AddRow(2024, true))

	year, err := repo.GetYear(context.Background(), 2024)
	require.NoError(t, err)
	assert.True(t, year.IsClosed)
}

func TestYearRepository_GetYear_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewYearRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT year, is_closed FROM years WHERE year = $1")).
		WithArgs(1999).
		WillReturnRows(sqlmock.NewRows([]string{"year", "is_closed"}))

	_, err := repo.GetYear(context.Background(), 1999)
	assert.ErrorIs(t, err, ErrYearNotFound)
}
