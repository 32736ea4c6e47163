package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Masterminds/squirrel"
	"github.com/festivize/festivize/internal/logger"
	"github.com/festivize/festivize/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:      conn,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		logger:  logger.Nop(),
	}, mock
}

func TestUserRepository_CreateUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	createdAt := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO users (name,email,password_hash,role) VALUES ($1,$2,$3,$4) RETURNING id, created_at",
	)).
		WithArgs("Ana", "ana@example.com", "hash", models.RoleUser).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), createdAt))

	user, err := repo.CreateUser(context.Background(), models.User{
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "hash",
		Role:         models.RoleUser,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), user.UserID)
	assert.Empty(t, user.Password)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := repo.CreateUser(context.Background(), models.User{
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "hash",
		Role:         models.RoleUser,
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestUserRepository_FindUserByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, name, email, password_hash, role, created_at FROM users WHERE email = $1",
	)).
		WithArgs("ana@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "created_at"}).
			AddRow(int64(5), "Ana", "ana@example.com", "hash", models.RoleAdmin, time.Now()))

	user, err := repo.FindUserByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)

	assert.Equal(t, int64(5), user.UserID)
	assert.Equal(t, models.RoleAdmin, user.Role)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_FindUserByEmail_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db, logger.Nop())

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, password_hash, role, created_at FROM users")).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "role", "created_at"}))

	_, err := repo.FindUserByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}
