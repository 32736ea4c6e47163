// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/festivize/festivize/internal/config"
	"github.com/festivize/festivize/internal/logger"
	"github.com/festivize/festivize/internal/mock"
	"github.com/festivize/festivize/internal/store"
	"github.com/festivize/festivize/internal/utils"
	"github.com/festivize/festivize/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() config.Auth {
	return config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "festivize",
		TokenDuration: time.Hour,
	}
}

func newAuthService(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	users := mock.NewMockUserRepository(ctrl)
	return NewAuthService(users, testAuthConfig(), logger.Nop()), users
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_HashesPassword(t *testing.T) {
	svc, users := newAuthService(t)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Empty(t, u.Password, "plaintext must not reach the repository")
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")))
			assert.Equal(t, models.RoleUser, u.Role, "role defaults to user")
			u.UserID = 1
			return u, nil
		},
	)

	created, err := svc.Register(context.Background(), models.User{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.UserID)
}

func TestAuthService_Register_RejectsBadInput(t *testing.T) {
	svc, _ := newAuthService(t)

	cases := []models.User{
		{Email: "ana@example.com", Password: "pw"},                                      // no name
		{Name: "Ana", Password: "pw"},                                                   // no email
		{Name: "Ana", Email: "ana@example.com"},                                         // no password
		{Name: "Ana", Email: "not-an-email", Password: "pw"},                            // bad email
		{Name: "Ana", Email: "ana@example.com", Password: "pw", Role: "superuser"},      // unknown role
	}
	for _, user := range cases {
		_, err := svc.Register(context.Background(), user)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestAuthService_Register_PropagatesDuplicateEmail(t *testing.T) {
	svc, users := newAuthService(t)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Register(context.Background(), models.User{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "pw",
	})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_IssuesParsableToken(t *testing.T) {
	svc, users := newAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	users.EXPECT().FindUserByEmail(gomock.Any(), "ana@example.com").Return(models.User{
		UserID:       9,
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}, nil)

	token, err := svc.Login(context.Background(), "ana@example.com", "s3cret")
	require.NoError(t, err)

	parsed, err := svc.ParseToken(token.String())
	require.NoError(t, err)
	assert.Equal(t, "9", parsed.Claims.UserID)
	assert.Equal(t, models.RoleAdmin, parsed.Claims.Role)
}

func TestAuthService_Login_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	svc, users := newAuthService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)

	users.EXPECT().FindUserByEmail(gomock.Any(), "ana@example.com").Return(models.User{
		Email:        "ana@example.com",
		PasswordHash: string(hash),
	}, nil)
	_, errWrongPassword := svc.Login(context.Background(), "ana@example.com", "nope")

	users.EXPECT().FindUserByEmail(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrNoUserWasFound)
	_, errUnknownEmail := svc.Login(context.Background(), "ghost@example.com", "nope")

	// Both failures report the same error so login cannot probe for accounts.
	assert.ErrorIs(t, errWrongPassword, ErrWrongPassword)
	assert.ErrorIs(t, errUnknownEmail, ErrWrongPassword)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Login(context.Background(), "", "pw")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(context.Background(), "ana@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Login_RepositoryErrorPassesThrough(t *testing.T) {
	svc, users := newAuthService(t)

	dbErr := errors.New("connection reset")
	users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

	_, err := svc.Login(context.Background(), "ana@example.com", "pw")
	assert.ErrorIs(t, err, dbErr)
}

// ── ParseToken ───────────────────────────────────────────────────────────────

func TestAuthService_ParseToken_RejectsForgedAndExpired(t *testing.T) {
	svc, _ := newAuthService(t)

	forged, err := utils.GenerateJWTToken("festivize", models.User{UserID: 1}, time.Hour, "other-key")
	require.NoError(t, err)
	_, err = svc.ParseToken(forged.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	expired, err := utils.GenerateJWTToken("festivize", models.User{UserID: 1}, -time.Minute, "test-sign-key")
	require.NoError(t, err)
	_, err = svc.ParseToken(expired.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	_, err = svc.ParseToken("garbage")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
