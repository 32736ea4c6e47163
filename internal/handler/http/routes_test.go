// SPDX-License-Identifier: Apache-2.0

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/festivize/festivize/internal/config"
	"github.com/festivize/festivize/internal/logger"
	"github.com/festivize/festivize/internal/mock"
	"github.com/festivize/festivize/internal/service"
	"github.com/festivize/festivize/internal/store"
	"github.com/festivize/festivize/internal/utils"
	"github.com/festivize/festivize/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSignKey = "test-sign-key"

// handlerFixture runs real services over mocked repositories so requests
// exercise routing, middleware, service rules and error mapping together.
type handlerFixture struct {
	router        chi.Router
	users         *mock.MockUserRepository
	years         *mock.MockYearRepository
	contributions *mock.MockContributionRepository
	expenditures  *mock.MockExpenditureRepository
	images        *mock.MockImageStore
}

func newHandlerFixture(t *testing.T) handlerFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := handlerFixture{
		users:         mock.NewMockUserRepository(ctrl),
		years:         mock.NewMockYearRepository(ctrl),
		contributions: mock.NewMockContributionRepository(ctrl),
		expenditures:  mock.NewMockExpenditureRepository(ctrl),
		images:        mock.NewMockImageStore(ctrl),
	}

	yearService := service.NewYearService(f.years, logger.Nop())
	services := &service.Services{
		Auth: service.NewAuthService(f.users, config.Auth{
			TokenSignKey:  testSignKey,
			TokenIssuer:   "festivize",
			TokenDuration: time.Hour,
		}, logger.Nop()),
		Years:   yearService,
		Ledger:  service.NewLedgerService(f.contributions, f.expenditures, yearService, logger.Nop()),
		Gallery: service.NewGalleryService(f.images, logger.Nop()),
	}

	f.router = NewHTTPHandler(services, logger.Nop()).InitRoutes()
	return f
}

func bearerToken(t *testing.T, role string) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("festivize", models.User{
		UserID: 3,
		Email:  "ana@example.com",
		Role:   role,
	}, time.Hour, testSignKey)
	require.NoError(t, err)
	return "Bearer " + token.String()
}

func (f handlerFixture) do(t *testing.T, method, target, authorization string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// ── Authentication endpoints ─────────────────────────────────────────────────

func TestRoutes_Login(t *testing.T) {
	f := newHandlerFixture(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	f.users.EXPECT().FindUserByEmail(gomock.Any(), "ana@example.com").Return(models.User{
		UserID:       3,
		Email:        "ana@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}, nil)

	rec := f.do(t, http.MethodPost, "/login", "", models.LoginRequest{
		Email:    "ana@example.com",
		Password: "s3cret",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[models.LoginResponse](t, rec)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "login successful", resp.Message)
}

func TestRoutes_Login_WrongPassword(t *testing.T) {
	f := newHandlerFixture(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	f.users.EXPECT().FindUserByEmail(gomock.Any(), "ana@example.com").Return(models.User{
		Email:        "ana@example.com",
		PasswordHash: string(hash),
	}, nil)

	rec := f.do(t, http.MethodPost, "/login", "", models.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong",
	})

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "wrong email or password", decodeBody[models.MessageResponse](t, rec).Message)
}

func TestRoutes_Register(t *testing.T) {
	f := newHandlerFixture(t)

	f.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, u models.User) (models.User, error) {
			u.UserID = 10
			return u, nil
		},
	)

	rec := f.do(t, http.MethodPost, "/register", "", models.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "s3cret",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "accessToken", "registration never hands out a token")
}

func TestRoutes_Register_DuplicateEmail(t *testing.T) {
	f := newHandlerFixture(t)

	f.users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	rec := f.do(t, http.MethodPost, "/register", "", models.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "s3cret",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

// ── Bearer-token middleware ──────────────────────────────────────────────────

func TestRoutes_AuthRequired(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(t, http.MethodGet, "/years", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = f.do(t, http.MethodGet, "/years", "Bearer not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	forged, err := utils.GenerateJWTToken("festivize", models.User{UserID: 3}, time.Hour, "other-key")
	require.NoError(t, err)
	rec = f.do(t, http.MethodGet, "/years", "Bearer "+forged.String(), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoutes_AdminRequired(t *testing.T) {
	f := newHandlerFixture(t)
	token := bearerToken(t, models.RoleUser)

	rec := f.do(t, http.MethodPost, "/years", token, models.YearRecord{Year: 2026})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodPut, "/years/2024/status", token, models.YearStatusRequest{IsClosed: true})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodDelete, "/receiveditem/c1", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = f.do(t, http.MethodDelete, "/expenditure/e1", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// ── Years ────────────────────────────────────────────────────────────────────

func TestRoutes_ListYears(t *testing.T) {
	f := newHandlerFixture(t)

	f.years.EXPECT().ListYears(gomock.Any()).Return([]models.YearRecord{
		{Year: 2025}, {Year: 2024, IsClosed: true},
	}, nil)

	rec := f.do(t, http.MethodGet, "/years", bearerToken(t, models.RoleUser), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[models.YearsResponse](t, rec)
	require.Len(t, resp.Data, 2)
	assert.True(t, resp.Data[1].IsClosed)
}

func TestRoutes_ListYears_EmptyCatalogIsAnArray(t *testing.T) {
	f := newHandlerFixture(t)

	f.years.EXPECT().ListYears(gomock.Any()).Return(nil, nil)

	rec := f.do(t, http.MethodGet, "/years", bearerToken(t, models.RoleUser), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestRoutes_CreateYear(t *testing.T) {
	f := newHandlerFixture(t)

	f.years.EXPECT().CreateYear(gomock.Any(), 2026).Return(models.YearRecord{Year: 2026}, nil)

	rec := f.do(t, http.MethodPost, "/years", bearerToken(t, models.RoleAdmin), models.YearRecord{Year: 2026})

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody[models.YearResponse](t, rec)
	assert.Equal(t, 2026, resp.Data.Year)
	assert.Equal(t, "year created", resp.Message)
}

func TestRoutes_CreateYear_Duplicate(t *testing.T) {
	f := newHandlerFixture(t)

	f.years.EXPECT().CreateYear(gomock.Any(), 2025).Return(models.YearRecord{}, store.ErrYearAlreadyExists)

	rec := f.do(t, http.MethodPost, "/years", bearerToken(t, models.RoleAdmin), models.YearRecord{Year: 2025})

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRoutes_UpdateYearStatus(t *testing.T) {
	f := newHandlerFixture(t)

	f.years.EXPECT().UpdateYearStatus(gomock.Any(), 2024, true).
		Return(models.YearRecord{Year: 2024, IsClosed: true}, nil)

	rec := f.do(t, http.MethodPut, "/years/2024/status", bearerToken(t, models.RoleAdmin),
		models.YearStatusRequest{IsClosed: true})

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[models.YearStatusResponse](t, rec)
	assert.True(t, resp.Data.IsClosed)
}

func TestRoutes_UpdateYearStatus_UnknownYear(t *testing.T) {
	f := newHandlerFixture(t)

	f.years.EXPECT().UpdateYearStatus(gomock.Any(), 1999, true).
		Return(models.YearRecord{}, store.ErrYearNotFound)

	rec := f.do(t, http.MethodPut, "/years/1999/status", bearerToken(t, models.RoleAdmin),
		models.YearStatusRequest{IsClosed: true})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ── Ledger ───────────────────────────────────────────────────────────────────

func TestRoutes_ListContributions_FiltersByYear(t *testing.T) {
	f := newHandlerFixture(t)

	f.contributions.EXPECT().ListContributions(gomock.Any(), 2025).Return([]models.Contribution{
		{ID: "c1", Year: 2025, DonorName: "Rotary Club", Kind: models.ContributionCash, Amount: 500},
	}, nil)

	rec := f.do(t, http.MethodGet, "/receiveditems?year=2025", bearerToken(t, models.RoleUser), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[models.ContributionsResponse](t, rec)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Rotary Club", resp.Data[0].DonorName)
}

func TestRoutes_AddContribution(t *testing.T) {
	f := newHandlerFixture(t)

	f.years.EXPECT().GetYear(gomock.Any(), 2025).Return(models.YearRecord{Year: 2025}, nil)
	f.contributions.EXPECT().CreateContribution(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, c models.Contribution) (models.Contribution, error) { return c, nil },
	)

	rec := f.do(t, http.MethodPost, "/receiveditem", bearerToken(t, models.RoleUser), models.Contribution{
		Year:      2025,
		DonorName: "Ana",
		Kind:      models.ContributionItem,
		Description: "folding tables",
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody[models.ContributionResponse](t, rec)
	assert.NotEmpty(t, resp.Data.ID)
}

func TestRoutes_AddContribution_ClosedYear(t *testing.T) {
	f := newHandlerFixture(t)

	f.years.EXPECT().GetYear(gomock.Any(), 2024).Return(models.YearRecord{Year: 2024, IsClosed: true}, nil)

	rec := f.do(t, http.MethodPost, "/receiveditem", bearerToken(t, models.RoleUser), models.Contribution{
		Year:      2024,
		DonorName: "Ana",
		Kind:      models.ContributionCash,
		Amount:    100,
	})

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "year is closed", decodeBody[models.MessageResponse](t, rec).Message)
}

func TestRoutes_UpdateContribution_IDComesFromPath(t *testing.T) {
	f := newHandlerFixture(t)

	f.contributions.EXPECT().GetContribution(gomock.Any(), "c1").
		Return(models.Contribution{ID: "c1", Year: 2025, DonorName: "Ana", Kind: models.ContributionCash, Amount: 100}, nil)
	f.years.EXPECT().GetYear(gomock.Any(), 2025).Return(models.YearRecord{Year: 2025}, nil)
	f.contributions.EXPECT().UpdateContribution(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, c models.Contribution) (models.Contribution, error) {
			assert.Equal(t, "c1", c.ID)
			return c, nil
		},
	)

	rec := f.do(t, http.MethodPut, "/receiveditem/c1", bearerToken(t, models.RoleUser), models.Contribution{
		Year:      2025,
		DonorName: "Ana",
		Kind:      models.ContributionCash,
		Amount:    250,
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_DeleteContribution_AdminOnly(t *testing.T) {
	f := newHandlerFixture(t)

	// A regular user never reaches the repository.
	rec := f.do(t, http.MethodDelete, "/receiveditem/c1", bearerToken(t, models.RoleUser), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	f.contributions.EXPECT().GetContribution(gomock.Any(), "c1").
		Return(models.Contribution{ID: "c1", Year: 2025}, nil)
	f.years.EXPECT().GetYear(gomock.Any(), 2025).Return(models.YearRecord{Year: 2025}, nil)
	f.contributions.EXPECT().DeleteContribution(gomock.Any(), "c1").Return(nil)

	rec = f.do(t, http.MethodDelete, "/receiveditem/c1", bearerToken(t, models.RoleAdmin), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_DeleteContribution_NotFound(t *testing.T) {
	f := newHandlerFixture(t)

	f.contributions.EXPECT().GetContribution(gomock.Any(), "ghost").
		Return(models.Contribution{}, store.ErrRecordNotFound)

	rec := f.do(t, http.MethodDelete, "/receiveditem/ghost", bearerToken(t, models.RoleAdmin), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_AddExpenditure(t *testing.T) {
	f := newHandlerFixture(t)

	f.years.EXPECT().GetYear(gomock.Any(), 2025).Return(models.YearRecord{Year: 2025}, nil)
	f.expenditures.EXPECT().CreateExpenditure(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, e models.Expenditure) (models.Expenditure, error) { return e, nil },
	)

	rec := f.do(t, http.MethodPost, "/expenditure", bearerToken(t, models.RoleUser), models.Expenditure{
		Year:    2025,
		Purpose: "stage rental",
		Amount:  1200,
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody[models.ExpenditureResponse](t, rec)
	assert.Equal(t, "stage rental", resp.Data.Purpose)
}

func TestRoutes_DeleteExpenditure_AdminOnly(t *testing.T) {
	f := newHandlerFixture(t)

	f.expenditures.EXPECT().GetExpenditure(gomock.Any(), "e1").
		Return(models.Expenditure{ID: "e1", Year: 2025}, nil)
	f.years.EXPECT().GetYear(gomock.Any(), 2025).Return(models.YearRecord{Year: 2025}, nil)
	f.expenditures.EXPECT().DeleteExpenditure(gomock.Any(), "e1").Return(nil)

	rec := f.do(t, http.MethodDelete, "/expenditure/e1", bearerToken(t, models.RoleAdmin), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// ── Gallery ──────────────────────────────────────────────────────────────────

func TestRoutes_UploadImage(t *testing.T) {
	f := newHandlerFixture(t)

	f.images.EXPECT().SaveImage(gomock.Any(), "photo.jpg", []byte("jpeg-bytes")).
		Return(models.Image{ID: "img-1", FileName: "photo.jpg", URL: "/images/img-1"}, nil)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", "photo.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", bearerToken(t, models.RoleUser))

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decodeBody[models.ImageResponse](t, rec)
	assert.Equal(t, "/images/img-1", resp.Data.URL)
}

func TestRoutes_ServeImage_IsPublic(t *testing.T) {
	f := newHandlerFixture(t)

	f.images.EXPECT().Open(gomock.Any(), "img-1").Return([]byte("jpeg-bytes"), "photo.jpg", nil)

	// No Authorization header: stored files are served to anyone with the link.
	rec := f.do(t, http.MethodGet, "/images/img-1", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jpeg-bytes", rec.Body.String())
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "image/jpeg"))
}

func TestRoutes_ServeImage_NotFound(t *testing.T) {
	f := newHandlerFixture(t)

	f.images.EXPECT().Open(gomock.Any(), "ghost").Return(nil, "", store.ErrRecordNotFound)

	rec := f.do(t, http.MethodGet, "/images/ghost", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes_UnknownPath(t *testing.T) {
	f := newHandlerFixture(t)

	rec := f.do(t, http.MethodGet, "/nope", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decodeBody[models.MessageResponse](t, rec).Message)
}
