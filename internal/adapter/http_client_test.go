// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/festivize/festivize/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T, handler http.HandlerFunc) ServerGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewHTTPServerGateway(HTTPClientConfig{BaseURL: server.URL})
}

func TestHTTPServerGateway_Login(t *testing.T) {
	gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ana@example.com", req.Email)

		_ = json.NewEncoder(w).Encode(models.LoginResponse{
			AccessToken: "signed-token",
			Message:     "login successful",
		})
	})

	token, message, err := gateway.Login(context.Background(), "ana@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, "login successful", message)
}

func TestHTTPServerGateway_BearerHeader(t *testing.T) {
	var sawHeader string
	gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		sawHeader = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(models.YearsResponse{})
	})

	// Without a token the header must be absent, not empty.
	_, err := gateway.GetYears(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sawHeader)

	gateway.SetToken("abc")
	_, err = gateway.GetYears(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", sawHeader)

	gateway.ClearToken()
	_, err = gateway.GetYears(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sawHeader)
}

func TestHTTPServerGateway_UnauthorizedSentinel(t *testing.T) {
	gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "token is expired or invalid"})
	})

	_, err := gateway.GetYears(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	// The server's message rides along so callers can show it verbatim.
	assert.ErrorContains(t, err, "token is expired or invalid")
}

func TestHTTPServerGateway_RejectedLoginKeepsServerMessage(t *testing.T) {
	gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "wrong email or password"})
	})

	_, _, err := gateway.Login(context.Background(), "ana@example.com", "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorContains(t, err, "wrong email or password")
}

func TestHTTPServerGateway_UnauthorizedWithoutBody(t *testing.T) {
	gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := gateway.GetYears(context.Background())
	assert.Equal(t, ErrUnauthorized, err)
}

func TestHTTPServerGateway_ServerMessageSurfacesAsAPIError(t *testing.T) {
	gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "year is closed"})
	})

	_, err := gateway.AddContribution(context.Background(), models.Contribution{Year: 2024})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, "year is closed", apiErr.Error())
}

func TestHTTPServerGateway_GetContributions_YearFilter(t *testing.T) {
	var sawQuery string
	gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/receiveditems", r.URL.Path)
		sawQuery = r.URL.Query().Get("year")
		_ = json.NewEncoder(w).Encode(models.ContributionsResponse{
			Data: []models.Contribution{{ID: "c1", Year: 2025}},
		})
	})

	items, err := gateway.GetContributions(context.Background(), 2025)
	require.NoError(t, err)
	assert.Equal(t, "2025", sawQuery)
	require.Len(t, items, 1)

	// Year zero means no filter at all.
	_, err = gateway.GetContributions(context.Background(), 0)
	require.NoError(t, err)
	assert.Empty(t, sawQuery)
}

func TestHTTPServerGateway_UpdateYearStatus(t *testing.T) {
	gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/years/2024/status", r.URL.Path)

		var req models.YearStatusRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.IsClosed)

		_ = json.NewEncoder(w).Encode(models.YearStatusResponse{
			Data:    req,
			Message: "year status updated",
		})
	})

	closed, message, err := gateway.UpdateYearStatus(context.Background(), 2024, true)
	require.NoError(t, err)
	assert.True(t, closed)
	assert.Equal(t, "year status updated", message)
}

func TestHTTPServerGateway_UploadImage(t *testing.T) {
	gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "photo.jpg", header.Filename)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.ImageResponse{
			Data: models.Image{ID: "img-1", URL: "/images/img-1"},
		})
	})

	image, err := gateway.UploadImage(context.Background(), "photo.jpg", []byte("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/images/img-1", image.URL)
}

func TestHTTPServerGateway_DeleteExpenditure(t *testing.T) {
	gateway := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/expenditure/e1", r.URL.Path)
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Message: "expenditure deleted"})
	})

	require.NoError(t, gateway.DeleteExpenditure(context.Background(), "e1"))
}
