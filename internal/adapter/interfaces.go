// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for communicating with the
// festivize backend.
//
// The primary abstraction is [ServerGateway], which decouples the session and
// year layers from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerGateway]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to [*APIError] (carrying the
// server's {message} envelope text) or [ErrUnauthorized] for 401, so that
// callers can use [errors.Is]/[errors.As] for transport-agnostic handling.
package adapter

import (
	"context"

	"github.com/festivize/festivize/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_gateway_mock.go -package=mock

// ServerGateway defines transport-agnostic communication with the festivize
// backend. Implementations are responsible for serialisation, bearer-token
// header management, and mapping transport-level errors to the values defined
// in this package.
type ServerGateway interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the gateway, or an
	// empty string if no token has been set yet.
	Token() string

	// ClearToken removes the stored bearer token. Subsequent requests are
	// sent without an Authorization header.
	ClearToken()

	// Login exchanges credentials for a bearer token. On success the token
	// is returned together with the server's status message; the gateway
	// does NOT store it — credential ownership stays with the session layer.
	Login(ctx context.Context, email, password string) (token, message string, err error)

	// Register creates a new account and returns the server's status
	// message. Registration never yields a token: it does not establish a
	// session.
	Register(ctx context.Context, name, email, password, role string) (message string, err error)

	// GetYears fetches all known fiscal years.
	GetYears(ctx context.Context) ([]models.YearRecord, error)

	// CreateYear creates a fiscal year. Admin-only server-side; duplicate
	// years are rejected with a message in the returned error.
	CreateYear(ctx context.Context, year int) (models.YearRecord, string, error)

	// UpdateYearStatus toggles the closed flag of an existing year and
	// returns the new flag value as confirmed by the server.
	UpdateYearStatus(ctx context.Context, year int, isClosed bool) (bool, string, error)

	// GetContributions lists received items, optionally filtered by year
	// (year == 0 means no filter).
	GetContributions(ctx context.Context, year int) ([]models.Contribution, error)

	// AddContribution records a new received item.
	AddContribution(ctx context.Context, c models.Contribution) (models.Contribution, error)

	// UpdateContribution replaces the stored record matching c.ID.
	UpdateContribution(ctx context.Context, c models.Contribution) (models.Contribution, error)

	// DeleteContribution removes the record with the given id. Admin-only
	// server-side.
	DeleteContribution(ctx context.Context, id string) error

	// GetExpenditures lists expenditures, optionally filtered by year
	// (year == 0 means no filter).
	GetExpenditures(ctx context.Context, year int) ([]models.Expenditure, error)

	// AddExpenditure records a new expenditure.
	AddExpenditure(ctx context.Context, e models.Expenditure) (models.Expenditure, error)

	// UpdateExpenditure replaces the stored record matching e.ID.
	UpdateExpenditure(ctx context.Context, e models.Expenditure) (models.Expenditure, error)

	// DeleteExpenditure removes the record with the given id. Admin-only
	// server-side.
	DeleteExpenditure(ctx context.Context, id string) error

	// GetImages lists all gallery images.
	GetImages(ctx context.Context) ([]models.Image, error)

	// UploadImage uploads a photo as multipart form data.
	UploadImage(ctx context.Context, fileName string, content []byte) (models.Image, error)

	// HomeMessage fetches the greeting shown on the home screen.
	HomeMessage(ctx context.Context) (string, error)
}
