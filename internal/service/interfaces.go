package service

import (
	"context"

	"github.com/festivize/festivize/models"
)

// AuthService handles registration, login and token validation.
type AuthService interface {
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login checks credentials and issues a signed token on success.
	Login(ctx context.Context, email, password string) (models.Token, error)

	// ParseToken validates a bearer token string and returns its claims.
	ParseToken(tokenString string) (models.Token, error)
}

// YearService manages the fiscal year catalog.
type YearService interface {
	// ListYears returns all years, most recent first.
	ListYears(ctx context.Context) ([]models.YearRecord, error)

	// CreateYear registers a new open year.
	CreateYear(ctx context.Context, year int) (models.YearRecord, error)

	// SetYearStatus opens or closes an existing year.
	SetYearStatus(ctx context.Context, year int, isClosed bool) (models.YearRecord, error)

	// IsYearClosed reports whether the year exists and is closed.
	IsYearClosed(ctx context.Context, year int) (bool, error)
}

// LedgerService manages received items and expenditures. Mutations against a
// closed year are rejected with ErrYearClosed.
type LedgerService interface {
	ListContributions(ctx context.Context, year int) ([]models.Contribution, error)
	AddContribution(ctx context.Context, c models.Contribution) (models.Contribution, error)
	UpdateContribution(ctx context.Context, c models.Contribution) (models.Contribution, error)
	DeleteContribution(ctx context.Context, id string) error

	ListExpenditures(ctx context.Context, year int) ([]models.Expenditure, error)
	AddExpenditure(ctx context.Context, e models.Expenditure) (models.Expenditure, error)
	UpdateExpenditure(ctx context.Context, e models.Expenditure) (models.Expenditure, error)
	DeleteExpenditure(ctx context.Context, id string) error
}

// GalleryService manages uploaded photos.
type GalleryService interface {
	ListImages(ctx context.Context) ([]models.Image, error)
	UploadImage(ctx context.Context, fileName string, content []byte) (models.Image, error)
	OpenImage(ctx context.Context, id string) ([]byte, string, error)
}
