package store

import (
	"context"

	"github.com/festivize/festivize/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mocks.go -package=mock

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns the account matching the email, or
	// ErrNoUserWasFound.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// YearRepository persists fiscal year records.
type YearRepository interface {
	// ListYears returns all known years sorted descending.
	ListYears(ctx context.Context) ([]models.YearRecord, error)

	// CreateYear inserts a new open year. Returns ErrYearAlreadyExists on a
	// duplicate.
	CreateYear(ctx context.Context, year int) (models.YearRecord, error)

	// UpdateYearStatus sets the closed flag of an existing year. Returns
	// ErrYearNotFound when the year does not exist.
	UpdateYearStatus(ctx context.Context, year int, isClosed bool) (models.YearRecord, error)

	// GetYear returns a single year record, or ErrYearNotFound.
	GetYear(ctx context.Context, year int) (models.YearRecord, error)
}

// ContributionRepository persists received items.
type ContributionRepository interface {
	// ListContributions returns contributions, newest first, optionally
	// filtered by year (year == 0 means all).
	ListContributions(ctx context.Context, year int) ([]models.Contribution, error)

	// CreateContribution inserts a record with a pre-assigned ID.
	CreateContribution(ctx context.Context, c models.Contribution) (models.Contribution, error)

	// UpdateContribution replaces the record matching c.ID, or returns
	// ErrRecordNotFound.
	UpdateContribution(ctx context.Context, c models.Contribution) (models.Contribution, error)

	// DeleteContribution removes the record, or returns ErrRecordNotFound.
	DeleteContribution(ctx context.Context, id string) error

	// GetContribution returns a single record, or ErrRecordNotFound.
	GetContribution(ctx context.Context, id string) (models.Contribution, error)
}

// ExpenditureRepository persists expenditures.
type ExpenditureRepository interface {
	// ListExpenditures returns expenditures, newest first, optionally
	// filtered by year (year == 0 means all).
	ListExpenditures(ctx context.Context, year int) ([]models.Expenditure, error)

	// CreateExpenditure inserts a record with a pre-assigned ID.
	CreateExpenditure(ctx context.Context, e models.Expenditure) (models.Expenditure, error)

	// UpdateExpenditure replaces the record matching e.ID, or returns
	// ErrRecordNotFound.
	UpdateExpenditure(ctx context.Context, e models.Expenditure) (models.Expenditure, error)

	// DeleteExpenditure removes the record, or returns ErrRecordNotFound.
	DeleteExpenditure(ctx context.Context, id string) error

	// GetExpenditure returns a single record, or ErrRecordNotFound.
	GetExpenditure(ctx context.Context, id string) (models.Expenditure, error)
}

// ImageStore persists uploaded gallery photos.
type ImageStore interface {
	// SaveImage stores the file content and returns the image descriptor.
	SaveImage(ctx context.Context, fileName string, content []byte) (models.Image, error)

	// ListImages returns descriptors for all stored images, newest first.
	ListImages(ctx context.Context) ([]models.Image, error)

	// Open returns the stored file content for serving.
	Open(ctx context.Context, id string) ([]byte, string, error)
}
