package service

import (
	"context"
	"errors"

	"github.com/festivize/festivize/internal/logger"
	"github.com/festivize/festivize/internal/store"
	"github.com/festivize/festivize/models"
)

// Fiscal years must stay within a sane window so typos do not pollute the
// catalog forever.
const (
	minYear = 1900
	maxYear = 3000
)

// yearService implements [YearService].
type yearService struct {
	years  store.YearRepository
	logger *logger.Logger
}

// NewYearService constructs a [YearService].
func NewYearService(years store.YearRepository, log *logger.Logger) YearService {
	log.Debug().Msg("creating year service")
	return &yearService{
		years:  years,
		logger: log,
	}
}

func (s *yearService) ListYears(ctx context.Context) ([]models.YearRecord, error) {
	return s.years.ListYears(ctx)
}

// CreateYear registers a new open year after validating the value.
func (s *yearService) CreateYear(ctx context.Context, year int) (models.YearRecord, error) {
	if year < minYear || year > maxYear {
		return models.YearRecord{}, ErrInvalidDataProvided
	}

	created, err := s.years.CreateYear(ctx, year)
	if err != nil {
		return models.YearRecord{}, err
	}

	logger.FromContext(ctx).Info().Int("year", created.Year).Msg("fiscal year created")
	return created, nil
}

func (s *yearService) SetYearStatus(ctx context.Context, year int, isClosed bool) (models.YearRecord, error) {
	updated, err := s.years.UpdateYearStatus(ctx, year, isClosed)
	if err != nil {
		return models.YearRecord{}, err
	}

	logger.FromContext(ctx).Info().Int("year", year).Bool("isClosed", isClosed).Msg("fiscal year status updated")
	return updated, nil
}

// IsYearClosed reports whether the year is closed. An unknown year reads as
// open so a catalog gap never blocks record keeping.
func (s *yearService) IsYearClosed(ctx context.Context, year int) (bool, error) {
	record, err := s.years.GetYear(ctx, year)
	if err != nil {
		if errors.Is(err, store.ErrYearNotFound) {
			return false, nil
		}
		return false, err
	}
	return record.IsClosed, nil
}
