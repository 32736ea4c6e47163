// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/festivize/festivize/internal/logger"
	"github.com/festivize/festivize/internal/store"
	"github.com/festivize/festivize/models"
	"github.com/google/uuid"
)

// ledgerService implements [LedgerService]. Every mutation checks the target
// year's closed flag first; records belonging to a closed year are read-only.
type ledgerService struct {
	contributions store.ContributionRepository
	expenditures  store.ExpenditureRepository
	years         YearService
	logger        *logger.Logger
}

// NewLedgerService constructs a [LedgerService].
func NewLedgerService(
	contributions store.ContributionRepository,
	expenditures store.ExpenditureRepository,
	years YearService,
	log *logger.Logger,
) LedgerService {
	log.Debug().Msg("creating ledger service")
	return &ledgerService{
		contributions: contributions,
		expenditures:  expenditures,
		years:         years,
		logger:        log,
	}
}

// guardYearOpen returns ErrYearClosed when the year is closed.
func (s *ledgerService) guardYearOpen(ctx context.Context, year int) error {
	closed, err := s.years.IsYearClosed(ctx, year)
	if err != nil {
		return fmt.Errorf("check year status: %w", err)
	}
	if closed {
		return ErrYearClosed
	}
	return nil
}

func (s *ledgerService) ListContributions(ctx context.Context, year int) ([]models.Contribution, error) {
	return s.contributions.ListContributions(ctx, year)
}

func (s *ledgerService) AddContribution(ctx context.Context, c models.Contribution) (models.Contribution, error) {
	if err := validateContribution(&c); err != nil {
		return models.Contribution{}, err
	}
	if err := s.guardYearOpen(ctx, c.Year); err != nil {
		return models.Contribution{}, err
	}

	c.ID = uuid.NewString()
	if c.ReceivedAt.IsZero() {
		c.ReceivedAt = time.Now()
	}

	return s.contributions.CreateContribution(ctx, c)
}

func (s *ledgerService) UpdateContribution(ctx context.Context, c models.Contribution) (models.Contribution, error) {
	if c.ID == "" {
		return models.Contribution{}, ErrInvalidDataProvided
	}
	if err := validateContribution(&c); err != nil {
		return models.Contribution{}, err
	}

	existing, err := s.contributions.GetContribution(ctx, c.ID)
	if err != nil {
		return models.Contribution{}, err
	}
	if err := s.guardYearOpen(ctx, existing.Year); err != nil {
		return models.Contribution{}, err
	}

	c.Year = existing.Year
	return s.contributions.UpdateContribution(ctx, c)
}

func (s *ledgerService) DeleteContribution(ctx context.Context, id string) error {
	existing, err := s.contributions.GetContribution(ctx, id)
	if err != nil {
		return err
	}
	if err := s.guardYearOpen(ctx, existing.Year); err != nil {
		return err
	}

	return s.contributions.DeleteContribution(ctx, id)
}

func (s *ledgerService) ListExpenditures(ctx context.Context, year int) ([]models.Expenditure, error) {
	return s.expenditures.ListExpenditures(ctx, year)
}

func (s *ledgerService) AddExpenditure(ctx context.Context, e models.Expenditure) (models.Expenditure, error) {
	if err := validateExpenditure(&e); err != nil {
		return models.Expenditure{}, err
	}
	if err := s.guardYearOpen(ctx, e.Year); err != nil {
		return models.Expenditure{}, err
	}

	e.ID = uuid.NewString()
	if e.SpentAt.IsZero() {
		e.SpentAt = time.Now()
	}

	return s.expenditures.CreateExpenditure(ctx, e)
}

func (s *ledgerService) UpdateExpenditure(ctx context.Context, e models.Expenditure) (models.Expenditure, error) {
	if e.ID == "" {
		return models.Expenditure{}, ErrInvalidDataProvided
	}
	if err := validateExpenditure(&e); err != nil {
		return models.Expenditure{}, err
	}

	existing, err := s.expenditures.GetExpenditure(ctx, e.ID)
	if err != nil {
		return models.Expenditure{}, err
	}
	if err := s.guardYearOpen(ctx, existing.Year); err != nil {
		return models.Expenditure{}, err
	}

	e.Year = existing.Year
	return s.expenditures.UpdateExpenditure(ctx, e)
}

func (s *ledgerService) DeleteExpenditure(ctx context.Context, id string) error {
	existing, err := s.expenditures.GetExpenditure(ctx, id)
	if err != nil {
		return err
	}
	if err := s.guardYearOpen(ctx, existing.Year); err != nil {
		return err
	}

	return s.expenditures.DeleteExpenditure(ctx, id)
}

func validateContribution(c *models.Contribution) error {
	if c.Year == 0 {
		c.Year = time.Now().Year()
	}
	if c.DonorName == "" {
		return ErrInvalidDataProvided
	}
	switch c.Kind {
	case models.ContributionCash:
		if c.Amount <= 0 {
			return ErrInvalidDataProvided
		}
	case models.ContributionItem:
		if c.Description == "" {
			return ErrInvalidDataProvided
		}
	default:
		return ErrInvalidDataProvided
	}
	return nil
}

func validateExpenditure(e *models.Expenditure) error {
	if e.Year == 0 {
		e.Year = time.Now().Year()
	}
	if e.Purpose == "" || e.Amount <= 0 {
		return ErrInvalidDataProvided
	}
	return nil
}
