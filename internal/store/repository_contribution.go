package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/festivize/festivize/internal/logger"
	"github.com/festivize/festivize/models"
)

// contributionRepository is the SQL-backed implementation of
// [ContributionRepository].
type contributionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewContributionRepository constructs a [ContributionRepository] backed by
// the provided database connection and logger.
func NewContributionRepository(db *DB, logger *logger.Logger) ContributionRepository {
	logger.Debug().Msg("creating contribution repository")
	return &contributionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *contributionRepository) ListContributions(ctx context.Context, year int) ([]models.Contribution, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder.
		Select("id", "year", "donor_name", "kind", "amount", "description", "received_at").
		From(models.Contribution{}.TableName()).
		OrderBy("received_at DESC")
	if year != 0 {
		builder = builder.Where(squirrel.Eq{"year": year})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list contributions query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*contributionRepository.ListContributions").Msg("error: query error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var items []models.Contribution
	for rows.Next() {
		var c models.Contribution
		if err := rows.Scan(&c.ID, &c.Year, &c.DonorName, &c.Kind, &c.Amount, &c.Description, &c.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scan contribution row: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contribution rows: %w", err)
	}

	return items, nil
}

func (r *contributionRepository) CreateContribution(ctx context.Context, c models.Contribution) (models.Contribution, error) {
	query, args, err := r.db.builder.
		Insert(c.TableName()).
		Columns("id", "year", "donor_name", "kind", "amount", "description", "received_at").
		Values(c.ID, c.Year, c.DonorName, c.Kind, c.Amount, c.Description, c.ReceivedAt).
		ToSql()
	if err != nil {
		return models.Contribution{}, fmt.Errorf("build create contribution query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return models.Contribution{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return c, nil
}

func (r *contributionRepository) UpdateContribution(ctx context.Context, c models.Contribution) (models.Contribution, error) {
	query, args, err := r.db.builder.
		Update(c.TableName()).
		Set("donor_name", c.DonorName).
		Set("kind", c.Kind).
		Set("amount", c.Amount).
		Set("description", c.Description).
		Set("received_at", c.ReceivedAt).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return models.Contribution{}, fmt.Errorf("build update contribution query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Contribution{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected, err := res.RowsAffected(); err != nil {
		return models.Contribution{}, fmt.Errorf("rows affected: %w", err)
	} else if affected == 0 {
		return models.Contribution{}, ErrRecordNotFound
	}

	return c, nil
}

func (r *contributionRepository) DeleteContribution(ctx context.Context, id string) error {
	query, args, err := r.db.builder.
		Delete(models.Contribution{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete contribution query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("rows affected: %w", err)
	} else if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (r *contributionRepository) GetContribution(ctx context.Context, id string) (models.Contribution, error) {
	query, args, err := r.db.builder.
		Select("id", "year", "donor_name", "kind", "amount", "description", "received_at").
		From(models.Contribution{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Contribution{}, fmt.Errorf("build get contribution query: %w", err)
	}

	var c models.Contribution
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&c.ID, &c.Year, &c.DonorName, &c.Kind, &c.Amount, &c.Description, &c.ReceivedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contribution{}, ErrRecordNotFound
		}
		return models.Contribution{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return c, nil
}
