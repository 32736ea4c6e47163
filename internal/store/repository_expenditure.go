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

// expenditureRepository is the SQL-backed implementation of
// [ExpenditureRepository].
type expenditureRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewExpenditureRepository constructs an [ExpenditureRepository] backed by
// the provided database connection and logger.
func NewExpenditureRepository(db *DB, logger *logger.Logger) ExpenditureRepository {
	logger.Debug().Msg("creating expenditure repository")
	return &expenditureRepository{
		db:     db,
		logger: logger,
	}
}

func (r *expenditureRepository) ListExpenditures(ctx context.Context, year int) ([]models.Expenditure, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder.
		Select("id", "year", "purpose", "amount", "spent_at").
		From(models.Expenditure{}.TableName()).
		OrderBy("spent_at DESC")
	if year != 0 {
		builder = builder.Where(squirrel.Eq{"year": year})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list expenditures query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*expenditureRepository.ListExpenditures").Msg("error: query error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var items []models.Expenditure
	for rows.Next() {
		var e models.Expenditure
		if err := rows.Scan(&e.ID, &e.Year, &e.Purpose, &e.Amount, &e.SpentAt); err != nil {
			return nil, fmt.Errorf("scan expenditure row: %w", err)
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenditure rows: %w", err)
	}

	return items, nil
}

func (r *expenditureRepository) CreateExpenditure(ctx context.Context, e models.Expenditure) (models.Expenditure, error) {
	query, args, err := r.db.builder.
		Insert(e.TableName()).
		Columns("id", "year", "purpose", "amount", "spent_at").
		Values(e.ID, e.Year, e.Purpose, e.Amount, e.SpentAt).
		ToSql()
	if err != nil {
		return models.Expenditure{}, fmt.Errorf("build create expenditure query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return models.Expenditure{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return e, nil
}

func (r *expenditureRepository) UpdateExpenditure(ctx context.Context, e models.Expenditure) (models.Expenditure, error) {
	query, args, err := r.db.builder.
		Update(e.TableName()).
		Set("purpose", e.Purpose).
		Set("amount", e.Amount).
		Set("spent_at", e.SpentAt).
		Where(squirrel.Eq{"id": e.ID}).
		ToSql()
	if err != nil {
		return models.Expenditure{}, fmt.Errorf("build update expenditure query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return models.Expenditure{}, fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected, err := res.RowsAffected(); err != nil {
		return models.Expenditure{}, fmt.Errorf("rows affected: %w", err)
	} else if affected == 0 {
		return models.Expenditure{}, ErrRecordNotFound
	}

	return e, nil
}

func (r *expenditureRepository) DeleteExpenditure(ctx context.Context, id string) error {
	query, args, err := r.db.builder.
		Delete(models.Expenditure{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete expenditure query: %w", err)
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

func (r *expenditureRepository) GetExpenditure(ctx context.Context, id string) (models.Expenditure, error) {
	query, args, err := r.db.builder.
		Select("id", "year", "purpose", "amount", "spent_at").
		From(models.Expenditure{}.TableName()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Expenditure{}, fmt.Errorf("build get expenditure query: %w", err)
	}

	var e models.Expenditure
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&e.ID, &e.Year, &e.Purpose, &e.Amount, &e.SpentAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Expenditure{}, ErrRecordNotFound
		}
		return models.Expenditure{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return e, nil
}
