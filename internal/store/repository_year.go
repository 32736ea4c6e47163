package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/festivize/festivize/internal/logger"
	"github.com/festivize/festivize/models"
	"github.com/jackc/pgerrcode"
)

// yearRepository is the SQL-backed implementation of [YearRepository].
// Fiscal years are keyed by their 4-digit value; uniqueness is enforced by
// the primary key, so duplicate creation surfaces as ErrYearAlreadyExists.
type yearRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewYearRepository constructs a [YearRepository] backed by the provided
// database connection and logger.
func NewYearRepository(db *DB, logger *logger.Logger) YearRepository {
	logger.Debug().Msg("creating year repository")
	return &yearRepository{
		db:     db,
		logger: logger,
	}
}

// ListYears returns every fiscal year, most recent first.
func (r *yearRepository) ListYears(ctx context.Context) ([]models.YearRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("year", "is_closed").
		From(models.YearRecord{}.TableName()).
		OrderBy("year DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list years query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*yearRepository.ListYears").Msg("error: query error")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var years []models.YearRecord
	for rows.Next() {
		var y models.YearRecord
		if err := rows.Scan(&y.Year, &y.IsClosed); err != nil {
			return nil, fmt.Errorf("scan year row: %w", err)
		}
		years = append(years, y)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate year rows: %w", err)
	}

	return years, nil
}

// CreateYear inserts a new open fiscal year.
func (r *yearRepository) CreateYear(ctx context.Context, year int) (models.YearRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(models.YearRecord{}.TableName()).
		Columns("year", "is_closed").
		Values(year, false).
		ToSql()
	if err != nil {
		return models.YearRecord{}, fmt.Errorf("build create year query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Int("year", year).Str("func", "*yearRepository.CreateYear").Msg("error: exec error")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.YearRecord{}, ErrYearAlreadyExists
		default:
			return models.YearRecord{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return models.YearRecord{Year: year, IsClosed: false}, nil
}

// UpdateYearStatus sets the closed flag of an existing year.
func (r *yearRepository) UpdateYearStatus(ctx context.Context, year int, isClosed bool) (models.YearRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(models.YearRecord{}.TableName()).
		Set("is_closed", isClosed).
		Where("year = ?", year).
		ToSql()
	if err != nil {
		return models.YearRecord{}, fmt.Errorf("build update year query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Int("year", year).Str("func", "*yearRepository.UpdateYearStatus").Msg("error: exec error")
		return models.YearRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.YearRecord{}, fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return models.YearRecord{}, ErrYearNotFound
	}

	return models.YearRecord{Year: year, IsClosed: isClosed}, nil
}

// GetYear returns a single fiscal year record.
func (r *yearRepository) GetYear(ctx context.Context, year int) (models.YearRecord, error) {
	query, args, err := r.db.builder.
		Select("year", "is_closed").
		From(models.YearRecord{}.TableName()).
		Where("year = ?", year).
		ToSql()
	if err != nil {
		return models.YearRecord{}, fmt.Errorf("build get year query: %w", err)
	}

	var y models.YearRecord
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&y.Year, &y.IsClosed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.YearRecord{}, ErrYearNotFound
		}
		return models.YearRecord{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return y, nil
}
