// SPDX-License-Identifier: Apache-2.0

// Package store contains the persistence layer: SQL repositories for users,
// years and ledger records, plus a filesystem-backed image store.
package store

import (
	"context"
	"fmt"

	"github.com/festivize/festivize/internal/config"
	"github.com/festivize/festivize/internal/logger"
)

// Storages aggregates every repository the services need.
type Storages struct {
	Users         UserRepository
	Years         YearRepository
	Contributions ContributionRepository
	Expenditures  ExpenditureRepository
	Images        ImageStore

	db *DB
}

// NewStorages connects to the configured database, wires all repositories and
// the image store, and returns the aggregate.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case "sqlite3":
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	images, err := NewFileImageStore(cfg.Files.ImagesDir, log)
	if err != nil {
		return nil, fmt.Errorf("init image store: %w", err)
	}

	return &Storages{
		Users:         NewUserRepository(db, log),
		Years:         NewYearRepository(db, log),
		Contributions: NewContributionRepository(db, log),
		Expenditures:  NewExpenditureRepository(db, log),
		Images:        images,
		db:            db,
	}, nil
}

// DB exposes the underlying connection for migrations.
func (s *Storages) DB() *DB {
	return s.db
}

// Close closes the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
