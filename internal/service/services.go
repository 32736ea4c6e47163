// SPDX-License-Identifier: Apache-2.0

// Package service contains the backend business logic: authentication and
// token issuance, the fiscal year catalog, the contribution and expenditure
// ledger, and the photo gallery.
package service

import (
	"github.com/festivize/festivize/internal/config"
	"github.com/festivize/festivize/internal/logger"
	"github.com/festivize/festivize/internal/store"
)

// Services aggregates every service the handlers need.
type Services struct {
	Auth    AuthService
	Years   YearService
	Ledger  LedgerService
	Gallery GalleryService
}

// NewServices wires all services on top of the provided storages.
func NewServices(storages *store.Storages, auth config.Auth, log *logger.Logger) *Services {
	years := NewYearService(storages.Years, log)

	return &Services{
		Auth:    NewAuthService(storages.Users, auth, log),
		Years:   years,
		Ledger:  NewLedgerService(storages.Contributions, storages.Expenditures, years, log),
		Gallery: NewGalleryService(storages.Images, log),
	}
}
