// SPDX-License-Identifier: Apache-2.0

// Package http exposes the REST API: public login/register endpoints and the
// authenticated year, ledger and gallery endpoints behind bearer-token
// middleware.
package http

import (
	"github.com/festivize/festivize/internal/logger"
	"github.com/festivize/festivize/internal/service"
)

// HTTPHandler holds the services the route handlers dispatch to.
type HTTPHandler struct {
	services *service.Services
	logger   *logger.Logger
}

// NewHTTPHandler constructs the REST handler set.
func NewHTTPHandler(services *service.Services, log *logger.Logger) *HTTPHandler {
	log.Debug().Msg("creating http handlers")
	return &HTTPHandler{
		services: services,
		logger:   log,
	}
}
