package handler

import (
	"github.com/festivize/festivize/internal/config"
	"github.com/festivize/festivize/internal/handler/grpc"
	"github.com/festivize/festivize/internal/handler/http"
	"github.com/festivize/festivize/internal/logger"
	"github.com/festivize/festivize/internal/service"
)

// Handlers aggregates the transport handlers enabled by the configuration.
type Handlers struct {
	HTTP *http.HTTPHandler
	GRPC *grpc.Handler
}

// NewHandlers creates the handlers for every configured transport address.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHTTPHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
