// Package grpc reserves the gRPC transport surface. The REST API is the only
// transport currently served; this handler exists so a future gRPC listener
// can be enabled through configuration without restructuring the wiring.
package grpc

import (
	"github.com/festivize/festivize/internal/logger"
	"github.com/festivize/festivize/internal/service"
)

// Handler will carry the gRPC service implementations once the protobuf
// contract is defined.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

// NewHandler constructs the gRPC handler set.
func NewHandler(services *service.Services, log *logger.Logger) *Handler {
	log.Debug().Msg("creating grpc handlers")
	return &Handler{
		services: services,
		logger:   log,
	}
}
