package server

import (
	"net"

	"github.com/festivize/festivize/internal/config"
	myGRPC "github.com/festivize/festivize/internal/handler/grpc"
	"github.com/festivize/festivize/internal/logger"

	"google.golang.org/grpc"
)

// grpcServer is the reserved gRPC transport. No services are registered yet;
// the listener is held so enabling the transport later is a config change.
type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		logger.Error().Msgf("gRPC listen on %s: %v", cfg.GRPCAddress, err)
		return nil
	}

	return &grpcServer{
		handler:         handler,
		server:          grpc.NewServer(),
		gRPCNetListener: listener,
		logger:          logger,
	}
}

func (g *grpcServer) RunServer() {
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Msgf("gRPC server Serve: %v\n", err)
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.server.GracefulStop()
}
