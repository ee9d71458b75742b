// Package grpchealth поднимает стандартный grpc.health.v1 сервис для оркестратора.
package grpchealth

import (
	"errors"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
	"swiftrider/pkg/logger"
)

const keepaliveTime = 5 * time.Minute

type serverLogger interface {
	Info(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
}

type Server struct {
	log    serverLogger
	server *grpc.Server
	health *health.Server
}

func New(log serverLogger) *Server {
	server := grpc.NewServer(grpc.KeepaliveParams(keepalive.ServerParameters{Time: keepaliveTime}))
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(server, healthServer)

	return &Server{
		log:    log,
		server: server,
		health: healthServer,
	}
}

// Serve блокируется до Shutdown. Пока сервер работает, статус SERVING.
func (s *Server) Serve(listener net.Listener) error {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.log.Info("gRPC health server starting", logger.NewField("addr", listener.Addr().String()))

	err := s.server.Serve(listener)
	if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC health: %w", err)
	}
	return nil
}

func (s *Server) ListenAndServe(port string) error {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("listen gRPC health port: %w", err)
	}
	return s.Serve(listener)
}

// NotServing переводит сервис в NOT_SERVING, соединения остаются открытыми.
func (s *Server) NotServing() {
	s.health.Shutdown()
}

func (s *Server) Shutdown() {
	s.health.Shutdown()
	s.server.GracefulStop()
	s.log.Info("gRPC health server stopped")
}
