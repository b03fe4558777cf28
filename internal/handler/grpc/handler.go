package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-door-keeper/internal/logger"
	"github.com/MKhiriev/go-door-keeper/internal/service"
	"github.com/MKhiriev/go-door-keeper/models"
)

// Handler is the root gRPC transport handler. It serves
// doorkeeper.AccessControl on top of the service layer.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register attaches the handler to s.
func (h *Handler) Register(s *grpc.Server) {
	s.RegisterService(&AccessControlServiceDesc, h)
}

// ServerOptions returns the codec and interceptors the handler expects.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{
		grpc.ForceServerCodec(JSONCodec{}),
		grpc.ChainUnaryInterceptor(h.withTraceID, h.withLogging, h.withRecovery),
	}
}

// Authenticate runs one protocol step. Refusals come back as a response with
// status "err" and a nil error, as over HTTP.
func (h *Handler) Authenticate(ctx context.Context, req *models.AccessRequest) (*models.Response, error) {
	resp := h.services.Access.Authenticate(ctx, *req)
	return &resp, nil
}
