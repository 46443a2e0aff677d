// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-inventory-sync/internal/logger"
)

// ServiceName is the health-checked service name of the sync engine.
const ServiceName = "inventory.sync"

// Handler is the root gRPC transport handler.
//
// The sync engine exposes no RPCs of its own; the gRPC listener only carries
// the standard grpc.health.v1 service so orchestrators can probe the process
// without credentials. A handler instance is created once at startup and
// shared by the gRPC server.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose health status starts as SERVING.
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches every service of the handler to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// Shutdown flips every service to NOT_SERVING so in-flight health probes
// observe the drain before the listener closes.
func (h *Handler) Shutdown() {
	h.logger.Info().Msg("marking gRPC health as NOT_SERVING")
	h.health.Shutdown()
}
