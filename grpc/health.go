package grpc

import (
	"coffee-chat/domain"
	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// RoundsService is the health service name reflecting the latest round.
const RoundsService = "pairing.Rounds"

// HealthReporter publishes the process and latest round state through the gRPC health protocol.
type HealthReporter struct {
	server *health.Server
	log    *slog.Logger
}

func NewHealthReporter(log *slog.Logger) *HealthReporter {
	server := health.NewServer()
	server.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	server.SetServingStatus(RoundsService, healthpb.HealthCheckResponse_SERVING)
	return &HealthReporter{server: server, log: log}
}

func (h *HealthReporter) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.server)
}

// JobDone marks the rounds service NOT_SERVING after a failed round
// and SERVING again once a round is persisted.
func (h *HealthReporter) JobDone(job domain.Job) {
	status := healthpb.HealthCheckResponse_SERVING
	if job.Status == domain.JobFailed {
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.server.SetServingStatus(RoundsService, status)
	h.log.Debug("Rounds health updated", "job", job.ID, "status", status.String())
}

func (h *HealthReporter) Shutdown() {
	h.server.Shutdown()
}
