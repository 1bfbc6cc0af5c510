package workers

import (
	"coffee-chat/contract"
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

const defaultHeartbeatInterval = time.Minute

// HeartbeatWorker logs the process resource usage and the status of the latest round.
type HeartbeatWorker struct {
	log      *slog.Logger
	queue    contract.IJobQueue
	interval time.Duration
}

func NewHeartbeatWorker(log *slog.Logger, queue contract.IJobQueue, interval time.Duration) *HeartbeatWorker {
	if interval <= 0 {
		interval = defaultHeartbeatInterval
	}
	return &HeartbeatWorker{log: log, queue: queue, interval: interval}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			w.beat(p)
		}
	}
}

func (w *HeartbeatWorker) beat(p *process.Process) {
	attrs := []any{"pid", p.Pid}
	if rss, cpu, err := selfStats(p); err != nil {
		w.log.Warn("Failed to collect self stats", "error", err)
	} else {
		attrs = append(attrs, "rss_bytes", rss, "cpu_percent", cpu)
	}
	if job, err := w.queue.Latest(); err == nil {
		attrs = append(attrs, "last_round", job.Status, "last_round_submitted_at", job.SubmittedAt)
	}
	w.log.Info("Heartbeat", attrs...)
}

func selfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
