package workers

import (
	"coffee-chat/contract"
	"context"
	"log/slog"
	"time"
)

const scheduleTrigger = "schedule"

// ScheduleWorker submits a round every interval.
type ScheduleWorker struct {
	queue    contract.IJobQueue
	interval time.Duration
	log      *slog.Logger
}

func NewScheduleWorker(queue contract.IJobQueue, interval time.Duration, log *slog.Logger) *ScheduleWorker {
	return &ScheduleWorker{queue: queue, interval: interval, log: log}
}

func (w *ScheduleWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			job, err := w.queue.Submit(scheduleTrigger)
			if err != nil {
				w.log.Warn("Scheduled round skipped", "error", err)
				continue
			}
			w.log.Info("Scheduled round submitted", "job", job.ID)
		}
	}
}
