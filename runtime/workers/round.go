package workers

import (
	"coffee-chat/contract"
	"coffee-chat/domain"
	"coffee-chat/errors"
	"context"
	goerrors "errors"
	"fmt"
	"log/slog"
)

// RoundWorker executes queued rounds one after the other.
// Being the only consumer of the queue, it never runs two rounds at once.
type RoundWorker struct {
	queue    contract.IJobQueue
	executor contract.RoundExecutor
	log      *slog.Logger
}

func NewRoundWorker(queue contract.IJobQueue, executor contract.RoundExecutor, log *slog.Logger) *RoundWorker {
	return &RoundWorker{queue: queue, executor: executor, log: log}
}

func (w *RoundWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case id := <-w.queue.Pending():
			if err := w.queue.MarkRunning(id); err != nil {
				w.log.Error("Unable to start job", "job", id, "error", err)
				continue
			}
			w.log.Info("Round started", "job", id)

			outcome, err := w.execute(ctx)
			if err != nil {
				job, _ := w.queue.MarkDone(id, nil, err)
				w.log.Error("Round failed", "job", id, "status", job.Status, "error", err)
				if goerrors.Is(err, errors.ErrWorkerPanic) {
					// The job is released; let the supervisor restart the worker.
					return err
				}
				continue
			}
			job, err := w.queue.MarkDone(id, &outcome, nil)
			if err != nil {
				w.log.Error("Unable to record round outcome", "job", id, "error", err)
				continue
			}
			w.log.Info("Round finished", "job", id, "status", job.Status,
				"pairs", outcome.Record.PairCount, "failed_deliveries", len(outcome.FailedDeliveries()))
		}
	}
}

// execute turns a panic of the round into an error so the job can still be marked done.
func (w *RoundWorker) execute(ctx context.Context) (outcome domain.RoundOutcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
		}
	}()
	return w.executor.ExecuteRound(ctx)
}
