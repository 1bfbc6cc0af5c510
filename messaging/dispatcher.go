//go:generate go run go.uber.org/mock/mockgen -source=dispatcher.go -destination=../mocks/mock_notifier.go -package=mocks
package messaging

import (
	"coffee-chat/domain"
	"coffee-chat/errors"
	"context"
	goerrors "errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

const defaultConcurrency = 4

type Notifier interface {
	SendPairMessage(ctx context.Context, firstID, secondID string) error
}

// Directory resolves a participant name to its messaging platform ID.
type Directory map[domain.Participant]string

func NewDirectory(members []Member) Directory {
	directory := make(Directory, len(members))
	for _, m := range members {
		directory[domain.Participant(m.Name)] = m.ID
	}
	return directory
}

type DispatchReport struct {
	Deliveries []domain.Delivery
}

// Err joins every delivery failure, nil when all pairs were notified.
func (r DispatchReport) Err() error {
	var errs []error
	for _, d := range r.Deliveries {
		if d.Err != nil {
			errs = append(errs, d.Err)
		}
	}
	return goerrors.Join(errs...)
}

type Dispatcher struct {
	notifier    Notifier
	log         *slog.Logger
	concurrency int
}

func NewDispatcher(notifier Notifier, log *slog.Logger, concurrency int) *Dispatcher {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Dispatcher{notifier: notifier, log: log, concurrency: concurrency}
}

// Dispatch notifies every pair independently.
// A failing pair never stops, delays or fails the others: each outcome is
// collected at the index of its pair.
func (d *Dispatcher) Dispatch(ctx context.Context, pairs []domain.Pair, directory Directory) DispatchReport {
	deliveries := make([]domain.Delivery, len(pairs))
	var g errgroup.Group
	g.SetLimit(d.concurrency)

	for i, pair := range pairs {
		g.Go(func() error {
			deliveries[i] = domain.Delivery{Pair: pair, Err: d.notify(ctx, pair, directory)}
			return nil
		})
	}
	_ = g.Wait()

	report := DispatchReport{Deliveries: deliveries}
	if err := report.Err(); err != nil {
		d.log.Warn("Some pairs were not notified", "error", err)
	}
	return report
}

func (d *Dispatcher) notify(ctx context.Context, pair domain.Pair, directory Directory) error {
	firstID, ok := directory[pair.First]
	if !ok {
		return fmt.Errorf("%w: %s: no account for %q", errors.ErrDispatch, pair, pair.First)
	}
	secondID, ok := directory[pair.Second]
	if !ok {
		return fmt.Errorf("%w: %s: no account for %q", errors.ErrDispatch, pair, pair.Second)
	}
	if err := d.notifier.SendPairMessage(ctx, firstID, secondID); err != nil {
		return fmt.Errorf("%w: %s: %w", errors.ErrDispatch, pair, err)
	}
	return nil
}
