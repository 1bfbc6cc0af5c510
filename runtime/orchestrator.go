// Package runtime runs pairing rounds and tracks the background jobs triggering them.
// It sequences the domain and repositories without holding pairing rules itself.
package runtime

import (
	"coffee-chat/domain"
	"coffee-chat/repositories"
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"
)

// Orchestrator composes one round: load history, adjust parity, generate pairs, persist.
// Rounds must not run concurrently: two rounds loading the same history before
// either persists would produce repeated pairs. JobQueue serializes them.
type Orchestrator struct {
	log        *slog.Logger
	repository repositories.IHistoryRepository
	rng        *rand.Rand
	generator  domain.PairGenerator
	now        func() time.Time
}

func NewOrchestrator(log *slog.Logger, repository repositories.IHistoryRepository,
	rng *rand.Rand, now func() time.Time, opts ...domain.GeneratorOption) *Orchestrator {
	if now == nil {
		now = time.Now
	}
	opts = append([]domain.GeneratorOption{domain.WithLogger(log)}, opts...)
	return &Orchestrator{
		log:        log,
		repository: repository,
		rng:        rng,
		generator:  domain.NewPairGenerator(rng, opts...),
		now:        now,
	}
}

// RunRound pairs the roster and persists the resulting round.
// Storage and pairing failures abort the round; nothing is persisted then.
func (o *Orchestrator) RunRound(ctx context.Context, roster []domain.Participant) (domain.RoundRecord, error) {
	if err := domain.ValidateRoster(roster); err != nil {
		return domain.RoundRecord{}, err
	}

	history, err := o.repository.LoadAllPairs(ctx)
	if err != nil {
		return domain.RoundRecord{}, fmt.Errorf("load history: %w", err)
	}
	o.log.Debug("History loaded", "pairs", history.Len())

	parity := domain.AdjustParity(o.rng, roster)
	if parity.Excluded != "" {
		o.log.Info("Odd roster, participant left out this round", "excluded", parity.Excluded)
	}

	pairs, err := o.generator.Generate(parity.Roster, history)
	if err != nil {
		return domain.RoundRecord{}, fmt.Errorf("generate pairs: %w", err)
	}

	record := domain.NewRoundRecord(o.now(), pairs, parity.Excluded)
	if err = o.repository.AppendRound(ctx, record); err != nil {
		return domain.RoundRecord{}, fmt.Errorf("persist round: %w", err)
	}
	o.log.Info("Round completed", "participants", len(roster), "pairs", record.PairCount)
	return record, nil
}
