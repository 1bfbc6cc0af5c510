//go:generate go run go.uber.org/mock/mockgen -source=round_service.go -destination=../mocks/mock_round_service.go -package=mocks
package services

import (
	"coffee-chat/domain"
	"coffee-chat/messaging"
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"
)

type IRosterSource interface {
	ListMembers(ctx context.Context) ([]messaging.Member, error)
}

type IRoundRunner interface {
	RunRound(ctx context.Context, roster []domain.Participant) (domain.RoundRecord, error)
}

type IDispatcher interface {
	Dispatch(ctx context.Context, pairs []domain.Pair, directory messaging.Directory) messaging.DispatchReport
}

// RoundService runs a full round from the workspace roster to the DMs.
type RoundService struct {
	roster     IRosterSource
	runner     IRoundRunner
	dispatcher IDispatcher
	log        *slog.Logger
}

func NewRoundService(roster IRosterSource, runner IRoundRunner, dispatcher IDispatcher, log *slog.Logger) *RoundService {
	return &RoundService{roster: roster, runner: runner, dispatcher: dispatcher, log: log}
}

// ExecuteRound returns an error when the roster, the history or the pairing fails.
// Notification failures are reported in the outcome, the round being persisted already.
func (s *RoundService) ExecuteRound(ctx context.Context) (domain.RoundOutcome, error) {
	members, err := s.roster.ListMembers(ctx)
	if err != nil {
		return domain.RoundOutcome{}, err
	}

	unique := lo.UniqBy(members, func(m messaging.Member) string { return m.Name })
	if skipped := len(members) - len(unique); skipped > 0 {
		s.log.Warn("Members sharing a display name were skipped", "skipped", skipped)
	}
	roster := lo.Map(unique, func(m messaging.Member, _ int) domain.Participant {
		return domain.Participant(m.Name)
	})

	record, err := s.runner.RunRound(ctx, roster)
	if err != nil {
		return domain.RoundOutcome{}, fmt.Errorf("round aborted: %w", err)
	}

	report := s.dispatcher.Dispatch(ctx, record.Pairs, messaging.NewDirectory(unique))
	return domain.RoundOutcome{Record: record, Deliveries: report.Deliveries}, nil
}
