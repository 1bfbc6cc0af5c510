package runtime

import (
	"coffee-chat/domain"
	"coffee-chat/errors"
	"coffee-chat/mocks"
	"coffee-chat/repositories"
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 1))
}

func TestOrchestrator_RunRound_PersistsRound(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := repositories.NewMemoryHistoryRepository(repositories.SameDayOverwrite)
	orchestrator := NewOrchestrator(slog.Default(), repository, seededRand(1), clock)
	roster := []domain.Participant{"Alice", "Bob", "Clara", "Dan"}

	// When a round runs on an even roster
	record, err := orchestrator.RunRound(ctx, roster)

	// Then every participant is paired and nobody is excluded
	req.NoError(err)
	req.Equal(fixedNow, record.ExecutedAt)
	req.Equal(2, record.PairCount)
	req.Len(record.Pairs, 2)
	req.False(record.HasExcluded())

	// And the round is found back in history
	history, err := repository.LoadAllPairs(ctx)
	req.NoError(err)
	for _, p := range record.Pairs {
		req.True(history.Contains(p))
	}
}

func TestOrchestrator_RunRound_OddRoster(t *testing.T) {
	req := require.New(t)
	repository := repositories.NewMemoryHistoryRepository(repositories.SameDayOverwrite)
	orchestrator := NewOrchestrator(slog.Default(), repository, seededRand(2), clock)
	roster := []domain.Participant{"A", "B", "C"}

	record, err := orchestrator.RunRound(context.Background(), roster)

	req.NoError(err)
	req.True(record.HasExcluded())
	req.Contains(roster, record.Excluded)
	req.Len(record.Pairs, 1)
	req.False(record.Pairs[0].Contains(record.Excluded))
}

func TestOrchestrator_Consecutive_Rounds_Never_Repeat(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := repositories.NewMemoryHistoryRepository(repositories.SameDayAccumulate)
	day := fixedNow
	orchestrator := NewOrchestrator(slog.Default(), repository, seededRand(3),
		func() time.Time { day = day.Add(24 * time.Hour); return day })

	var roster []domain.Participant
	for i := 0; i < 12; i++ {
		roster = append(roster, domain.Participant(fmt.Sprintf("member-%d", i)))
	}

	seen := domain.NewPairSet()
	for round := 0; round < 4; round++ {
		record, err := orchestrator.RunRound(ctx, roster)
		req.NoError(err)
		for _, p := range record.Pairs {
			req.False(seen.Contains(p), "pair %s repeated in round %d", p, round)
		}
		seen.Add(record.Pairs...)
	}
}

func TestOrchestrator_RunRound_HistoryReadFailure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repository := mocks.NewMockIHistoryRepository(ctrl)
	orchestrator := NewOrchestrator(slog.Default(), repository, seededRand(1), clock)

	// Given history cannot be read
	repository.EXPECT().LoadAllPairs(gomock.Any()).
		Return(nil, fmt.Errorf("%w: boom", errors.ErrStorageRead)).Times(1)
	// Then nothing is written
	repository.EXPECT().AppendRound(gomock.Any(), gomock.Any()).Times(0)

	_, err := orchestrator.RunRound(context.Background(), []domain.Participant{"A", "B"})

	req.ErrorIs(err, errors.ErrStorageRead)
}

func TestOrchestrator_RunRound_WriteFailure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repository := mocks.NewMockIHistoryRepository(ctrl)
	orchestrator := NewOrchestrator(slog.Default(), repository, seededRand(1), clock)

	repository.EXPECT().LoadAllPairs(gomock.Any()).Return(domain.NewPairSet(), nil).Times(1)
	repository.EXPECT().AppendRound(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record domain.RoundRecord) error {
			req.Equal(1, record.PairCount)
			return fmt.Errorf("%w: disk full", errors.ErrStorageWrite)
		}).Times(1)

	record, err := orchestrator.RunRound(context.Background(), []domain.Participant{"A", "B"})

	req.ErrorIs(err, errors.ErrStorageWrite)
	req.Empty(record.Pairs)
}

func TestOrchestrator_RunRound_Unsatisfiable(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repository := mocks.NewMockIHistoryRepository(ctrl)
	orchestrator := NewOrchestrator(slog.Default(), repository, seededRand(1), clock,
		domain.WithMaxAttempts(2), domain.WithMaxRestarts(1))

	// Given the only possible pair already happened
	repository.EXPECT().LoadAllPairs(gomock.Any()).
		Return(domain.NewPairSet(domain.Pair{First: "A", Second: "B"}), nil).Times(1)
	repository.EXPECT().AppendRound(gomock.Any(), gomock.Any()).Times(0)

	_, err := orchestrator.RunRound(context.Background(), []domain.Participant{"A", "B"})

	req.ErrorIs(err, errors.ErrUnsatisfiablePairing)
}

func TestOrchestrator_RunRound_DuplicateRoster(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repository := mocks.NewMockIHistoryRepository(ctrl)
	orchestrator := NewOrchestrator(slog.Default(), repository, seededRand(1), clock)

	repository.EXPECT().LoadAllPairs(gomock.Any()).Times(0)

	_, err := orchestrator.RunRound(context.Background(), []domain.Participant{"A", "A"})

	req.ErrorIs(err, errors.ErrInvalidRoster)
}
