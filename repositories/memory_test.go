package repositories

import (
	"coffee-chat/domain"
	"coffee-chat/errors"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryHistoryRepository_RoundTrip(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewMemoryHistoryRepository(SameDayOverwrite)
	record := round(time.Now(), "", domain.Pair{First: "Alice", Second: "Bob"})

	req.NoError(repository.AppendRound(ctx, record))
	history, err := repository.LoadAllPairs(ctx)

	req.NoError(err)
	req.True(history.Contains(domain.Pair{First: "Bob", Second: "Alice"}))
}

func TestMemoryHistoryRepository_Policies(t *testing.T) {
	ctx := context.Background()
	morning := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)
	first := round(morning, "", domain.Pair{First: "Alice", Second: "Bob"})
	second := round(morning.Add(time.Hour), "", domain.Pair{First: "Alice", Second: "Clara"})

	accumulate := NewMemoryHistoryRepository(SameDayAccumulate)
	require.NoError(t, accumulate.AppendRound(ctx, first))
	require.NoError(t, accumulate.AppendRound(ctx, second))
	rounds, err := accumulate.GetRounds(ctx)
	require.NoError(t, err)
	require.Len(t, rounds, 2)

	reject := NewMemoryHistoryRepository(SameDayReject)
	require.NoError(t, reject.AppendRound(ctx, first))
	require.ErrorIs(t, reject.AppendRound(ctx, second), errors.ErrRoundAlreadyExists)
}

func TestMemoryHistoryRepository_InjectedFailures(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewMemoryHistoryRepository(SameDayOverwrite)
	repository.ReadErr = fmt.Errorf("disk unplugged")
	repository.WriteErr = fmt.Errorf("disk full")

	_, err := repository.LoadAllPairs(ctx)
	req.ErrorIs(err, errors.ErrStorageRead)

	err = repository.AppendRound(ctx, round(time.Now(), ""))
	req.ErrorIs(err, errors.ErrStorageWrite)
}
