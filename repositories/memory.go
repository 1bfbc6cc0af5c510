package repositories

import (
	"coffee-chat/domain"
	"coffee-chat/errors"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// MemoryHistoryRepository keeps rounds in memory.
// It honours the same day policy of HistoryRepository and is meant for tests
// and dry runs.
type MemoryHistoryRepository struct {
	mu     sync.Mutex
	policy SameDayPolicy
	rounds map[string]domain.RoundRecord
	// ReadErr and WriteErr, when set, are returned wrapped by the matching calls.
	ReadErr  error
	WriteErr error
}

func NewMemoryHistoryRepository(policy SameDayPolicy) *MemoryHistoryRepository {
	return &MemoryHistoryRepository{policy: policy, rounds: make(map[string]domain.RoundRecord)}
}

func (m *MemoryHistoryRepository) AppendRound(_ context.Context, record domain.RoundRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.WriteErr != nil {
		return fmt.Errorf("%w: %w", errors.ErrStorageWrite, m.WriteErr)
	}

	key := roundKey(record.ExecutedAt)
	switch m.policy {
	case SameDayAccumulate:
		key = fmt.Sprintf("%s:%019d", key, record.ExecutedAt.UnixNano())
	case SameDayReject:
		if lo.ContainsBy(lo.Keys(m.rounds), func(k string) bool { return strings.HasPrefix(k, key) }) {
			return fmt.Errorf("%w: %s", errors.ErrRoundAlreadyExists, key)
		}
	}
	pairs := make([]domain.Pair, len(record.Pairs))
	copy(pairs, record.Pairs)
	m.rounds[key] = domain.NewRoundRecord(record.ExecutedAt, pairs, record.Excluded)
	return nil
}

func (m *MemoryHistoryRepository) LoadAllPairs(ctx context.Context) (domain.PairSet, error) {
	rounds, err := m.GetRounds(ctx)
	if err != nil {
		return nil, err
	}
	history := domain.NewPairSet()
	for _, r := range rounds {
		history.Add(r.Pairs...)
	}
	return history, nil
}

func (m *MemoryHistoryRepository) GetRounds(_ context.Context) ([]domain.RoundRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrStorageRead, m.ReadErr)
	}

	keys := lo.Keys(m.rounds)
	slices.Sort(keys)
	rounds := make([]domain.RoundRecord, 0, len(keys))
	for _, k := range keys {
		rounds = append(rounds, m.rounds[k])
	}
	return rounds, nil
}
