//go:generate go run go.uber.org/mock/mockgen -source=history.go -destination=../mocks/mock_history_repository.go -package=mocks
package repositories

import (
	"coffee-chat/domain"
	"coffee-chat/errors"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

const (
	RoundPrefix  = "round:"
	dayLayout    = "2006-01-02"
	// legacyLayout is the "YYYY/M/D H:m" local time written by the first version of the bot.
	legacyLayout = "2006/1/2 15:4"
)

type IHistoryRepository interface {
	LoadAllPairs(ctx context.Context) (domain.PairSet, error)
	AppendRound(ctx context.Context, record domain.RoundRecord) error
	GetRounds(ctx context.Context) ([]domain.RoundRecord, error)
}

// SameDayPolicy decides what AppendRound does when a round already exists for the day.
type SameDayPolicy string

const (
	SameDayOverwrite  SameDayPolicy = "overwrite"
	SameDayAccumulate SameDayPolicy = "accumulate"
	SameDayReject     SameDayPolicy = "reject"
)

func ParseSameDayPolicy(s string) (SameDayPolicy, error) {
	switch SameDayPolicy(s) {
	case "":
		return SameDayOverwrite, nil
	case SameDayOverwrite, SameDayAccumulate, SameDayReject:
		return SameDayPolicy(s), nil
	default:
		return "", fmt.Errorf("unknown same day policy %q", s)
	}
}

// DiskRound is the persisted layout of a round.
type DiskRound struct {
	ExecutedDate string      `json:"executedDate" validate:"required"`
	NumberOfPair int         `json:"numberOfPair" validate:"gte=0"`
	RemovedUser  string      `json:"removedUser"`
	Data         [][2]string `json:"data" validate:"dive,dive,required"`
}

var validate = validator.New()

type HistoryRepository struct {
	db     *badger.DB
	log    *slog.Logger
	policy SameDayPolicy
}

func NewHistoryRepository(db *badger.DB, log *slog.Logger, policy SameDayPolicy) HistoryRepository {
	return HistoryRepository{db: db, log: log, policy: policy}
}

// AppendRound persists a round under "round:{YYYY-MM-DD}".
// With the accumulate policy the key gets a 19-digit zero padded nanosecond
// suffix so that several rounds of the same day keep chronological order.
func (h HistoryRepository) AppendRound(_ context.Context, record domain.RoundRecord) error {
	bytes, err := json.MarshalIndent(fromRoundRecord(record), "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", errors.ErrStorageWrite, err)
	}
	dayKey := roundKey(record.ExecutedAt)

	err = h.db.Update(func(txn *badger.Txn) error {
		key := dayKey
		switch h.policy {
		case SameDayAccumulate:
			key = fmt.Sprintf("%s:%019d", dayKey, record.ExecutedAt.UnixNano())
		case SameDayReject:
			if hasPrefix(txn, dayKey) {
				return errors.ErrRoundAlreadyExists
			}
		default:
			if _, err := txn.Get([]byte(key)); err == nil {
				h.log.Warn("Overwriting round recorded the same day", "key", key)
			}
		}
		return txn.Set([]byte(key), bytes)
	})
	switch {
	case err == nil:
		h.log.Debug("Round persisted", "key", dayKey, "pairs", record.PairCount)
		return nil
	case err == errors.ErrRoundAlreadyExists:
		return fmt.Errorf("%w: %s", errors.ErrRoundAlreadyExists, dayKey)
	default:
		return fmt.Errorf("%w: %w", errors.ErrStorageWrite, err)
	}
}

// LoadAllPairs rebuilds the history from every persisted round.
// A malformed round aborts the load instead of being skipped.
func (h HistoryRepository) LoadAllPairs(ctx context.Context) (domain.PairSet, error) {
	rounds, err := h.GetRounds(ctx)
	if err != nil {
		return nil, err
	}
	history := domain.NewPairSet()
	for _, r := range rounds {
		history.Add(r.Pairs...)
	}
	return history, nil
}

// GetRounds returns every persisted round in key order.
func (h HistoryRepository) GetRounds(_ context.Context) ([]domain.RoundRecord, error) {
	var rounds []domain.RoundRecord
	err := h.db.View(func(txn *badger.Txn) error {
		prefix := []byte(RoundPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			key := string(item.Key())
			err := item.Value(func(value []byte) error {
				record, err := DecodeRound(value)
				if err != nil {
					return fmt.Errorf("round %s: %w", key, err)
				}
				rounds = append(rounds, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrStorageRead, err)
	}
	return rounds, nil
}

// DecodeRound parses and validates a persisted round.
func DecodeRound(value []byte) (domain.RoundRecord, error) {
	var disk DiskRound
	if err := json.Unmarshal(value, &disk); err != nil {
		return domain.RoundRecord{}, err
	}
	if err := validate.Struct(disk); err != nil {
		return domain.RoundRecord{}, err
	}
	if disk.NumberOfPair != len(disk.Data) {
		return domain.RoundRecord{}, fmt.Errorf("numberOfPair is %d but %d pairs are stored",
			disk.NumberOfPair, len(disk.Data))
	}
	return toRoundRecord(disk)
}

func roundKey(at time.Time) string {
	return RoundPrefix + at.Format(dayLayout)
}

func hasPrefix(txn *badger.Txn, prefix string) bool {
	options := badger.DefaultIteratorOptions
	options.PrefetchValues = false
	it := txn.NewIterator(options)
	defer it.Close()
	it.Seek([]byte(prefix))
	return it.ValidForPrefix([]byte(prefix))
}

func fromRoundRecord(record domain.RoundRecord) DiskRound {
	return DiskRound{
		ExecutedDate: record.ExecutedAt.Format(time.RFC3339Nano),
		NumberOfPair: len(record.Pairs),
		RemovedUser:  string(record.Excluded),
		Data: lo.Map(record.Pairs, func(p domain.Pair, _ int) [2]string {
			return [2]string{string(p.First), string(p.Second)}
		}),
	}
}

func toRoundRecord(disk DiskRound) (domain.RoundRecord, error) {
	executedAt, err := parseExecutedDate(disk.ExecutedDate)
	if err != nil {
		return domain.RoundRecord{}, err
	}
	pairs := make([]domain.Pair, 0, len(disk.Data))
	for _, d := range disk.Data {
		pair, err := domain.NewPair(domain.Participant(d[0]), domain.Participant(d[1]))
		if err != nil {
			return domain.RoundRecord{}, err
		}
		pairs = append(pairs, pair)
	}
	return domain.NewRoundRecord(executedAt, pairs, domain.Participant(disk.RemovedUser)), nil
}

func parseExecutedDate(value string) (time.Time, error) {
	executedAt, err := time.Parse(time.RFC3339Nano, value)
	if err == nil {
		return executedAt, nil
	}
	if legacy, legacyErr := time.ParseInLocation(legacyLayout, value, time.Local); legacyErr == nil {
		return legacy, nil
	}
	return time.Time{}, fmt.Errorf("executedDate %q: %w", value, err)
}
