//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"coffee-chat/domain"
	"context"
	"reflect"

	"github.com/google/uuid"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// RoundExecutor runs one complete round: roster, pairing, persistence and notification.
type RoundExecutor interface {
	ExecuteRound(ctx context.Context) (domain.RoundOutcome, error)
}

// IJobQueue serializes rounds and keeps their outcome retrievable.
type IJobQueue interface {
	Submit(trigger string) (domain.Job, error)
	Pending() <-chan uuid.UUID
	MarkRunning(id uuid.UUID) error
	MarkDone(id uuid.UUID, outcome *domain.RoundOutcome, err error) (domain.Job, error)
	Get(id uuid.UUID) (domain.Job, error)
	Latest() (domain.Job, error)
}
