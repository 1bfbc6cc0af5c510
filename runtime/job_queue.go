package runtime

import (
	"coffee-chat/domain"
	"coffee-chat/errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultJobRetention = 100

// JobQueue accepts one round at a time and keeps the outcome of recent rounds.
//
// A submission is refused while another job is pending or running, which is
// the serialization rounds require. Finished jobs stay retrievable until
// retention is exceeded, oldest first.
type JobQueue struct {
	mu        sync.RWMutex
	jobs      map[uuid.UUID]domain.Job
	order     []uuid.UUID
	inFlight  *uuid.UUID
	pending   chan uuid.UUID
	retention int
	now       func() time.Time
	listeners []func(domain.Job)
}

func NewJobQueue(retention int, now func() time.Time) *JobQueue {
	if retention <= 0 {
		retention = defaultJobRetention
	}
	if now == nil {
		now = time.Now
	}
	return &JobQueue{
		jobs:      make(map[uuid.UUID]domain.Job),
		pending:   make(chan uuid.UUID, 1),
		retention: retention,
		now:       now,
	}
}

// OnDone registers a callback invoked with every finished job.
func (q *JobQueue) OnDone(listener func(domain.Job)) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.listeners = append(q.listeners, listener)
}

func (q *JobQueue) Submit(trigger string) (domain.Job, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.inFlight != nil {
		return domain.Job{}, fmt.Errorf("%w: job %s", errors.ErrRoundInProgress, *q.inFlight)
	}
	job := domain.Job{
		ID:          uuid.New(),
		Trigger:     trigger,
		Status:      domain.JobPending,
		SubmittedAt: q.now(),
	}
	// Capacity is one and inFlight was nil, so this never blocks.
	q.pending <- job.ID
	q.inFlight = &job.ID
	q.store(job)
	return job, nil
}

func (q *JobQueue) Pending() <-chan uuid.UUID {
	return q.pending
}

func (q *JobQueue) MarkRunning(id uuid.UUID) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	job, ok := q.jobs[id]
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrJobNotFound, id)
	}
	job.Status = domain.JobRunning
	job.StartedAt = q.now()
	q.jobs[id] = job
	return nil
}

// MarkDone records the result of a job and releases the queue for the next round.
// A job whose round was persisted but some pairs could not be notified is partial.
func (q *JobQueue) MarkDone(id uuid.UUID, outcome *domain.RoundOutcome, err error) (domain.Job, error) {
	q.mu.Lock()
	job, ok := q.jobs[id]
	if !ok {
		q.mu.Unlock()
		return domain.Job{}, fmt.Errorf("%w: %s", errors.ErrJobNotFound, id)
	}
	job.FinishedAt = q.now()
	job.Outcome = outcome
	switch {
	case err != nil:
		job.Status = domain.JobFailed
		job.Error = err.Error()
	case outcome != nil && len(outcome.FailedDeliveries()) > 0:
		job.Status = domain.JobPartial
		job.Error = fmt.Sprintf("%d of %d pairs were not notified",
			len(outcome.FailedDeliveries()), len(outcome.Deliveries))
	default:
		job.Status = domain.JobSucceeded
	}
	q.jobs[id] = job
	if q.inFlight != nil && *q.inFlight == id {
		q.inFlight = nil
	}
	listeners := append([]func(domain.Job){}, q.listeners...)
	q.mu.Unlock()

	for _, l := range listeners {
		l(job)
	}
	return job, nil
}

func (q *JobQueue) Get(id uuid.UUID) (domain.Job, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	job, ok := q.jobs[id]
	if !ok {
		return domain.Job{}, fmt.Errorf("%w: %s", errors.ErrJobNotFound, id)
	}
	return job, nil
}

func (q *JobQueue) Latest() (domain.Job, error) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if len(q.order) == 0 {
		return domain.Job{}, errors.ErrJobNotFound
	}
	return q.jobs[q.order[len(q.order)-1]], nil
}

func (q *JobQueue) store(job domain.Job) {
	q.jobs[job.ID] = job
	q.order = append(q.order, job.ID)
	for len(q.order) > q.retention {
		oldest := q.order[0]
		if q.inFlight != nil && *q.inFlight == oldest {
			break
		}
		delete(q.jobs, oldest)
		q.order = q.order[1:]
	}
}
