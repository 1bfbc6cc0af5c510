package domain

import (
	"time"

	"github.com/google/uuid"
)

type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobSucceeded JobStatus = "succeeded"
	// JobPartial means the round was persisted but some pairs were not notified.
	JobPartial JobStatus = "partial"
	JobFailed  JobStatus = "failed"
)

func (s JobStatus) Finished() bool {
	return s == JobSucceeded || s == JobPartial || s == JobFailed
}

// Job tracks one round triggered in the background.
type Job struct {
	ID          uuid.UUID
	Trigger     string
	Status      JobStatus
	SubmittedAt time.Time
	StartedAt   time.Time
	FinishedAt  time.Time
	Outcome     *RoundOutcome
	Error       string
}
