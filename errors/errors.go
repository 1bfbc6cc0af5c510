package errors

import "fmt"

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	// History store
	ErrStorageRead        = fmt.Errorf("history storage read failed")
	ErrStorageWrite       = fmt.Errorf("history storage write failed")
	ErrRoundAlreadyExists = fmt.Errorf("a round has already been recorded for this day")

	// Pairing
	ErrInvalidRoster        = fmt.Errorf("invalid roster")
	ErrUnsatisfiablePairing = fmt.Errorf("no pairing satisfies the history constraint")

	// Messaging
	ErrRosterUnavailable = fmt.Errorf("roster could not be listed")
	ErrDispatch          = fmt.Errorf("pair notification failed")

	// Jobs
	ErrRoundInProgress = fmt.Errorf("a round is already pending or running")
	ErrJobNotFound     = fmt.Errorf("job not found")
)
