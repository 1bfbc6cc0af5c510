package domain

import "time"

// RoundRecord is the durable trace of one round.
// It is written once and never mutated afterwards.
type RoundRecord struct {
	ExecutedAt time.Time
	Pairs      []Pair
	// Excluded is empty when the roster had an even size.
	Excluded  Participant
	PairCount int
}

func NewRoundRecord(executedAt time.Time, pairs []Pair, excluded Participant) RoundRecord {
	return RoundRecord{
		ExecutedAt: executedAt,
		Pairs:      pairs,
		Excluded:   excluded,
		PairCount:  len(pairs),
	}
}

func (r RoundRecord) HasExcluded() bool {
	return r.Excluded != ""
}

// Delivery is the outcome of notifying a single pair.
type Delivery struct {
	Pair Pair
	Err  error
}

func (d Delivery) Delivered() bool {
	return d.Err == nil
}

// RoundOutcome groups a persisted round with the notifications sent for it.
type RoundOutcome struct {
	Record     RoundRecord
	Deliveries []Delivery
}

func (o RoundOutcome) FailedDeliveries() []Delivery {
	var failed []Delivery
	for _, d := range o.Deliveries {
		if !d.Delivered() {
			failed = append(failed, d)
		}
	}
	return failed
}
