package domain

import (
	"coffee-chat/errors"
	"fmt"
)

// Pair is an unordered grouping of two distinct participants.
// First and Second keep the order in which the pair was formed.
type Pair struct {
	First  Participant
	Second Participant
}

// PairKey is the order-independent identity of a Pair.
type PairKey struct {
	low  Participant
	high Participant
}

func NewPair(first, second Participant) (Pair, error) {
	if first == second {
		return Pair{}, fmt.Errorf("%w: %q cannot be paired with itself", errors.ErrInvalidRoster, first)
	}
	if first == "" || second == "" {
		return Pair{}, fmt.Errorf("%w: empty participant in pair", errors.ErrInvalidRoster)
	}
	return Pair{First: first, Second: second}, nil
}

func (p Pair) Key() PairKey {
	if p.First <= p.Second {
		return PairKey{low: p.First, high: p.Second}
	}
	return PairKey{low: p.Second, high: p.First}
}

func (p Pair) Contains(participant Participant) bool {
	return p.First == participant || p.Second == participant
}

func (p Pair) String() string {
	return fmt.Sprintf("{%s,%s}", p.First, p.Second)
}

// PairSet is the set of pairs already formed, compared without regard to order.
type PairSet map[PairKey]struct{}

func NewPairSet(pairs ...Pair) PairSet {
	set := make(PairSet, len(pairs))
	set.Add(pairs...)
	return set
}

func (s PairSet) Add(pairs ...Pair) {
	for _, p := range pairs {
		s[p.Key()] = struct{}{}
	}
}

func (s PairSet) Contains(p Pair) bool {
	_, ok := s[p.Key()]
	return ok
}

func (s PairSet) Len() int {
	return len(s)
}
