package domain

import (
	"coffee-chat/errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
)

const (
	DefaultMaxAttempts = 64
	DefaultMaxRestarts = 8
)

// FallbackPolicy decides what happens when no valid partner is left for a participant.
type FallbackPolicy int

const (
	// FallbackFail aborts the round with ErrUnsatisfiablePairing.
	FallbackFail FallbackPolicy = iota
	// FallbackRelax ignores the history constraint for that single pair.
	FallbackRelax
)

func (f FallbackPolicy) String() string {
	switch f {
	case FallbackRelax:
		return "relax"
	default:
		return "fail"
	}
}

func ParseFallbackPolicy(s string) (FallbackPolicy, error) {
	switch s {
	case "", "fail":
		return FallbackFail, nil
	case "relax":
		return FallbackRelax, nil
	default:
		return FallbackFail, fmt.Errorf("unknown fallback policy %q", s)
	}
}

type PairGenerator struct {
	rng         *rand.Rand
	log         *slog.Logger
	maxAttempts int
	maxRestarts int
	fallback    FallbackPolicy
}

type GeneratorOption func(*PairGenerator)

func WithMaxAttempts(n int) GeneratorOption {
	return func(g *PairGenerator) {
		if n > 0 {
			g.maxAttempts = n
		}
	}
}

// WithMaxRestarts bounds how many full greedy passes run before the fallback applies.
func WithMaxRestarts(n int) GeneratorOption {
	return func(g *PairGenerator) {
		if n >= 0 {
			g.maxRestarts = n
		}
	}
}

func WithFallback(policy FallbackPolicy) GeneratorOption {
	return func(g *PairGenerator) {
		g.fallback = policy
	}
}

func WithLogger(log *slog.Logger) GeneratorOption {
	return func(g *PairGenerator) {
		g.log = log
	}
}

func NewPairGenerator(rng *rand.Rand, opts ...GeneratorOption) PairGenerator {
	g := PairGenerator{
		rng:         rng,
		log:         slog.Default(),
		maxAttempts: DefaultMaxAttempts,
		maxRestarts: DefaultMaxRestarts,
		fallback:    FallbackFail,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

// Generate pairs every participant of an even roster exactly once,
// avoiding pairs already present in history.
//
// Participants are visited in roster order. For each one still unassigned,
// a partner is drawn uniformly from the whole roster until the draw is valid
// or maxAttempts is reached. After that, the remaining valid partners are
// enumerated and one is drawn among them. A greedy pass can still dead-end on
// the last participants; it is then restarted from scratch up to maxRestarts
// times before the fallback policy applies.
func (g PairGenerator) Generate(roster []Participant, history PairSet) ([]Pair, error) {
	if len(roster)%2 != 0 {
		return nil, fmt.Errorf("%w: odd roster size %d", errors.ErrInvalidRoster, len(roster))
	}
	if err := ValidateRoster(roster); err != nil {
		return nil, err
	}

	for restart := 0; restart < g.maxRestarts; restart++ {
		if pairs, stuck := g.greedy(roster, history, false); stuck < 0 {
			return pairs, nil
		}
	}

	pairs, stuck := g.greedy(roster, history, g.fallback == FallbackRelax)
	if stuck >= 0 {
		return nil, fmt.Errorf("%w: every remaining partner of %q was already paired with them",
			errors.ErrUnsatisfiablePairing, roster[stuck])
	}
	return pairs, nil
}

// greedy runs one assignment pass. It returns the index of the participant
// left without a valid partner, or -1 when every participant was paired.
func (g PairGenerator) greedy(roster []Participant, history PairSet, relax bool) ([]Pair, int) {
	n := len(roster)
	assigned := make([]bool, n)
	chosen := make(PairSet, n/2)
	pairs := make([]Pair, 0, n/2)

	isValid := func(i, j int) bool {
		if i == j || assigned[j] {
			return false
		}
		p := Pair{First: roster[i], Second: roster[j]}
		return !history.Contains(p) && !chosen.Contains(p)
	}

	for i := range roster {
		if assigned[i] {
			continue
		}
		j, ok := g.partnerFor(i, n, isValid)
		if !ok {
			if !relax {
				return nil, i
			}
			j = g.relaxedPartner(i, roster, assigned)
		}
		p := Pair{First: roster[i], Second: roster[j]}
		pairs = append(pairs, p)
		chosen.Add(p)
		assigned[i], assigned[j] = true, true
	}
	return pairs, -1
}

func (g PairGenerator) partnerFor(i, n int, isValid func(i, j int) bool) (int, bool) {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		if j := g.rng.IntN(n); isValid(i, j) {
			return j, true
		}
	}

	var candidates []int
	for j := 0; j < n; j++ {
		if isValid(i, j) {
			candidates = append(candidates, j)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[g.rng.IntN(len(candidates))], true
}

func (g PairGenerator) relaxedPartner(i int, roster []Participant, assigned []bool) int {
	var unassigned []int
	for j := range roster {
		if j != i && !assigned[j] {
			unassigned = append(unassigned, j)
		}
	}
	// Even roster: at least one other participant is always unassigned here.
	j := unassigned[g.rng.IntN(len(unassigned))]
	g.log.Warn("Relaxing history constraint",
		"participant", roster[i], "partner", roster[j])
	return j
}
