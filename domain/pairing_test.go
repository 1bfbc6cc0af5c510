package domain

import (
	"coffee-chat/errors"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func requireCoversRoster(req *require.Assertions, roster []Participant, pairs []Pair) {
	req.Len(pairs, len(roster)/2)
	seen := make(map[Participant]int)
	for _, p := range pairs {
		req.NotEqual(p.First, p.Second)
		seen[p.First]++
		seen[p.Second]++
	}
	req.Len(seen, len(roster))
	for _, participant := range roster {
		req.Equal(1, seen[participant], "participant %s", participant)
	}
}

func TestPairGenerator_Generate_EmptyHistory(t *testing.T) {
	req := require.New(t)
	roster := []Participant{"A", "B", "C", "D"}
	generator := NewPairGenerator(seeded(1))

	// When pairs are generated without any history
	pairs, err := generator.Generate(roster, NewPairSet())

	// Then two disjoint pairs cover the four names
	req.NoError(err)
	requireCoversRoster(req, roster, pairs)
}

func TestPairGenerator_Generate_AvoidsHistory(t *testing.T) {
	roster := []Participant{"A", "B", "C", "D"}
	history := NewPairSet(Pair{First: "B", Second: "A"})

	for seed := uint64(0); seed < 50; seed++ {
		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			req := require.New(t)
			pairs, err := NewPairGenerator(seeded(seed)).Generate(roster, history)
			req.NoError(err)
			requireCoversRoster(req, roster, pairs)
			for _, p := range pairs {
				req.False(history.Contains(p), "pair %s is in history", p)
			}
		})
	}
}

func TestPairGenerator_Generate_LargeRosterWithHistory(t *testing.T) {
	req := require.New(t)
	var roster []Participant
	for i := 0; i < 30; i++ {
		roster = append(roster, Participant(fmt.Sprintf("member-%02d", i)))
	}
	rng := seeded(7)
	history := NewPairSet()

	// Given several consecutive rounds feeding the history
	for round := 0; round < 5; round++ {
		pairs, err := NewPairGenerator(rng).Generate(roster, history)
		req.NoError(err)
		requireCoversRoster(req, roster, pairs)
		for _, p := range pairs {
			req.False(history.Contains(p))
		}
		history.Add(pairs...)
	}

	// Then every round added distinct pairs only
	req.Equal(5*15, history.Len())
}

func TestPairGenerator_Generate_IsDeterministicForASeed(t *testing.T) {
	req := require.New(t)
	roster := []Participant{"A", "B", "C", "D", "E", "F"}

	first, err := NewPairGenerator(seeded(42)).Generate(roster, NewPairSet())
	req.NoError(err)
	second, err := NewPairGenerator(seeded(42)).Generate(roster, NewPairSet())
	req.NoError(err)

	req.Equal(first, second)
}

func TestPairGenerator_Generate_UnsatisfiableFails(t *testing.T) {
	req := require.New(t)
	roster := []Participant{"A", "B", "C", "D"}
	// Given A has already met everybody
	history := NewPairSet(
		Pair{First: "A", Second: "B"},
		Pair{First: "A", Second: "C"},
		Pair{First: "A", Second: "D"},
	)
	generator := NewPairGenerator(seeded(3), WithMaxAttempts(5), WithFallback(FallbackFail))

	pairs, err := generator.Generate(roster, history)

	req.ErrorIs(err, errors.ErrUnsatisfiablePairing)
	req.Nil(pairs)
}

func TestPairGenerator_Generate_UnsatisfiableRelaxes(t *testing.T) {
	req := require.New(t)
	roster := []Participant{"A", "B", "C", "D"}
	history := NewPairSet(
		Pair{First: "A", Second: "B"},
		Pair{First: "A", Second: "C"},
		Pair{First: "A", Second: "D"},
	)
	generator := NewPairGenerator(seeded(3), WithMaxAttempts(5), WithFallback(FallbackRelax))

	pairs, err := generator.Generate(roster, history)

	// Then the round completes, repeating exactly one pair for A
	req.NoError(err)
	requireCoversRoster(req, roster, pairs)
	repeated := 0
	for _, p := range pairs {
		if history.Contains(p) {
			repeated++
			req.True(p.Contains("A"))
		}
	}
	req.Equal(1, repeated)
}

func TestPairGenerator_Generate_DeadEndOnLastPair(t *testing.T) {
	req := require.New(t)
	roster := []Participant{"A", "B"}
	history := NewPairSet(Pair{First: "A", Second: "B"})

	_, err := NewPairGenerator(seeded(9), WithMaxAttempts(3)).Generate(roster, history)
	req.ErrorIs(err, errors.ErrUnsatisfiablePairing)

	pairs, err := NewPairGenerator(seeded(9), WithMaxAttempts(3), WithFallback(FallbackRelax)).Generate(roster, history)
	req.NoError(err)
	req.Equal([]Pair{{First: "A", Second: "B"}}, pairs)
}

func TestPairGenerator_Generate_RejectsInvalidRoster(t *testing.T) {
	generator := NewPairGenerator(seeded(1))
	cases := map[string][]Participant{
		"odd":       {"A", "B", "C"},
		"duplicate": {"A", "B", "A", "C"},
		"empty":     {"A", ""},
	}
	for name, roster := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := generator.Generate(roster, NewPairSet())
			require.ErrorIs(t, err, errors.ErrInvalidRoster)
		})
	}
}

func TestPairGenerator_Generate_EmptyRoster(t *testing.T) {
	req := require.New(t)
	pairs, err := NewPairGenerator(seeded(1)).Generate(nil, NewPairSet())
	req.NoError(err)
	req.Empty(pairs)
}

func TestParseFallbackPolicy(t *testing.T) {
	req := require.New(t)

	policy, err := ParseFallbackPolicy("relax")
	req.NoError(err)
	req.Equal(FallbackRelax, policy)

	policy, err = ParseFallbackPolicy("")
	req.NoError(err)
	req.Equal(FallbackFail, policy)

	_, err = ParseFallbackPolicy("retry")
	req.Error(err)
}
