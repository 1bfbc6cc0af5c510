package domain

import "math/rand/v2"

type ParityResult struct {
	// Excluded is empty when no participant had to be left out.
	Excluded Participant
	Roster   []Participant
}

// AdjustParity removes one participant drawn uniformly at random when the roster is odd.
// The input slice is left untouched.
func AdjustParity(rng *rand.Rand, roster []Participant) ParityResult {
	even := make([]Participant, len(roster))
	copy(even, roster)
	if len(roster)%2 == 0 {
		return ParityResult{Roster: even}
	}
	idx := rng.IntN(len(even))
	excluded := even[idx]
	even = append(even[:idx], even[idx+1:]...)
	return ParityResult{Excluded: excluded, Roster: even}
}
