// Package domain contains core concepts of the pairing system.
// This file defines Participant entities and related invariants.
// No runtime, network, or storage logic should be added here.
package domain

import (
	"coffee-chat/errors"
	"fmt"

	"github.com/samber/lo"
)

// Participant is the display name of a roster member.
// It is the only key used for pairing and history comparison.
type Participant string

func (p Participant) String() string {
	return string(p)
}

// ValidateRoster checks that every participant is non-empty and appears once.
func ValidateRoster(roster []Participant) error {
	if lo.Contains(roster, "") {
		return fmt.Errorf("%w: empty participant name", errors.ErrInvalidRoster)
	}
	if dup := lo.FindDuplicates(roster); len(dup) > 0 {
		return fmt.Errorf("%w: duplicate participants %v", errors.ErrInvalidRoster, dup)
	}
	return nil
}
