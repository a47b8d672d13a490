package game

import (
	"fmt"
	"strings"
)

// RotationPolicy decides who opens the discussion in the next round
type RotationPolicy string

const (
	RotationFixed   RotationPolicy = "fixed"   // keep the current starting seat
	RotationAdvance RotationPolicy = "advance" // move one seat along each round
	RotationRandom  RotationPolicy = "random"  // draw a fresh seat each round
)

// ParseRotationPolicy accepts the config spelling of a policy
func ParseRotationPolicy(s string) (RotationPolicy, error) {
	switch p := RotationPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case RotationFixed, RotationAdvance, RotationRandom:
		return p, nil
	case "":
		return RotationFixed, nil
	default:
		return "", fmt.Errorf("unknown rotation policy %q", s)
	}
}

// Next returns the starting seat for a new round
func (p RotationPolicy) Next(current, seats int, rng Rand) int {
	if seats <= 0 {
		return 0
	}
	switch p {
	case RotationAdvance:
		return (current + 1) % seats
	case RotationRandom:
		return rng.IntN(seats)
	default:
		return current
	}
}
