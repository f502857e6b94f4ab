package model

import (
	"fmt"
	"strings"
)

// Position is a roster position. Keep these values stable; they appear in CSV
// input and output.
type Position string

const (
	PositionQB  Position = "QB"
	PositionRB  Position = "RB"
	PositionWR  Position = "WR"
	PositionTE  Position = "TE"
	PositionK   Position = "K"
	PositionDST Position = "DST"
)

// Positions lists every valid position in lineup order.
var Positions = []Position{PositionQB, PositionRB, PositionWR, PositionTE, PositionK, PositionDST}

// ParsePosition accepts any case and surrounding whitespace.
func ParsePosition(s string) (Position, error) {
	p := Position(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Positions {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown position %q: %s", s, positionReason())
}

func positionReason() string {
	names := make([]string, len(Positions))
	for i, p := range Positions {
		names[i] = string(p)
	}
	return "must be one of " + strings.Join(names, ", ")
}

// IsFlexEligible reports whether the position may fill a FLEX slot.
func (p Position) IsFlexEligible() bool {
	switch p {
	case PositionRB, PositionWR, PositionTE:
		return true
	default:
		return false
	}
}

// Slot is a starting lineup slot. Base slots share their name with a position.
type Slot string

const (
	SlotQB   Slot = "QB"
	SlotRB   Slot = "RB"
	SlotWR   Slot = "WR"
	SlotTE   Slot = "TE"
	SlotK    Slot = "K"
	SlotDST  Slot = "DST"
	SlotFlex Slot = "FLEX"
)
