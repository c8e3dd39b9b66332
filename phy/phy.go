package phy

import "fmt"

// Type is the simulated medium.
type Type uint8

const (
	BrEdr Type = iota
	LowEnergy
)

func (t Type) String() string {
	switch t {
	case BrEdr:
		return "BR_EDR"
	case LowEnergy:
		return "LOW_ENERGY"
	default:
		return fmt.Sprintf("PHY(%d)", uint8(t))
	}
}

// ParseType accepts the names printed by Type.String.
func ParseType(s string) (Type, error) {
	switch s {
	case "BR_EDR", "br_edr", "classic":
		return BrEdr, nil
	case "LOW_ENERGY", "low_energy", "le":
		return LowEnergy, nil
	}
	return 0, fmt.Errorf("unknown phy type %q", s)
}
