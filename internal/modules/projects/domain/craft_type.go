package domain

import "fmt"

// CraftType is the artisan trade able to work on a project.
type CraftType string

const (
	CraftWeave    CraftType = "TISSER"
	CraftForge    CraftType = "FORGER"
	CraftWoodwork CraftType = "MENUISER"
)

// CraftTypes lists every craft type in display order.
var CraftTypes = []CraftType{CraftWeave, CraftForge, CraftWoodwork}

// ParseCraftType validates a craft type name.
func ParseCraftType(s string) (CraftType, error) {
	for _, ct := range CraftTypes {
		if string(ct) == s {
			return ct, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCraftType, s)
}

// Label returns the French display name.
func (c CraftType) Label() string {
	switch c {
	case CraftWeave:
		return "Tisser"
	case CraftForge:
		return "Forger"
	case CraftWoodwork:
		return "Menuiser"
	default:
		return string(c)
	}
}

// Emoji returns the emoji of the trade.
func (c CraftType) Emoji() string {
	switch c {
	case CraftWeave:
		return "🧵"
	case CraftForge:
		return "🔨"
	case CraftWoodwork:
		return "🪚"
	default:
		return "🛠️"
	}
}
