package common

import "github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"

// Contribution is what a player offers to a chantier or project, reduced to
// what is still needed.
type Contribution struct {
	Points    int
	Resources []backend.ResourceContribution
	// Clamped is true when an amount was reduced.
	Clamped bool
}

// Empty reports whether nothing would be given.
func (c Contribution) Empty() bool {
	return c.Points == 0 && len(c.Resources) == 0
}

// ClampContribution parses typed PA and resource quantities and caps each at
// the remaining need. rawResources maps resource type ids to typed values;
// types absent from costs are ignored.
func ClampContribution(
	rawPoints string,
	remainingPA int,
	rawResources map[int]string,
	costs []backend.ResourceCost,
) (Contribution, error) {
	var c Contribution

	points, err := ParseOptionalInt(rawPoints)
	if err != nil {
		return Contribution{}, err
	}
	if points > remainingPA {
		points = remainingPA
		c.Clamped = true
	}
	c.Points = points

	for _, cost := range costs {
		raw, ok := rawResources[cost.ResourceTypeID]
		if !ok {
			continue
		}
		qty, err := ParseOptionalInt(raw)
		if err != nil {
			return Contribution{}, err
		}
		if remaining := cost.Remaining(); qty > remaining {
			qty = remaining
			c.Clamped = true
		}
		if qty > 0 {
			c.Resources = append(c.Resources, backend.ResourceContribution{
				ResourceTypeID: cost.ResourceTypeID,
				Quantity:       qty,
			})
		}
	}
	return c, nil
}
