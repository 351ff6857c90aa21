package domain

import "fmt"

// Direction is the heading an expedition leaves town with.
type Direction string

const (
	North     Direction = "NORD"
	NorthEast Direction = "NORD_EST"
	East      Direction = "EST"
	SouthEast Direction = "SUD_EST"
	South     Direction = "SUD"
	SouthWest Direction = "SUD_OUEST"
	West      Direction = "OUEST"
	NorthWest Direction = "NORD_OUEST"
)

// Directions lists every direction clockwise from north.
var Directions = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

var directionLabels = map[Direction]string{
	North:     "Nord",
	NorthEast: "Nord-Est",
	East:      "Est",
	SouthEast: "Sud-Est",
	South:     "Sud",
	SouthWest: "Sud-Ouest",
	West:      "Ouest",
	NorthWest: "Nord-Ouest",
}

var directionEmojis = map[Direction]string{
	North:     "⬆️",
	NorthEast: "↗️",
	East:      "➡️",
	SouthEast: "↘️",
	South:     "⬇️",
	SouthWest: "↙️",
	West:      "⬅️",
	NorthWest: "↖️",
}

// ParseDirection validates a direction name.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if _, ok := directionLabels[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
	return d, nil
}

// Label returns the French name.
func (d Direction) Label() string {
	if label, ok := directionLabels[d]; ok {
		return label
	}
	return "Inconnue"
}

// Emoji returns the arrow of the direction.
func (d Direction) Emoji() string {
	if emoji, ok := directionEmojis[d]; ok {
		return emoji
	}
	return "❓"
}
