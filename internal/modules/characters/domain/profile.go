package domain

import (
	"strings"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
)

// Stat caps of a character.
const (
	MaxActionPoints = 4
	MaxHP           = 5
	MaxPM           = 5
)

// Hunger levels, from fed to dead.
const (
	HungerFed = iota
	HungerHungry
	HungerStarving
	HungerAgony
	HungerDead
)

// Profile gathers what /profil shows about a character.
type Profile struct {
	Character    backend.Character
	ActionPoints int
	Capabilities []backend.Capability
}

// IsDead reports whether the character can no longer act.
func (p *Profile) IsDead() bool {
	return p.Character.IsDead || p.Character.HungerLevel >= HungerDead
}

// CanEat reports whether a meal would do anything.
func (p *Profile) CanEat() bool {
	return !p.IsDead() && p.Character.HungerLevel > HungerFed
}

// Statuses lists the conditions affecting the character. A dead character
// only has the death status.
func (p *Profile) Statuses() []string {
	if p.IsDead() {
		return []string{"💀 **Mort**"}
	}

	var statuses []string
	switch p.Character.HungerLevel {
	case HungerStarving:
		statuses = append(statuses, "😕 **Affamé** : -1 PA / jour")
	case HungerAgony:
		statuses = append(statuses, "😰 **Agonie** : 0 PA utilisables")
	}
	switch p.Character.PM {
	case 1:
		statuses = append(statuses, "😔 **Déprime** : 1 seul PA utilisable / jour")
	case 0:
		statuses = append(statuses, "🌧️ **Dépression** : 1 seul PA utilisable / jour + contamination")
	}
	return statuses
}

// Gauge draws current out of total as a row of symbols.
func Gauge(current, total int, full, empty string) string {
	current = min(max(current, 0), total)
	parts := make([]string, 0, total)
	for idx := range total {
		if idx < current {
			parts = append(parts, full)
		} else {
			parts = append(parts, empty)
		}
	}
	return strings.Join(parts, " ")
}
