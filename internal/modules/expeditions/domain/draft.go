// Package domain holds the expedition creation draft.
package domain

import (
	"errors"
	"slices"
	"strings"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/draft"
)

// ErrInvalidTransition is returned when a step is not allowed in the draft's state.
var ErrInvalidTransition = draft.ErrInvalidTransition

var (
	ErrEmptyName         = errors.New("expedition name is empty")
	ErrInvalidDuration   = errors.New("expedition duration must be at least one day")
	ErrInvalidQuantity   = errors.New("resource quantity must be positive")
	ErrInsufficientStock = errors.New("not enough resources in town stock")
	ErrUnknownDirection  = errors.New("unknown direction")
)

// Resource is a quantity of a resource taken from town stock.
type Resource struct {
	ResourceTypeID int
	Name           string
	Emoji          string
	Quantity       int
}

// ExpeditionDraft is an expedition being prepared by a player.
type ExpeditionDraft struct {
	draft.Lifecycle

	Name        string
	Duration    int
	TownID      string
	CharacterID string
	CreatedBy   string
	Resources   []Resource
}

// NewExpeditionDraft starts a draft from the creation modal.
func NewExpeditionDraft(name string, duration int, townID, characterID, createdBy string) (*ExpeditionDraft, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if duration < 1 {
		return nil, ErrInvalidDuration
	}

	return &ExpeditionDraft{
		Name:        name,
		Duration:    duration,
		TownID:      townID,
		CharacterID: characterID,
		CreatedBy:   createdBy,
		Resources:   []Resource{},
	}, nil
}

// Clone returns a copy that shares no state with d.
func (d *ExpeditionDraft) Clone() *ExpeditionDraft {
	c := *d
	c.Resources = slices.Clone(d.Resources)
	return &c
}

// Quantity returns how much of a resource type is already packed.
func (d *ExpeditionDraft) Quantity(resourceTypeID int) int {
	for _, r := range d.Resources {
		if r.ResourceTypeID == resourceTypeID {
			return r.Quantity
		}
	}
	return 0
}

// AddResource packs a resource. Adding a type already packed increases its
// quantity. The packed total of a type may not exceed available.
func (d *ExpeditionDraft) AddResource(r Resource, available int) error {
	if err := d.Edit(); err != nil {
		return err
	}
	if r.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if d.Quantity(r.ResourceTypeID)+r.Quantity > available {
		return ErrInsufficientStock
	}
	if err := d.Lifecycle.AddResource(); err != nil {
		return err
	}

	for idx := range d.Resources {
		if d.Resources[idx].ResourceTypeID == r.ResourceTypeID {
			d.Resources[idx].Quantity += r.Quantity
			return nil
		}
	}
	d.Resources = append(d.Resources, r)
	return nil
}
