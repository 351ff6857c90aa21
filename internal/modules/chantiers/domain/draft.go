// Package domain holds the chantier creation draft.
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
	ErrEmptyName         = errors.New("chantier name is empty")
	ErrInvalidCost       = errors.New("chantier cost must be positive")
	ErrInvalidQuantity   = errors.New("resource quantity must be positive")
	ErrDuplicateResource = errors.New("resource already added")
)

// ResourceCost is a resource requirement added to a draft.
type ResourceCost struct {
	ResourceTypeID int
	Name           string
	Emoji          string
	Quantity       int
}

// ChantierDraft is a chantier being composed by an admin.
type ChantierDraft struct {
	draft.Lifecycle

	Name           string
	Cost           int
	CompletionText string
	GuildID        string
	CreatedBy      string
	ResourceCosts  []ResourceCost
}

// NewChantierDraft starts a draft from the creation modal.
func NewChantierDraft(name string, cost int, completionText, guildID, createdBy string) (*ChantierDraft, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if cost <= 0 {
		return nil, ErrInvalidCost
	}

	return &ChantierDraft{
		Name:           name,
		Cost:           cost,
		CompletionText: strings.TrimSpace(completionText),
		GuildID:        guildID,
		CreatedBy:      createdBy,
		ResourceCosts:  []ResourceCost{},
	}, nil
}

// Clone returns a copy that shares no state with d.
func (d *ChantierDraft) Clone() *ChantierDraft {
	c := *d
	c.ResourceCosts = slices.Clone(d.ResourceCosts)
	return &c
}

// HasResource reports whether a resource type was already added.
func (d *ChantierDraft) HasResource(resourceTypeID int) bool {
	for _, rc := range d.ResourceCosts {
		if rc.ResourceTypeID == resourceTypeID {
			return true
		}
	}
	return false
}

// AddResource appends a resource requirement.
func (d *ChantierDraft) AddResource(rc ResourceCost) error {
	if err := d.Edit(); err != nil {
		return err
	}
	if rc.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if d.HasResource(rc.ResourceTypeID) {
		return ErrDuplicateResource
	}
	if err := d.Lifecycle.AddResource(); err != nil {
		return err
	}

	d.ResourceCosts = append(d.ResourceCosts, rc)
	return nil
}

// Validate checks the accumulated fields before submission.
func (d *ChantierDraft) Validate() error {
	if d.Name == "" {
		return ErrEmptyName
	}
	if d.Cost <= 0 {
		return ErrInvalidCost
	}
	return d.Lifecycle.Validate()
}
