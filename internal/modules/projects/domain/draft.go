// Package domain holds the project creation draft.
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
	ErrEmptyName          = errors.New("project name is empty")
	ErrInvalidPA          = errors.New("project PA must be positive")
	ErrInvalidOutput      = errors.New("output quantity must be positive")
	ErrUnknownCraftType   = errors.New("unknown craft type")
	ErrNoCraftType        = errors.New("at least one craft type is required")
	ErrNoOutput           = errors.New("output resource is required")
	ErrInvalidQuantity    = errors.New("resource quantity must be positive")
	ErrDuplicateResource  = errors.New("resource already added")
	ErrInvalidBlueprintPA = errors.New("blueprint PA must be positive")
)

// ResourceCost is a resource requirement added to a draft.
type ResourceCost struct {
	ResourceTypeID int
	Name           string
	Emoji          string
	Quantity       int
}

// ProjectDraft is a project being composed by an admin.
type ProjectDraft struct {
	draft.Lifecycle

	Name           string
	PARequired     int
	OutputQuantity int
	GuildID        string
	CreatedBy      string

	CraftTypes           []CraftType
	OutputResourceTypeID int
	OutputName           string
	ResourceCosts        []ResourceCost
	// BlueprintPA is the PA needed to craft the project again once completed; 0 means none.
	BlueprintPA int
}

// NewProjectDraft starts a draft from the creation modal.
func NewProjectDraft(name string, paRequired, outputQuantity int, guildID, createdBy string) (*ProjectDraft, error) {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return nil, ErrEmptyName
	case paRequired <= 0:
		return nil, ErrInvalidPA
	case outputQuantity <= 0:
		return nil, ErrInvalidOutput
	}

	return &ProjectDraft{
		Name:           name,
		PARequired:     paRequired,
		OutputQuantity: outputQuantity,
		GuildID:        guildID,
		CreatedBy:      createdBy,
		ResourceCosts:  []ResourceCost{},
	}, nil
}

// Clone returns a copy that shares no state with d.
func (d *ProjectDraft) Clone() *ProjectDraft {
	c := *d
	c.CraftTypes = slices.Clone(d.CraftTypes)
	c.ResourceCosts = slices.Clone(d.ResourceCosts)
	return &c
}

// SetCraftTypes replaces the craft types. Duplicates are ignored.
func (d *ProjectDraft) SetCraftTypes(types []CraftType) error {
	if err := d.Edit(); err != nil {
		return err
	}
	if len(types) == 0 {
		return ErrNoCraftType
	}

	unique := make([]CraftType, 0, len(types))
	for _, ct := range types {
		if !slices.Contains(unique, ct) {
			unique = append(unique, ct)
		}
	}
	d.CraftTypes = unique
	return nil
}

// SetOutput sets the produced resource type.
func (d *ProjectDraft) SetOutput(resourceTypeID int, name string) error {
	if err := d.Edit(); err != nil {
		return err
	}
	d.OutputResourceTypeID = resourceTypeID
	d.OutputName = name
	return nil
}

// SetBlueprintPA sets the PA cost of the blueprint.
func (d *ProjectDraft) SetBlueprintPA(pa int) error {
	if err := d.Edit(); err != nil {
		return err
	}
	if pa <= 0 {
		return ErrInvalidBlueprintPA
	}
	d.BlueprintPA = pa
	return nil
}

// HasResource reports whether a resource type was already added.
func (d *ProjectDraft) HasResource(resourceTypeID int) bool {
	return slices.ContainsFunc(d.ResourceCosts, func(rc ResourceCost) bool {
		return rc.ResourceTypeID == resourceTypeID
	})
}

// AddResource appends a resource requirement.
func (d *ProjectDraft) AddResource(rc ResourceCost) error {
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
func (d *ProjectDraft) Validate() error {
	if len(d.CraftTypes) == 0 {
		return ErrNoCraftType
	}
	if d.OutputResourceTypeID == 0 {
		return ErrNoOutput
	}
	return d.Lifecycle.Validate()
}
