package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownCategory is returned for an element category the admin panel does not offer.
	ErrUnknownCategory = errors.New("unknown element category")

	// ErrInvalidResourceCategory is returned when a resource type is not base, transformé or science.
	ErrInvalidResourceCategory = errors.New("invalid resource category")

	// ErrMissingName is returned for a resource type without a name.
	ErrMissingName = errors.New("missing name")

	// ErrMissingEmoji is returned for a resource type without an emoji.
	ErrMissingEmoji = errors.New("missing emoji")
)

// Category is a kind of game element an admin can manage.
type Category string

const (
	CategoryResource   Category = "resource"
	CategoryObject     Category = "object"
	CategorySkill      Category = "skill"
	CategoryCapability Category = "capability"
	CategoryEmoji      Category = "emoji"
)

// Categories lists the categories in panel order.
var Categories = []Category{CategoryResource, CategoryObject, CategorySkill, CategoryCapability, CategoryEmoji}

// ParseCategory validates a category carried in a customId.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Label returns the button label of the category.
func (c Category) Label() string {
	switch c {
	case CategoryResource:
		return "📦 Ressources"
	case CategoryObject:
		return "🎒 Objets"
	case CategorySkill:
		return "⚔️ Compétences"
	case CategoryCapability:
		return "✨ Capacités"
	case CategoryEmoji:
		return "🎨 Emojis"
	}
	return string(c)
}

// Resource type categories accepted by the game API.
const (
	ResourceBase        = "base"
	ResourceTransformed = "transformé"
	ResourceScience     = "science"
)

// ResourceType is a new resource type before it is sent to the game API.
type ResourceType struct {
	Name        string
	Emoji       string
	Category    string
	Description string
}

// NewResourceType trims the admin input and checks it.
func NewResourceType(name, emoji, category, description string) (ResourceType, error) {
	rt := ResourceType{
		Name:        strings.TrimSpace(name),
		Emoji:       strings.TrimSpace(emoji),
		Category:    strings.ToLower(strings.TrimSpace(category)),
		Description: strings.TrimSpace(description),
	}

	switch {
	case rt.Name == "":
		return rt, ErrMissingName
	case rt.Emoji == "":
		return rt, ErrMissingEmoji
	}
	switch rt.Category {
	case ResourceBase, ResourceTransformed, ResourceScience:
		return rt, nil
	default:
		return rt, fmt.Errorf("%w: %q", ErrInvalidResourceCategory, rt.Category)
	}
}
