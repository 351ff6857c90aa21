package application

import (
	"context"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
)

// CharacterAPI is the part of the game API used by characters.
type CharacterAPI interface {
	NeedsCharacterCreation(ctx context.Context, userID, townID string) (bool, error)
	CreateCharacter(ctx context.Context, in backend.CreateCharacterInput) (*backend.Character, error)
	EatFood(ctx context.Context, characterID string) (*backend.EatResult, error)
	GetActionPoints(ctx context.Context, characterID string) (*backend.ActionPoints, error)
	GetCharacterCapabilities(ctx context.Context, characterID string) ([]backend.Capability, error)
	UseCapability(ctx context.Context, characterID, capabilityID string, isSummer bool) (*backend.CapabilityResult, error)
}

// SeasonSource reports the current season.
type SeasonSource interface {
	GetCurrentSeason(ctx context.Context) (*backend.Season, error)
}
