package application

import (
	"context"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
)

// ExpeditionAPI is the part of the game API used by expeditions.
type ExpeditionAPI interface {
	GetActiveExpeditionsForCharacter(ctx context.Context, characterID string) ([]backend.Expedition, error)
	GetExpeditionsByTown(ctx context.Context, townID string) ([]backend.Expedition, error)
	GetExpedition(ctx context.Context, expeditionID string) (*backend.Expedition, error)
	CreateExpedition(ctx context.Context, in backend.CreateExpeditionInput) (*backend.Expedition, error)
	JoinExpedition(ctx context.Context, expeditionID, characterID string) (*backend.Expedition, error)
	LeaveExpedition(ctx context.Context, expeditionID, characterID string) error
	GetResources(ctx context.Context, locationType, locationID string) ([]backend.Resource, error)
}
