package application

import (
	"context"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
)

// ChantierAPI is the part of the game API used by chantiers.
type ChantierAPI interface {
	GetChantiersByGuild(ctx context.Context, guildID string) ([]backend.Chantier, error)
	GetChantier(ctx context.Context, chantierID string) (*backend.Chantier, error)
	CreateChantier(ctx context.Context, in backend.CreateChantierInput) (*backend.Chantier, error)
	DeleteChantier(ctx context.Context, chantierID string) error
	InvestInChantier(ctx context.Context, chantierID, characterID string, points int) (*backend.InvestResult, error)
	ContributeResourcesToChantier(
		ctx context.Context,
		chantierID, characterID string,
		contributions []backend.ResourceContribution,
	) (*backend.Chantier, error)
}

// ResourceCatalog lists resource types.
type ResourceCatalog interface {
	ResourceTypes(ctx context.Context) ([]backend.ResourceType, error)
	ResourceType(ctx context.Context, id int) (backend.ResourceType, bool, error)
}
