package application

import (
	"context"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
)

// StockAPI is the part of the game API used to read and change town stock.
type StockAPI interface {
	GetTownByGuild(ctx context.Context, guildID string) (*backend.Town, error)
	GetResources(ctx context.Context, locationType, locationID string) ([]backend.Resource, error)
	AddResource(ctx context.Context, locationType, locationID string, resourceTypeID, quantity int) error
	RemoveResource(ctx context.Context, locationType, locationID string, resourceTypeID, quantity int) error
}

// FoodStockAPI reads and sets the food stock of a town.
type FoodStockAPI interface {
	GetTownByGuild(ctx context.Context, guildID string) (*backend.Town, error)
	GetTown(ctx context.Context, townID string) (*backend.Town, error)
	UpdateTownFoodStock(ctx context.Context, townID string, foodStock int) (*backend.Town, error)
}

// SeasonAPI reads and sets the game season.
type SeasonAPI interface {
	GetCurrentSeason(ctx context.Context) (*backend.Season, error)
	SetSeason(ctx context.Context, season, adminID string) error
}

// ResourceCatalog lists resource types.
type ResourceCatalog interface {
	ResourceTypes(ctx context.Context) ([]backend.ResourceType, error)
	ResourceType(ctx context.Context, id int) (backend.ResourceType, bool, error)
}
