package application

import (
	"context"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
)

// ProjectAPI is the part of the game API used by projects.
type ProjectAPI interface {
	GetTownByGuild(ctx context.Context, guildID string) (*backend.Town, error)
	GetProjectsByTown(ctx context.Context, townID string) ([]backend.Project, error)
	CreateProject(ctx context.Context, in backend.CreateProjectInput) (*backend.Project, error)
	DeleteProject(ctx context.Context, projectID string) error
	ContributeToProject(
		ctx context.Context,
		characterID, projectID string,
		in backend.ContributeProjectInput,
	) (*backend.Project, error)
}

// ResourceCatalog lists resource types.
type ResourceCatalog interface {
	ResourceTypes(ctx context.Context) ([]backend.ResourceType, error)
	ResourceType(ctx context.Context, id int) (backend.ResourceType, bool, error)
}
