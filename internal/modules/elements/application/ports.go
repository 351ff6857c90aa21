package application

import (
	"context"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
)

// ResourceTypeAPI creates resource types.
type ResourceTypeAPI interface {
	CreateResourceType(ctx context.Context, in backend.CreateResourceTypeInput) (*backend.ResourceType, error)
}

// CatalogCache is the cached resource type list that must be dropped after a change.
type CatalogCache interface {
	Invalidate()
}
