package backend

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const resourceTypesKey = "resource_types"

// ResourceTypeLister fetches resource types from the API.
type ResourceTypeLister interface {
	GetResourceTypes(ctx context.Context) ([]ResourceType, error)
}

// Catalog caches the resource type list, which wizards read on almost every step.
type Catalog struct {
	source ResourceTypeLister
	cache  *gocache.Cache
}

// NewCatalog creates a Catalog that refreshes from source after ttl.
func NewCatalog(source ResourceTypeLister, ttl time.Duration) *Catalog {
	return &Catalog{
		source: source,
		cache:  gocache.New(ttl, 2*ttl),
	}
}

// ResourceTypes returns all resource types.
func (c *Catalog) ResourceTypes(ctx context.Context) ([]ResourceType, error) {
	if cached, ok := c.cache.Get(resourceTypesKey); ok {
		return cached.([]ResourceType), nil
	}

	types, err := c.source.GetResourceTypes(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(resourceTypesKey, types)
	return types, nil
}

// ResourceType returns the resource type with the given id.
func (c *Catalog) ResourceType(ctx context.Context, id int) (ResourceType, bool, error) {
	types, err := c.ResourceTypes(ctx)
	if err != nil {
		return ResourceType{}, false, err
	}
	for _, rt := range types {
		if rt.ID == id {
			return rt, true, nil
		}
	}
	return ResourceType{}, false, nil
}

// Invalidate drops the cached list.
func (c *Catalog) Invalidate() {
	c.cache.Delete(resourceTypesKey)
}
