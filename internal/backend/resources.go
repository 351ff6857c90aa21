package backend

import (
	"context"
	"strconv"
)

// GetResourceTypes lists every resource type.
func (c *Client) GetResourceTypes(ctx context.Context) ([]ResourceType, error) {
	var types []ResourceType
	if err := c.get(ctx, "/resources/types", &types); err != nil {
		return nil, err
	}
	return types, nil
}

// CreateResourceType adds a resource type to the game.
func (c *Client) CreateResourceType(ctx context.Context, in CreateResourceTypeInput) (*ResourceType, error) {
	var rt ResourceType
	if err := c.post(ctx, "/resources/types", in, &rt); err != nil {
		return nil, err
	}
	return &rt, nil
}

// GetResources lists the resources held at a location.
func (c *Client) GetResources(ctx context.Context, locationType, locationID string) ([]Resource, error) {
	var resources []Resource
	if err := c.get(ctx, "/resources/"+locationType+"/"+locationID, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

type quantityInput struct {
	Quantity int `json:"quantity"`
}

func resourcePath(locationType, locationID string, resourceTypeID int) string {
	return "/resources/" + locationType + "/" + locationID + "/" + strconv.Itoa(resourceTypeID)
}

// AddResource adds quantity of a resource type to a location.
func (c *Client) AddResource(ctx context.Context, locationType, locationID string, resourceTypeID, quantity int) error {
	return c.post(ctx, resourcePath(locationType, locationID, resourceTypeID), quantityInput{Quantity: quantity}, nil)
}

// RemoveResource removes quantity of a resource type from a location.
func (c *Client) RemoveResource(ctx context.Context, locationType, locationID string, resourceTypeID, quantity int) error {
	return c.delete(ctx, resourcePath(locationType, locationID, resourceTypeID), quantityInput{Quantity: quantity})
}
