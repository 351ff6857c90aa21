package backend

import (
	"context"
	"errors"
	"log/slog"
)

type createTownInput struct {
	Name    string `json:"name"`
	GuildID string `json:"guildId"`
}

// GetTownByGuild returns the town of a Discord guild, creating a default one on first use.
func (c *Client) GetTownByGuild(ctx context.Context, guildID string) (*Town, error) {
	var town Town
	err := c.get(ctx, "/towns/guild/"+guildID, &town)
	if err == nil {
		return &town, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	slog.Info("created town for guild", "guild_id", guildID)
	if err := c.post(ctx, "/towns", createTownInput{Name: "Ville principale", GuildID: guildID}, &town); err != nil {
		return nil, err
	}
	return &town, nil
}

// GetTown fetches a town by id.
func (c *Client) GetTown(ctx context.Context, townID string) (*Town, error) {
	var town Town
	if err := c.get(ctx, "/towns/"+townID, &town); err != nil {
		return nil, err
	}
	return &town, nil
}

type foodStockInput struct {
	FoodStock int `json:"foodStock"`
}

// UpdateTownFoodStock sets the food stock of a town.
func (c *Client) UpdateTownFoodStock(ctx context.Context, townID string, foodStock int) (*Town, error) {
	var town Town
	if err := c.patch(ctx, "/towns/"+townID+"/food-stock", foodStockInput{FoodStock: foodStock}, &town); err != nil {
		return nil, err
	}
	return &town, nil
}
