package backend

import (
	"context"
	"errors"
	"fmt"
)

// GetUserByDiscordID fetches a user by Discord id.
func (c *Client) GetUserByDiscordID(ctx context.Context, discordID string) (*User, error) {
	var user User
	if err := c.get(ctx, "/users/discord/"+discordID, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser registers a new user.
func (c *Client) CreateUser(ctx context.Context, in CreateUserInput) (*User, error) {
	var user User
	if err := c.post(ctx, "/users", in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates the profile of an existing user.
func (c *Client) UpdateUser(ctx context.Context, discordID string, in UpdateUserInput) (*User, error) {
	var user User
	if err := c.put(ctx, "/users/discord/"+discordID, in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureUser returns the user for in.DiscordID, creating it when unknown
// and refreshing its profile otherwise.
func (c *Client) EnsureUser(ctx context.Context, in CreateUserInput) (*User, error) {
	user, err := c.GetUserByDiscordID(ctx, in.DiscordID)
	switch {
	case errors.Is(err, ErrNotFound):
		if in.Email == "" {
			in.Email = fmt.Sprintf("%s@discord.placeholder", in.DiscordID)
		}
		return c.CreateUser(ctx, in)
	case err != nil:
		return nil, err
	}

	if user.Username == in.Username && user.GlobalName == in.GlobalName && user.Avatar == in.Avatar {
		return user, nil
	}
	return c.UpdateUser(ctx, in.DiscordID, UpdateUserInput{
		Username:      in.Username,
		Discriminator: in.Discriminator,
		GlobalName:    in.GlobalName,
		Avatar:        in.Avatar,
	})
}

// UpsertGuild creates or updates a guild.
func (c *Client) UpsertGuild(ctx context.Context, in UpsertGuildInput) (*Guild, error) {
	var guild Guild
	if err := c.post(ctx, "/guilds", in, &guild); err != nil {
		return nil, err
	}
	return &guild, nil
}
