package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
)

// GuildAPI is the part of the game API used to register guilds.
type GuildAPI interface {
	UpsertGuild(ctx context.Context, in backend.UpsertGuildInput) (*backend.Guild, error)
	GetTownByGuild(ctx context.Context, guildID string) (*backend.Town, error)
}

// GuildSync registers the guilds the bot joins, each with its town.
type GuildSync struct {
	api GuildAPI
}

// NewGuildSync creates a new GuildSync.
func NewGuildSync(api GuildAPI) *GuildSync {
	return &GuildSync{api: api}
}

// Sync upserts the guild, then makes sure it has a town.
func (g *GuildSync) Sync(ctx context.Context, in backend.UpsertGuildInput) (*backend.Town, error) {
	guild, err := g.api.UpsertGuild(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert guild: %w", err)
	}

	// The API creates the town on first lookup.
	town, err := g.api.GetTownByGuild(ctx, in.DiscordID)
	if err != nil {
		return nil, fmt.Errorf("failed to get town: %w", err)
	}

	slog.Info("synced guild",
		"guild_id", in.DiscordID,
		"backend_guild_id", guild.ID,
		"town_id", town.ID,
	)
	return town, nil
}
