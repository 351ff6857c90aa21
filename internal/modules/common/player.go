package common

import (
	"context"
	"errors"
	"fmt"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/bwmarrin/discordgo"
)

// PlayerDirectory resolves the backend records behind an interaction.
type PlayerDirectory interface {
	EnsureUser(ctx context.Context, in backend.CreateUserInput) (*backend.User, error)
	GetTownByGuild(ctx context.Context, guildID string) (*backend.Town, error)
	GetActiveCharacter(ctx context.Context, userID, townID string) (*backend.Character, error)
}

// Player is the invoker of an interaction with its backend user and town.
// Character is set only by ActiveCharacter.
type Player struct {
	Invoker
	User      *backend.User
	Town      *backend.Town
	Character *backend.Character
}

// EnsureUser registers the invoker in the backend if needed and loads the
// town of the guild.
func EnsureUser(ctx context.Context, dir PlayerDirectory, i *discordgo.InteractionCreate) (*Player, error) {
	inv, err := InvokerFrom(i)
	if err != nil {
		return nil, err
	}

	user, err := dir.EnsureUser(ctx, backend.CreateUserInput{
		DiscordID:     inv.Discord(),
		Username:      inv.User.Username,
		Discriminator: inv.User.Discriminator,
		GlobalName:    inv.User.GlobalName,
		Avatar:        inv.User.Avatar,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to ensure user: %w", err)
	}

	town, err := dir.GetTownByGuild(ctx, inv.Guild())
	if err != nil {
		return nil, fmt.Errorf("failed to get town: %w", err)
	}

	return &Player{Invoker: inv, User: user, Town: town}, nil
}

// ActiveCharacter is EnsureUser plus the living active character of the user.
func ActiveCharacter(ctx context.Context, dir PlayerDirectory, i *discordgo.InteractionCreate) (*Player, error) {
	player, err := EnsureUser(ctx, dir, i)
	if err != nil {
		return nil, err
	}

	character, err := dir.GetActiveCharacter(ctx, player.User.ID, player.Town.ID)
	if errors.Is(err, backend.ErrNoActiveCharacter) {
		return nil, Invalid(MsgNoCharacter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active character: %w", err)
	}
	if character.IsDead {
		return nil, Invalid(MsgCharacterDead)
	}

	player.Character = character
	return player, nil
}
