package common

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
)

// Invoker identifies who triggered an interaction and in which guild.
type Invoker struct {
	GuildID snowflake.ID
	UserID  snowflake.ID
	User    *discordgo.User
}

// InteractionUser returns the user behind an interaction, whether it came
// from a guild (Member) or a DM (User).
func InteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// InvokerFrom validates the guild and user ids of an interaction.
// Interactions outside a guild are rejected with a ValidationError.
func InvokerFrom(i *discordgo.InteractionCreate) (Invoker, error) {
	if i.GuildID == "" {
		return Invoker{}, Invalid(MsgGuildOnly)
	}

	user := InteractionUser(i)
	if user == nil {
		return Invoker{}, fmt.Errorf("interaction %s has no user", i.ID)
	}

	guildID, err := snowflake.Parse(i.GuildID)
	if err != nil {
		return Invoker{}, fmt.Errorf("invalid guild id %q: %w", i.GuildID, err)
	}
	userID, err := snowflake.Parse(user.ID)
	if err != nil {
		return Invoker{}, fmt.Errorf("invalid user id %q: %w", user.ID, err)
	}

	return Invoker{GuildID: guildID, UserID: userID, User: user}, nil
}

// Guild returns the guild id as the backend expects it.
func (inv Invoker) Guild() string {
	return inv.GuildID.String()
}

// Discord returns the Discord user id as a string.
func (inv Invoker) Discord() string {
	return inv.UserID.String()
}

// DisplayName returns the global name of the user, or the username.
func (inv Invoker) DisplayName() string {
	if inv.User.GlobalName != "" {
		return inv.User.GlobalName
	}
	return inv.User.Username
}
