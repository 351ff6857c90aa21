package presentation

import (
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/bwmarrin/discordgo"
)

// CommandExpedition is the name of the expedition command.
const CommandExpedition = "expedition"

// Commands returns the slash commands of the expeditions module.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:         CommandExpedition,
			Description:  "Voir, créer ou rejoindre une expédition",
			DMPermission: common.GuildOnly(),
		},
	}
}
