package presentation

import (
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/bwmarrin/discordgo"
)

// CommandNewElementAdmin opens the element admin panel.
const CommandNewElementAdmin = "new-element-admin"

// Commands returns the slash commands of the elements module.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:                     CommandNewElementAdmin,
			Description:              "Ajouter une nouvelle capacité ou ressource",
			DefaultMemberPermissions: common.AdminPermissions(),
			DMPermission:             common.GuildOnly(),
		},
	}
}
