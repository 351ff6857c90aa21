package presentation

import (
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/bwmarrin/discordgo"
)

// Command names.
const (
	CommandChantiers      = "chantiers"
	CommandChantiersAdmin = "chantiers-admin"
)

// Commands returns the slash commands of the chantiers module.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:         CommandChantiers,
			Description:  "Voir les chantiers de la ville et y participer",
			DMPermission: common.GuildOnly(),
		},
		{
			Name:                     CommandChantiersAdmin,
			Description:              "Créer ou supprimer des chantiers",
			DefaultMemberPermissions: common.AdminPermissions(),
			DMPermission:             common.GuildOnly(),
		},
	}
}
