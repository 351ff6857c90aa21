package presentation

import (
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/bwmarrin/discordgo"
)

// Command names.
const (
	CommandProjects      = "projets"
	CommandProjectsAdmin = "projets-admin"
)

// Commands returns the slash commands of the projects module.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:         CommandProjects,
			Description:  "Voir les projets d'artisanat de la ville et y contribuer",
			DMPermission: common.GuildOnly(),
		},
		{
			Name:                     CommandProjectsAdmin,
			Description:              "Créer ou supprimer des projets d'artisanat",
			DefaultMemberPermissions: common.AdminPermissions(),
			DMPermission:             common.GuildOnly(),
		},
	}
}
