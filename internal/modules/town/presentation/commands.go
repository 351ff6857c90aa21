package presentation

import (
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/town/domain"
	"github.com/bwmarrin/discordgo"
)

// Command names.
const (
	CommandStock       = "stock"
	CommandFoodStock   = "foodstock"
	CommandStockAdmin  = "stock-admin"
	CommandSeasonAdmin = "season-admin"

	CommandFoodStockAdmin = "foodstock-admin"
)

// Commands returns the slash commands of the town module.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:         CommandStock,
			Description:  "Voir le stock de ressources de la ville",
			DMPermission: common.GuildOnly(),
		},
		{
			Name:         CommandFoodStock,
			Description:  "Voir les vivres restants de la ville",
			DMPermission: common.GuildOnly(),
		},
		{
			Name:                     CommandStockAdmin,
			Description:              "Gérer le stock de ressources de la ville",
			DefaultMemberPermissions: common.AdminPermissions(),
			DMPermission:             common.GuildOnly(),
		},
		{
			Name:                     CommandFoodStockAdmin,
			Description:              "Administration du stock de vivres de la ville",
			DefaultMemberPermissions: common.AdminPermissions(),
			DMPermission:             common.GuildOnly(),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        string(domain.OperationAdd),
					Description: "Ajouter des vivres à la ville",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        string(domain.OperationRemove),
					Description: "Retirer des vivres de la ville",
				},
			},
		},
		{
			Name:                     CommandSeasonAdmin,
			Description:              "Changer la saison du jeu",
			DefaultMemberPermissions: common.AdminPermissions(),
			DMPermission:             common.GuildOnly(),
		},
	}
}
