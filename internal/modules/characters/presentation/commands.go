package presentation

import (
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/bwmarrin/discordgo"
)

// Command names.
const (
	CommandProfile     = "profil"
	CommandEat         = "manger"
	CommandUseCapacity = "use-capacity"
)

const optionCapability = "capacite"

// Commands returns the slash commands of the characters module.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:         CommandProfile,
			Description:  "Voir le profil de votre personnage",
			DMPermission: common.GuildOnly(),
		},
		{
			Name:         CommandEat,
			Description:  "Manger un repas pris sur les vivres de la ville",
			DMPermission: common.GuildOnly(),
		},
		{
			Name:         CommandUseCapacity,
			Description:  "Utiliser une capacité spéciale de votre personnage",
			DMPermission: common.GuildOnly(),
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:         discordgo.ApplicationCommandOptionString,
					Name:         optionCapability,
					Description:  "Nom de la capacité à utiliser",
					Autocomplete: true,
				},
			},
		},
	}
}
