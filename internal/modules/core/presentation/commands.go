package presentation

import "github.com/bwmarrin/discordgo"

// Command names.
const (
	CommandPing = "ping"
	CommandHelp = "help"
)

// ElementAdminPrefix prefixes the element admin components. The elements
// module handles resource creation under longer ids; everything else lands here.
const ElementAdminPrefix = "element_admin_"

// Commands returns the slash commands of the core module.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        CommandPing,
			Description: "Répond avec pong!",
		},
		{
			Name:        CommandHelp,
			Description: "Affiche la liste des commandes disponibles",
		},
	}
}
