package characters

import (
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/bot"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/characters/application"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/characters/presentation"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/bwmarrin/discordgo"
)

var _ bot.Module = (*CharactersModule)(nil)

// API is the part of the game API the module calls.
type API interface {
	application.CharacterAPI
	application.SeasonSource
	common.PlayerDirectory
}

// CharactersModule shows profiles and lets characters eat and use capabilities.
type CharactersModule struct {
	api      API
	handlers *presentation.Handlers
}

// New creates the characters module.
func New(api API) *CharactersModule {
	return &CharactersModule{api: api}
}

func (m *CharactersModule) Name() string {
	return "characters"
}

func (m *CharactersModule) Commands() []*discordgo.ApplicationCommand {
	return presentation.Commands()
}

func (m *CharactersModule) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		presentation.CommandProfile:     m.handlers.HandleProfile,
		presentation.CommandEat:         m.handlers.HandleEat,
		presentation.CommandUseCapacity: m.handlers.HandleUseCapacity,
	}
}

func (m *CharactersModule) RegisterComponents(c *bot.Components) {
	m.handlers.Register(c)
}

// EventHandlers answers autocomplete requests of /use-capacity.
func (m *CharactersModule) EventHandlers() []bot.EventHandler {
	return []bot.EventHandler{
		func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			if i.Type != discordgo.InteractionApplicationCommandAutocomplete {
				return
			}
			if i.ApplicationCommandData().Name != presentation.CommandUseCapacity {
				return
			}
			m.handlers.HandleAutocomplete(s, i, bot.NewDiscordResponder(s, i.Interaction))
		},
	}
}

func (m *CharactersModule) Init(deps bot.ModuleDependencies) error {
	m.handlers = presentation.NewHandlers(
		application.NewProfileService(m.api),
		application.NewEatService(m.api),
		application.NewCapabilityService(m.api, m.api),
		m.api,
	)
	return nil
}

func (m *CharactersModule) Shutdown() error {
	return nil
}
