package elements

import (
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/bot"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/elements/application"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/elements/presentation"
	"github.com/bwmarrin/discordgo"
)

var _ bot.Module = (*ElementsModule)(nil)

// ElementsModule lets admins add game elements such as resource types.
type ElementsModule struct {
	api      application.ResourceTypeAPI
	catalog  application.CatalogCache
	handlers *presentation.Handlers
}

// New creates the elements module.
func New(api application.ResourceTypeAPI, catalog application.CatalogCache) *ElementsModule {
	return &ElementsModule{api: api, catalog: catalog}
}

func (m *ElementsModule) Name() string {
	return "elements"
}

func (m *ElementsModule) Commands() []*discordgo.ApplicationCommand {
	return presentation.Commands()
}

func (m *ElementsModule) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		presentation.CommandNewElementAdmin: m.handlers.HandleNewElementAdmin,
	}
}

func (m *ElementsModule) RegisterComponents(c *bot.Components) {
	m.handlers.Register(c)
}

func (m *ElementsModule) EventHandlers() []bot.EventHandler {
	return nil
}

func (m *ElementsModule) Init(deps bot.ModuleDependencies) error {
	m.handlers = presentation.NewHandlers(application.NewResourceService(m.api, m.catalog))
	return nil
}

func (m *ElementsModule) Shutdown() error {
	return nil
}
