package town

import (
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/bot"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/town/application"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/town/presentation"
	"github.com/bwmarrin/discordgo"
)

var _ bot.Module = (*TownModule)(nil)

// API is the part of the game API the module calls.
type API interface {
	application.StockAPI
	application.FoodStockAPI
	application.SeasonAPI
	common.PlayerDirectory
}

// TownModule shows the town stock and lets admins change it and the season.
type TownModule struct {
	api      API
	catalog  application.ResourceCatalog
	handlers *presentation.Handlers
}

// New creates the town module.
func New(api API, catalog application.ResourceCatalog) *TownModule {
	return &TownModule{api: api, catalog: catalog}
}

func (m *TownModule) Name() string {
	return "town"
}

func (m *TownModule) Commands() []*discordgo.ApplicationCommand {
	return presentation.Commands()
}

func (m *TownModule) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		presentation.CommandStock:       m.handlers.HandleStock,
		presentation.CommandFoodStock:   m.handlers.HandleFoodStock,
		presentation.CommandStockAdmin:  m.handlers.HandleStockAdmin,
		presentation.CommandSeasonAdmin: m.handlers.HandleSeasonAdmin,

		presentation.CommandFoodStockAdmin: m.handlers.HandleFoodStockAdmin,
	}
}

func (m *TownModule) RegisterComponents(c *bot.Components) {
	m.handlers.Register(c)
}

func (m *TownModule) EventHandlers() []bot.EventHandler {
	return nil
}

func (m *TownModule) Init(deps bot.ModuleDependencies) error {
	m.handlers = presentation.NewHandlers(
		application.NewStockService(m.api, m.catalog),
		application.NewFoodStockService(m.api),
		application.NewSeasonService(m.api),
		m.api,
	)
	return nil
}

func (m *TownModule) Shutdown() error {
	return nil
}
