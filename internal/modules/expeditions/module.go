package expeditions

import (
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/bot"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/draft"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/expeditions/application"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/expeditions/domain"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/expeditions/presentation"
	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"
)

var _ bot.ConfigurableModule = (*ExpeditionsModule)(nil)

// API is the part of the game API the module calls.
type API interface {
	application.ExpeditionAPI
	common.PlayerDirectory
}

// ExpeditionsModule lets characters prepare, join and leave expeditions.
type ExpeditionsModule struct {
	api      API
	config   *Config
	handlers *presentation.Handlers
}

// New creates the expeditions module.
func New(api API) *ExpeditionsModule {
	return &ExpeditionsModule{api: api}
}

func (m *ExpeditionsModule) Name() string {
	return "expeditions"
}

func (m *ExpeditionsModule) Commands() []*discordgo.ApplicationCommand {
	return presentation.Commands()
}

func (m *ExpeditionsModule) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		presentation.CommandExpedition: m.handlers.HandleCommand,
	}
}

func (m *ExpeditionsModule) RegisterComponents(c *bot.Components) {
	m.handlers.Register(c)
}

func (m *ExpeditionsModule) EventHandlers() []bot.EventHandler {
	return nil
}

func (m *ExpeditionsModule) LoadConfig() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

func (m *ExpeditionsModule) Init(deps bot.ModuleDependencies) error {
	if m.config == nil {
		if err := m.LoadConfig(); err != nil {
			return err
		}
	}

	drafts := draft.NewStore[*domain.ExpeditionDraft]("expedition", m.config.DraftTTL)
	m.handlers = presentation.NewHandlers(
		application.NewExpeditionService(m.api),
		application.NewCreationService(drafts, m.api),
		m.api,
	)
	return nil
}

func (m *ExpeditionsModule) Shutdown() error {
	return nil
}
