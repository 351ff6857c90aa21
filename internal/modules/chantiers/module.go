package chantiers

import (
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/bot"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/draft"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/chantiers/application"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/chantiers/domain"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/chantiers/presentation"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"
)

// Compile-time interface checks.
var _ bot.ConfigurableModule = (*ChantiersModule)(nil)

// API is the part of the game API the module calls.
type API interface {
	application.ChantierAPI
	common.PlayerDirectory
}

// ChantiersModule lets players fund guild construction sites and admins create them.
type ChantiersModule struct {
	api      API
	catalog  application.ResourceCatalog
	config   *Config
	handlers *presentation.Handlers
}

// New creates the chantiers module.
func New(api API, catalog application.ResourceCatalog) *ChantiersModule {
	return &ChantiersModule{api: api, catalog: catalog}
}

// Name returns the module name.
func (m *ChantiersModule) Name() string {
	return "chantiers"
}

// Commands returns the slash commands for this module.
func (m *ChantiersModule) Commands() []*discordgo.ApplicationCommand {
	return presentation.Commands()
}

// CommandHandlers returns the command handlers for this module.
func (m *ChantiersModule) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		presentation.CommandChantiers:      m.handlers.HandleList,
		presentation.CommandChantiersAdmin: m.handlers.HandleAdmin,
	}
}

// RegisterComponents registers the button, select and modal handlers.
func (m *ChantiersModule) RegisterComponents(c *bot.Components) {
	m.handlers.Register(c)
}

// EventHandlers returns the event handlers for this module.
func (m *ChantiersModule) EventHandlers() []bot.EventHandler {
	return nil
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *ChantiersModule) LoadConfig() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Init initializes the module.
func (m *ChantiersModule) Init(deps bot.ModuleDependencies) error {
	if m.config == nil {
		if err := m.LoadConfig(); err != nil {
			return err
		}
	}

	drafts := draft.NewStore[*domain.ChantierDraft]("chantier", m.config.DraftTTL)
	m.handlers = presentation.NewHandlers(
		application.NewChantierService(m.api),
		application.NewCreationService(drafts, m.api, m.catalog),
		m.catalog,
		m.api,
	)
	return nil
}

// Shutdown cleans up module resources.
func (m *ChantiersModule) Shutdown() error {
	return nil
}
