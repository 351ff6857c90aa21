package core

import (
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/bot"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/core/application"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/core/presentation"
	"github.com/bwmarrin/discordgo"
)

var _ bot.Module = (*CoreModule)(nil)

// CoreModule provides /ping and /help, sets the presence and registers guilds.
type CoreModule struct {
	api      application.GuildAPI
	commands presentation.CommandLister

	pingHandler    *presentation.PingHandler
	helpHandler    *presentation.HelpHandler
	gatewayHandler *presentation.GatewayHandler
}

// New creates the core module. commands lists every registered command for /help.
func New(api application.GuildAPI, commands presentation.CommandLister) *CoreModule {
	return &CoreModule{api: api, commands: commands}
}

// Name returns the module name.
func (m *CoreModule) Name() string {
	return "core"
}

// Commands returns the slash commands for this module.
func (m *CoreModule) Commands() []*discordgo.ApplicationCommand {
	return presentation.Commands()
}

// CommandHandlers returns the command handlers for this module.
func (m *CoreModule) CommandHandlers() map[string]bot.InteractionHandler {
	return map[string]bot.InteractionHandler{
		presentation.CommandPing: m.pingHandler.Handle,
		presentation.CommandHelp: m.helpHandler.Handle,
	}
}

// RegisterComponents answers the element admin components.
func (m *CoreModule) RegisterComponents(c *bot.Components) {
	presentation.Register(c)
}

// EventHandlers returns the event handlers for this module.
func (m *CoreModule) EventHandlers() []bot.EventHandler {
	return []bot.EventHandler{
		m.gatewayHandler.HandleReady,
		m.gatewayHandler.HandleGuildCreate,
	}
}

// Init initializes the module.
func (m *CoreModule) Init(deps bot.ModuleDependencies) error {
	m.pingHandler = presentation.NewPingHandler()
	m.helpHandler = presentation.NewHelpHandler(m.commands)
	m.gatewayHandler = presentation.NewGatewayHandler(application.NewGuildSync(m.api))
	return nil
}

// Shutdown cleans up module resources.
func (m *CoreModule) Shutdown() error {
	return nil
}
