package bot

import (
	"fmt"
	"log/slog"
	"maps"
	"runtime/debug"

	"github.com/bwmarrin/discordgo"
)

// Bot manages the Discord bot lifecycle and module coordination.
type Bot struct {
	config     *Config
	registry   *Registry
	session    *discordgo.Session
	modules    []Module
	handlers   map[string]InteractionHandler
	components *Components
}

// NewBot creates a new Bot instance with the given configuration and module registry.
func NewBot(cfg *Config, registry *Registry) *Bot {
	return &Bot{
		config:     cfg,
		registry:   registry,
		modules:    make([]Module, 0),
		handlers:   make(map[string]InteractionHandler),
		components: NewComponents(),
	}
}

// LoadModules loads modules from the registry and their configuration.
func (b *Bot) LoadModules() error {
	if err := b.registry.LoadConfigs(); err != nil {
		return err
	}
	b.modules = b.registry.Modules()
	return nil
}

// Start initializes the bot and connects to Discord.
// Slash commands are deployed separately with the deploy-commands command.
func (b *Bot) Start() error {
	// Create Discord session
	session, err := discordgo.New("Bot " + b.config.DiscordToken)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds
	b.session = session

	// Initialize modules
	if err := b.initModules(); err != nil {
		return fmt.Errorf("failed to initialize modules: %w", err)
	}

	b.buildHandlerMap()
	b.registerComponents()

	// Register interaction handler
	b.session.AddHandler(b.handleInteraction)

	// Register module event handlers
	b.registerEventHandlers()

	// Open connection
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	slog.Info("started bot",
		"user_id", b.session.State.User.ID,
		"username", b.session.State.User.Username,
	)

	return nil
}

// Stop gracefully shuts down the bot.
func (b *Bot) Stop() error {
	// Shutdown modules
	for _, mod := range b.modules {
		if err := mod.Shutdown(); err != nil {
			slog.Warn("failed to shutdown module", "module", mod.Name(), "error", err)
		}
	}

	// Close Discord session
	if b.session != nil {
		return b.session.Close()
	}

	return nil
}

// Components returns the component routers shared by all modules.
func (b *Bot) Components() *Components {
	return b.components
}

// initModules initializes all loaded modules.
func (b *Bot) initModules() error {
	deps := ModuleDependencies{
		Session: b.session,
		Config:  b.config,
	}

	for _, mod := range b.modules {
		if err := mod.Init(deps); err != nil {
			return fmt.Errorf("failed to initialize %s module: %w", mod.Name(), err)
		}
		slog.Debug("initialized module", "module", mod.Name())
	}

	moduleNames := make([]string, len(b.modules))
	for i, mod := range b.modules {
		moduleNames[i] = mod.Name()
	}
	slog.Info("initialized modules", "modules", moduleNames)

	return nil
}

// buildHandlerMap builds the command name to handler mapping.
func (b *Bot) buildHandlerMap() {
	for _, mod := range b.modules {
		maps.Copy(b.handlers, mod.CommandHandlers())
	}
}

// registerComponents lets every module add its customId handlers.
func (b *Bot) registerComponents() {
	for _, mod := range b.modules {
		mod.RegisterComponents(b.components)
	}
	slog.Debug("registered components",
		"buttons", len(b.components.Buttons.IDs())+len(b.components.Buttons.Prefixes()),
		"selects", len(b.components.Selects.IDs())+len(b.components.Selects.Prefixes()),
		"modals", len(b.components.Modals.IDs())+len(b.components.Modals.Prefixes()),
	)
}

// registerEventHandlers registers all module event handlers with the session.
func (b *Bot) registerEventHandlers() {
	for _, mod := range b.modules {
		for _, handler := range mod.EventHandlers() {
			b.session.AddHandler(handler)
		}
	}
}

// Embed colors for responses.
const (
	colorYellow = 0xFFFF00
	colorRed    = 0xFF0000
)

// handleInteraction routes incoming interactions to the appropriate handler.
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.dispatch(s, i, NewDiscordResponder(s, i.Interaction))
}

// dispatch routes an interaction by type and reports handler failures to the user.
func (b *Bot) dispatch(s *discordgo.Session, i *discordgo.InteractionCreate, r Responder) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("recovered from handler panic",
				"panic", rec,
				"interaction_type", i.Type.String(),
				"stack", string(debug.Stack()),
			)
			b.reportError(r, GenericErrorMessage)
		}
	}()

	var (
		target string
		err    error
	)

	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		target = i.ApplicationCommandData().Name
		handler, ok := b.handlers[target]
		if !ok {
			slog.Warn("found no handler for command", "command", target)
			b.respondWithEmbed(r, "Unknown Command", "This command is not recognized.", colorYellow)
			return
		}
		err = handler(s, i, r)

	case discordgo.InteractionMessageComponent:
		target = i.MessageComponentData().CustomID
		router := b.components.Selects
		if i.MessageComponentData().ComponentType == discordgo.ButtonComponent {
			router = b.components.Buttons
		}
		_, err = router.Dispatch(s, i, r)

	case discordgo.InteractionModalSubmit:
		target = i.ModalSubmitData().CustomID
		var handled bool
		handled, err = b.components.Modals.Dispatch(s, i, r)
		if !handled {
			b.reportError(r, "Modal non reconnu: "+target)
			return
		}

	default:
		// Autocomplete and pings are left to module event handlers.
		return
	}

	if err == nil {
		return
	}

	msg, userFacing := UserMessage(err)
	if userFacing {
		slog.Warn("interaction failed", "target", target, "error", err)
	} else {
		slog.Error("failed to handle interaction", "target", target, "error", err)
	}
	b.reportError(r, msg)
}

// reportError shows an ephemeral error, editing the reply when one was already sent.
func (b *Bot) reportError(r Responder, message string) {
	embed := &discordgo.MessageEmbed{
		Title:       "Erreur",
		Description: message,
		Color:       colorRed,
	}

	if r.Responded() {
		embeds := []*discordgo.MessageEmbed{embed}
		components := []discordgo.MessageComponent{}
		if err := r.Edit(&discordgo.WebhookEdit{Embeds: &embeds, Components: &components}); err != nil {
			slog.Error("failed to edit error response", "error", err)
		}
		return
	}

	err := r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		slog.Error("failed to send error response", "error", err)
	}
}

// respondWithEmbed sends an embed response to an interaction.
func (b *Bot) respondWithEmbed(r Responder, title, description string, color int) {
	err := r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       title,
					Description: description,
					Color:       color,
				},
			},
		},
	})
	if err != nil {
		slog.Error("failed to send embed response", "error", err)
	}
}
