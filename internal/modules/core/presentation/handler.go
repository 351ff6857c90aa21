package presentation

import (
	"context"
	"log/slog"
	"time"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/bot"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/core/application"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/core/domain"
	"github.com/bwmarrin/discordgo"
)

// PresenceName is the activity shown once the bot is connected.
const PresenceName = "FateWeaver"

const guildSyncTimeout = 10 * time.Second

// PingHandler handles the /ping command.
type PingHandler struct {
	interactor *application.PingInteractor
}

// NewPingHandler creates a new PingHandler.
func NewPingHandler() *PingHandler {
	return &PingHandler{
		interactor: application.NewPingInteractor(),
	}
}

// Handle processes the ping command and sends the response.
func (h *PingHandler) Handle(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	var interactionID string
	if i != nil && i.Interaction != nil {
		interactionID = i.ID
	}
	var heartbeat time.Duration
	if s != nil {
		heartbeat = s.HeartbeatLatency()
	}
	pong := h.interactor.Execute(interactionID, heartbeat)

	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: pong.Message(),
		},
	})
}

// CommandLister lists the registered slash commands.
type CommandLister interface {
	Commands() []*discordgo.ApplicationCommand
}

// HelpHandler handles the /help command.
type HelpHandler struct {
	commands CommandLister
}

// NewHelpHandler creates a new HelpHandler.
func NewHelpHandler(commands CommandLister) *HelpHandler {
	return &HelpHandler{commands: commands}
}

// Handle lists the commands; administrators also see the admin commands.
func (h *HelpHandler) Handle(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	r bot.Responder,
) error {
	admin := isAdministrator(i)

	title := "📚 Aide - Commandes utilisateur"
	if admin {
		title = "📚 Aide - Commandes"
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: "Voici la liste des commandes disponibles :",
		Color:       common.ColorInfo,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	for _, section := range domain.HelpSections(commandInfos(h.commands.Commands()), admin) {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  section.Name,
			Value: common.Truncate(section.Value, 1024),
		})
	}
	if user := common.InteractionUser(i); user != nil {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "Demandé par " + user.Username}
	}

	return common.RespondEmbed(r, embed, true)
}

func commandInfos(commands []*discordgo.ApplicationCommand) []domain.CommandInfo {
	infos := make([]domain.CommandInfo, 0, len(commands))
	for _, c := range commands {
		infos = append(infos, domain.CommandInfo{
			Name:        c.Name,
			Description: c.Description,
			Admin:       common.IsAdminCommand(c.Name),
		})
	}
	return infos
}

func isAdministrator(i *discordgo.InteractionCreate) bool {
	if i == nil || i.Interaction == nil || i.Member == nil {
		return false
	}
	return i.Member.Permissions&discordgo.PermissionAdministrator != 0
}

// HandleNotImplemented answers admin components that have no flow yet.
func HandleNotImplemented(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	slog.Info("unimplemented admin component", "custom_id", bot.CustomID(i))
	return common.RespondEphemeral(r, common.EmojiWarning+" "+common.MsgNotImplemented)
}

// GatewayHandler reacts to gateway lifecycle events.
type GatewayHandler struct {
	guilds *application.GuildSync
}

// NewGatewayHandler creates a new GatewayHandler.
func NewGatewayHandler(guilds *application.GuildSync) *GatewayHandler {
	return &GatewayHandler{guilds: guilds}
}

// HandleReady is the discordgo event handler for Ready events.
func (h *GatewayHandler) HandleReady(s *discordgo.Session, e *discordgo.Ready) {
	slog.Info("connected to gateway", "username", e.User.Username, "guilds", len(e.Guilds))
	if err := s.UpdateStatusComplex(Presence()); err != nil {
		slog.Warn("failed to update presence", "error", err)
	}
}

// Presence returns the status the bot shows once connected.
func Presence() discordgo.UpdateStatusData {
	return discordgo.UpdateStatusData{
		Activities: []*discordgo.Activity{
			{Name: PresenceName, Type: discordgo.ActivityTypeGame},
		},
		Status: string(discordgo.StatusOnline),
	}
}

// HandleGuildCreate is the discordgo event handler for GuildCreate events.
func (h *GatewayHandler) HandleGuildCreate(s *discordgo.Session, e *discordgo.GuildCreate) {
	if e.Guild == nil || e.Unavailable {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), guildSyncTimeout)
	defer cancel()

	if _, err := h.guilds.Sync(ctx, backend.UpsertGuildInput{
		DiscordID:   e.ID,
		Name:        e.Name,
		MemberCount: e.MemberCount,
	}); err != nil {
		slog.Error("failed to sync guild", "guild_id", e.ID, "error", err)
	}
}

// Register adds the placeholder handlers for the element admin components.
func Register(c *bot.Components) {
	c.Buttons.RegisterPrefix(ElementAdminPrefix, HandleNotImplemented)
	c.Selects.RegisterPrefix(ElementAdminPrefix, HandleNotImplemented)
	c.Modals.RegisterPrefix(ElementAdminPrefix, HandleNotImplemented)
}
