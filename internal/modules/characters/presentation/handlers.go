package presentation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/bot"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/characters/application"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/bwmarrin/discordgo"
)

// Handlers holds the character command and component handlers.
type Handlers struct {
	profiles     *application.ProfileService
	meals        *application.EatService
	capabilities *application.CapabilityService
	players      common.PlayerDirectory
}

// NewHandlers creates new Handlers.
func NewHandlers(
	profiles *application.ProfileService,
	meals *application.EatService,
	capabilities *application.CapabilityService,
	players common.PlayerDirectory,
) *Handlers {
	return &Handlers{
		profiles:     profiles,
		meals:        meals,
		capabilities: capabilities,
		players:      players,
	}
}

// Register adds the component handlers to the bot routers.
func (h *Handlers) Register(c *bot.Components) {
	c.Buttons.Register(ButtonEat, h.HandleEat)
	c.Selects.Register(SelectCapability, h.HandleCapabilitySelect)
	c.Modals.Register(ModalCreateCharacter, h.HandleCreateModal)
}

// HandleProfile handles /profil. Users without a character get the creation modal.
func (h *Handlers) HandleProfile(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	ctx := context.Background()

	player, err := common.EnsureUser(ctx, h.players, i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	needs, err := h.profiles.NeedsCreation(ctx, player.User.ID, player.Town.ID)
	if err != nil {
		return err
	}
	if needs {
		return common.ShowModal(r, ModalCreateCharacter, "Créer votre personnage",
			common.ShortInput(fieldCharacterName, "Nom de votre personnage", "Entrez le nom de votre personnage", application.MaxNameLength),
		)
	}

	character, err := h.players.GetActiveCharacter(ctx, player.User.ID, player.Town.ID)
	if errors.Is(err, backend.ErrNoActiveCharacter) {
		return common.RespondEphemeral(r, common.MsgNoCharacter)
	}
	if err != nil {
		return fmt.Errorf("failed to get active character: %w", err)
	}

	profile, err := h.profiles.Profile(ctx, character)
	if err != nil {
		return err
	}

	return common.RespondEmbed(r, profileEmbed(profile), true, profileComponents(profile)...)
}

// HandleCreateModal creates the character named in the creation modal.
func (h *Handlers) HandleCreateModal(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	ctx := context.Background()

	player, err := common.EnsureUser(ctx, h.players, i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	character, err := h.profiles.Create(ctx, player.User.ID, player.Town.ID, common.ModalValue(i, fieldCharacterName))
	if err != nil {
		return common.ReplyError(r, err)
	}

	return common.RespondEphemeral(r, fmt.Sprintf(
		"%s **Bienvenue %s !** Votre personnage a été créé. Utilisez /%s pour le consulter.",
		common.EmojiSparkles, character.Name, CommandProfile))
}

// HandleEat handles /manger and the eat button.
func (h *Handlers) HandleEat(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	ctx := context.Background()

	player, err := common.ActiveCharacter(ctx, h.players, i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	out, err := h.meals.Eat(ctx, player.Character.ID)
	if err != nil {
		return common.ReplyError(r, err)
	}
	if out.NotHungry {
		return common.RespondEmbed(r, notHungryEmbed(), false)
	}

	return common.RespondEmbed(r, eatEmbed(out.Result, player.Character.Name), false)
}

// HandleUseCapacity handles /use-capacity. Without a capability name it
// offers a select menu of the character's capabilities.
func (h *Handlers) HandleUseCapacity(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	ctx := context.Background()

	player, err := common.ActiveCharacter(ctx, h.players, i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	name := capabilityOption(i)
	if name == "" {
		capabilities, err := h.capabilities.List(ctx, player.Character.ID)
		if err != nil {
			return common.ReplyError(r, err)
		}
		return common.RespondMessage(r, "Choisissez une capacité à utiliser :", true,
			common.Select(SelectCapability, "Sélectionnez une capacité à utiliser", capabilityOptions(capabilities), 1))
	}

	return h.use(ctx, player.Character, name, r)
}

// HandleCapabilitySelect uses the capability picked in the select menu.
func (h *Handlers) HandleCapabilitySelect(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	ctx := context.Background()

	name, err := common.FirstSelected(i)
	if err != nil {
		return common.ReplyError(r, err)
	}
	player, err := common.ActiveCharacter(ctx, h.players, i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	return h.use(ctx, player.Character, name, r)
}

func (h *Handlers) use(ctx context.Context, character *backend.Character, name string, r bot.Responder) error {
	out, err := h.capabilities.Use(ctx, character, name)
	if err != nil {
		return common.ReplyError(r, err)
	}
	return common.RespondMessage(r, useContent(out), false)
}

// HandleAutocomplete suggests the capabilities of the invoker's character.
func (h *Handlers) HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) {
	ctx := context.Background()

	choices := []*discordgo.ApplicationCommandOptionChoice{}
	player, err := common.ActiveCharacter(ctx, h.players, i)
	if err == nil {
		var capabilities []backend.Capability
		capabilities, err = h.capabilities.Search(ctx, player.Character.ID, capabilityOption(i), common.MaxSelectOptions)
		choices = capabilityChoices(capabilities)
	}
	if err != nil {
		slog.Warn("failed to autocomplete capabilities", "guild_id", i.GuildID, "error", err)
	}

	err = r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	})
	if err != nil {
		slog.Error("failed to respond to autocomplete", "error", err)
	}
}

func capabilityOption(i *discordgo.InteractionCreate) string {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == optionCapability {
			return opt.StringValue()
		}
	}
	return ""
}
