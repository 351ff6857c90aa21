package presentation

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/bot"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/expeditions/application"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/expeditions/domain"
	"github.com/bwmarrin/discordgo"
)

// Handlers holds the expedition command and component handlers.
type Handlers struct {
	expeditions *application.ExpeditionService
	creation    *application.CreationService
	players     common.PlayerDirectory
}

// NewHandlers creates new Handlers.
func NewHandlers(
	expeditions *application.ExpeditionService,
	creation *application.CreationService,
	players common.PlayerDirectory,
) *Handlers {
	return &Handlers{
		expeditions: expeditions,
		creation:    creation,
		players:     players,
	}
}

// Register adds the component handlers to the bot routers.
func (h *Handlers) Register(c *bot.Components) {
	c.Buttons.RegisterPrefix(ButtonPrefix, h.HandleButton)

	c.Selects.Register(SelectJoin, h.HandleJoinSelect)
	c.Selects.RegisterPrefix(SelectResource+":", h.HandleResourceSelect)
	c.Selects.RegisterPrefix(SelectDirection+":", h.HandleDirectionSelect)

	c.Modals.Register(ModalCreate, h.HandleCreateModal)
	c.Modals.RegisterPrefix(ModalResourceQty+":", h.HandleResourceQuantityModal)
}

func draftParts(i *discordgo.InteractionCreate, action string, n int) ([]string, error) {
	parts := common.SplitCustomID(bot.CustomID(i), action)
	if len(parts) != n || parts[0] == "" {
		return nil, common.Invalid(common.MsgDraftExpired)
	}
	return parts, nil
}

// HandleCommand handles /expedition.
func (h *Handlers) HandleCommand(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	ctx := context.Background()

	player, err := common.ActiveCharacter(ctx, h.players, i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	active, err := h.expeditions.Active(ctx, player.Character.ID)
	if err != nil {
		return err
	}
	if active != nil {
		var components []discordgo.MessageComponent
		if active.Status == backend.ExpeditionPlanning {
			components = append(components, common.Buttons(discordgo.Button{
				Label:    "Quitter l'expédition",
				Style:    discordgo.DangerButton,
				CustomID: ButtonLeave,
			}))
		}
		return common.RespondEmbed(r, expeditionEmbed(active), true, components...)
	}

	return common.RespondMessage(r, common.EmojiExpedition+" Vous ne participez à aucune expédition.", true, common.Buttons(
		discordgo.Button{Label: "Créer une expédition", Style: discordgo.PrimaryButton, CustomID: ButtonCreateNew},
		discordgo.Button{Label: "Rejoindre une expédition", Style: discordgo.SecondaryButton, CustomID: ButtonJoinExisting},
	))
}

// HandleButton dispatches every expedition button on its action.
func (h *Handlers) HandleButton(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	action, _, _ := strings.Cut(bot.CustomID(i), ":")

	switch action {
	case ButtonLeave:
		return h.handleLeave(i, r)
	case ButtonCreateNew:
		return h.handleCreateNew(i, r)
	case ButtonJoinExisting:
		return h.handleJoinExisting(i, r)
	case ButtonAddResources:
		return h.handleAddResources(i, r)
	case ButtonValidate:
		return h.handleValidate(i, r)
	default:
		return fmt.Errorf("unknown expedition action %q", action)
	}
}

func (h *Handlers) handleLeave(i *discordgo.InteractionCreate, r bot.Responder) error {
	ctx := context.Background()

	player, err := common.ActiveCharacter(ctx, h.players, i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	out, err := h.expeditions.Leave(ctx, player.Character.ID)
	if err != nil {
		return common.ReplyError(r, err)
	}

	content := fmt.Sprintf("%s Vous avez quitté l'expédition **%s**.", common.EmojiSuccess, out.Expedition.Name)
	if out.Terminated {
		content += "\n\n🏁 **L'expédition a été terminée** car vous étiez le dernier membre. " +
			"La nourriture restante a été restituée à la ville."
	}
	return common.UpdateMessage(r, content)
}

func (h *Handlers) handleCreateNew(i *discordgo.InteractionCreate, r bot.Responder) error {
	ctx := context.Background()

	player, err := common.ActiveCharacter(ctx, h.players, i)
	if err != nil {
		return common.ReplyError(r, err)
	}
	if err := h.expeditions.EnsureAvailable(ctx, player.Character.ID); err != nil {
		return common.ReplyError(r, err)
	}

	return common.ShowModal(r, ModalCreate, "Nouvelle expédition",
		common.ShortInput(fieldName, "Nom de l'expédition", "Exploration de la forêt", 100),
		common.ShortInput(fieldDuration, "Durée (jours)", "2", 3),
	)
}

func (h *Handlers) handleJoinExisting(i *discordgo.InteractionCreate, r bot.Responder) error {
	ctx := context.Background()

	player, err := common.ActiveCharacter(ctx, h.players, i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	joinable, err := h.expeditions.Joinable(ctx, player.Town.ID, player.Character.ID)
	if err != nil {
		return common.ReplyError(r, err)
	}

	return common.RespondMessage(r, "Choisissez une expédition à rejoindre :", true,
		common.Select(SelectJoin, "Sélectionnez une expédition", expeditionOptions(joinable), 1))
}

func (h *Handlers) handleAddResources(i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}
	parts, err := draftParts(i, ButtonAddResources, 1)
	if err != nil {
		return common.ReplyError(r, err)
	}

	available, err := h.creation.AvailableResources(context.Background(), parts[0], inv.Discord())
	if err != nil {
		return common.ReplyError(r, err)
	}

	return common.UpdateMessage(r, common.EmojiPackage+" Préparation des ressources :",
		common.Select(common.JoinCustomID(SelectResource, parts[0]), "Ajout d'une ressource...", stockOptions(available), 1))
}

func (h *Handlers) handleValidate(i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}
	parts, err := draftParts(i, ButtonValidate, 1)
	if err != nil {
		return common.ReplyError(r, err)
	}

	if _, err := h.creation.Validate(parts[0], inv.Discord()); err != nil {
		return common.ReplyError(r, err)
	}

	return common.UpdateMessage(r, "📍 Choix de la direction initiale :",
		common.Select(common.JoinCustomID(SelectDirection, parts[0]), "Direction initiale...", directionOptions(), 1))
}

// HandleCreateModal starts a draft from the creation modal.
func (h *Handlers) HandleCreateModal(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	ctx := context.Background()

	player, err := common.ActiveCharacter(ctx, h.players, i)
	if err != nil {
		return common.ReplyError(r, err)
	}
	if err := h.expeditions.EnsureAvailable(ctx, player.Character.ID); err != nil {
		return common.ReplyError(r, err)
	}

	values := common.ModalValues(i)
	key, d, err := h.creation.Start(application.StartInput{
		UserID:      player.Discord(),
		TownID:      player.Town.ID,
		CharacterID: player.Character.ID,
		Name:        values[fieldName],
		Duration:    values[fieldDuration],
	})
	if err != nil {
		return common.ReplyError(r, err)
	}

	return common.RespondEmbed(r, draftEmbed(d), true, draftButtons(key))
}

// HandleResourceSelect asks how much of the picked resource to pack.
func (h *Handlers) HandleResourceSelect(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}
	parts, err := draftParts(i, SelectResource, 1)
	if err != nil {
		return common.ReplyError(r, err)
	}
	value, err := common.FirstSelected(i)
	if err != nil {
		return common.ReplyError(r, err)
	}
	typeID, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid resource type %q: %w", value, err)
	}

	stock, err := h.creation.StockOf(context.Background(), parts[0], inv.Discord(), typeID)
	if err != nil {
		return common.ReplyError(r, err)
	}

	return common.ShowModal(r, common.JoinCustomID(ModalResourceQty, parts[0], value),
		"Quantité de "+stock.ResourceType.Name,
		common.ShortInput(fieldResourceQuantity, fmt.Sprintf("Quantité (max %d)", stock.Quantity), "1", 6),
	)
}

// HandleResourceQuantityModal packs the resource.
func (h *Handlers) HandleResourceQuantityModal(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}
	parts, err := draftParts(i, ModalResourceQty, 2)
	if err != nil {
		return common.ReplyError(r, err)
	}
	typeID, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("invalid resource type %q: %w", parts[1], err)
	}

	d, err := h.creation.AddResource(context.Background(), parts[0], inv.Discord(), typeID,
		common.ModalValue(i, fieldResourceQuantity))
	if err != nil {
		return common.ReplyError(r, err)
	}

	return common.RespondEmbed(r, draftEmbed(d), true, draftButtons(parts[0]))
}

// HandleDirectionSelect creates the expedition.
func (h *Handlers) HandleDirectionSelect(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}
	parts, err := draftParts(i, SelectDirection, 1)
	if err != nil {
		return common.ReplyError(r, err)
	}
	value, err := common.FirstSelected(i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	expedition, err := h.creation.Submit(context.Background(), parts[0], inv.Discord(), value)
	if errors.Is(err, application.ErrJoinAfterCreate) {
		return common.UpdateMessage(r, "⚠️ "+application.MsgCreatedNotJoined(expedition.Name))
	}
	if err != nil {
		return common.ReplyError(r, err)
	}

	dir := domain.Direction(expedition.InitialDirection)
	if dir == "" {
		dir = domain.Direction(value)
	}
	return common.UpdateMessage(r, fmt.Sprintf(
		"%s L'expédition **%s** se prépare à partir !\nElle prendra la direction : %s %s",
		common.EmojiExpedition, expedition.Name, dir.Label(), dir.Emoji()))
}

// HandleJoinSelect adds the character to the picked expedition.
func (h *Handlers) HandleJoinSelect(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	ctx := context.Background()

	expeditionID, err := common.FirstSelected(i)
	if err != nil {
		return common.ReplyError(r, err)
	}
	player, err := common.ActiveCharacter(ctx, h.players, i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	expedition, err := h.expeditions.Join(ctx, expeditionID, player.Character.ID)
	if err != nil {
		return common.ReplyError(r, err)
	}

	return common.UpdateMessage(r, fmt.Sprintf("%s Vous avez rejoint l'expédition **%s** !",
		common.EmojiSuccess, expedition.Name))
}
