package presentation

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/bot"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/chantiers/application"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/bwmarrin/discordgo"
)

// Handlers holds the chantier command and component handlers.
type Handlers struct {
	chantiers *application.ChantierService
	creation  *application.CreationService
	catalog   application.ResourceCatalog
	players   common.PlayerDirectory
}

// NewHandlers creates new Handlers.
func NewHandlers(
	chantiers *application.ChantierService,
	creation *application.CreationService,
	catalog application.ResourceCatalog,
	players common.PlayerDirectory,
) *Handlers {
	return &Handlers{
		chantiers: chantiers,
		creation:  creation,
		catalog:   catalog,
		players:   players,
	}
}

// Register adds the component handlers to the bot routers.
func (h *Handlers) Register(c *bot.Components) {
	c.Buttons.Register(ButtonParticipate, h.HandleParticipate)
	c.Buttons.Register(ButtonAdminAdd, h.HandleAdminAdd)
	c.Buttons.Register(ButtonAdminDelete, h.HandleAdminDelete)
	c.Buttons.Register(ButtonAddResource, h.HandleAddResource)
	c.Buttons.Register(ButtonCreateFinal, h.HandleCreateFinal)

	c.Selects.Register(SelectInvest, h.HandleInvestSelect)
	c.Selects.Register(SelectResource, h.HandleResourceSelect)
	c.Selects.Register(SelectDelete, h.HandleDeleteSelect)

	c.Modals.Register(ModalCreate, h.HandleCreateModal)
	c.Modals.RegisterPrefix(ModalInvestPrefix, h.HandleInvestModal)
	c.Modals.RegisterPrefix(ModalResourceQtyPrefix, h.HandleResourceQuantityModal)
}

// HandleList handles the /chantiers command.
func (h *Handlers) HandleList(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	chantiers, err := h.chantiers.List(context.Background(), inv.Guild())
	if err != nil {
		return err
	}
	if len(chantiers) == 0 {
		return common.RespondEphemeral(r, application.MsgNoChantiers)
	}

	return common.RespondEmbed(r, listEmbed(chantiers), false, common.Buttons(
		discordgo.Button{Label: "Participer", Style: discordgo.PrimaryButton, CustomID: ButtonParticipate},
	))
}

// HandleAdmin handles the /chantiers-admin command.
func (h *Handlers) HandleAdmin(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	if _, err := common.InvokerFrom(i); err != nil {
		return common.ReplyError(r, err)
	}

	return common.RespondMessage(r, common.EmojiChantier+" **Gestion des chantiers**", true, common.Buttons(
		discordgo.Button{Label: "Ajouter", Style: discordgo.SuccessButton, CustomID: ButtonAdminAdd},
		discordgo.Button{Label: "Supprimer", Style: discordgo.DangerButton, CustomID: ButtonAdminDelete},
	))
}

// HandleParticipate shows the chantiers a player can invest in.
func (h *Handlers) HandleParticipate(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	open, err := h.chantiers.Open(context.Background(), inv.Guild())
	if err != nil {
		return common.ReplyError(r, err)
	}

	return common.RespondMessage(r, "Choisissez un chantier :", true,
		common.Select(SelectInvest, "Sélectionnez un chantier", chantierOptions(open), 1))
}

// HandleInvestSelect opens the invest modal for the picked chantier.
func (h *Handlers) HandleInvestSelect(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	chantierID, err := common.FirstSelected(i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	chantier, err := h.chantiers.Get(context.Background(), chantierID)
	if err != nil {
		return common.ReplyError(r, err)
	}

	return common.ShowModal(r, ModalInvestPrefix+chantier.ID, "Investir dans "+chantier.Name, investInputs(chantier)...)
}

// HandleInvestModal invests the typed PA and resources.
func (h *Handlers) HandleInvestModal(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	ctx := context.Background()
	chantierID := strings.TrimPrefix(i.ModalSubmitData().CustomID, ModalInvestPrefix)

	player, err := common.ActiveCharacter(ctx, h.players, i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	values := common.ModalValues(i)
	out, err := h.chantiers.Invest(ctx, application.InvestInput{
		ChantierID:  chantierID,
		CharacterID: player.Character.ID,
		Points:      values[fieldPoints],
		Resources:   resourceFields(values),
	})
	if err != nil {
		return common.ReplyError(r, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s Vous avez contribué au chantier **%s**", common.EmojiSuccess, out.Chantier.Name)
	if out.PointsInvested > 0 {
		fmt.Fprintf(&b, "\n%s %d PA investis", common.EmojiPA, out.PointsInvested)
	}
	for _, c := range out.Contributions {
		fmt.Fprintf(&b, "\n%s %d × %s", common.EmojiPackage, c.Quantity, h.resourceName(ctx, c.ResourceTypeID))
	}
	if out.Clamped {
		fmt.Fprintf(&b, "\n%s Les quantités ont été ajustées à ce qu'il restait à fournir.", common.EmojiInfo)
	}
	if out.Completed {
		fmt.Fprintf(&b, "\n\n🎉 **Le chantier %s est terminé !**", out.Chantier.Name)
		if out.Chantier.CompletionText != "" {
			b.WriteString("\n" + out.Chantier.CompletionText)
		}
	}

	return common.RespondMessage(r, b.String(), !out.Completed)
}

func (h *Handlers) resourceName(ctx context.Context, id int) string {
	rt, ok, err := h.catalog.ResourceType(ctx, id)
	if err != nil || !ok {
		return "ressource #" + strconv.Itoa(id)
	}
	return common.ResourceLabel(rt.Emoji, rt.Name)
}

// HandleAdminAdd opens the creation modal.
func (h *Handlers) HandleAdminAdd(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	return common.ShowModal(r, ModalCreate, "Nouveau chantier",
		common.ShortInput(fieldName, "Nom du chantier", "Pont", 100),
		common.ShortInput(fieldCost, "Coût en PA", "100", 5),
		common.ParagraphInput(fieldCompletionText, "Texte de fin (optionnel)", "", 1000),
	)
}

// HandleCreateModal starts a draft from the creation modal.
func (h *Handlers) HandleCreateModal(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	values := common.ModalValues(i)
	d, err := h.creation.Start(application.StartInput{
		GuildID:        inv.Guild(),
		UserID:         inv.Discord(),
		Name:           values[fieldName],
		Cost:           values[fieldCost],
		CompletionText: values[fieldCompletionText],
	})
	if err != nil {
		return common.ReplyError(r, err)
	}

	return common.RespondMessage(r, draftSummary(d), true, draftButtons())
}

// HandleAddResource shows the resource types that can still be added.
func (h *Handlers) HandleAddResource(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	available, err := h.creation.AvailableResources(context.Background(), inv.Discord())
	if err != nil {
		return common.ReplyError(r, err)
	}

	return common.RespondMessage(r, "Choisissez une ressource :", true,
		common.Select(SelectResource, "Sélectionnez une ressource", resourceOptions(available), 1))
}

// HandleResourceSelect asks for the quantity of the picked resource.
func (h *Handlers) HandleResourceSelect(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	value, err := common.FirstSelected(i)
	if err != nil {
		return common.ReplyError(r, err)
	}
	typeID, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid resource type %q: %w", value, err)
	}

	title := "Quantité de " + h.resourceName(context.Background(), typeID)
	return common.ShowModal(r, ModalResourceQtyPrefix+value, title,
		common.ShortInput(fieldResourceQuantity, "Quantité requise", "10", 6),
	)
}

// HandleResourceQuantityModal adds the resource to the draft.
func (h *Handlers) HandleResourceQuantityModal(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	raw := strings.TrimPrefix(i.ModalSubmitData().CustomID, ModalResourceQtyPrefix)
	typeID, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid resource type %q: %w", raw, err)
	}

	d, err := h.creation.AddResource(context.Background(), inv.Discord(), typeID, common.ModalValue(i, fieldResourceQuantity))
	if err != nil {
		return common.ReplyError(r, err)
	}

	return common.RespondMessage(r, draftSummary(d), true, draftButtons())
}

// HandleCreateFinal submits the draft.
func (h *Handlers) HandleCreateFinal(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	chantier, err := h.creation.Submit(context.Background(), inv.Discord())
	if err != nil {
		return common.ReplyError(r, err)
	}

	return common.UpdateMessage(r, fmt.Sprintf("%s Chantier **%s** créé (%d PA).",
		common.EmojiSuccess, chantier.Name, chantier.Cost))
}

// HandleAdminDelete shows the chantiers that can be deleted.
func (h *Handlers) HandleAdminDelete(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	chantiers, err := h.chantiers.List(context.Background(), inv.Guild())
	if err != nil {
		return err
	}
	if len(chantiers) == 0 {
		return common.RespondEphemeral(r, application.MsgNoChantiers)
	}

	return common.RespondMessage(r, "Quel chantier supprimer ?", true,
		common.Select(SelectDelete, "Sélectionnez un chantier", chantierOptions(chantiers), 1))
}

// HandleDeleteSelect deletes the picked chantier.
func (h *Handlers) HandleDeleteSelect(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	chantierID, err := common.FirstSelected(i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	if err := h.chantiers.Delete(context.Background(), chantierID); err != nil {
		return err
	}

	return common.UpdateMessage(r, common.EmojiSuccess+" Chantier supprimé.")
}
