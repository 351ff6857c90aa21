package presentation

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/bot"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/projects/application"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/projects/domain"
	"github.com/bwmarrin/discordgo"
)

// Handlers holds the project command and component handlers.
type Handlers struct {
	projects *application.ProjectService
	creation *application.CreationService
	catalog  application.ResourceCatalog
	players  common.PlayerDirectory
}

// NewHandlers creates new Handlers.
func NewHandlers(
	projects *application.ProjectService,
	creation *application.CreationService,
	catalog application.ResourceCatalog,
	players common.PlayerDirectory,
) *Handlers {
	return &Handlers{
		projects: projects,
		creation: creation,
		catalog:  catalog,
		players:  players,
	}
}

// Register adds the component handlers to the bot routers.
func (h *Handlers) Register(c *bot.Components) {
	c.Buttons.Register(ButtonParticipate, h.HandleParticipate)
	c.Buttons.Register(ButtonAdminAdd, h.HandleAdminAdd)
	c.Buttons.Register(ButtonAdminDelete, h.HandleAdminDelete)
	c.Buttons.RegisterPrefix(keyed(ButtonAddResource), h.HandleAddResource)
	c.Buttons.RegisterPrefix(keyed(ButtonAddBlueprint), h.HandleAddBlueprint)
	c.Buttons.RegisterPrefix(keyed(ButtonValidate), h.HandleValidate)

	c.Selects.Register(SelectContribute, h.HandleContributeSelect)
	c.Selects.Register(SelectDelete, h.HandleDeleteSelect)
	c.Selects.RegisterPrefix(keyed(SelectCraftTypes), h.HandleCraftTypesSelect)
	c.Selects.RegisterPrefix(keyed(SelectOutput), h.HandleOutputSelect)
	c.Selects.RegisterPrefix(keyed(SelectResource), h.HandleResourceSelect)

	c.Modals.Register(ModalCreate, h.HandleCreateModal)
	c.Modals.RegisterPrefix(ModalContributePrefix, h.HandleContributeModal)
	c.Modals.RegisterPrefix(keyed(ModalResourceQty), h.HandleResourceQuantityModal)
	c.Modals.RegisterPrefix(keyed(ModalBlueprint), h.HandleBlueprintModal)
}

// draftParts returns the key and extra parts embedded in a wizard customId.
func draftParts(i *discordgo.InteractionCreate, action string, n int) ([]string, error) {
	parts := common.SplitCustomID(bot.CustomID(i), action)
	if len(parts) != n || parts[0] == "" {
		return nil, common.Invalid(common.MsgDraftExpired)
	}
	return parts, nil
}

// HandleList handles the /projets command.
func (h *Handlers) HandleList(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	projects, err := h.projects.List(context.Background(), inv.Guild())
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		return common.RespondEphemeral(r, application.MsgNoProjects)
	}

	return common.RespondEmbed(r, listEmbed(projects), false, common.Buttons(
		discordgo.Button{Label: "Participer", Style: discordgo.PrimaryButton, CustomID: ButtonParticipate},
	))
}

// HandleAdmin handles the /projets-admin command.
func (h *Handlers) HandleAdmin(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	if _, err := common.InvokerFrom(i); err != nil {
		return common.ReplyError(r, err)
	}

	return common.RespondMessage(r, common.EmojiProject+" **Gestion des projets**", true, common.Buttons(
		discordgo.Button{Label: "Ajouter", Style: discordgo.SuccessButton, CustomID: ButtonAdminAdd},
		discordgo.Button{Label: "Supprimer", Style: discordgo.DangerButton, CustomID: ButtonAdminDelete},
	))
}

// HandleParticipate shows the projects a player can contribute to.
func (h *Handlers) HandleParticipate(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	active, err := h.projects.Active(context.Background(), inv.Guild())
	if err != nil {
		return common.ReplyError(r, err)
	}

	return common.RespondMessage(r, "Choisissez un projet :", true,
		common.Select(SelectContribute, "Sélectionnez un projet", projectOptions(active), 1))
}

// HandleContributeSelect opens the contribution modal for the picked project.
func (h *Handlers) HandleContributeSelect(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}
	projectID, err := common.FirstSelected(i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	project, err := h.projects.Get(context.Background(), inv.Guild(), projectID)
	if err != nil {
		return common.ReplyError(r, err)
	}

	return common.ShowModal(r, ModalContributePrefix+project.ID, "Contribuer à "+project.Name, contributeInputs(project)...)
}

// HandleContributeModal gives the typed PA and resources.
func (h *Handlers) HandleContributeModal(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	ctx := context.Background()
	projectID := strings.TrimPrefix(bot.CustomID(i), ModalContributePrefix)

	player, err := common.ActiveCharacter(ctx, h.players, i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	values := common.ModalValues(i)
	out, err := h.projects.Contribute(ctx, application.ContributeInput{
		GuildID:     player.Guild(),
		ProjectID:   projectID,
		CharacterID: player.Character.ID,
		Points:      values[fieldPoints],
		Resources:   resourceFields(values),
	})
	if err != nil {
		return common.ReplyError(r, err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s Vous avez contribué au projet **%s**", common.EmojiSuccess, out.Project.Name)
	if out.Points > 0 {
		fmt.Fprintf(&b, "\n%s %d PA investis", common.EmojiPA, out.Points)
	}
	for _, c := range out.Contributions {
		fmt.Fprintf(&b, "\n%s %d × %s", common.EmojiPackage, c.Quantity, h.resourceName(ctx, c.ResourceTypeID))
	}
	if out.Clamped {
		fmt.Fprintf(&b, "\n%s Les quantités ont été ajustées à ce qu'il restait à fournir.", common.EmojiInfo)
	}
	if out.Completed {
		fmt.Fprintf(&b, "\n\n🎉 **Le projet %s est terminé !**", out.Project.Name)
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
	return common.ShowModal(r, ModalCreate, "Nouveau projet",
		common.ShortInput(fieldName, "Nom du projet", "Métier à tisser", 100),
		common.ShortInput(fieldPA, "PA requis", "10", 5),
		common.ShortInput(fieldOutputQuantity, "Quantité produite", "1", 5),
	)
}

// HandleCreateModal starts a draft and asks for the craft types.
func (h *Handlers) HandleCreateModal(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	values := common.ModalValues(i)
	key, d, err := h.creation.Start(application.StartInput{
		GuildID:        inv.Guild(),
		UserID:         inv.Discord(),
		Name:           values[fieldName],
		PA:             values[fieldPA],
		OutputQuantity: values[fieldOutputQuantity],
	})
	if err != nil {
		return common.ReplyError(r, err)
	}

	content, components, err := h.draftView(context.Background(), key, d)
	if err != nil {
		return err
	}
	return common.RespondMessage(r, content, true, components...)
}

// draftView renders the next wizard step: craft types, then output, then the
// resource, blueprint and validate buttons.
func (h *Handlers) draftView(
	ctx context.Context,
	key string,
	d *domain.ProjectDraft,
) (string, []discordgo.MessageComponent, error) {
	summary := draftSummary(d)

	switch {
	case len(d.CraftTypes) == 0:
		return summary + "\n\nChoisissez les types d'artisanat :", []discordgo.MessageComponent{
			common.Select(common.JoinCustomID(SelectCraftTypes, key), "Types d'artisanat",
				craftTypeOptions(), len(domain.CraftTypes)),
		}, nil
	case d.OutputResourceTypeID == 0:
		types, err := h.creation.OutputOptions(ctx)
		if err != nil {
			return "", nil, err
		}
		return summary + "\n\nChoisissez la ressource produite :", []discordgo.MessageComponent{
			common.Select(common.JoinCustomID(SelectOutput, key), "Ressource produite", resourceOptions(types), 1),
		}, nil
	default:
		return summary, []discordgo.MessageComponent{draftButtons(key)}, nil
	}
}

func (h *Handlers) updateDraftView(r bot.Responder, key string, d *domain.ProjectDraft) error {
	content, components, err := h.draftView(context.Background(), key, d)
	if err != nil {
		return err
	}
	return common.UpdateMessage(r, content, components...)
}

// HandleCraftTypesSelect stores the picked craft types.
func (h *Handlers) HandleCraftTypesSelect(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}
	parts, err := draftParts(i, SelectCraftTypes, 1)
	if err != nil {
		return common.ReplyError(r, err)
	}

	d, err := h.creation.SetCraftTypes(parts[0], inv.Discord(), common.SelectedValues(i))
	if err != nil {
		return common.ReplyError(r, err)
	}
	return h.updateDraftView(r, parts[0], d)
}

// HandleOutputSelect stores the produced resource.
func (h *Handlers) HandleOutputSelect(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}
	parts, err := draftParts(i, SelectOutput, 1)
	if err != nil {
		return common.ReplyError(r, err)
	}
	value, err := common.FirstSelected(i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	d, err := h.creation.SetOutput(context.Background(), parts[0], inv.Discord(), value)
	if err != nil {
		return common.ReplyError(r, err)
	}
	return h.updateDraftView(r, parts[0], d)
}

// HandleAddResource shows the resource types that can still be required.
func (h *Handlers) HandleAddResource(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}
	parts, err := draftParts(i, ButtonAddResource, 1)
	if err != nil {
		return common.ReplyError(r, err)
	}

	available, err := h.creation.AvailableResources(context.Background(), parts[0], inv.Discord())
	if err != nil {
		return common.ReplyError(r, err)
	}

	return common.RespondMessage(r, "Choisissez une ressource :", true,
		common.Select(common.JoinCustomID(SelectResource, parts[0]), "Sélectionnez une ressource", resourceOptions(available), 1))
}

// HandleResourceSelect asks for the quantity of the picked resource.
func (h *Handlers) HandleResourceSelect(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
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

	title := "Quantité de " + h.resourceName(context.Background(), typeID)
	return common.ShowModal(r, common.JoinCustomID(ModalResourceQty, parts[0], value), title,
		common.ShortInput(fieldResourceQuantity, "Quantité requise", "10", 6),
	)
}

// HandleResourceQuantityModal adds the resource to the draft.
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

	return common.RespondMessage(r, draftSummary(d), true, draftButtons(parts[0]))
}

// HandleAddBlueprint asks for the PA cost of the blueprint.
func (h *Handlers) HandleAddBlueprint(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}
	parts, err := draftParts(i, ButtonAddBlueprint, 1)
	if err != nil {
		return common.ReplyError(r, err)
	}
	if _, err := h.creation.Draft(parts[0], inv.Discord()); err != nil {
		return common.ReplyError(r, err)
	}

	return common.ShowModal(r, common.JoinCustomID(ModalBlueprint, parts[0]), "Blueprint",
		common.ShortInput(fieldBlueprintPA, "PA du blueprint", "5", 5),
	)
}

// HandleBlueprintModal stores the blueprint cost.
func (h *Handlers) HandleBlueprintModal(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}
	parts, err := draftParts(i, ModalBlueprint, 1)
	if err != nil {
		return common.ReplyError(r, err)
	}

	d, err := h.creation.SetBlueprint(parts[0], inv.Discord(), common.ModalValue(i, fieldBlueprintPA))
	if err != nil {
		return common.ReplyError(r, err)
	}

	return common.RespondMessage(r, draftSummary(d), true, draftButtons(parts[0]))
}

// HandleValidate submits the draft.
func (h *Handlers) HandleValidate(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}
	parts, err := draftParts(i, ButtonValidate, 1)
	if err != nil {
		return common.ReplyError(r, err)
	}

	project, err := h.creation.Submit(context.Background(), parts[0], inv.Discord())
	if err != nil {
		return common.ReplyError(r, err)
	}

	return common.UpdateMessage(r, fmt.Sprintf("%s Projet **%s** créé (%d PA).",
		common.EmojiSuccess, project.Name, project.PARequired))
}

// HandleAdminDelete shows the projects that can be deleted.
func (h *Handlers) HandleAdminDelete(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	projects, err := h.projects.List(context.Background(), inv.Guild())
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		return common.RespondEphemeral(r, application.MsgNoProjects)
	}

	return common.RespondMessage(r, "Quel projet supprimer ?", true,
		common.Select(SelectDelete, "Sélectionnez un projet", projectOptions(projects), 1))
}

// HandleDeleteSelect deletes the picked project.
func (h *Handlers) HandleDeleteSelect(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	projectID, err := common.FirstSelected(i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	if err := h.projects.Delete(context.Background(), projectID); err != nil {
		return err
	}

	return common.UpdateMessage(r, common.EmojiSuccess+" Projet supprimé.")
}
