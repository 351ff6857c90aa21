package presentation

import (
	"context"
	"fmt"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/bot"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/elements/application"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/elements/domain"
	"github.com/bwmarrin/discordgo"
)

// Handlers holds the element admin handlers.
type Handlers struct {
	resources *application.ResourceService
}

// NewHandlers creates new Handlers.
func NewHandlers(resources *application.ResourceService) *Handlers {
	return &Handlers{resources: resources}
}

// Register adds the component handlers to the bot routers.
func (h *Handlers) Register(c *bot.Components) {
	c.Buttons.RegisterPrefix(ButtonCategory+":", h.HandleCategoryButton)
	c.Buttons.Register(ButtonResourceAdd, h.HandleResourceAdd)
	c.Modals.Register(ModalResource, h.HandleResourceModal)
}

// HandleNewElementAdmin handles /new-element-admin.
func (h *Handlers) HandleNewElementAdmin(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	return common.RespondMessage(r, panelContent, true, categoryButtons()...)
}

// HandleCategoryButton replaces the panel with the actions of a category.
func (h *Handlers) HandleCategoryButton(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	parts := common.SplitCustomID(bot.CustomID(i), ButtonCategory)
	if len(parts) != 1 {
		return fmt.Errorf("malformed element category id %q", bot.CustomID(i))
	}
	c, err := domain.ParseCategory(parts[0])
	if err != nil {
		return err
	}

	content := fmt.Sprintf("**%s**\n\nSélectionnez une action :", c.Label())
	return common.UpdateMessage(r, content, actionButtons(c))
}

// HandleResourceAdd asks for the new resource type.
func (h *Handlers) HandleResourceAdd(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	return common.ShowModal(r, ModalResource, "Créer un nouveau type de ressource",
		common.ShortInput(fieldName, "Nom de la ressource", "Cuir", 100),
		common.ShortInput(fieldEmoji, "Emoji", "🟫", 50),
		common.ShortInput(fieldCategory, "Catégorie (base/transformé/science)", domain.ResourceBase, 20),
		common.ParagraphInput(fieldDescription, "Description (optionnel)", "", 500),
	)
}

// HandleResourceModal creates the resource type.
func (h *Handlers) HandleResourceModal(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	values := common.ModalValues(i)
	rt, err := h.resources.Create(context.Background(), application.ResourceInput{
		Name:        values[fieldName],
		Emoji:       values[fieldEmoji],
		Category:    values[fieldCategory],
		Description: values[fieldDescription],
		AdminID:     inv.Discord(),
	})
	if err != nil {
		return common.ReplyError(r, err)
	}

	return common.RespondEphemeral(r, resourceCreated(rt))
}
