package presentation

import (
	"fmt"
	"strings"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/elements/domain"
	"github.com/bwmarrin/discordgo"
)

// Component custom ids. Category buttons are "element_admin_category:<category>"
// and action buttons "element_admin_<category>_<action>". Only the resource
// creation is handled here; the other actions reach the core placeholder.
const (
	ButtonCategory    = "element_admin_category"
	ButtonResourceAdd = "element_admin_resource_add"
	ModalResource     = "element_admin_resource_modal"
)

// Resource modal fields.
const (
	fieldName        = "resource_name"
	fieldEmoji       = "resource_emoji"
	fieldCategory    = "resource_category"
	fieldDescription = "resource_description"
)

const panelContent = "**Gestion des éléments**\n\nSélectionnez une catégorie :"

func categoryButtons() []discordgo.MessageComponent {
	var first []discordgo.Button
	var second []discordgo.Button
	for _, c := range domain.Categories {
		b := discordgo.Button{
			Label:    c.Label(),
			Style:    discordgo.PrimaryButton,
			CustomID: common.JoinCustomID(ButtonCategory, string(c)),
		}
		if c == domain.CategoryEmoji {
			b.Style = discordgo.SecondaryButton
			second = append(second, b)
			continue
		}
		first = append(first, b)
	}
	return []discordgo.MessageComponent{common.Buttons(first...), common.Buttons(second...)}
}

// ActionButtonID returns the customId of an action on a category.
func ActionButtonID(c domain.Category, action string) string {
	return fmt.Sprintf("element_admin_%s_%s", c, action)
}

func actionButtons(c domain.Category) discordgo.ActionsRow {
	return common.Buttons(
		discordgo.Button{Label: "➕ Ajouter", Style: discordgo.SuccessButton, CustomID: ActionButtonID(c, "add")},
		discordgo.Button{Label: "✏️ Modifier", Style: discordgo.PrimaryButton, CustomID: ActionButtonID(c, "edit")},
		discordgo.Button{Label: "🗑️ Supprimer", Style: discordgo.DangerButton, CustomID: ActionButtonID(c, "delete")},
	)
}

func resourceCreated(rt *backend.ResourceType) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s **Type de ressource créé avec succès !**\n\n", common.EmojiSuccess)
	fmt.Fprintf(&b, "**Nom** : %s\n**Emoji** : %s\n**Catégorie** : %s", rt.Name, rt.Emoji, rt.Category)
	if rt.Description != "" {
		fmt.Fprintf(&b, "\n**Description** : %s", rt.Description)
	}
	return b.String()
}
