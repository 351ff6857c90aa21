package presentation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/chantiers/domain"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/bwmarrin/discordgo"
)

// Component custom ids.
const (
	ButtonParticipate = "chantier_participate"
	SelectInvest      = "chantier_select_invest"
	ModalInvestPrefix = "invest_modal_"

	ButtonAdminAdd    = "chantier_admin_add"
	ButtonAdminDelete = "chantier_admin_delete"
	SelectDelete      = "chantier_delete_select"

	ModalCreate            = "chantier_create_modal"
	ButtonAddResource      = "chantier_add_resource"
	SelectResource         = "chantier_select_resource"
	ModalResourceQtyPrefix = "chantier_resource_quantity_"
	ButtonCreateFinal      = "chantier_create_final"
)

// Modal field ids.
const (
	fieldName             = "chantier_name"
	fieldCost             = "chantier_cost"
	fieldCompletionText   = "chantier_completion_text"
	fieldResourceQuantity = "resource_quantity"
	fieldPoints           = "points_input"
	fieldResourcePrefix   = "resource_"
)

const (
	maxInvestResourceFields = 4
	maxChantierFields       = 25
)

func statusEmoji(status string) string {
	switch status {
	case backend.ChantierPlan:
		return "📝"
	case backend.ChantierInProgress:
		return "🚧"
	case backend.ChantierCompleted:
		return "✅"
	default:
		return "❔"
	}
}

func listEmbed(chantiers []backend.Chantier) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: common.EmojiChantier + " Chantiers",
		Color: common.ColorInfo,
	}

	for idx, c := range chantiers {
		if idx == maxChantierFields {
			break
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%s PA : %d/%d", common.EmojiPA, c.SpendOnIt, c.Cost)
		for _, rc := range c.ResourceCosts {
			fmt.Fprintf(&b, "\n%s : %d/%d",
				common.ResourceLabel(rc.ResourceType.Emoji, rc.ResourceType.Name),
				rc.QuantityContributed, rc.QuantityRequired)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  statusEmoji(c.Status) + " " + c.Name,
			Value: b.String(),
		})
	}
	return embed
}

func chantierOptions(chantiers []backend.Chantier) []discordgo.SelectMenuOption {
	options := make([]discordgo.SelectMenuOption, 0, len(chantiers))
	for _, c := range chantiers {
		options = append(options, discordgo.SelectMenuOption{
			Label:       common.Truncate(statusEmoji(c.Status)+" "+c.Name, 100),
			Value:       c.ID,
			Description: fmt.Sprintf("%d/%d PA", c.SpendOnIt, c.Cost),
		})
	}
	return options
}

func resourceOptions(types []backend.ResourceType) []discordgo.SelectMenuOption {
	options := make([]discordgo.SelectMenuOption, 0, len(types))
	for _, rt := range types {
		options = append(options, discordgo.SelectMenuOption{
			Label: common.Truncate(common.ResourceLabel(rt.Emoji, rt.Name), 100),
			Value: strconv.Itoa(rt.ID),
		})
	}
	return options
}

func draftSummary(d *domain.ChantierDraft) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s **Nouveau chantier : %s**\n", common.EmojiStats, d.Name)
	fmt.Fprintf(&b, "%s Coût : %d PA\n", common.EmojiPA, d.Cost)
	if d.CompletionText != "" {
		fmt.Fprintf(&b, "Texte de fin : %s\n", d.CompletionText)
	}
	if len(d.ResourceCosts) == 0 {
		b.WriteString("Aucune ressource requise pour l'instant.")
		return b.String()
	}
	b.WriteString("Ressources :")
	for _, rc := range d.ResourceCosts {
		fmt.Fprintf(&b, "\n• %s : %d", common.ResourceLabel(rc.Emoji, rc.Name), rc.Quantity)
	}
	return b.String()
}

func draftButtons() discordgo.ActionsRow {
	return common.Buttons(
		discordgo.Button{Label: "Ajouter une ressource", Style: discordgo.SecondaryButton, CustomID: ButtonAddResource},
		discordgo.Button{Label: "Créer le chantier", Style: discordgo.SuccessButton, CustomID: ButtonCreateFinal},
	)
}

func investInputs(c *backend.Chantier) []discordgo.TextInput {
	inputs := []discordgo.TextInput{
		common.OptionalInput(fieldPoints,
			fmt.Sprintf("Points d'action (reste %d)", c.RemainingPA()), "0", 4),
	}
	for _, rc := range c.ResourceCosts {
		if len(inputs) > maxInvestResourceFields {
			break
		}
		if rc.Remaining() == 0 {
			continue
		}
		label := fmt.Sprintf("%s (reste %d)", rc.ResourceType.Name, rc.Remaining())
		inputs = append(inputs, common.OptionalInput(resourceFieldID(rc.ResourceTypeID), label, "0", 6))
	}
	return inputs
}

func resourceFieldID(resourceTypeID int) string {
	return fieldResourcePrefix + strconv.Itoa(resourceTypeID)
}

// resourceFields extracts resource_<typeId> values from a modal.
func resourceFields(values map[string]string) map[int]string {
	resources := make(map[int]string)
	for id, value := range values {
		raw, ok := strings.CutPrefix(id, fieldResourcePrefix)
		if !ok {
			continue
		}
		typeID, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		resources[typeID] = value
	}
	return resources
}
