package presentation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/expeditions/domain"
	"github.com/bwmarrin/discordgo"
)

// ButtonPrefix routes every expedition button to HandleButton.
const ButtonPrefix = "expedition_"

// Component custom ids. Wizard ids carry the draft key as "<action>:<key>".
const (
	ButtonLeave        = "expedition_leave"
	ButtonCreateNew    = "expedition_create_new"
	ButtonJoinExisting = "expedition_join_existing"
	ButtonAddResources = "expedition_create_add_resources"
	ButtonValidate     = "expedition_create_validate"

	SelectJoin      = "expedition_join_select"
	SelectResource  = "expedition_create_select_resource"
	SelectDirection = "expedition_direction"

	ModalCreate      = "expedition_creation_modal"
	ModalResourceQty = "expedition_resource_quantity"
)

// Modal field ids.
const (
	fieldName             = "expedition_name_input"
	fieldDuration         = "expedition_duration_input"
	fieldResourceQuantity = "resource_quantity_input"
)

func statusLabel(status string) string {
	switch status {
	case backend.ExpeditionPlanning:
		return "🔄 Planification"
	case backend.ExpeditionLocked:
		return "🔒 Verrouillée"
	case backend.ExpeditionDeparted:
		return "✈️ Partie"
	case backend.ExpeditionReturned:
		return "🏠 Revenue"
	default:
		return status
	}
}

func days(n int) string {
	if n > 1 {
		return fmt.Sprintf("%d jours", n)
	}
	return fmt.Sprintf("%d jour", n)
}

func expeditionEmbed(e *backend.Expedition) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: common.EmojiExpedition + " " + e.Name,
		Color: common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Statut", Value: statusLabel(e.Status), Inline: true},
			{Name: common.EmojiDuration + " Durée", Value: days(e.Duration), Inline: true},
		},
	}
	if e.InitialDirection != "" {
		dir := domain.Direction(e.InitialDirection)
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "📍 Direction",
			Value:  dir.Emoji() + " " + dir.Label(),
			Inline: true,
		})
	}
	if e.ReturnAt != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Retour prévu",
			Value: fmt.Sprintf("<t:%d:R>", e.ReturnAt.Unix()),
		})
	}
	if len(e.Members) > 0 {
		names := make([]string, 0, len(e.Members))
		for _, m := range e.Members {
			names = append(names, m.Character.Name)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("Membres (%d)", len(e.Members)),
			Value: strings.Join(names, ", "),
		})
	}
	return embed
}

func draftEmbed(d *domain.ExpeditionDraft) *discordgo.MessageEmbed {
	packed := "_Aucune ressource pour le moment_"
	if len(d.Resources) > 0 {
		lines := make([]string, 0, len(d.Resources))
		for _, r := range d.Resources {
			lines = append(lines, fmt.Sprintf("%s **%s :** %d", r.Emoji, r.Name, r.Quantity))
		}
		packed = strings.Join(lines, "\n")
	}

	return &discordgo.MessageEmbed{
		Title:       common.EmojiExpedition + " " + d.Name,
		Description: fmt.Sprintf("**Durée :** %s\n\nAjoutez des ressources depuis le stock de la ville pour l'expédition.", days(d.Duration)),
		Color:       common.ColorInfo,
		Fields: []*discordgo.MessageEmbedField{
			{Name: common.EmojiPackage + " Ressources embarquées", Value: packed},
		},
	}
}

func draftButtons(key string) discordgo.ActionsRow {
	return common.Buttons(
		discordgo.Button{
			Label:    "➕ Ajouter des ressources",
			Style:    discordgo.PrimaryButton,
			CustomID: common.JoinCustomID(ButtonAddResources, key),
		},
		discordgo.Button{
			Label:    common.EmojiSuccess + " Valider et choisir direction",
			Style:    discordgo.SuccessButton,
			CustomID: common.JoinCustomID(ButtonValidate, key),
		},
	)
}

func expeditionOptions(expeditions []backend.Expedition) []discordgo.SelectMenuOption {
	options := make([]discordgo.SelectMenuOption, 0, len(expeditions))
	for _, e := range expeditions {
		options = append(options, discordgo.SelectMenuOption{
			Label:       common.Truncate(e.Name, 100),
			Value:       e.ID,
			Description: fmt.Sprintf("Durée : %s, membres : %d", days(e.Duration), len(e.Members)),
		})
	}
	return options
}

func stockOptions(resources []backend.Resource) []discordgo.SelectMenuOption {
	options := make([]discordgo.SelectMenuOption, 0, len(resources))
	for _, r := range resources {
		emoji := r.ResourceType.Emoji
		if emoji == "" {
			emoji = common.EmojiPackage
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:       common.Truncate(common.ResourceLabel(emoji, r.ResourceType.Name), 100),
			Value:       strconv.Itoa(r.ResourceTypeID),
			Description: fmt.Sprintf("Disponible : %d", r.Quantity),
		})
	}
	return options
}

func directionOptions() []discordgo.SelectMenuOption {
	options := make([]discordgo.SelectMenuOption, 0, len(domain.Directions))
	for _, d := range domain.Directions {
		options = append(options, discordgo.SelectMenuOption{
			Label: d.Emoji() + " " + d.Label(),
			Value: string(d),
		})
	}
	return options
}
