package presentation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/town/application"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/town/domain"
	"github.com/bwmarrin/discordgo"
)

// Component custom ids. The select carries the operation as
// "stock_admin_select:<op>" and the modal as "stock_admin_quantity:<op>:<typeId>".
// The food stock modal is "foodstock_admin_amount:<op>:<townId>".
const (
	ButtonStockAdd    = "stock_admin_add"
	ButtonStockRemove = "stock_admin_remove"
	SelectStock       = "stock_admin_select"
	ModalStockQty     = "stock_admin_quantity"
	ModalFoodStock    = "foodstock_admin_amount"
	ButtonSeasonSet   = "season_set"
)

// EatButtonID opens a meal; the characters module handles it.
const EatButtonID = "eat_food"

const fieldAmount = "amount_input"

func resourceLines(resources []backend.Resource) (string, int) {
	lines := make([]string, 0, len(resources))
	total := 0
	for _, r := range resources {
		lines = append(lines, fmt.Sprintf("%s : %d", common.ResourceLabel(r.ResourceType.Emoji, r.ResourceType.Name), r.Quantity))
		total += r.Quantity
	}
	return common.Truncate(strings.Join(lines, "\n"), 1024), total
}

func stockEmbed(town *backend.Town, resources []backend.Resource) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "🏙️ Stock de la Ville : " + town.Name,
		Description: fmt.Sprintf("Stock actuel de toutes les ressources de la ville **%s**.", town.Name),
		Color:       common.ColorInfo,
	}

	if len(resources) == 0 {
		embed.Fields = []*discordgo.MessageEmbedField{
			{Name: common.EmojiPackage + " Ressources", Value: "Aucune ressource en stock"},
		}
		return embed
	}

	lines, total := resourceLines(resources)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: common.EmojiPackage + " Ressources", Value: lines},
		{Name: common.EmojiStats + " Total", Value: fmt.Sprintf("%d ressources au total", total), Inline: true},
	}
	return embed
}

func foodStockEmbed(town *backend.Town, character *backend.Character) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "🏪 Stock de Vivres",
		Description: fmt.Sprintf("La ville **%s** dispose actuellement de **%d** vivres.", town.Name, town.FoodStock),
		Color:       domain.FoodStockColor(town.FoodStock),
		Fields: []*discordgo.MessageEmbedField{
			{Name: common.EmojiStats + " Stock Actuel", Value: strconv.Itoa(town.FoodStock), Inline: true},
			{Name: "🏘️ Ville", Value: town.Name, Inline: true},
			{Name: "💡 Conseil", Value: domain.FoodStockAdvice(town.FoodStock), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: "Utilisez /manger pour nourrir votre personnage"},
	}
	if character != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "🍽️ Votre État",
			Value: common.HungerEmoji(character.HungerLevel) + " " + common.HungerText(character.HungerLevel),
		})
	}
	return embed
}

func foodAdjustEmbed(op domain.Operation, out *application.FoodAdjustOutput) *discordgo.MessageEmbed {
	title, sign, verb := "✅ Vivres ajoutés", "+", "ajoutés à"
	if op == domain.OperationRemove {
		title, sign, verb = "✅ Vivres retirés", "-", "retirés de"
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: fmt.Sprintf("**%d** vivres ont été %s la ville **%s**.", out.Quantity, verb, out.Town.Name),
		Color:       domain.FoodStockColor(out.Town.FoodStock),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Ancien stock", Value: strconv.Itoa(out.Previous), Inline: true},
			{Name: "Modification", Value: sign + strconv.Itoa(out.Quantity), Inline: true},
			{Name: "Nouveau stock", Value: strconv.Itoa(out.Town.FoodStock), Inline: true},
		},
	}
}

func stockAdminButtons() discordgo.ActionsRow {
	return common.Buttons(
		discordgo.Button{Label: "➕ Ajouter", Style: discordgo.SuccessButton, CustomID: ButtonStockAdd},
		discordgo.Button{Label: "➖ Retirer", Style: discordgo.DangerButton, CustomID: ButtonStockRemove},
	)
}

func stockOptions(resources []backend.Resource) []discordgo.SelectMenuOption {
	options := make([]discordgo.SelectMenuOption, 0, len(resources))
	for _, r := range resources {
		options = append(options, discordgo.SelectMenuOption{
			Label:       common.Truncate(common.ResourceLabel(r.ResourceType.Emoji, r.ResourceType.Name), 100),
			Value:       strconv.Itoa(r.ResourceTypeID),
			Description: fmt.Sprintf("En stock : %d", r.Quantity),
		})
	}
	return options
}

func seasonEmbed(season *backend.Season) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🌦️ Saison",
		Description: "Saison actuelle : **" + domain.SeasonLabel(season.Name) + "**",
		Color:       common.ColorInfo,
	}
}

func seasonButtons(current string) discordgo.ActionsRow {
	buttons := make([]discordgo.Button, 0, len(domain.Seasons))
	for _, s := range domain.Seasons {
		buttons = append(buttons, discordgo.Button{
			Label:    domain.SeasonLabel(s),
			Style:    discordgo.PrimaryButton,
			CustomID: common.JoinCustomID(ButtonSeasonSet, s),
			Disabled: strings.EqualFold(s, current),
		})
	}
	return common.Buttons(buttons...)
}
