package presentation

import (
	"fmt"
	"strings"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/characters/application"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/characters/domain"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/bwmarrin/discordgo"
)

// Component custom ids.
const (
	ButtonEat            = "eat_food"
	SelectCapability     = "use_capacity_select"
	ModalCreateCharacter = "character_creation_modal"
)

const fieldCharacterName = "character_name"

func profileEmbed(p *domain.Profile) *discordgo.MessageEmbed {
	c := p.Character

	pa := fmt.Sprintf("**%d/%d %s**", p.ActionPoints, domain.MaxActionPoints, common.EmojiPA)
	if p.ActionPoints >= domain.MaxActionPoints-1 {
		pa += " " + common.EmojiWarning
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Points d'Action (PA)", Value: pa, Inline: true},
		{Name: "Vie (PV)", Value: domain.Gauge(c.HP, domain.MaxHP, common.EmojiHP, "🖤"), Inline: true},
		{Name: "Mental (PM)", Value: domain.Gauge(c.PM, domain.MaxPM, common.EmojiPM, "🖤"), Inline: true},
		{Name: "Faim", Value: common.HungerEmoji(c.HungerLevel) + " **" + common.HungerText(c.HungerLevel) + "**", Inline: true},
	}
	if statuses := p.Statuses(); len(statuses) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "**STATUTS**",
			Value: strings.Join(statuses, "\n"),
		})
	}
	if len(p.Capabilities) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "**CAPACITÉS**",
			Value: capabilityLines(p.Capabilities),
		})
	}

	name := c.Name
	if name == "" {
		name = "Sans nom"
	}
	return &discordgo.MessageEmbed{
		Title:  common.EmojiProfile + " " + name,
		Color:  common.HungerColor(c.HungerLevel),
		Fields: fields,
		Footer: &discordgo.MessageEmbedFooter{Text: "Profil de : " + name},
	}
}

func capabilityLines(capabilities []backend.Capability) string {
	lines := make([]string, 0, len(capabilities))
	for _, c := range capabilities {
		line := fmt.Sprintf("%s **%s** (%d PA)", common.EmojiGeneric, c.Name, c.CostPA)
		if c.Description != "" {
			line += " : " + c.Description
		}
		lines = append(lines, line)
	}
	return common.Truncate(strings.Join(lines, "\n"), 1024)
}

func profileComponents(p *domain.Profile) []discordgo.MessageComponent {
	if !p.CanEat() {
		return nil
	}
	return []discordgo.MessageComponent{common.Buttons(discordgo.Button{
		Label:    "🍴 Manger",
		Style:    discordgo.SuccessButton,
		CustomID: ButtonEat,
	})}
}

func eatEmbed(result *backend.EatResult, name string) *discordgo.MessageEmbed {
	level := result.Character.HungerLevel
	return &discordgo.MessageEmbed{
		Title:       "🍽️ Repas",
		Description: fmt.Sprintf("%s **%s** a mangé !", common.HungerEmoji(level), name),
		Color:       common.HungerColor(level),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "État de faim", Value: common.HungerText(level), Inline: true},
			{Name: "Vivres consommés", Value: fmt.Sprint(result.FoodConsumed), Inline: true},
			{Name: "Stock restant", Value: fmt.Sprint(result.Town.FoodStock), Inline: true},
		},
	}
}

func notHungryEmbed() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🍽️ Pas faim",
		Description: "😊 Vous êtes en pleine forme et n'avez pas besoin de manger pour le moment !",
		Color:       common.HungerColor(domain.HungerFed),
	}
}

func capabilityOptions(capabilities []backend.Capability) []discordgo.SelectMenuOption {
	options := make([]discordgo.SelectMenuOption, 0, len(capabilities))
	for _, c := range capabilities {
		description := c.Description
		if description == "" {
			description = "Aucune description"
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:       common.Truncate(fmt.Sprintf("%s (%d PA)", c.Name, c.CostPA), 100),
			Value:       c.Name,
			Description: common.Truncate(description, 100),
		})
	}
	return options
}

func capabilityChoices(capabilities []backend.Capability) []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(capabilities))
	for _, c := range capabilities {
		description := c.Description
		if description == "" {
			description = "Aucune description"
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  common.Truncate(fmt.Sprintf("%s (%d PA) - %s", c.Name, c.CostPA, description), 100),
			Value: c.Name,
		})
	}
	return choices
}

func useContent(out *application.UseOutput) string {
	msg := out.Result.Message
	if msg == "" {
		msg = fmt.Sprintf("%s Capacité %s utilisée avec succès.", common.EmojiSuccess, out.Capability.Name)
	}
	if public := out.Result.PublicMessage; public != "" && public != msg {
		return public + "\n\n" + msg
	}
	return msg
}
