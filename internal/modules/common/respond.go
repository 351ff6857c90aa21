package common

import (
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/bot"
	"github.com/bwmarrin/discordgo"
)

// RespondEphemeral replies with a message only the invoker can see.
func RespondEphemeral(r bot.Responder, content string) error {
	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// RespondMessage replies with a message and optional components.
func RespondMessage(r bot.Responder, content string, ephemeral bool, components ...discordgo.MessageComponent) error {
	data := &discordgo.InteractionResponseData{
		Content:    content,
		Components: components,
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// RespondEmbed replies with an embed and optional components.
func RespondEmbed(r bot.Responder, embed *discordgo.MessageEmbed, ephemeral bool, components ...discordgo.MessageComponent) error {
	data := &discordgo.InteractionResponseData{
		Embeds:     []*discordgo.MessageEmbed{embed},
		Components: components,
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// UpdateMessage replaces the message a component is attached to.
func UpdateMessage(r bot.Responder, content string, components ...discordgo.MessageComponent) error {
	if components == nil {
		components = []discordgo.MessageComponent{}
	}
	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: components,
		},
	})
}

// Defer acknowledges the interaction; the answer is sent later with Edit.
func Defer(r bot.Responder, ephemeral bool) error {
	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}
	if ephemeral {
		resp.Data = &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral}
	}
	return r.Respond(resp)
}

// ShowModal opens a modal made of text inputs.
func ShowModal(r bot.Responder, customID, title string, inputs ...discordgo.TextInput) error {
	rows := make([]discordgo.MessageComponent, 0, len(inputs))
	for _, input := range inputs {
		rows = append(rows, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{input},
		})
	}

	return r.Respond(&discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID:   customID,
			Title:      Truncate(title, 45),
			Components: rows,
		},
	})
}

// ShortInput builds a required single-line text input.
func ShortInput(customID, label, placeholder string, maxLength int) discordgo.TextInput {
	return discordgo.TextInput{
		CustomID:    customID,
		Label:       Truncate(label, 45),
		Style:       discordgo.TextInputShort,
		Placeholder: placeholder,
		Required:    true,
		MaxLength:   maxLength,
	}
}

// OptionalInput builds an optional single-line text input.
func OptionalInput(customID, label, placeholder string, maxLength int) discordgo.TextInput {
	input := ShortInput(customID, label, placeholder, maxLength)
	input.Required = false
	return input
}

// ParagraphInput builds an optional multi-line text input.
func ParagraphInput(customID, label, placeholder string, maxLength int) discordgo.TextInput {
	return discordgo.TextInput{
		CustomID:    customID,
		Label:       Truncate(label, 45),
		Style:       discordgo.TextInputParagraph,
		Placeholder: placeholder,
		MaxLength:   maxLength,
	}
}

// Buttons wraps buttons in a single action row.
func Buttons(buttons ...discordgo.Button) discordgo.ActionsRow {
	components := make([]discordgo.MessageComponent, 0, len(buttons))
	for _, b := range buttons {
		components = append(components, b)
	}
	return discordgo.ActionsRow{Components: components}
}

// MaxSelectOptions is the number of options Discord accepts in a select menu.
const MaxSelectOptions = 25

// Select wraps a string select menu in an action row. Options beyond
// MaxSelectOptions are dropped.
func Select(customID, placeholder string, options []discordgo.SelectMenuOption, maxValues int) discordgo.ActionsRow {
	if len(options) > MaxSelectOptions {
		options = options[:MaxSelectOptions]
	}
	if maxValues < 1 {
		maxValues = 1
	}
	if maxValues > len(options) {
		maxValues = len(options)
	}
	minValues := 1

	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:    discordgo.StringSelectMenu,
				CustomID:    customID,
				Placeholder: placeholder,
				MinValues:   &minValues,
				MaxValues:   maxValues,
				Options:     options,
			},
		},
	}
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "…"
}
