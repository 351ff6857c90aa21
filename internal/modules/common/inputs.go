package common

import (
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// ModalValue returns the value of the text input fieldID in a modal submit.
func ModalValue(i *discordgo.InteractionCreate, fieldID string) string {
	return ModalValues(i)[fieldID]
}

// ModalValues returns every text input of a modal submit keyed by customId.
// Values are trimmed.
func ModalValues(i *discordgo.InteractionCreate) map[string]string {
	values := make(map[string]string)
	if i.Type != discordgo.InteractionModalSubmit {
		return values
	}

	for _, c := range i.ModalSubmitData().Components {
		row, ok := c.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, rc := range row.Components {
			if input, ok := rc.(*discordgo.TextInput); ok {
				values[input.CustomID] = strings.TrimSpace(input.Value)
			}
		}
	}
	return values
}

// SelectedValues returns the values picked in a select menu.
func SelectedValues(i *discordgo.InteractionCreate) []string {
	if i.Type != discordgo.InteractionMessageComponent {
		return nil
	}
	return i.MessageComponentData().Values
}

// FirstSelected returns the first picked value, or a ValidationError when
// nothing was picked.
func FirstSelected(i *discordgo.InteractionCreate) (string, error) {
	values := SelectedValues(i)
	if len(values) == 0 {
		return "", Invalid(MsgNothingSelected)
	}
	return values[0], nil
}

// ParsePositiveInt parses a strictly positive integer typed by a user.
func ParsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Invalid(MsgInvalidNumber)
	}
	if n <= 0 {
		return 0, Invalid(MsgPositiveNumber)
	}
	return n, nil
}

// ParseOptionalInt parses a non-negative integer; an empty field is 0.
func ParseOptionalInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, Invalid(MsgInvalidNumber)
	}
	return n, nil
}

// SplitCustomID strips prefix from customID and splits the rest on ":".
// It returns nil when customID does not start with prefix.
func SplitCustomID(customID, prefix string) []string {
	rest, ok := strings.CutPrefix(customID, prefix)
	if !ok {
		return nil
	}
	rest = strings.TrimPrefix(rest, ":")
	if rest == "" {
		return []string{}
	}
	return strings.Split(rest, ":")
}

// JoinCustomID builds "<action>:<part>:<part>".
func JoinCustomID(action string, parts ...string) string {
	if len(parts) == 0 {
		return action
	}
	return action + ":" + strings.Join(parts, ":")
}

// Subcommand returns the name of the invoked subcommand, or "" when the
// interaction is not a command with a subcommand.
func Subcommand(i *discordgo.InteractionCreate) string {
	if i == nil || i.Interaction == nil {
		return ""
	}
	data, ok := i.Data.(discordgo.ApplicationCommandInteractionData)
	if !ok {
		return ""
	}
	opts := data.Options
	if len(opts) == 0 || opts[0].Type != discordgo.ApplicationCommandOptionSubCommand {
		return ""
	}
	return opts[0].Name
}
