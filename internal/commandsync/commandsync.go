// Package commandsync deploys slash commands to Discord, sending only the
// commands that changed since the last deployment.
package commandsync

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/bwmarrin/discordgo"
)

// API is the part of the Discord REST API used to manage commands.
// *discordgo.Session satisfies it.
type API interface {
	ApplicationCommands(appID, guildID string, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
	ApplicationCommandEdit(appID, guildID, cmdID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
	ApplicationCommandDelete(appID, guildID, cmdID string, options ...discordgo.RequestOption) error
	ApplicationCommandBulkOverwrite(appID, guildID string, commands []*discordgo.ApplicationCommand, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
}

var _ API = (*discordgo.Session)(nil)

// Update is a deployed command whose local definition changed.
type Update struct {
	ID      string
	Command *discordgo.ApplicationCommand
}

// Plan lists what a deployment has to do.
type Plan struct {
	Create    []*discordgo.ApplicationCommand
	Update    []Update
	Delete    []*discordgo.ApplicationCommand
	Unchanged []string
}

// Changes returns the number of API calls the plan needs.
func (p *Plan) Changes() int {
	return len(p.Create) + len(p.Update) + len(p.Delete)
}

// Summary is the printable form of a Plan.
type Summary struct {
	Create    []string `yaml:"create" json:"create"`
	Update    []string `yaml:"update" json:"update"`
	Delete    []string `yaml:"delete" json:"delete"`
	Unchanged []string `yaml:"unchanged" json:"unchanged"`
}

// Summary lists the command names of each step.
func (p *Plan) Summary() Summary {
	s := Summary{Unchanged: p.Unchanged}
	for _, c := range p.Create {
		s.Create = append(s.Create, c.Name)
	}
	for _, u := range p.Update {
		s.Update = append(s.Update, u.Command.Name)
	}
	for _, c := range p.Delete {
		s.Delete = append(s.Delete, c.Name)
	}
	return s
}

// NewPlan compares the local commands with the deployed ones.
func NewPlan(local, remote []*discordgo.ApplicationCommand) *Plan {
	deployed := make(map[string]*discordgo.ApplicationCommand, len(remote))
	for _, c := range remote {
		deployed[c.Name] = c
	}

	plan := &Plan{}
	seen := make(map[string]bool, len(local))
	for _, c := range local {
		seen[c.Name] = true
		existing, ok := deployed[c.Name]
		switch {
		case !ok:
			plan.Create = append(plan.Create, c)
		case !Equal(c, existing):
			plan.Update = append(plan.Update, Update{ID: existing.ID, Command: c})
		default:
			plan.Unchanged = append(plan.Unchanged, c.Name)
		}
	}

	for _, c := range remote {
		if !seen[c.Name] {
			plan.Delete = append(plan.Delete, c)
		}
	}
	return plan
}

// Diff fetches the deployed commands and plans the deployment of local.
// An empty guildID targets the global commands.
func Diff(api API, appID, guildID string, local []*discordgo.ApplicationCommand) (*Plan, error) {
	remote, err := api.ApplicationCommands(appID, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch deployed commands: %w", err)
	}
	return NewPlan(local, remote), nil
}

// Apply runs every step of the plan. A failed step does not stop the
// others; all failures are returned joined.
func Apply(api API, appID, guildID string, plan *Plan) error {
	var errs []error

	for _, c := range plan.Create {
		if _, err := api.ApplicationCommandCreate(appID, guildID, c); err != nil {
			errs = append(errs, fmt.Errorf("failed to create command %s: %w", c.Name, err))
			continue
		}
		slog.Info("created command", "command", c.Name, "guild_id", guildID)
	}

	for _, u := range plan.Update {
		if _, err := api.ApplicationCommandEdit(appID, guildID, u.ID, u.Command); err != nil {
			errs = append(errs, fmt.Errorf("failed to update command %s: %w", u.Command.Name, err))
			continue
		}
		slog.Info("updated command", "command", u.Command.Name, "guild_id", guildID)
	}

	for _, c := range plan.Delete {
		if err := api.ApplicationCommandDelete(appID, guildID, c.ID); err != nil {
			errs = append(errs, fmt.Errorf("failed to delete command %s: %w", c.Name, err))
			continue
		}
		slog.Info("deleted command", "command", c.Name, "guild_id", guildID)
	}

	return errors.Join(errs...)
}

// ForceDeploy removes every deployed command, then registers cmds.
func ForceDeploy(api API, appID, guildID string, cmds []*discordgo.ApplicationCommand) ([]*discordgo.ApplicationCommand, error) {
	if _, err := api.ApplicationCommandBulkOverwrite(appID, guildID, []*discordgo.ApplicationCommand{}); err != nil {
		return nil, fmt.Errorf("failed to clear commands: %w", err)
	}
	slog.Warn("cleared all commands", "guild_id", guildID)

	deployed, err := api.ApplicationCommandBulkOverwrite(appID, guildID, cmds)
	if err != nil {
		return nil, fmt.Errorf("failed to register commands: %w", err)
	}
	slog.Info("registered commands", "count", len(deployed), "guild_id", guildID)
	return deployed, nil
}

// Equal reports whether two commands have the same name, description and
// options. Default permissions are ignored.
func Equal(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}
	return reflect.DeepEqual(cleanOptions(a.Options), cleanOptions(b.Options))
}

type option struct {
	Type         discordgo.ApplicationCommandOptionType
	Name         string
	Description  string
	Required     bool
	Choices      []choice
	Options      []option
	MinValue     *float64
	MaxValue     float64
	MinLength    *int
	MaxLength    int
	Autocomplete bool
	ChannelTypes []discordgo.ChannelType
}

type choice struct {
	Name  string
	Value string
}

// cleanOptions keeps the fields Discord echoes back. Empty and missing
// lists compare equal; choice values compare as text, so 1 equals 1.0.
func cleanOptions(opts []*discordgo.ApplicationCommandOption) []option {
	if len(opts) == 0 {
		return nil
	}

	cleaned := make([]option, 0, len(opts))
	for _, o := range opts {
		c := option{
			Type:         o.Type,
			Name:         o.Name,
			Description:  o.Description,
			Required:     o.Required,
			Options:      cleanOptions(o.Options),
			MinValue:     o.MinValue,
			MaxValue:     o.MaxValue,
			MinLength:    o.MinLength,
			MaxLength:    o.MaxLength,
			Autocomplete: o.Autocomplete,
		}
		if len(o.ChannelTypes) > 0 {
			c.ChannelTypes = o.ChannelTypes
		}
		for _, ch := range o.Choices {
			c.Choices = append(c.Choices, choice{Name: ch.Name, Value: fmt.Sprint(ch.Value)})
		}
		cleaned = append(cleaned, c)
	}
	return cleaned
}
