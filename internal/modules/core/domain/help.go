package domain

import (
	"sort"
	"strings"
)

// Help categories, in display order.
const (
	CategoryBase      = "⚙️ Commandes de base"
	CategoryChantiers = "🏗️ Commandes des chantiers"
	CategoryAdmin     = "🔧 Commandes administrateur"
	CategorySupport   = "❓ Besoin d'aide supplémentaire ?"
)

var categoryOrder = []string{CategoryBase, CategoryChantiers, CategoryAdmin}

const supportText = "Contactez un administrateur du serveur pour toute question ou problème."

const noDescription = "Aucune description disponible"

// CommandInfo describes a registered slash command.
type CommandInfo struct {
	Name        string
	Description string
	Admin       bool
}

// HelpSection is one embed field of the help message.
type HelpSection struct {
	Name  string
	Value string
}

// Category returns the help category of a command.
func (c CommandInfo) Category() string {
	switch {
	case c.Admin:
		return CategoryAdmin
	case strings.Contains(c.Name, "chantier"):
		return CategoryChantiers
	default:
		return CategoryBase
	}
}

func (c CommandInfo) line() string {
	desc := c.Description
	if desc == "" {
		desc = noDescription
	}
	return "/" + c.Name + " - " + desc
}

// HelpSections groups commands by category. Admin commands are listed only
// when includeAdmin is set; players get a support section instead.
func HelpSections(commands []CommandInfo, includeAdmin bool) []HelpSection {
	sorted := make([]CommandInfo, len(commands))
	copy(sorted, commands)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	groups := make(map[string][]string)
	for _, c := range sorted {
		if c.Admin && !includeAdmin {
			continue
		}
		groups[c.Category()] = append(groups[c.Category()], c.line())
	}

	var sections []HelpSection
	for _, category := range categoryOrder {
		lines, ok := groups[category]
		if !ok {
			continue
		}
		sections = append(sections, HelpSection{
			Name:  category,
			Value: "```\n" + strings.Join(lines, "\n") + "\n```",
		})
	}

	if !includeAdmin {
		sections = append(sections, HelpSection{Name: CategorySupport, Value: supportText})
	}
	return sections
}
