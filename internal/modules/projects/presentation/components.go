package presentation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/projects/domain"
	"github.com/bwmarrin/discordgo"
)

// Component custom ids. Wizard ids carry the draft key as "<action>:<key>".
const (
	ButtonParticipate     = "project_participate"
	SelectContribute      = "project_select_invest"
	ModalContributePrefix = "project_invest_modal_"

	ButtonAdminAdd    = "project_admin_add"
	ButtonAdminDelete = "project_admin_delete"
	SelectDelete      = "project_delete_select"

	ModalCreate        = "project_add_modal"
	SelectCraftTypes   = "project_add_craft_types"
	SelectOutput       = "project_add_output"
	ButtonAddResource  = "project_add_resource"
	SelectResource     = "project_add_select_resource"
	ModalResourceQty   = "project_add_quantity"
	ButtonAddBlueprint = "project_add_blueprint"
	ModalBlueprint     = "project_blueprint_modal"
	ButtonValidate     = "project_add_validate"
)

// Modal field ids.
const (
	fieldName             = "project_name"
	fieldPA               = "project_pa"
	fieldOutputQuantity   = "project_output_quantity"
	fieldResourceQuantity = "resource_quantity"
	fieldBlueprintPA      = "project_blueprint_pa"
	fieldPoints           = "points_input"
	fieldResourcePrefix   = "resource_"
)

const (
	maxContributeResourceFields = 4
	maxProjectFields            = 25
)

func keyed(action string) string {
	return action + ":"
}

func craftTypesLabel(types []string) string {
	labels := make([]string, 0, len(types))
	for _, raw := range types {
		ct := domain.CraftType(raw)
		labels = append(labels, ct.Emoji()+" "+ct.Label())
	}
	return strings.Join(labels, ", ")
}

func statusEmoji(status string) string {
	if status == backend.ProjectCompleted {
		return "✅"
	}
	return "🚧"
}

func listEmbed(projects []backend.Project) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: common.EmojiProject + " Projets",
		Color: common.ColorInfo,
	}

	for idx, p := range projects {
		if idx == maxProjectFields {
			break
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%s PA : %d/%d", common.EmojiPA, p.PAContributed, p.PARequired)
		if len(p.CraftTypes) > 0 {
			fmt.Fprintf(&b, "\nArtisanat : %s", craftTypesLabel(p.CraftTypes))
		}
		if p.OutputResourceType != nil {
			fmt.Fprintf(&b, "\nProduit : %d × %s", p.OutputQuantity,
				common.ResourceLabel(p.OutputResourceType.Emoji, p.OutputResourceType.Name))
		}
		for _, rc := range p.ResourceCosts {
			fmt.Fprintf(&b, "\n%s : %d/%d",
				common.ResourceLabel(rc.ResourceType.Emoji, rc.ResourceType.Name),
				rc.QuantityContributed, rc.QuantityRequired)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  statusEmoji(p.Status) + " " + p.Name,
			Value: b.String(),
		})
	}
	return embed
}

func projectOptions(projects []backend.Project) []discordgo.SelectMenuOption {
	options := make([]discordgo.SelectMenuOption, 0, len(projects))
	for _, p := range projects {
		options = append(options, discordgo.SelectMenuOption{
			Label:       common.Truncate(statusEmoji(p.Status)+" "+p.Name, 100),
			Value:       p.ID,
			Description: fmt.Sprintf("%d/%d PA", p.PAContributed, p.PARequired),
		})
	}
	return options
}

func craftTypeOptions() []discordgo.SelectMenuOption {
	options := make([]discordgo.SelectMenuOption, 0, len(domain.CraftTypes))
	for _, ct := range domain.CraftTypes {
		options = append(options, discordgo.SelectMenuOption{
			Label: ct.Emoji() + " " + ct.Label(),
			Value: string(ct),
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

func draftSummary(d *domain.ProjectDraft) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s **Nouveau projet : %s**\n", common.EmojiProject, d.Name)
	fmt.Fprintf(&b, "%s Coût : %d PA\n", common.EmojiPA, d.PARequired)
	if len(d.CraftTypes) > 0 {
		labels := make([]string, 0, len(d.CraftTypes))
		for _, ct := range d.CraftTypes {
			labels = append(labels, ct.Emoji()+" "+ct.Label())
		}
		fmt.Fprintf(&b, "Artisanat : %s\n", strings.Join(labels, ", "))
	}
	if d.OutputName != "" {
		fmt.Fprintf(&b, "Produit : %d × %s\n", d.OutputQuantity, d.OutputName)
	} else {
		fmt.Fprintf(&b, "Quantité produite : %d\n", d.OutputQuantity)
	}
	if d.BlueprintPA > 0 {
		fmt.Fprintf(&b, "Blueprint : %d PA\n", d.BlueprintPA)
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

func draftButtons(key string) discordgo.ActionsRow {
	return common.Buttons(
		discordgo.Button{
			Label:    "Ajouter une ressource",
			Style:    discordgo.SecondaryButton,
			CustomID: common.JoinCustomID(ButtonAddResource, key),
		},
		discordgo.Button{
			Label:    "Blueprint",
			Style:    discordgo.SecondaryButton,
			CustomID: common.JoinCustomID(ButtonAddBlueprint, key),
		},
		discordgo.Button{
			Label:    "Créer le projet",
			Style:    discordgo.SuccessButton,
			CustomID: common.JoinCustomID(ButtonValidate, key),
		},
	)
}

func contributeInputs(p *backend.Project) []discordgo.TextInput {
	inputs := []discordgo.TextInput{
		common.OptionalInput(fieldPoints,
			fmt.Sprintf("Points d'action (reste %d)", p.RemainingPA()), "0", 4),
	}
	for _, rc := range p.ResourceCosts {
		if len(inputs) > maxContributeResourceFields {
			break
		}
		if rc.Remaining() == 0 {
			continue
		}
		label := fmt.Sprintf("%s (reste %d)", rc.ResourceType.Name, rc.Remaining())
		inputs = append(inputs, common.OptionalInput(fieldResourcePrefix+strconv.Itoa(rc.ResourceTypeID), label, "0", 6))
	}
	return inputs
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
