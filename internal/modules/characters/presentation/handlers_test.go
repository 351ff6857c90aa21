package presentation

import (
	"context"
	"strings"
	"testing"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/bot"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/characters/application"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/bwmarrin/discordgo"
)

type fakeAPI struct {
	needs     bool
	character *backend.Character
	created   []backend.CreateCharacterInput
	used      []string
	ate       int
}

func (f *fakeAPI) NeedsCharacterCreation(_ context.Context, _, _ string) (bool, error) {
	return f.needs, nil
}

func (f *fakeAPI) CreateCharacter(_ context.Context, in backend.CreateCharacterInput) (*backend.Character, error) {
	f.created = append(f.created, in)
	f.needs = false
	return &backend.Character{ID: "ch2", Name: in.Name}, nil
}

func (f *fakeAPI) EatFood(_ context.Context, _ string) (*backend.EatResult, error) {
	f.ate++
	return &backend.EatResult{Character: backend.Character{HungerLevel: 0}, Town: backend.Town{FoodStock: 41}, FoodConsumed: 1}, nil
}

func (f *fakeAPI) GetActionPoints(_ context.Context, _ string) (*backend.ActionPoints, error) {
	return &backend.ActionPoints{Points: 2}, nil
}

func (f *fakeAPI) GetCharacterCapabilities(_ context.Context, _ string) ([]backend.Capability, error) {
	return []backend.Capability{
		{ID: "cap1", Name: "Pêcher", Description: "Attraper du poisson", CostPA: 1},
		{ID: "cap2", Name: "Chasser", CostPA: 2},
	}, nil
}

func (f *fakeAPI) UseCapability(_ context.Context, _, capabilityID string, _ bool) (*backend.CapabilityResult, error) {
	f.used = append(f.used, capabilityID)
	return &backend.CapabilityResult{Success: true, Message: "Deux poissons !", PublicMessage: "Aldo revient de la pêche."}, nil
}

func (f *fakeAPI) GetCurrentSeason(_ context.Context) (*backend.Season, error) {
	return &backend.Season{Name: backend.SeasonSummer}, nil
}

func (f *fakeAPI) EnsureUser(_ context.Context, in backend.CreateUserInput) (*backend.User, error) {
	return &backend.User{ID: "u-" + in.DiscordID, DiscordID: in.DiscordID}, nil
}

func (f *fakeAPI) GetTownByGuild(_ context.Context, guildID string) (*backend.Town, error) {
	return &backend.Town{ID: "t1", GuildID: guildID}, nil
}

func (f *fakeAPI) GetActiveCharacter(_ context.Context, _, _ string) (*backend.Character, error) {
	if f.character == nil {
		return nil, backend.ErrNoActiveCharacter
	}
	return f.character, nil
}

func newHandlers(api *fakeAPI) *Handlers {
	return NewHandlers(
		application.NewProfileService(api),
		application.NewEatService(api),
		application.NewCapabilityService(api, api),
		api,
	)
}

func interaction(typ discordgo.InteractionType, data discordgo.InteractionData) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:      "1",
			Type:    typ,
			GuildID: "42",
			Member:  &discordgo.Member{User: &discordgo.User{ID: "7", Username: "aldo"}},
			Data:    data,
		},
	}
}

func command(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return interaction(discordgo.InteractionApplicationCommand, discordgo.ApplicationCommandInteractionData{
		Name:    name,
		Options: options,
	})
}

func capabilityArg(value string, focused bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:    optionCapability,
		Type:    discordgo.ApplicationCommandOptionString,
		Value:   value,
		Focused: focused,
	}
}

func aldo() *backend.Character {
	return &backend.Character{ID: "ch1", Name: "Aldo", PATotal: 2, HP: 4, PM: 5, HungerLevel: 1}
}

func TestHandleProfile_ShowsCreationModal(t *testing.T) {
	h := newHandlers(&fakeAPI{needs: true})
	r := &bot.MockResponder{}

	if err := h.HandleProfile(nil, command(CommandProfile), r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.LastResponse.Type != discordgo.InteractionResponseModal {
		t.Fatalf("expected a modal, got type %v", r.LastResponse.Type)
	}
	if r.LastResponse.Data.CustomID != ModalCreateCharacter {
		t.Errorf("expected %q, got %q", ModalCreateCharacter, r.LastResponse.Data.CustomID)
	}
}

func TestHandleProfile_Embed(t *testing.T) {
	h := newHandlers(&fakeAPI{character: aldo()})
	r := &bot.MockResponder{}

	if err := h.HandleProfile(nil, command(CommandProfile), r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := r.LastResponse.Data
	if data.Flags != discordgo.MessageFlagsEphemeral {
		t.Error("expected an ephemeral profile")
	}
	embed := data.Embeds[0]
	if !strings.Contains(embed.Title, "Aldo") {
		t.Errorf("expected title with name, got %q", embed.Title)
	}
	if embed.Fields[0].Value != "**2/4 ⚡**" {
		t.Errorf("expected %q, got %q", "**2/4 ⚡**", embed.Fields[0].Value)
	}
	if !strings.Contains(embed.Fields[len(embed.Fields)-1].Value, "Pêcher") {
		t.Errorf("expected capabilities field, got %q", embed.Fields[len(embed.Fields)-1].Value)
	}

	row := data.Components[0].(discordgo.ActionsRow)
	if b := row.Components[0].(discordgo.Button); b.CustomID != ButtonEat {
		t.Errorf("expected %q, got %q", ButtonEat, b.CustomID)
	}
}

func TestHandleProfile_NoCharacter(t *testing.T) {
	h := newHandlers(&fakeAPI{})
	r := &bot.MockResponder{}

	if err := h.HandleProfile(nil, command(CommandProfile), r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.LastResponse.Data.Content != common.MsgNoCharacter {
		t.Errorf("expected %q, got %q", common.MsgNoCharacter, r.LastResponse.Data.Content)
	}
}

func TestHandleCreateModal(t *testing.T) {
	api := &fakeAPI{needs: true}
	h := newHandlers(api)
	c := bot.NewComponents()
	h.Register(c)
	r := &bot.MockResponder{}

	i := interaction(discordgo.InteractionModalSubmit, discordgo.ModalSubmitInteractionData{
		CustomID: ModalCreateCharacter,
		Components: []discordgo.MessageComponent{
			&discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				&discordgo.TextInput{CustomID: fieldCharacterName, Value: "Aldo"},
			}},
		},
	})
	if _, err := c.Modals.Dispatch(nil, i, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(api.created) != 1 || api.created[0].Name != "Aldo" || api.created[0].UserID != "u-7" {
		t.Errorf("unexpected payload %+v", api.created)
	}
	if !strings.Contains(r.LastResponse.Data.Content, "Aldo") {
		t.Errorf("unexpected content %q", r.LastResponse.Data.Content)
	}
}

func TestHandleEat_Button(t *testing.T) {
	api := &fakeAPI{character: aldo()}
	h := newHandlers(api)
	c := bot.NewComponents()
	h.Register(c)
	r := &bot.MockResponder{}

	i := interaction(discordgo.InteractionMessageComponent, discordgo.MessageComponentInteractionData{
		CustomID:      ButtonEat,
		ComponentType: discordgo.ButtonComponent,
	})
	if _, err := c.Buttons.Dispatch(nil, i, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if api.ate != 1 {
		t.Errorf("expected 1 meal, got %d", api.ate)
	}
	embed := r.LastResponse.Data.Embeds[0]
	if embed.Fields[2].Value != "41" {
		t.Errorf("expected remaining stock %q, got %q", "41", embed.Fields[2].Value)
	}
}

func TestHandleUseCapacity_WithoutName(t *testing.T) {
	h := newHandlers(&fakeAPI{character: aldo()})
	r := &bot.MockResponder{}

	if err := h.HandleUseCapacity(nil, command(CommandUseCapacity), r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	row := r.LastResponse.Data.Components[0].(discordgo.ActionsRow)
	menu := row.Components[0].(discordgo.SelectMenu)
	if menu.CustomID != SelectCapability || len(menu.Options) != 2 {
		t.Errorf("unexpected menu %+v", menu)
	}
}

func TestHandleUseCapacity_WithName(t *testing.T) {
	api := &fakeAPI{character: aldo()}
	h := newHandlers(api)
	r := &bot.MockResponder{}

	if err := h.HandleUseCapacity(nil, command(CommandUseCapacity, capabilityArg("pêcher", false)), r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(api.used) != 1 || api.used[0] != "cap1" {
		t.Errorf("expected cap1 used, got %v", api.used)
	}
	expected := "Aldo revient de la pêche.\n\nDeux poissons !"
	if r.LastResponse.Data.Content != expected {
		t.Errorf("expected %q, got %q", expected, r.LastResponse.Data.Content)
	}
}

func TestHandleAutocomplete(t *testing.T) {
	h := newHandlers(&fakeAPI{character: aldo()})
	r := &bot.MockResponder{}

	i := interaction(discordgo.InteractionApplicationCommandAutocomplete, discordgo.ApplicationCommandInteractionData{
		Name:    CommandUseCapacity,
		Options: []*discordgo.ApplicationCommandInteractionDataOption{capabilityArg("chas", true)},
	})
	h.HandleAutocomplete(nil, i, r)

	if r.LastResponse.Type != discordgo.InteractionApplicationCommandAutocompleteResult {
		t.Fatalf("expected an autocomplete result, got type %v", r.LastResponse.Type)
	}
	choices := r.LastResponse.Data.Choices
	if len(choices) != 1 || choices[0].Value != "Chasser" {
		t.Errorf("unexpected choices %+v", choices)
	}
	if choices[0].Name != "Chasser (2 PA) - Aucune description" {
		t.Errorf("unexpected choice name %q", choices[0].Name)
	}
}

func TestHandleAutocomplete_NoCharacter(t *testing.T) {
	h := newHandlers(&fakeAPI{})
	r := &bot.MockResponder{}

	i := interaction(discordgo.InteractionApplicationCommandAutocomplete, discordgo.ApplicationCommandInteractionData{
		Name:    CommandUseCapacity,
		Options: []*discordgo.ApplicationCommandInteractionDataOption{capabilityArg("", true)},
	})
	h.HandleAutocomplete(nil, i, r)

	if r.LastResponse == nil || len(r.LastResponse.Data.Choices) != 0 {
		t.Errorf("expected an empty choice list, got %+v", r.LastResponse)
	}
}
