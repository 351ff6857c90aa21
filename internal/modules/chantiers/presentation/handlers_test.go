package presentation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/bot"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/draft"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/chantiers/application"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/chantiers/domain"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/bwmarrin/discordgo"
)

const (
	testGuild = "42"
	testAdmin = "7"
	wood      = 3
)

type fakeAPI struct {
	chantiers []backend.Chantier
	created   []backend.CreateChantierInput
	deleted   []string
	invested  []int
}

func (f *fakeAPI) GetChantiersByGuild(_ context.Context, _ string) ([]backend.Chantier, error) {
	return f.chantiers, nil
}

func (f *fakeAPI) GetChantier(_ context.Context, id string) (*backend.Chantier, error) {
	for idx := range f.chantiers {
		if f.chantiers[idx].ID == id {
			c := f.chantiers[idx]
			return &c, nil
		}
	}
	return nil, &backend.APIError{StatusCode: 404}
}

func (f *fakeAPI) CreateChantier(_ context.Context, in backend.CreateChantierInput) (*backend.Chantier, error) {
	f.created = append(f.created, in)
	return &backend.Chantier{ID: "c9", Name: in.Name, Cost: in.Cost}, nil
}

func (f *fakeAPI) DeleteChantier(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) InvestInChantier(_ context.Context, _, _ string, points int) (*backend.InvestResult, error) {
	f.invested = append(f.invested, points)
	return &backend.InvestResult{PointsInvested: points}, nil
}

func (f *fakeAPI) ContributeResourcesToChantier(
	_ context.Context,
	id, _ string,
	_ []backend.ResourceContribution,
) (*backend.Chantier, error) {
	return f.GetChantier(context.Background(), id)
}

func (f *fakeAPI) EnsureUser(_ context.Context, in backend.CreateUserInput) (*backend.User, error) {
	return &backend.User{ID: "u-" + in.DiscordID, DiscordID: in.DiscordID}, nil
}

func (f *fakeAPI) GetTownByGuild(_ context.Context, guildID string) (*backend.Town, error) {
	return &backend.Town{ID: "t1", GuildID: guildID}, nil
}

func (f *fakeAPI) GetActiveCharacter(_ context.Context, _, _ string) (*backend.Character, error) {
	return &backend.Character{ID: "ch1", IsActive: true}, nil
}

type fakeCatalog struct{}

func (fakeCatalog) ResourceTypes(_ context.Context) ([]backend.ResourceType, error) {
	return []backend.ResourceType{
		{ID: 1, Name: "Vivres", Emoji: "🍞"},
		{ID: wood, Name: "Bois", Emoji: "🪵"},
	}, nil
}

func (c fakeCatalog) ResourceType(ctx context.Context, id int) (backend.ResourceType, bool, error) {
	types, _ := c.ResourceTypes(ctx)
	for _, rt := range types {
		if rt.ID == id {
			return rt, true, nil
		}
	}
	return backend.ResourceType{}, false, nil
}

type harness struct {
	api        *fakeAPI
	drafts     *draft.Store[*domain.ChantierDraft]
	components *bot.Components
}

func newHarness(chantiers ...backend.Chantier) *harness {
	api := &fakeAPI{chantiers: chantiers}
	drafts := draft.NewStore[*domain.ChantierDraft]("chantier", time.Minute)
	h := NewHandlers(
		application.NewChantierService(api),
		application.NewCreationService(drafts, api, fakeCatalog{}),
		fakeCatalog{},
		api,
	)
	c := bot.NewComponents()
	h.Register(c)
	return &harness{api: api, drafts: drafts, components: c}
}

func interaction(userID string, typ discordgo.InteractionType, data discordgo.InteractionData) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:      "1",
			Type:    typ,
			GuildID: testGuild,
			Member:  &discordgo.Member{User: &discordgo.User{ID: userID, Username: "admin"}},
			Data:    data,
		},
	}
}

func button(userID, customID string) *discordgo.InteractionCreate {
	return interaction(userID, discordgo.InteractionMessageComponent, discordgo.MessageComponentInteractionData{
		CustomID:      customID,
		ComponentType: discordgo.ButtonComponent,
	})
}

func selectMenu(userID, customID string, values ...string) *discordgo.InteractionCreate {
	return interaction(userID, discordgo.InteractionMessageComponent, discordgo.MessageComponentInteractionData{
		CustomID:      customID,
		ComponentType: discordgo.SelectMenuComponent,
		Values:        values,
	})
}

func modal(userID, customID string, fields map[string]string) *discordgo.InteractionCreate {
	rows := make([]discordgo.MessageComponent, 0, len(fields))
	for id, value := range fields {
		rows = append(rows, &discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{&discordgo.TextInput{CustomID: id, Value: value}},
		})
	}
	return interaction(userID, discordgo.InteractionModalSubmit, discordgo.ModalSubmitInteractionData{
		CustomID:   customID,
		Components: rows,
	})
}

func dispatch(t *testing.T, router *bot.Router, i *discordgo.InteractionCreate) *bot.MockResponder {
	t.Helper()
	r := &bot.MockResponder{}
	handled, err := router.Dispatch(nil, i, r)
	if !handled {
		t.Fatalf("expected %q to be handled", bot.CustomID(i))
	}
	if err != nil {
		t.Fatalf("unexpected error for %q: %v", bot.CustomID(i), err)
	}
	if r.LastResponse == nil {
		t.Fatalf("expected a response for %q", bot.CustomID(i))
	}
	return r
}

func selectOptions(t *testing.T, resp *discordgo.InteractionResponse) []discordgo.SelectMenuOption {
	t.Helper()
	row, ok := resp.Data.Components[0].(discordgo.ActionsRow)
	if !ok {
		t.Fatalf("expected an action row, got %T", resp.Data.Components[0])
	}
	menu, ok := row.Components[0].(discordgo.SelectMenu)
	if !ok {
		t.Fatalf("expected a select menu, got %T", row.Components[0])
	}
	return menu.Options
}

func TestCreateChantier_EndToEnd(t *testing.T) {
	h := newHarness()

	// create modal
	dispatch(t, h.components.Modals, modal(testAdmin, ModalCreate, map[string]string{
		fieldName: "Pont",
		fieldCost: "100",
	}))

	d, err := h.drafts.Get(testAdmin, testAdmin)
	if err != nil {
		t.Fatalf("expected a draft, got %v", err)
	}
	if d.Name != "Pont" || d.Cost != 100 || len(d.ResourceCosts) != 0 {
		t.Errorf("unexpected draft %+v", d)
	}

	// add resource -> select
	r := dispatch(t, h.components.Buttons, button(testAdmin, ButtonAddResource))
	options := selectOptions(t, r.LastResponse)
	if len(options) != 2 || options[1].Value != "3" {
		t.Errorf("unexpected options %+v", options)
	}

	// select -> quantity modal
	r = dispatch(t, h.components.Selects, selectMenu(testAdmin, SelectResource, "3"))
	if r.LastResponse.Type != discordgo.InteractionResponseModal {
		t.Fatalf("expected a modal, got %v", r.LastResponse.Type)
	}
	if r.LastResponse.Data.CustomID != "chantier_resource_quantity_3" {
		t.Errorf("expected custom id %q, got %q", "chantier_resource_quantity_3", r.LastResponse.Data.CustomID)
	}

	// quantity modal
	dispatch(t, h.components.Modals, modal(testAdmin, "chantier_resource_quantity_3", map[string]string{
		fieldResourceQuantity: "20",
	}))

	d, _ = h.drafts.Get(testAdmin, testAdmin)
	if len(d.ResourceCosts) != 1 || d.ResourceCosts[0].ResourceTypeID != wood || d.ResourceCosts[0].Quantity != 20 {
		t.Errorf("unexpected resource costs %+v", d.ResourceCosts)
	}

	// the added resource is no longer offered
	r = dispatch(t, h.components.Buttons, button(testAdmin, ButtonAddResource))
	if options := selectOptions(t, r.LastResponse); len(options) != 1 || options[0].Value != "1" {
		t.Errorf("expected only resource 1 to remain, got %+v", options)
	}

	// create
	r = dispatch(t, h.components.Buttons, button(testAdmin, ButtonCreateFinal))
	if r.LastResponse.Type != discordgo.InteractionResponseUpdateMessage {
		t.Errorf("expected message update, got %v", r.LastResponse.Type)
	}

	if len(h.api.created) != 1 {
		t.Fatalf("expected 1 create call, got %d", len(h.api.created))
	}
	got := h.api.created[0]
	if got.Name != "Pont" || got.Cost != 100 || got.DiscordGuildID != testGuild || got.CreatedBy != testAdmin {
		t.Errorf("unexpected payload %+v", got)
	}
	if len(got.ResourceCosts) != 1 || got.ResourceCosts[0] != (backend.ChantierResourceInput{ResourceTypeID: wood, Quantity: 20}) {
		t.Errorf("unexpected resource costs %+v", got.ResourceCosts)
	}

	if _, err := h.drafts.Get(testAdmin, testAdmin); !errors.Is(err, draft.ErrNotFound) {
		t.Errorf("expected draft to be deleted, got %v", err)
	}
}

func TestCreateChantier_InvalidCost(t *testing.T) {
	h := newHarness()

	r := dispatch(t, h.components.Modals, modal(testAdmin, ModalCreate, map[string]string{
		fieldName: "Pont",
		fieldCost: "cent",
	}))

	if r.LastResponse.Data.Content != application.MsgInvalidCost {
		t.Errorf("expected %q, got %q", application.MsgInvalidCost, r.LastResponse.Data.Content)
	}
	if r.LastResponse.Data.Flags != discordgo.MessageFlagsEphemeral {
		t.Error("expected ephemeral response")
	}
	if h.drafts.Len() != 0 {
		t.Errorf("expected no draft, got %d", h.drafts.Len())
	}
}

func TestCreateChantier_OtherAdminHasNoDraft(t *testing.T) {
	h := newHarness()
	dispatch(t, h.components.Modals, modal(testAdmin, ModalCreate, map[string]string{
		fieldName: "Pont",
		fieldCost: "100",
	}))

	r := dispatch(t, h.components.Buttons, button("8", ButtonCreateFinal))

	if r.LastResponse.Data.Content != common.MsgDraftExpired {
		t.Errorf("expected %q, got %q", common.MsgDraftExpired, r.LastResponse.Data.Content)
	}
	if len(h.api.created) != 0 {
		t.Error("expected no chantier to be created")
	}
}

func TestInvest_EndToEnd(t *testing.T) {
	h := newHarness(backend.Chantier{
		ID:        "c1",
		Name:      "Pont",
		Cost:      100,
		SpendOnIt: 95,
		Status:    backend.ChantierInProgress,
		ResourceCosts: []backend.ResourceCost{
			{ResourceTypeID: wood, QuantityRequired: 10, ResourceType: backend.ResourceType{ID: wood, Name: "Bois"}},
		},
	})

	r := dispatch(t, h.components.Buttons, button(testAdmin, ButtonParticipate))
	if options := selectOptions(t, r.LastResponse); len(options) != 1 || options[0].Value != "c1" {
		t.Fatalf("unexpected options %+v", options)
	}

	r = dispatch(t, h.components.Selects, selectMenu(testAdmin, SelectInvest, "c1"))
	if r.LastResponse.Data.CustomID != "invest_modal_c1" {
		t.Errorf("expected custom id %q, got %q", "invest_modal_c1", r.LastResponse.Data.CustomID)
	}
	if len(r.LastResponse.Data.Components) != 2 {
		t.Errorf("expected PA and one resource field, got %d", len(r.LastResponse.Data.Components))
	}

	r = dispatch(t, h.components.Modals, modal(testAdmin, "invest_modal_c1", map[string]string{
		fieldPoints:  "12",
		"resource_3": "",
	}))

	if len(h.api.invested) != 1 || h.api.invested[0] != 5 {
		t.Errorf("expected 5 PA invested, got %v", h.api.invested)
	}
	if !strings.Contains(r.LastResponse.Data.Content, "ajustées") {
		t.Errorf("expected clamping notice, got %q", r.LastResponse.Data.Content)
	}
}

func TestInvest_NothingGiven(t *testing.T) {
	h := newHarness(backend.Chantier{ID: "c1", Name: "Pont", Cost: 100, Status: backend.ChantierInProgress})

	r := dispatch(t, h.components.Modals, modal(testAdmin, "invest_modal_c1", map[string]string{
		fieldPoints: "",
	}))

	if r.LastResponse.Data.Content != application.MsgNothingInvested {
		t.Errorf("expected %q, got %q", application.MsgNothingInvested, r.LastResponse.Data.Content)
	}
}

func TestDeleteChantier(t *testing.T) {
	h := newHarness(backend.Chantier{ID: "c1", Name: "Pont", Cost: 100})

	r := dispatch(t, h.components.Buttons, button(testAdmin, ButtonAdminDelete))
	if options := selectOptions(t, r.LastResponse); len(options) != 1 {
		t.Fatalf("expected 1 option, got %d", len(options))
	}

	dispatch(t, h.components.Selects, selectMenu(testAdmin, SelectDelete, "c1"))

	if len(h.api.deleted) != 1 || h.api.deleted[0] != "c1" {
		t.Errorf("expected c1 to be deleted, got %v", h.api.deleted)
	}
}

func TestParticipate_NoOpenChantier(t *testing.T) {
	h := newHarness(backend.Chantier{ID: "c1", Name: "Pont", Status: backend.ChantierCompleted})

	r := dispatch(t, h.components.Buttons, button(testAdmin, ButtonParticipate))

	if r.LastResponse.Data.Content != application.MsgNoOpenChantier {
		t.Errorf("expected %q, got %q", application.MsgNoOpenChantier, r.LastResponse.Data.Content)
	}
}

func TestResourceFields(t *testing.T) {
	got := resourceFields(map[string]string{
		"points_input": "3",
		"resource_3":   "4",
		"resource_x":   "1",
	})

	if len(got) != 1 || got[3] != "4" {
		t.Errorf("unexpected fields %v", got)
	}
}
