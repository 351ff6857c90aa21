package presentation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/bot"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/core/application"
	"github.com/bwmarrin/discordgo"
	"github.com/disgoorg/snowflake/v2"
)

func TestPingHandler_ReturnsMessage(t *testing.T) {
	handler := NewPingHandler()
	responder := &bot.MockResponder{}

	err := handler.Handle(nil, nil, responder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if responder.LastResponse == nil {
		t.Fatal("expected response, got nil")
	}

	if responder.LastResponse.Type != discordgo.InteractionResponseChannelMessageWithSource {
		t.Errorf("expected response type %d, got %d",
			discordgo.InteractionResponseChannelMessageWithSource,
			responder.LastResponse.Type)
	}

	data := responder.LastResponse.Data
	if data == nil {
		t.Fatal("expected response data, got nil")
	}

	if data.Content != "pong" {
		t.Errorf("expected content %q, got %q", "pong", data.Content)
	}
}

func TestPingHandler_ReportsLatency(t *testing.T) {
	handler := NewPingHandler()
	responder := &bot.MockResponder{}
	i := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID: snowflake.New(time.Now().Add(-time.Second)).String(),
	}}

	if err := handler.Handle(nil, i, responder); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content := responder.LastResponse.Data.Content
	if !strings.HasPrefix(content, "pong\nLatence : ") {
		t.Errorf("expected latency in %q", content)
	}
}

func TestPingHandler_ResponderError(t *testing.T) {
	handler := NewPingHandler()
	expectedErr := errors.New("responder failed")
	responder := &bot.MockResponder{Err: expectedErr}

	err := handler.Handle(nil, nil, responder)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

type staticCommands []*discordgo.ApplicationCommand

func (c staticCommands) Commands() []*discordgo.ApplicationCommand {
	return c
}

func helpInteraction(permissions int64) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:    discordgo.InteractionApplicationCommand,
			GuildID: "42",
			Member: &discordgo.Member{
				User:        &discordgo.User{ID: "7", Username: "alice"},
				Permissions: permissions,
			},
		},
	}
}

func TestHelpHandler_SplitsAdminCommands(t *testing.T) {
	commands := staticCommands{
		{Name: "profil", Description: "Voir le profil"},
		{Name: "stock-admin", Description: "Gérer le stock"},
	}

	tests := []struct {
		name        string
		permissions int64
		expectAdmin bool
	}{
		{"player", 0, false},
		{"administrator", discordgo.PermissionAdministrator, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHelpHandler(commands)
			responder := &bot.MockResponder{}

			if err := handler.Handle(nil, helpInteraction(tt.permissions), responder); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			data := responder.LastResponse.Data
			if data.Flags != discordgo.MessageFlagsEphemeral {
				t.Errorf("expected ephemeral reply, got flags %d", data.Flags)
			}
			var values []string
			for _, f := range data.Embeds[0].Fields {
				values = append(values, f.Value)
			}
			joined := strings.Join(values, "\n")
			if !strings.Contains(joined, "/profil - Voir le profil") {
				t.Errorf("expected user command listed, got %q", joined)
			}
			if got := strings.Contains(joined, "/stock-admin"); got != tt.expectAdmin {
				t.Errorf("expected admin listed %v, got %v", tt.expectAdmin, got)
			}
			if data.Embeds[0].Footer == nil || data.Embeds[0].Footer.Text != "Demandé par alice" {
				t.Errorf("unexpected footer %+v", data.Embeds[0].Footer)
			}
		})
	}
}

func TestElementAdminPrefix_RepliesNotImplemented(t *testing.T) {
	c := bot.NewComponents()
	Register(c)
	responder := &bot.MockResponder{}

	i := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionMessageComponent,
			Data: discordgo.MessageComponentInteractionData{
				CustomID:      "element_admin_capability_edit",
				ComponentType: discordgo.ButtonComponent,
			},
		},
	}

	handled, err := c.Buttons.Dispatch(nil, i, responder)
	if !handled || err != nil {
		t.Fatalf("expected handled without error, got %v, %v", handled, err)
	}
	if !strings.Contains(responder.LastResponse.Data.Content, common.MsgNotImplemented) {
		t.Errorf("unexpected content %q", responder.LastResponse.Data.Content)
	}
}

func TestPresence(t *testing.T) {
	p := Presence()

	if len(p.Activities) != 1 || p.Activities[0].Name != PresenceName {
		t.Errorf("unexpected activities %+v", p.Activities)
	}
	if p.Status != "online" {
		t.Errorf("expected status %q, got %q", "online", p.Status)
	}
}

type recordingGuildAPI struct {
	upserted []backend.UpsertGuildInput
}

func (a *recordingGuildAPI) UpsertGuild(_ context.Context, in backend.UpsertGuildInput) (*backend.Guild, error) {
	a.upserted = append(a.upserted, in)
	return &backend.Guild{ID: "g1"}, nil
}

func (a *recordingGuildAPI) GetTownByGuild(_ context.Context, guildID string) (*backend.Town, error) {
	return &backend.Town{ID: "t1", GuildID: guildID}, nil
}

func TestGatewayHandler_GuildCreate(t *testing.T) {
	api := &recordingGuildAPI{}
	handler := NewGatewayHandler(application.NewGuildSync(api))

	handler.HandleGuildCreate(nil, &discordgo.GuildCreate{Guild: &discordgo.Guild{ID: "42", Name: "Bourg", MemberCount: 5}})
	handler.HandleGuildCreate(nil, &discordgo.GuildCreate{Guild: &discordgo.Guild{ID: "43", Unavailable: true}})

	if len(api.upserted) != 1 {
		t.Fatalf("expected 1 upsert, got %d", len(api.upserted))
	}
	if api.upserted[0].DiscordID != "42" || api.upserted[0].MemberCount != 5 {
		t.Errorf("unexpected upsert %+v", api.upserted[0])
	}
}
