package presentation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/bot"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/town/application"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/town/domain"
	"github.com/bwmarrin/discordgo"
)

// Handlers holds the town command and component handlers.
type Handlers struct {
	stock   *application.StockService
	food    *application.FoodStockService
	seasons *application.SeasonService
	players common.PlayerDirectory
}

// NewHandlers creates new Handlers.
func NewHandlers(
	stock *application.StockService,
	food *application.FoodStockService,
	seasons *application.SeasonService,
	players common.PlayerDirectory,
) *Handlers {
	return &Handlers{
		stock:   stock,
		food:    food,
		seasons: seasons,
		players: players,
	}
}

// Register adds the component handlers to the bot routers.
func (h *Handlers) Register(c *bot.Components) {
	c.Buttons.Register(ButtonStockAdd, h.HandleStockButton)
	c.Buttons.Register(ButtonStockRemove, h.HandleStockButton)
	c.Buttons.RegisterPrefix(ButtonSeasonSet+":", h.HandleSeasonButton)

	c.Selects.RegisterPrefix(SelectStock+":", h.HandleStockSelect)

	c.Modals.RegisterPrefix(ModalStockQty+":", h.HandleStockQuantityModal)
	c.Modals.RegisterPrefix(ModalFoodStock+":", h.HandleFoodStockModal)
}

// HandleStock handles /stock.
func (h *Handlers) HandleStock(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	ctx := context.Background()

	player, err := common.EnsureUser(ctx, h.players, i)
	if err != nil {
		return common.ReplyError(r, err)
	}
	resources, err := h.stock.Resources(ctx, player.Town.ID)
	if err != nil {
		return err
	}

	return common.RespondEmbed(r, stockEmbed(player.Town, resources), true)
}

// HandleFoodStock handles /foodstock, with a meal button when there is food.
func (h *Handlers) HandleFoodStock(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	ctx := context.Background()

	player, err := common.EnsureUser(ctx, h.players, i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	var components []discordgo.MessageComponent
	character, err := h.players.GetActiveCharacter(ctx, player.User.ID, player.Town.ID)
	if err != nil {
		if !errors.Is(err, backend.ErrNoActiveCharacter) {
			slog.Warn("failed to get active character", "town_id", player.Town.ID, "error", err)
		}
		character = nil
	}
	if character != nil && !character.IsDead && player.Town.FoodStock > 0 {
		components = append(components, common.Buttons(discordgo.Button{
			Label:    "🍽️ Manger",
			Style:    discordgo.PrimaryButton,
			CustomID: EatButtonID,
		}))
	}

	return common.RespondEmbed(r, foodStockEmbed(player.Town, character), true, components...)
}

// HandleStockAdmin handles /stock-admin.
func (h *Handlers) HandleStockAdmin(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	ctx := context.Background()

	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}
	town, err := h.stock.Town(ctx, inv.Guild())
	if err != nil {
		return err
	}
	resources, err := h.stock.Resources(ctx, town.ID)
	if err != nil {
		return err
	}

	return common.RespondEmbed(r, stockEmbed(town, resources), true, stockAdminButtons())
}

// HandleStockButton offers the resources to add or remove.
func (h *Handlers) HandleStockButton(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}

	op, prompt := domain.OperationAdd, "Choisissez la ressource à ajouter :"
	if bot.CustomID(i) == ButtonStockRemove {
		op, prompt = domain.OperationRemove, "Choisissez la ressource à retirer :"
	}

	candidates, err := h.stock.Candidates(context.Background(), inv.Guild(), op)
	if err != nil {
		return common.ReplyError(r, err)
	}

	return common.RespondMessage(r, prompt, true,
		common.Select(common.JoinCustomID(SelectStock, string(op)), "Sélectionnez une ressource", stockOptions(candidates), 1))
}

// HandleStockSelect asks for the quantity of the picked resource.
func (h *Handlers) HandleStockSelect(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	parts := common.SplitCustomID(bot.CustomID(i), SelectStock)
	if len(parts) != 1 {
		return fmt.Errorf("malformed stock select id %q", bot.CustomID(i))
	}
	op, err := domain.ParseOperation(parts[0])
	if err != nil {
		return err
	}

	value, err := common.FirstSelected(i)
	if err != nil {
		return common.ReplyError(r, err)
	}
	typeID, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid resource type %q: %w", value, err)
	}
	rt, err := h.stock.ResourceType(context.Background(), typeID)
	if err != nil {
		return common.ReplyError(r, err)
	}

	verb := "ajouter"
	if op == domain.OperationRemove {
		verb = "retirer"
	}
	return common.ShowModal(r, common.JoinCustomID(ModalStockQty, string(op), value),
		fmt.Sprintf("Quantité de %s", rt.Name),
		common.ShortInput(fieldAmount, fmt.Sprintf("Quantité de %s à %s", rt.Name, verb), "10", 6),
	)
}

// HandleStockQuantityModal applies the stock change.
func (h *Handlers) HandleStockQuantityModal(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}
	parts := common.SplitCustomID(bot.CustomID(i), ModalStockQty)
	if len(parts) != 2 {
		return fmt.Errorf("malformed stock modal id %q", bot.CustomID(i))
	}
	op, err := domain.ParseOperation(parts[0])
	if err != nil {
		return err
	}
	typeID, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("invalid resource type %q: %w", parts[1], err)
	}

	out, err := h.stock.Adjust(context.Background(), application.AdjustInput{
		GuildID:        inv.Guild(),
		Operation:      op,
		ResourceTypeID: typeID,
		Quantity:       common.ModalValue(i, fieldAmount),
	})
	if err != nil {
		return common.ReplyError(r, err)
	}

	return common.RespondEphemeral(r, fmt.Sprintf("%s **%d** %s %s. Stock de la ville : **%d**.",
		common.EmojiSuccess, out.Quantity,
		common.ResourceLabel(out.ResourceType.Emoji, out.ResourceType.Name),
		op.Verb(), out.Remaining))
}

// HandleFoodStockAdmin handles /foodstock-admin add|remove by asking for the amount.
func (h *Handlers) HandleFoodStockAdmin(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}
	op, err := domain.ParseOperation(common.Subcommand(i))
	if err != nil {
		return err
	}
	town, err := h.food.Town(context.Background(), inv.Guild())
	if err != nil {
		return err
	}

	title, label := "Ajouter des vivres", "Quantité de vivres à ajouter"
	if op == domain.OperationRemove {
		title, label = "Retirer des vivres", fmt.Sprintf("Quantité à retirer (stock : %d)", town.FoodStock)
	}
	return common.ShowModal(r, common.JoinCustomID(ModalFoodStock, string(op), town.ID), title,
		common.ShortInput(fieldAmount, label, "100", 4),
	)
}

// HandleFoodStockModal applies the food stock change.
func (h *Handlers) HandleFoodStockModal(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	parts := common.SplitCustomID(bot.CustomID(i), ModalFoodStock)
	if len(parts) != 2 {
		return fmt.Errorf("malformed food stock modal id %q", bot.CustomID(i))
	}
	op, err := domain.ParseOperation(parts[0])
	if err != nil {
		return err
	}

	out, err := h.food.Adjust(context.Background(), parts[1], op, common.ModalValue(i, fieldAmount))
	if err != nil {
		return common.ReplyError(r, err)
	}

	return common.RespondEmbed(r, foodAdjustEmbed(op, out), false)
}

// HandleSeasonAdmin handles /season-admin.
func (h *Handlers) HandleSeasonAdmin(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	season, err := h.seasons.Current(context.Background())
	if err != nil {
		return err
	}
	return common.RespondEmbed(r, seasonEmbed(season), true, seasonButtons(season.Name))
}

// HandleSeasonButton sets the season named in the customId.
func (h *Handlers) HandleSeasonButton(s *discordgo.Session, i *discordgo.InteractionCreate, r bot.Responder) error {
	inv, err := common.InvokerFrom(i)
	if err != nil {
		return common.ReplyError(r, err)
	}
	parts := common.SplitCustomID(bot.CustomID(i), ButtonSeasonSet)
	if len(parts) != 1 {
		return fmt.Errorf("malformed season button id %q", bot.CustomID(i))
	}

	if err := h.seasons.Set(context.Background(), parts[0], inv.Discord()); err != nil {
		return common.ReplyError(r, err)
	}

	return common.UpdateMessage(r, fmt.Sprintf("%s Saison changée : **%s** (par %s)",
		common.EmojiSuccess, domain.SeasonLabel(parts[0]), inv.DisplayName()))
}
