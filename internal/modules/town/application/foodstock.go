package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/backend"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/common"
	"github.com/MatthiasBlc/FateWeaverBot-sub000/internal/modules/town/domain"
)

// MsgInsufficientFood formats the refusal of a removal larger than the food stock.
func MsgInsufficientFood(held, qty int) string {
	return fmt.Sprintf("❌ La ville n'a que **%d** vivres. Vous ne pouvez pas en retirer **%d**.", held, qty)
}

// FoodStockService lets admins change the food stock of a town.
type FoodStockService struct {
	api FoodStockAPI
}

// NewFoodStockService creates a new FoodStockService.
func NewFoodStockService(api FoodStockAPI) *FoodStockService {
	return &FoodStockService{api: api}
}

// Town returns the town of a guild.
func (s *FoodStockService) Town(ctx context.Context, guildID string) (*backend.Town, error) {
	town, err := s.api.GetTownByGuild(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to get town: %w", err)
	}
	return town, nil
}

// FoodAdjustOutput is the food stock before and after a change.
type FoodAdjustOutput struct {
	Town     *backend.Town
	Previous int
	Quantity int
}

// Adjust adds to or removes from the food stock of a town. The stock is read
// again so the change applies to the current value, not the one shown when
// the modal was opened.
func (s *FoodStockService) Adjust(ctx context.Context, townID string, op domain.Operation, quantity string) (*FoodAdjustOutput, error) {
	qty, err := common.ParsePositiveInt(quantity)
	if err != nil {
		return nil, err
	}

	town, err := s.api.GetTown(ctx, townID)
	if err != nil {
		return nil, fmt.Errorf("failed to get town: %w", err)
	}
	next, err := op.Apply(town.FoodStock, qty)
	if errors.Is(err, domain.ErrInsufficientStock) {
		return nil, common.Invalid(MsgInsufficientFood(town.FoodStock, qty))
	}

	updated, err := s.api.UpdateTownFoodStock(ctx, town.ID, next)
	if err != nil {
		return nil, fmt.Errorf("failed to update food stock: %w", err)
	}

	slog.Info("adjusted food stock",
		"town_id", town.ID,
		"operation", op,
		"quantity", qty,
		"food_stock", updated.FoodStock,
	)
	return &FoodAdjustOutput{Town: updated, Previous: town.FoodStock, Quantity: qty}, nil
}
